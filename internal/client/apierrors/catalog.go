package apierrors

// catalogEntry is the pre-authored display text for a taxonomy kind, used
// whenever the server body did not yield a more specific field message.
type catalogEntry struct {
	title   string
	message string
}

var catalog = map[Kind]catalogEntry{
	KindEmailAlreadyExists:    {"Email Already Registered", "An account with this email already exists. Try logging in instead."},
	KindUsernameAlreadyExists: {"Username Taken", "This username is already in use. Please pick another one."},
	KindAccountAlreadyExists:  {"Account Already Exists", "An account with these details already exists."},
	KindInvalidCredentials:    {"Login Failed", "Incorrect email or password. Please try again."},
	KindPasswordsNotMatching:  {"Passwords Do Not Match", "Passwords do not match."},
	KindPasswordTooWeak:       {"Weak Password", "Password must be at least 6 characters."},
	KindInvalidEmail:          {"Invalid Email", "Please enter a valid email address."},
	KindUsernameTooShort:      {"Username Too Short", "Username must be at least 3 characters."},
	KindUsernameInvalidFormat: {"Invalid Username", "Username can only contain letters, numbers, and underscores."},
	KindValidationError:       {"Validation Error", "Please check the highlighted fields and try again."},
	KindNetworkError:          {"Connection Problem", "Could not reach the server. Check your internet connection and try again."},
	KindTimeoutError:          {"Request Timed Out", "The server took too long to respond. Please try again."},
	KindServerError:           {"Server Error", "Something went wrong on our side. Please try again later."},
	KindUnknownError:          {"Something Went Wrong", "An unexpected error occurred. Please try again."},
}

// Text returns the canonical title and message for a kind. Unknown kinds
// fall back to the UNKNOWN_ERROR entry so raw technical detail never
// reaches the user.
func Text(kind Kind) (title, message string) {
	e, ok := catalog[kind]
	if !ok {
		e = catalog[KindUnknownError]
	}
	return e.title, e.message
}
