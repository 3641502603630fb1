// Package apierrors converts failed API calls into normalized, user-ready
// outcomes: a taxonomy kind, a canonical title/message pair, and per-field
// messages for form display.
//
// Classification is pure and deterministic: the same (status, body) input
// always yields the same Outcome. The substring heuristics mirror the
// wording the BrainStorm backend is known to emit; they are a best-effort
// mapping, not a contract, and unmatched inputs degrade to a generic kind.
package apierrors

// Kind is one fixed category describing why a call failed.
type Kind string

const (
	KindEmailAlreadyExists    Kind = "EMAIL_ALREADY_EXISTS"
	KindUsernameAlreadyExists Kind = "USERNAME_ALREADY_EXISTS"
	KindAccountAlreadyExists  Kind = "ACCOUNT_ALREADY_EXISTS"
	KindInvalidCredentials    Kind = "INVALID_CREDENTIALS"
	KindPasswordsNotMatching  Kind = "PASSWORDS_NOT_MATCHING"
	KindPasswordTooWeak       Kind = "PASSWORD_TOO_WEAK"
	KindInvalidEmail          Kind = "INVALID_EMAIL"
	KindUsernameTooShort      Kind = "USERNAME_TOO_SHORT"
	KindUsernameInvalidFormat Kind = "USERNAME_INVALID_FORMAT"
	KindValidationError       Kind = "VALIDATION_ERROR"
	KindNetworkError          Kind = "NETWORK_ERROR"
	KindTimeoutError          Kind = "TIMEOUT_ERROR"
	KindServerError           Kind = "SERVER_ERROR"
	KindUnknownError          Kind = "UNKNOWN_ERROR"
)

// Outcome is the normalized, displayable result of classifying a failure.
// When FieldErrors is non-empty the UI shows those inline and suppresses
// the general Title/Message banner, so the same problem is never reported
// twice.
type Outcome struct {
	Kind    Kind
	Title   string
	Message string

	// FieldErrors maps canonical form-field names to display messages.
	FieldErrors map[string]string
}

// HasFieldErrors reports whether inline field messages exist; the caller
// must then skip the general banner.
func (o Outcome) HasFieldErrors() bool {
	return len(o.FieldErrors) > 0
}
