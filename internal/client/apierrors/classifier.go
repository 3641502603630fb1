package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/brainstorm-app/brainstorm/internal/client/api"
)

// serverBody is the error shape the backend returns:
// {"message": "...", "errors": {"field": "..." | ["...", ...]}}.
type serverBody struct {
	Message string                     `json:"message"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

// fieldText extracts a single message string from a field entry that may
// be either a string or an array of strings.
func fieldText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}

func parseBody(body []byte) serverBody {
	var sb serverBody
	if len(body) == 0 {
		return sb
	}
	_ = json.Unmarshal(body, &sb)
	return sb
}

// ClassifyError classifies any error returned by the gateway or the typed
// client. Non-transport errors (e.g. local storage failures, malformed
// response JSON) degrade to UNKNOWN_ERROR.
func ClassifyError(err error) Outcome {
	var te *api.TransportError
	if errors.As(err, &te) {
		return Classify(te)
	}
	return outcomeOf(KindUnknownError)
}

// Classify maps a failed call to an Outcome. Rules are priority-ordered
// and the first match wins; see the package comment for caveats on the
// substring heuristics.
func Classify(te *api.TransportError) Outcome {
	if te == nil {
		return outcomeOf(KindUnknownError)
	}

	switch te.Category {
	case api.CategoryNoResponse:
		return outcomeOf(KindNetworkError)
	case api.CategoryTimeout:
		return outcomeOf(KindTimeoutError)
	}

	if te.Status >= 500 {
		return outcomeOf(KindServerError)
	}

	switch te.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return classifyValidation(parseBody(te.Body))
	case http.StatusUnauthorized:
		return outcomeOf(KindInvalidCredentials)
	case http.StatusConflict:
		return classifyConflict(parseBody(te.Body))
	}

	return outcomeOf(KindUnknownError)
}

// classifyValidation handles 400/422 responses. A structured field map
// takes precedence over the top-level message; with field errors present
// the general banner text is the generic validation entry, which the UI
// suppresses anyway while fields are shown.
func classifyValidation(sb serverBody) Outcome {
	if len(sb.Errors) > 0 {
		fieldErrors := make(map[string]string, len(sb.Errors))

		// Sorted iteration keeps the outcome identical across calls.
		fields := make([]string, 0, len(sb.Errors))
		for f := range sb.Errors {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		var firstKind Kind
		for _, field := range fields {
			msg := fieldText(sb.Errors[field])
			kind, canonical := classifyFieldMessage(field, msg)
			if firstKind == "" {
				firstKind = kind
			}
			if _, taken := fieldErrors[canonical]; taken {
				continue
			}
			fieldErrors[canonical] = displayMessage(kind, msg)
		}

		overall := KindValidationError
		if len(fieldErrors) == 1 {
			overall = firstKind
		}
		o := outcomeOf(overall)
		o.FieldErrors = fieldErrors
		return o
	}

	if sb.Message != "" {
		return outcomeOf(classifyMessage(sb.Message))
	}
	return outcomeOf(KindValidationError)
}

// classifyConflict handles 409 duplicate-resource responses.
func classifyConflict(sb serverBody) Outcome {
	m := strings.ToLower(sb.Message)
	switch {
	case strings.Contains(m, "email"):
		return outcomeOf(KindEmailAlreadyExists)
	case strings.Contains(m, "username"):
		return outcomeOf(KindUsernameAlreadyExists)
	default:
		return outcomeOf(KindAccountAlreadyExists)
	}
}

// classifyFieldMessage decides which taxonomy kind a per-field server
// message belongs to and which canonical form field it should be shown
// under. A password mismatch is redirected to confirmPassword, because
// that is the input the user has to fix.
func classifyFieldMessage(field, msg string) (Kind, string) {
	f := strings.ToLower(field)
	m := strings.ToLower(msg)

	isEmail := f == "email" || strings.Contains(m, "email")
	isUsername := f == "username" || strings.Contains(m, "username")
	isPassword := strings.Contains(f, "password") || strings.Contains(m, "password")

	switch {
	case isPassword && strings.Contains(m, "match"):
		return KindPasswordsNotMatching, "confirmPassword"
	case isEmail && containsAny(m, "already", "taken", "exists", "in use", "registered"):
		return KindEmailAlreadyExists, "email"
	case isUsername && containsAny(m, "already", "taken", "exists", "in use"):
		return KindUsernameAlreadyExists, "username"
	case isEmail && strings.Contains(m, "valid"):
		return KindInvalidEmail, "email"
	case isUsername && containsAny(m, "short", "at least", "minimum"):
		return KindUsernameTooShort, "username"
	case isUsername && containsAny(m, "letters", "characters", "underscore", "format", "invalid"):
		return KindUsernameInvalidFormat, "username"
	case isPassword && containsAny(m, "weak", "short", "at least", "6 characters"):
		return KindPasswordTooWeak, "password"
	default:
		return KindValidationError, field
	}
}

// classifyMessage applies the same heuristics to a single top-level
// message when no structured field map exists.
func classifyMessage(msg string) Kind {
	m := strings.ToLower(msg)

	switch {
	case strings.Contains(m, "password") && strings.Contains(m, "match"):
		return KindPasswordsNotMatching
	case strings.Contains(m, "email") && containsAny(m, "already", "taken", "exists", "in use", "registered"):
		return KindEmailAlreadyExists
	case strings.Contains(m, "username") && containsAny(m, "already", "taken", "exists", "in use"):
		return KindUsernameAlreadyExists
	case strings.Contains(m, "email") && strings.Contains(m, "valid"):
		return KindInvalidEmail
	case strings.Contains(m, "password") && containsAny(m, "weak", "short", "at least", "6 characters"):
		return KindPasswordTooWeak
	default:
		return KindValidationError
	}
}

// displayMessage picks the text shown next to a field: the canonical
// catalog message when the kind is specific, or the server-authored
// validation text when it is not. Generic messages pass through because
// they are written for display ("Username is required"); unrecognized
// technical detail never gets a specific kind and so never reaches here
// with one.
func displayMessage(kind Kind, serverMsg string) string {
	if kind == KindValidationError && serverMsg != "" {
		return serverMsg
	}
	_, msg := Text(kind)
	return msg
}

func outcomeOf(kind Kind) Outcome {
	title, msg := Text(kind)
	return Outcome{Kind: kind, Title: title, Message: msg}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
