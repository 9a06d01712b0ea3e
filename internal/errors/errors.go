package errors

import "strings"

// ResponseError is the error shape surfaced to GraphQL clients: a human
// message plus a machine-readable code carried in the response's
// extensions object. It implements the ExtendedError interface of
// graphql-go, so the engine attaches the extensions when formatting.
type ResponseError struct {
	message string
	code    string
}

func New(message, code string) *ResponseError {
	return &ResponseError{message: message, code: code}
}

func (e *ResponseError) Error() string {
	return e.message
}

func (e *ResponseError) Code() string {
	return e.code
}

func (e *ResponseError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

var (
	ErrUnauthorized             = New("Unauthorized", "AUTH_ERROR")
	ErrInvalidCredentials       = New("Given credentials are invalid!", "USER_CREDENTIALS_ERROR")
	ErrUserFetchCriteriaInvalid = New("Either user identifier or email required", "USER_CREDENTIALS_ERROR")
	ErrUserCriteriaRequired     = New("User identifier or email required", "USER_CRITERIA_ERROR")
	ErrUserDataEmpty            = New("No data provided to update user", "USER_DATA_ERROR")
	ErrUserEmailEmpty           = New("Email is missing", "USER_EMAIL_ERROR")
	ErrUserPasswordEmpty        = New("Password is missing", "USER_PASSWORD_ERROR")
	ErrUserFirstNameEmpty       = New("User's first (given) name is missing", "USER_FIRST_NAME_ERROR")
	ErrUserLastNameEmpty        = New("User's last (family) name is missing", "USER_LAST_NAME_ERROR")
	ErrAccountBlocked           = New("User account is blocked", "USER_ACCOUNT_BLOCKED")
	ErrDuplicateEmail           = New("User with the given email already exists", "USER_DUPLICATE_EMAIL")
)

// FromDownstream translates a raw downstream service error into a typed
// response error. Recognized business failures are matched by message
// substring, case-insensitively; anything else is wrapped with the given
// fallback so raw downstream detail never leaks to clients.
func FromDownstream(err error, fallbackMessage, fallbackCode string) *ResponseError {
	if re, ok := err.(*ResponseError); ok {
		return re
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "blocked"):
		return ErrAccountBlocked
	case strings.Contains(msg, "password mismatch"):
		return ErrInvalidCredentials
	case strings.Contains(msg, "duplicate"):
		return ErrDuplicateEmail
	}

	return New(fallbackMessage, fallbackCode)
}
