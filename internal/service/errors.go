package service

import "errors"

// Error kinds. Match with errors.Is.
var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrNotFound          = errors.New("not found")
	ErrStore             = errors.New("store error")
)

// Caller-facing messages.
const (
	msgWrongUserParameters = "Wrong user parameters"
	msgUsernameRequired    = "Username is required"

	// MsgUserNotFound is reported when no record exists for a username.
	MsgUserNotFound = "User not found"
)

// Error is returned by UserService operations.
// Error() yields the message meant for API clients.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidParameters(msg string) error {
	return &Error{Kind: ErrInvalidParameters, Message: msg}
}

func notFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func storeFailure(err error) error {
	return &Error{Kind: ErrStore, Message: err.Error(), Err: err}
}
