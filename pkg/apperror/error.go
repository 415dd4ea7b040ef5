package apperror

import "errors"

// Kind classifies an error the way the UI has to branch on it: a
// sign-in prompt, an inline form message, a conflict banner, a generic
// retry suggestion, or a silent transition into a creation flow.
type Kind int

const (
	KindUnknown Kind = iota
	// Mutating action attempted without a session
	KindAuthRequired
	// Form-level validation failure; no request was made
	KindValidation
	// Server-reported duplicate (already applied, name taken, ...)
	KindConflict
	// No response received at all
	KindNetwork
	// Server responded non-2xx
	KindServer
	// Response arrived but did not parse as the expected shape
	KindDecode
	// Resource absent; usually a signal to create, not an error to show
	KindNotFound
)

type AppError struct {
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
	// HTTP status of the rejecting response, 0 when no response was received
	Status int   `json:"status,omitempty"`
	Err    error `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func AuthRequired(message string) *AppError {
	return New(KindAuthRequired, message, nil)
}

func Validation(message string) *AppError {
	return New(KindValidation, message, nil)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message, nil)
}

func Network(err error) *AppError {
	return New(KindNetwork, "Could not reach the server. Please try again.", err)
}

func Server(status int, message string) *AppError {
	e := New(KindServer, message, nil)
	e.Status = status
	return e
}

func Decode(err error) *AppError {
	return New(KindDecode, "Unexpected response from the server", err)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, message, nil)
}

// KindOf extracts the Kind from any error in the chain, KindUnknown otherwise.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
