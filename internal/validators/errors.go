package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoSearchFilter   = errors.New("at least one of searchText, holderName, clientNo or niceClasses is required")
	ErrUnknownCategory  = errors.New("unknown search type")
	ErrInvalidNext      = errors.New("next must not be negative")
	ErrInvalidLimit     = errors.New("limit must be positive")
	ErrEmptyFileID      = errors.New("id (applicationNo) is required")
	ErrMalformedRequest = errors.New("malformed request body")
)

// ValidationError reports caller input that the relay refuses before any
// browser work. Err is one of the package sentinels; Detail optionally adds
// context to the message.
type ValidationError struct {
	Field  string
	Err    error
	Detail string
}

// NewValidationError wraps err for field.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return e.Err.Error() + ": " + e.Detail
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
