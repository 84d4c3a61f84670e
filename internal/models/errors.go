package models

import "errors"

// Validation messages reported by NewTransaction.
const (
	MsgDescriptionRequired = "description required"
	MsgDescriptionTooLong  = "description too long"
	MsgDateRequired        = "date required"
	MsgAmountNotPositive   = "amount must be positive"
)

// ValidationError reports malformed input to entity construction.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError returns a *ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidationError reports whether err or anything it wraps is a *ValidationError.
func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}
