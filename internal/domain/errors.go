package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// PreconditionError is returned when a business rule rejects an operation
// before anything is written. Minimum is set for numeric rules.
type PreconditionError struct {
	Rule    string
	Minimum *float64
}

func (e *PreconditionError) Error() string {
	if e.Minimum != nil {
		return fmt.Sprintf("%s (minimum %v)", e.Rule, *e.Minimum)
	}
	return e.Rule
}

func Preconditionf(format string, args ...any) error {
	return &PreconditionError{Rule: fmt.Sprintf(format, args...)}
}

// BelowMinimum reports a numeric rule violation.
func BelowMinimum(rule string, minimum float64) error {
	return &PreconditionError{Rule: rule, Minimum: &minimum}
}

func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// ErrAuditClosed rejects any mutation of a closed-out audit.
var ErrAuditClosed = &PreconditionError{Rule: "audit is closed out and cannot be modified"}

// WrapOp names the failed operation on store and lookup errors. Rule
// violations pass through untouched so their message reaches the caller
// verbatim.
func WrapOp(op string, err error) error {
	if err == nil || IsPrecondition(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
