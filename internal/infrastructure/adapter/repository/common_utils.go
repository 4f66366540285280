package repository

import (
	"strings"
)

// ErrorType represents the class of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// PostgreSQL surfaces these classes of failure only through the error
// text, so classification is substring matching on known fragments.
var (
	duplicateKeyFragments = []string{"duplicate key", "unique constraint"}
	transientFragments    = []string{"connection reset", "connection refused", "timeout", "EOF", "server closed", "broken pipe"}
	lockFragments         = []string{"deadlock", "could not serialize access", "serialization failure", "lock not available"}
	connectionFragments   = []string{"connection", "dial", "network"}
	constraintFragments   = []string{"constraint", "violates", "foreign key", "not null"}
)

func containsAny(msg string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}

// ErrorClassifier classifies database errors by inspecting their text
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error. Duplicate keys are checked before
// the broader constraint class so they keep their own type.
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique index violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return err != nil && containsAny(strings.ToLower(err.Error()), duplicateKeyFragments)
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	return err != nil && containsAny(err.Error(), transientFragments)
}

// IsLockError checks if the error is due to lock contention
func (c *ErrorClassifier) IsLockError(err error) bool {
	return err != nil && containsAny(err.Error(), lockFragments)
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err.Error(), connectionFragments) || c.IsTransientError(err)
}

// IsConstraintError checks if the error is a constraint violation,
// including unique index violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err.Error(), constraintFragments) || c.IsDuplicateKeyError(err)
}
