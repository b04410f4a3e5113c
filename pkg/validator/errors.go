package validator

import (
	"errors"
	"strings"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrValidation matches every ValidationError, ValidationErrors and CompoundError.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidValidator is returned when a check descriptor is missing its name,
	// message template or predicate.
	ErrInvalidValidator = errors.New("invalid validator")

	// ErrInvalidTransformationMode is raised when a chain is opened with an unknown mode.
	ErrInvalidTransformationMode = errors.New("invalid transformation mode")

	// ErrNoParentScope is raised when Back is called on the root scope.
	ErrNoParentScope = errors.New("no parent scope to return to")

	// ErrUnknownCheck is raised when a chain invokes a check name nobody registered.
	ErrUnknownCheck = errors.New("unknown check")
)

// ValidationError describes one failed check, or one failed OR group, against a single path.
type ValidationError struct {
	Message     string
	TargetName  string
	TargetValue any
	// Parameters holds the check call parameters. For an OR group (OrGroup set)
	// it holds one []any per failed alternative instead.
	Parameters []any
	OrGroup    bool
}

func (e ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrValidation.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Message)
	}
	return strings.Join(parts, ", ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (ve ValidationErrors) Has(targetName string) bool {
	for _, err := range ve {
		if err.TargetName == targetName {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(targetName string) []string {
	var messages []string
	for _, err := range ve {
		if err.TargetName == targetName {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct target names in the order they first failed.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.TargetName] {
			fields = append(fields, err.TargetName)
			seen[err.TargetName] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Compound folds the collection into a single CompoundError. It returns nil
// for an empty collection.
func (ve ValidationErrors) Compound() *CompoundError {
	if ve.IsEmpty() {
		return nil
	}

	ce := &CompoundError{
		Message:      ve.Error(),
		TargetNames:  make([]string, 0, len(ve)),
		TargetValues: make([]any, 0, len(ve)),
		Parameters:   make([][]any, 0, len(ve)),
		Errors:       append(ValidationErrors(nil), ve...),
	}
	for _, err := range ve {
		ce.TargetNames = append(ce.TargetNames, err.TargetName)
		ce.TargetValues = append(ce.TargetValues, err.TargetValue)
		ce.Parameters = append(ce.Parameters, err.Parameters)
	}
	return ce
}

// CompoundError aggregates every error of a validation session. The
// TargetNames, TargetValues and Parameters slices are parallel: index i
// describes Errors[i].
type CompoundError struct {
	Message      string
	TargetNames  []string
	TargetValues []any
	Parameters   [][]any
	Errors       ValidationErrors
}

func (e *CompoundError) Error() string {
	return e.Message
}

// Is reports whether target is ErrValidation.
func (e *CompoundError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap exposes the aggregated errors to errors.As.
func (e *CompoundError) Unwrap() error {
	return e.Errors
}

// ExtractCompoundError extracts a CompoundError from an error chain.
func ExtractCompoundError(err error) *CompoundError {
	if err == nil {
		return nil
	}

	var compound *CompoundError
	if errors.As(err, &compound) {
		return compound
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrValidation)
}
