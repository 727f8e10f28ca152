package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

// FieldViolation names one violated field and the constraint it failed.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// ValidationError enumerates every violated field of an insert contract.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validate shares the "binding" tag namespace with gin so request models
// carry a single set of constraint tags.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// ValidateInput checks an insert contract and returns a *ValidationError
// listing every violation, or nil when the input is clean.
func ValidateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing required field"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed constraint %q", fe.Tag())
	}
}

// UniqueViolation wraps a write-time unique-constraint failure into the same
// taxonomy as field validation.
func UniqueViolation(field string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{
		Field:      field,
		Constraint: "unique",
		Message:    "value already exists",
	}}}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// gorm's postgres driver surfaces pgx errors as plain strings in some
	// paths; fall back to the SQLSTATE marker.
	return err != nil && strings.Contains(err.Error(), "23505")
}

// UniqueViolationConstraint returns the name of the violated constraint, or
// "" when the driver does not surface it.
func UniqueViolationConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Constraint != "" {
		return pqErr.Constraint
	}
	if err == nil {
		return ""
	}
	// Same string fallback as above: Postgres quotes the constraint name in
	// the error message.
	const marker = `unique constraint "`
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(marker):]
	j := strings.Index(rest, `"`)
	if j < 0 {
		return ""
	}
	return rest[:j]
}
