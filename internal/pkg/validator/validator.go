// Package validator provides a thin wrapper around the go-playground/validator
// library with standardized error formatting and the domain rules used by the
// service configuration.
//
// Besides the built-in tags it registers:
//
//   - near_account: the value is a syntactically valid NEAR account id
//     (2 to 64 characters of lowercase alphanumerics separated by '-', '_'
//     or '.', with no leading, trailing or repeated separators).
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

const (
	// nearAccountTag is the tag name of the NEAR account id rule.
	nearAccountTag = "near_account"

	minNearAccountLength = 2
	maxNearAccountLength = 64
)

// nearAccountPattern matches the character and separator rules of NEAR account ids.
var nearAccountPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// validator is a singleton instance of the go-playground validator,
// initialized on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Accounts[0]': value 'A.near' does not meet the requirements for the 'near_account' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	if err := validator.RegisterValidation(nearAccountTag, validateNearAccount); err != nil {
		panic(err)
	}
}

// IsNearAccount reports whether s is a syntactically valid NEAR account id.
func IsNearAccount(s string) bool {
	if len(s) < minNearAccountLength || len(s) > maxNearAccountLength {
		return false
	}

	return nearAccountPattern.MatchString(s)
}

// validateNearAccount implements the near_account tag.
func validateNearAccount(fl gvalidator.FieldLevel) bool {
	return IsNearAccount(fl.Field().String())
}

// formatError transforms a raw validator error into a human-readable multi-error chain
// rooted at ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// Example usage:
//
//	type Input struct {
//	    Accounts []string `validate:"required,dive,near_account"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
