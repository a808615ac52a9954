// Package contrib holds the submit-time rules for a paper's tables and a
// reproduction's value-fill: validation, numeric coercion and merging.
package contrib

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// repositoryPattern matches "owner/repository".
var repositoryPattern = regexp.MustCompile(`^[^\s/]+/[^\s/]+$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("repository", func(fl validator.FieldLevel) bool {
		return repositoryPattern.MatchString(fl.Field().String())
	})
}

// ValidateTables checks that every table, column and row is filled in and that
// column types and policies are known.
func ValidateTables(tables models.TableSet) error {
	for _, table := range tables.List() {
		if err := check(table); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePaper checks paper metadata and its tables.
func ValidatePaper(p models.Paper) error {
	return check(p)
}

// ValidateReproduction checks reproduction metadata. The value-fill is
// checked by CoerceTableValues.
func ValidateReproduction(r models.Reproduction) error {
	return check(r)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return NewValidationError(fieldErrs[0].Namespace(), fieldErrs[0].Tag())
	}
	return err
}
