package payslip

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go-payslip/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(apperror.JSONTagName)
	return v
}

// ValidateStructure returns one message per missing or invalid field in v,
// named by JSON path, for example "employees[0].employee.employeeId is required".
func ValidateStructure(v any) []string {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s entry", path, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", path, fe.Param())
	default:
		return path + " is invalid"
	}
}
