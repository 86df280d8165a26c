package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
			return !strings.ContainsRune(fl.Field().String(), 0)
		})

		validateInst = v
	})

	return validateInst
}

// ValidateInput performs schema validation on a create-yaml input.
func ValidateInput(in *CreateYAMLInput) error {
	if in == nil {
		return tibcoerrors.NewValidationError("input", "input is nil", nil)
	}

	if err := validatorInstance().Struct(in); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "required" {
			msg = fmt.Sprintf("%s is required", field)
		}
		return tibcoerrors.NewValidationError(field, msg, err)
	}

	return tibcoerrors.NewValidationError("input", err.Error(), err)
}
