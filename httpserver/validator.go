package httpserver

import (
	"reflect"
	"strings"

	"tronefilms/errs"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type CustomValidator struct {
	validate *validator.Validate
}

// NewValidator reports fields by their JSON names and adds notblank, which
// rejects titles made only of whitespace.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return errs.Errorf(errs.EINVALID, "%s", formatValidationError(err))
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// formatValidationError lists one problem per field, in body order:
// "validation error: title is required; year is required".
func formatValidationError(err error) string {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return "validation error"
	}

	parts := make([]string, 0, len(ves))
	for _, fe := range ves {
		parts = append(parts, fieldProblem(fe))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func fieldProblem(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		field = fe.StructField()
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	}
	return field + " failed on " + fe.Tag()
}
