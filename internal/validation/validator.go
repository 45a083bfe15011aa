package validation

import (
	"errors"
	"reflect"
	"strings"

	"tam-survey/internal/domain"
	"tam-survey/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Field names in errors use
// the json tag so clients see the names they sent.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateStruct checks the validate tags of req. Failures are returned as a
// validation error whose context maps each offending field to the failed rule.
func (v *Validator) ValidateStruct(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewInternalError("request validation failed", err)
	}

	derr := domain.NewValidationError("request validation failed")
	for _, fieldErr := range verrs {
		derr.WithContext(fieldPath(fieldErr.Namespace()), fieldErr.Tag())
	}
	return derr
}

// ValidateID checks that id is a ULID.
func (v *Validator) ValidateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError(field + " is required").WithContext(field, "required")
	}
	if !util.IsULID(id) {
		return domain.NewValidationError(field + " is not a valid id").WithContext(field, "ulid")
	}
	return nil
}

// fieldPath drops the struct name from a namespace like "Req.answers[0].value".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
