package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-gtd/models"
	"github.com/go-playground/validator/v10"
)

type payloadValidator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator for the inbound payload models.
func NewValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", notBlank)

	return &payloadValidator{validate: v}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func (v *payloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.Credentials, *models.Credentials,
		models.UserUpdate, *models.UserUpdate,
		models.ProjectCreate, *models.ProjectCreate,
		models.ProjectUpdate, *models.ProjectUpdate,
		models.TaskCreate, *models.TaskCreate,
		models.TaskUpdate, *models.TaskUpdate,
		models.FieldCreate, *models.FieldCreate,
		models.FieldUpdate, *models.FieldUpdate,
		models.QuickAddRequest, *models.QuickAddRequest:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	verr := &ValidationError{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), rule(fe))
		}
	} else if err != nil {
		return err
	}

	v.optionalFormats(obj, verr)

	if verr.Empty() {
		return nil
	}
	return verr
}

// optionalFormats checks formatted fields of partial updates, where an empty
// string clears the value and therefore skips the format rule.
func (v *payloadValidator) optionalFormats(obj any, verr *ValidationError) {
	check := func(field string, value *string, tag string) {
		if value == nil || *value == "" {
			return
		}
		if err := v.validate.Var(*value, tag); err != nil {
			verr.Add(field, tag)
		}
	}

	switch u := obj.(type) {
	case models.TaskUpdate:
		check("url", u.URL, "url")
	case *models.TaskUpdate:
		check("url", u.URL, "url")
	case models.UserUpdate:
		check("email", u.Email, "email")
	case *models.UserUpdate:
		check("email", u.Email, "email")
	}
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
