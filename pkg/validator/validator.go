package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateTimeLayouts are the accepted encodings of appointment dates, most specific first.
var DateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so clients see the wire contract.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterValidation("datetime_local", func(fl validator.FieldLevel) bool {
		_, err := ParseDateTime(fl.Field().String())
		return err == nil
	})

	return &CustomValidator{validator: v}
}

// ParseDateTime parses an appointment date in any of DateTimeLayouts.
// Values without a zone are read as UTC.
func ParseDateTime(value string) (time.Time, error) {
	var err error
	for _, layout := range DateTimeLayouts {
		var t time.Time
		t, err = time.Parse(layout, strings.TrimSpace(value))
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				if e.Kind() == reflect.Slice {
					errors[field] = field + " must contain at least " + e.Param() + " item(s)"
				} else if e.Kind() == reflect.String {
					errors[field] = field + " must be at least " + e.Param() + " characters"
				} else {
					errors[field] = field + " must be at least " + e.Param()
				}
			case "max":
				if e.Kind() == reflect.String {
					errors[field] = field + " must be at most " + e.Param() + " characters"
				} else {
					errors[field] = field + " must be at most " + e.Param()
				}
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "unique":
				errors[field] = field + " must not contain duplicates"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "datetime_local":
				errors[field] = field + " must be an RFC 3339 date-time or YYYY-MM-DDTHH:MM"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
