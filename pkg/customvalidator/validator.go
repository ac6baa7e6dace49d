package customvalidator

import (
	"reflect"
	"regexp"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
)

// RegisterCustomValidations registers the project's extra validation rules
// on the shared validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("date_format", isCalendarDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("time_format", isClockTime); err != nil {
		return err
	}
	registerNullTypes(v)
	return nil
}

// registerNullTypes teaches the validator to look through null.* wrappers:
// invalid values behave like absent ones so `omitempty` applies, valid
// values are checked as their underlying type.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Uint64); ok && val.Valid {
			return val.Uint64
		}
		return nil
	}, null.Uint64{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Float64); ok && val.Valid {
			return val.Float64
		}
		return nil
	}, null.Float64{})
}

// isCalendarDate accepts YYYY-MM-DD, the format scheduled_date travels in.
func isCalendarDate(fl validator.FieldLevel) bool {
	return dateRegex.MatchString(fl.Field().String())
}

// isClockTime accepts HH:MM or HH:MM:SS, the format start_time travels in.
func isClockTime(fl validator.FieldLevel) bool {
	return timeRegex.MatchString(fl.Field().String())
}
