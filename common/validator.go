package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("password", strongPassword)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// requiredMessager lets a payload report every missing required field with a
// single message.
type requiredMessager interface {
	RequiredMessage() string
}

// Validate checks payload against its validate tags. Failures come back as a
// *ValidationError whose message is taken from the field's msg tag.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	if rm, ok := payload.(requiredMessager); ok {
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				return NewValidationError(rm.RequiredMessage())
			}
		}
	}

	return NewValidationError(fieldMessage(payload, fieldErrs[0]))
}

func fieldMessage(payload any, fe validator.FieldError) string {
	t := reflect.TypeOf(payload)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if msg := f.Tag.Get("msg"); msg != "" {
			return msg
		}
	}
	return fe.Error()
}

// strongPassword requires at least 8 characters with an ASCII upper case
// letter, an ASCII lower case letter, a digit and a symbol. Anything outside
// [A-Za-z0-9] counts as a symbol.
func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len([]rune(s)) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// DecodeJSON decodes the request body into payload. An empty body leaves
// payload untouched so that validation can report the missing fields.
func DecodeJSON(r *http.Request, payload any) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil && !errors.Is(err, io.EOF) {
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}
	return nil
}
