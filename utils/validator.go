package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the submitted field name (form tag, falling
	// back to the json tag) instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return strings.ToLower(fld.Name)
	})

	return v
}

// ValidateForm validates a struct against its validate tags and returns
// field name -> ordered human-readable messages. An empty map means the
// value passed.
func ValidateForm(s interface{}) map[string][]string {
	errs := make(map[string][]string)

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		errs[field] = append(errs[field], messageFor(fe))
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "oneof":
		return "Select a valid choice. " + asString(fe.Value()) + " is not one of the available choices."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	case "min":
		if fe.Kind() == reflect.Slice {
			return "Select at least " + fe.Param() + "."
		}
		return "Ensure this value has at least " + fe.Param() + " characters."
	}
	return "This value is invalid."
}

func asString(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
