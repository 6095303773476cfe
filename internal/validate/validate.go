// Package validate holds the shared struct validator used by every service
// before it mutates a collection. A params struct that fails validation means
// no record is created and nothing is persisted.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v *validator.Validate

func init() {
	v = validator.New()

	// Report field names from json tags so errors match the stored shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// "required" accepts whitespace-only strings; notblank does not.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Struct validates a params struct against its validate tags.
func Struct(s any) error {
	return v.Struct(s)
}
