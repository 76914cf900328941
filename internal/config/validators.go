package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive.
// It also makes error messages use the "label" tag instead of the Go field name.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive returns false if both fields hold non-empty strings.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !other.IsValid() {
		return true
	}

	if field.Kind() != reflect.String || other.Kind() != reflect.String {
		return true
	}

	return field.String() == "" || other.String() == ""
}

// registerHexBytes adds the "hexbytes=N" validator, which requires a hex
// string that decodes to exactly N bytes.
func registerHexBytes(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"hexbytes",
		validateHexBytes,
		"{0} must be {1} hex-encoded bytes",
	); err != nil {
		return fmt.Errorf("registering hexbytes validation: %w", err)
	}

	return nil
}

func validateHexBytes(fl validator.FieldLevel) bool {
	size, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	raw, err := key.FromHex(fl.Field().String())

	return err == nil && len(raw) == size
}
