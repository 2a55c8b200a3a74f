package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mandinga/gateway/base/ethereum"
)

// IsValidAddress returns whether address is a hex address with a valid (or
// absent) EIP-55 checksum
func IsValidAddress(address string) bool {
	_, ok := ethereum.ChecksumAddress(address)
	return ok
}

// NewCustomValidator wraps v for echo and registers the `checksum_addr` tag
func NewCustomValidator(v *validator.Validate) echo.Validator {
	_ = v.RegisterValidation("checksum_addr", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return IsValidAddress(field.String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
