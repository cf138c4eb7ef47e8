package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeyBitsValidation validates a requested RSA key size against the 1024-bit
// security floor. Sizes below the floor pass only when the enclosing struct
// sets AllowSmallKeys.
func KeyBitsValidation(fl validator.FieldLevel) bool {
	keyBits := fl.Field().Uint()
	if keyBits >= 1024 {
		return true
	}

	allowSmall := fl.Parent().FieldByName("AllowSmallKeys")
	return allowSmall.IsValid() && allowSmall.Bool()
}
