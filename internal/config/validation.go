package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the assembled settings for structural problems, mainly
// malformed proxy URLs. Missing optional values are fine.
func Validate(settings *Settings) error {
	validate := validator.New()
	if err := validate.Struct(settings); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range errs {
				return fmt.Errorf("invalid setting %s: failed %s validation", fieldErr.Field(), fieldErr.Tag())
			}
		}
		return fmt.Errorf("settings validation failed: %w", err)
	}
	return nil
}
