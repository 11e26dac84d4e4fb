package config

import (
	"strings"

	"github.com/aleister1102/revisiondiff/internal/common"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the global configuration using struct tags.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "json", "console", "text":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("granularity", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "line", "raw":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("exportformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "html", "json", "pdf":
			return true
		}
		return false
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			first := validationErrors[0]
			return common.NewValidationError(first.Field(), first.Value(), "failed rule '"+first.Tag()+"'")
		}
		return common.WrapError(err, "config validation")
	}

	return nil
}
