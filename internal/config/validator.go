package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/ui/theme"
	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	numericPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("numeric_string", func(fl validator.FieldLevel) bool {
			return numericPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		_ = v.RegisterValidation("build", func(fl validator.FieldLevel) bool {
			_, err := customization.ParseBuild(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := theme.Lookup(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return teeerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into teecraft validation errors.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return teeerrors.NewValidationError(field, msg, err)
	}

	return teeerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

func toSnake(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
