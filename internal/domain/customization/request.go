package customization

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

// Request is an immutable snapshot of a customization at submit time.
type Request struct {
	Height string   `yaml:"height"`
	Weight string   `yaml:"weight"`
	Build  Build    `yaml:"build" validate:"build"`
	Text   string   `yaml:"text" validate:"print_text"`
	Image  ImageRef `yaml:"image"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func requestValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("build", func(fl validator.FieldLevel) bool {
			return Build(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("print_text", func(fl validator.FieldLevel) bool {
			text := fl.Field().String()
			return LineCount(text) <= MaxTextLines && utf8.RuneCountInString(text) <= MaxTextChars
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the snapshot's structural invariants. Height and weight
// are free-form and never rejected.
func (r Request) Validate() error {
	err := requestValidator().Struct(r)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	first := validationErrs[0]
	field := strings.ToLower(first.Namespace())
	field = strings.TrimPrefix(field, "request.")
	return teeerrors.NewValidationError(field, describe(first), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "build":
		return fmt.Sprintf("must be one of %v", supportedBuilds)
	case "print_text":
		return fmt.Sprintf("must have at most %d lines and %d characters", MaxTextLines, MaxTextChars)
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Fields flattens the snapshot for structured logging.
func (r Request) Fields() map[string]any {
	return map[string]any{
		"height": r.Height,
		"weight": r.Weight,
		"build":  string(r.Build),
		"text":   r.Text,
		"image":  r.Image.Source,
	}
}
