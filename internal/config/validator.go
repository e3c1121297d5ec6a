package config

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	glazeerrors "github.com/KJSDR/glaze/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	borderVariants = map[string]struct{}{
		"none": {}, "normal": {}, "rounded": {}, "thick": {}, "double": {},
	}
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("border_variant", func(fl validator.FieldLevel) bool {
			_, ok := borderVariants[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the structural constraints on a parsed configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return glazeerrors.NewValidationError("", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return glazeerrors.NewValidationError(first.Namespace(), validationMessage(first), err)
		}
		return glazeerrors.NewValidationError("", err.Error(), err)
	}

	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "hexcolor":
		return "must be a hex colour such as #2563eb"
	case "border_variant":
		return "must be one of none, normal, rounded, thick, double"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "max":
		return "value out of range"
	default:
		return "invalid value"
	}
}
