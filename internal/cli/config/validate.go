package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"table", "json", "yaml"}

var validate = newValidator()

// newValidator reports field errors under their koanf key names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	probe := *c
	probe.Output = strings.ToLower(c.Output)
	if err := validate.Struct(&probe); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return describe(verrs[0])
		}
		return err
	}
	if math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("tolerance must be finite, got %v", c.Tolerance)
	}

	return nil
}

// describe turns the first failed rule into a message naming the config key.
func describe(fe validator.FieldError) error {
	key := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required\nHint: pass --%s <value> or set %s%s",
			key, strings.ReplaceAll(key, "_", "-"), EnvPrefix, strings.ToUpper(key))
	case "oneof":
		return fmt.Errorf("%s: unknown value %q (want %s)", key, fe.Value(), strings.Join(OutputFormats, "|"))
	case "gt", "lt":
		return fmt.Errorf("%s must be in (0,1), got %v", key, fe.Value())
	case "gte":
		return fmt.Errorf("%s must be >= 0, got %v", key, fe.Value())
	default:
		return fmt.Errorf("%s failed %q validation", key, fe.Tag())
	}
}

// ValidateData checks that the data file exists.
func (c *Config) ValidateData() error {
	if _, err := os.Stat(c.Data); os.IsNotExist(err) {
		return fmt.Errorf("data file does not exist: %s", c.Data)
	}
	return nil
}
