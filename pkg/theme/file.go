package theme

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate checks the struct tags on Theme. A single instance is enough;
// Theme has no custom validators.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes a YAML theme descriptor. A descriptor that fails
// validation is returned alongside the validation error so callers can
// decide between degrading to the literal values and refusing the file.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	if err := validate.Struct(&t); err != nil {
		return &t, fmt.Errorf("validating theme %q: %w", t.Name, err)
	}
	return &t, nil
}

// Load reads and parses a YAML theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data)
}
