// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Config loading and frontmatter detection both go through it.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Valid reports whether data is empty or a YAML mapping, the two shapes a
// frontmatter block can take. Scalars and sequences are rejected.
func Valid(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if len(data) > MaxInputSize {
		return false
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return false
	}
	switch v.(type) {
	case nil, map[string]any, map[any]any:
		return true
	default:
		return false
	}
}
