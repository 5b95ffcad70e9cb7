package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could not be a bare file stem:
// empty names and names containing separators or dots.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
