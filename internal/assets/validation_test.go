package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "default", nil},
		{"name with hyphen", "my-style", nil},
		{"name with underscore", "my_style", nil},
		{"mixed case with digits", "Style2", nil},
		{"japanese name", "明朝", nil},
		{"empty name", "", ErrInvalidAssetName},
		{"whitespace only", "  ", ErrInvalidAssetName},
		{"forward slash", "path/to/style", ErrInvalidAssetName},
		{"backslash", "path\\to\\style", ErrInvalidAssetName},
		{"parent traversal", "../secret", ErrInvalidAssetName},
		{"extension", "style.css", ErrInvalidAssetName},
		{"hidden file", ".hidden", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAssetName_ErrorMessages(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("../evil")
	if err == nil {
		t.Fatal("expected error for invalid name")
	}
	if !strings.Contains(err.Error(), "../evil") {
		t.Errorf("error %q should include the rejected name", err)
	}
}
