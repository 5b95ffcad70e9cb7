package assets

import "errors"

// AssetResolver combines custom and embedded loaders.
// When a custom loader is configured it is tried first, and the embedded
// loader serves any style the custom directory does not have.
type AssetResolver struct {
	custom   StyleLoader // nil if no custom path configured
	embedded StyleLoader
}

// NewAssetResolver creates an AssetResolver.
// An empty customBasePath means embedded styles only.
// Returns ErrInvalidBasePath if customBasePath is set but unusable.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a CSS style, trying the custom loader first if available.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found", not validation or I/O errors.
	if !isNotFoundError(err) {
		return "", err
	}

	return r.embedded.LoadStyle(name)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound)
}

// HasCustomLoader returns true if a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ StyleLoader = (*AssetResolver)(nil)
