package assets

// DefaultStyle is the style used when none is configured.
const DefaultStyle = "default"

// StyleLoader loads CSS styles by name (without the .css extension).
// Implementations return ErrStyleNotFound when the style does not exist and
// ErrInvalidAssetName when the name is unsafe.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}
