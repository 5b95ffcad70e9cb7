// Package assets provides the CSS styles used by the HTML preview.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader ships the built-in styles (default, minimal). Both are tuned
// for Japanese body text: a CJK-first font stack, wider line height and no
// justification stretching between ideographs.
//
// AssetResolver tries the custom FilesystemLoader first and falls back to the
// embedded styles when the name is not found on disk. A custom directory can
// therefore override a single style while keeping the others.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
