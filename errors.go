package mdfix

import (
	"errors"

	"github.com/alnah/go-mdfix/internal/assets"
	"github.com/alnah/go-mdfix/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion   = pipeline.ErrHTMLConversion
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidStyle     = errors.New("invalid style")
)
