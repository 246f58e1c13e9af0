package pwaicon

import "errors"

// Sentinel errors for pwaicon.
var (
	// ErrMissingDependency is returned by OpenBackend when the drawing
	// library cannot render.
	ErrMissingDependency = errors.New("pwaicon: drawing library is not available")

	// ErrInvalidSize is returned for icon sizes that are not positive.
	ErrInvalidSize = errors.New("pwaicon: icon size must be positive")

	// ErrEmptyFilename is returned for a spec without an output filename.
	ErrEmptyFilename = errors.New("pwaicon: empty icon filename")
)

// InstallHint is the instruction printed when ErrMissingDependency is hit.
const InstallHint = "Install it with: go get github.com/gogpu/gg"
