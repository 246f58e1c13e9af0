package pwaicon

import "fmt"

// Spec describes one icon to generate.
type Spec struct {
	// Size is the side of the square icon in pixels.
	Size int
	// Filename is where the PNG is written, relative to the output directory.
	Filename string
}

// DefaultSpecs are the icons referenced by the MacThree web manifest,
// in generation order.
var DefaultSpecs = []Spec{
	{Size: 192, Filename: "icon-192.png"},
	{Size: 512, Filename: "icon-512.png"},
}

// Validate reports whether the spec can be rendered.
func (s Spec) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, s.Size)
	}
	if s.Filename == "" {
		return ErrEmptyFilename
	}
	return nil
}

// Dimensions returns the "<n>x<n>" form used in messages and manifests.
func (s Spec) Dimensions() string {
	return fmt.Sprintf("%dx%d", s.Size, s.Size)
}

// Layout is the integer geometry of an icon of a given size.
type Layout struct {
	Size     int
	Border   int // inset of the outline's outer edge
	Stroke   int // outline thickness, 0 means no outline
	FontSize int // label size in points
}

// LayoutFor computes the geometry for an icon of side size.
func LayoutFor(size int) Layout {
	border := size / 10
	return Layout{
		Size:     size,
		Border:   border,
		Stroke:   border / 2,
		FontSize: size / 4,
	}
}

// LabelPosition returns the top-left corner that centers a box of the
// given dimensions inside the icon.
func (l Layout) LabelPosition(w, h int) (x, y int) {
	return (l.Size - w) / 2, (l.Size - h) / 2
}
