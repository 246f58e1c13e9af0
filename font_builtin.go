package pwaicon

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BuiltinFont returns the 7x13 bitmap face compiled into the binary. It
// has a single fixed size, ignores the requested one and never fails.
func BuiltinFont() FontStrategy {
	return builtinFont{}
}

type builtinFont struct{}

func (builtinFont) Name() string { return "builtin:7x13" }

func (builtinFont) Load(float64) (Face, error) {
	return bitmapFace{}, nil
}

type bitmapFace struct{}

func (bitmapFace) Name() string { return "basicfont 7x13" }

func (bitmapFace) Bounds(label string) image.Rectangle {
	b, _ := font.BoundString(basicfont.Face7x13, label)
	return image.Rect(
		b.Min.X.Floor(), b.Min.Y.Floor(),
		b.Max.X.Ceil(), b.Max.Y.Ceil(),
	)
}

func (bitmapFace) Draw(dst draw.Image, label string, origin image.Point, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(label)
}
