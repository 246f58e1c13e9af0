package pwaicon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
)

// BackendOpener acquires the drawing backend. OpenBackend is the default;
// tests substitute their own.
type BackendOpener func() (*Backend, error)

// Backend is a handle to the gg drawing library, acquired once by
// OpenBackend and shared by every Generate call.
type Backend struct {
	accelerated bool
}

const probeSize = 8

// OpenBackend checks that gg can rasterize by filling a small probe
// square and reading the pixels back. Any failure, including a panic
// inside the library, is reported as ErrMissingDependency.
func OpenBackend() (b *Backend, err error) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("%w: probe panicked: %v", ErrMissingDependency, r)
		}
	}()

	dc := gg.NewContext(probeSize, probeSize)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.Black)
	dc.SetColor(color.White)
	dc.DrawRectangle(2, 2, 4, 4)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("%w: probe fill: %v", ErrMissingDependency, err)
	}

	img := dc.Image()
	if img == nil {
		return nil, fmt.Errorf("%w: probe produced no image", ErrMissingDependency)
	}
	if r, _, _, _ := img.At(4, 4).RGBA(); r < 0x8000 {
		return nil, fmt.Errorf("%w: probe square was not rasterized", ErrMissingDependency)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		return nil, fmt.Errorf("%w: probe background was overwritten", ErrMissingDependency)
	}

	b = &Backend{accelerated: gg.Accelerator() != nil}
	Logger().Info("drawing backend ready", "accelerated", b.accelerated)
	return b, nil
}

// Accelerated reports whether gg had a GPU accelerator registered when the
// backend was opened.
func (b *Backend) Accelerated() bool {
	return b.accelerated
}

// canvas is one icon's drawing surface.
type canvas struct {
	dc   *gg.Context
	size int
}

func (b *Backend) newCanvas(size int, bg color.Color) *canvas {
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.FromColor(bg))
	return &canvas{dc: dc, size: size}
}

// strokeFrame outlines the pixel box [inset, size-inset] with a line of
// the given thickness growing inward. A zero thickness draws nothing.
func (c *canvas) strokeFrame(inset, thickness int, col color.Color) error {
	if thickness <= 0 {
		return nil
	}
	half := float64(thickness) / 2
	lo := float64(inset) + half
	hi := float64(c.size-inset+1) - half
	if hi <= lo {
		return nil
	}

	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(thickness))
	c.dc.SetLineJoin(gg.LineJoinMiter)
	c.dc.DrawRectangle(lo, lo, hi-lo, hi-lo)
	return c.dc.Stroke()
}

// snapshot copies the rendered pixels into a standalone RGBA image.
func (c *canvas) snapshot() *image.RGBA {
	src := c.dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func (c *canvas) Close() error {
	return c.dc.Close()
}
