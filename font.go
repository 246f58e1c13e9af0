package pwaicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/pwaicon/internal/fontdir"
)

// DejaVuSansBold is the bold sans-serif most Linux distributions ship.
const DejaVuSansBold = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

// errFontNotFound is returned by strategies whose font file is absent.
var errFontNotFound = errors.New("pwaicon: font not found")

// Face is a font ready to measure and draw a label at one size.
type Face interface {
	// Name identifies the font in logs.
	Name() string

	// Bounds returns the ink box of label relative to the baseline
	// origin, with y increasing downward.
	Bounds(label string) image.Rectangle

	// Draw renders label with its baseline origin at origin.
	Draw(dst draw.Image, label string, origin image.Point, col color.Color)
}

// FontStrategy is one way of obtaining a Face.
type FontStrategy interface {
	Name() string
	Load(size float64) (Face, error)
}

// FontChain is an ordered list of strategies; the first that loads wins.
type FontChain []FontStrategy

// DefaultFontChain returns the platform bold sans-serif, then DejaVu Sans
// Bold, then the built-in bitmap face. Extra font files are tried first,
// in the order given.
func DefaultFontChain(extra ...string) FontChain {
	chain := make(FontChain, 0, len(extra)+3)
	for _, path := range extra {
		chain = append(chain, FileFont(path))
	}
	return append(chain,
		SystemFont(fontdir.BoldSans...),
		FileFont(DejaVuSansBold),
		BuiltinFont(),
	)
}

// Resolve returns the first face the chain can load at size. It never
// fails: when every strategy errors, or the chain is empty, the built-in
// bitmap face is returned.
func (c FontChain) Resolve(size float64) Face {
	log := Logger()
	for _, s := range c {
		face, err := s.Load(size)
		if err != nil {
			log.Debug("font candidate rejected", "strategy", s.Name(), "err", err)
			continue
		}
		if _, builtin := face.(bitmapFace); builtin {
			log.Warn("no scalable font found, using built-in bitmap font", "size", size)
		} else {
			log.Info("font selected", "font", face.Name(), "size", size)
		}
		return face
	}
	log.Warn("font chain exhausted, using built-in bitmap font", "size", size)
	return bitmapFace{}
}

// FileFont loads a TrueType or OpenType font from path.
func FileFont(path string) FontStrategy {
	return fileFont{path: path}
}

type fileFont struct {
	path string
}

func (f fileFont) Name() string { return "file:" + f.path }

func (f fileFont) Load(size float64) (Face, error) {
	return loadFontFile(f.path, size)
}

// SystemFont looks names up in the platform font directories.
func SystemFont(names ...string) FontStrategy {
	return systemFont{names: names, dirs: fontdir.Dirs}
}

type systemFont struct {
	names []string
	dirs  func() []string
}

func (s systemFont) Name() string { return fmt.Sprintf("system:%v", s.names) }

func (s systemFont) Load(size float64) (Face, error) {
	path, ok := fontdir.Find(s.dirs(), s.names)
	if !ok {
		return nil, fmt.Errorf("%w: %v", errFontNotFound, s.names)
	}
	return loadFontFile(path, size)
}

// loadFontFile parses a font file with gg's text package. Loading is
// guarded against panics from malformed font data.
func loadFontFile(path string, size float64) (face Face, err error) {
	defer func() {
		if r := recover(); r != nil {
			face = nil
			err = fmt.Errorf("pwaicon: parsing %s: %v", path, r)
		}
	}()

	if size <= 0 {
		return nil, fmt.Errorf("pwaicon: font size %v", size)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errFontNotFound, path)
		}
		return nil, err
	}

	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	name := source.Name()
	if name == "" {
		name = filepath.Base(path)
	}
	return &scalableFace{source: source, face: source.Face(size), name: name}, nil
}

// scalableFace draws with gg's text renderer.
type scalableFace struct {
	source *text.FontSource
	face   text.Face
	name   string
}

func (f *scalableFace) Name() string { return f.name }

func (f *scalableFace) Bounds(label string) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for g := range f.face.Glyphs(label) {
		b := g.Bounds
		if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
			continue // blank glyph such as a space
		}
		minX = math.Min(minX, g.X+b.MinX)
		minY = math.Min(minY, g.Y+b.MinY)
		maxX = math.Max(maxX, g.X+b.MaxX)
		maxY = math.Max(maxY, g.Y+b.MaxY)
	}
	if math.IsInf(minX, 1) {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

func (f *scalableFace) Draw(dst draw.Image, label string, origin image.Point, col color.Color) {
	text.Draw(dst, label, f.face, float64(origin.X), float64(origin.Y), col)
}
