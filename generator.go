package pwaicon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/pwaicon/internal/fsutil"
)

// DefaultLabel is the text drawn in the middle of every icon.
const DefaultLabel = "M3"

// Generator renders icons with a shared backend. A Generator is not safe
// for concurrent use.
type Generator struct {
	backend *Backend
	label   string
	dir     string
	fonts   FontChain
	fg, bg  color.Color
	out     io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithLabel sets the label text.
func WithLabel(label string) Option {
	return func(g *Generator) { g.label = label }
}

// WithDir sets the directory icon filenames are resolved against.
func WithDir(dir string) Option {
	return func(g *Generator) { g.dir = dir }
}

// WithFonts replaces the font chain.
func WithFonts(chain FontChain) Option {
	return func(g *Generator) { g.fonts = chain }
}

// WithColors sets the foreground (outline and label) and background colors.
func WithColors(fg, bg color.Color) Option {
	return func(g *Generator) { g.fg, g.bg = fg, bg }
}

// WithOutput sets where confirmation lines are printed. Nil discards them.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		if w == nil {
			w = io.Discard
		}
		g.out = w
	}
}

// NewGenerator creates a generator drawing "M3" in white on black into the
// current directory, reporting to stdout.
func NewGenerator(b *Backend, opts ...Option) *Generator {
	g := &Generator{
		backend: b,
		label:   DefaultLabel,
		fonts:   DefaultFontChain(),
		fg:      color.White,
		bg:      color.Black,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Placement records where the label ended up.
type Placement struct {
	Font     string
	Ink      image.Rectangle // ink box relative to the baseline origin
	Position image.Point     // top-left of the ink box in the icon
	Origin   image.Point     // baseline origin passed to the face
}

// Box returns the label's ink box in icon coordinates.
func (p Placement) Box() image.Rectangle {
	return image.Rectangle{Min: p.Position, Max: p.Position.Add(p.Ink.Size())}
}

// Result describes a written icon.
type Result struct {
	Spec Spec
	Path string
	Font string
}

// Render draws the icon for spec in memory.
func (g *Generator) Render(spec Spec) (*image.RGBA, Placement, error) {
	if err := spec.Validate(); err != nil {
		return nil, Placement{}, err
	}
	layout := LayoutFor(spec.Size)

	c := g.backend.newCanvas(spec.Size, g.bg)
	defer func() { _ = c.Close() }()

	if err := c.strokeFrame(layout.Border, layout.Stroke, g.fg); err != nil {
		return nil, Placement{}, fmt.Errorf("pwaicon: stroking frame: %w", err)
	}
	img := c.snapshot()

	face := g.fonts.Resolve(float64(layout.FontSize))
	ink := face.Bounds(g.label)
	x, y := layout.LabelPosition(ink.Dx(), ink.Dy())
	p := Placement{
		Font:     face.Name(),
		Ink:      ink,
		Position: image.Pt(x, y),
		Origin:   image.Pt(x, y).Sub(ink.Min),
	}
	face.Draw(img, g.label, p.Origin, g.fg)

	Logger().Debug("label placed",
		"size", spec.Size,
		"font", p.Font,
		"ink", p.Ink.String(),
		"position", p.Position.String(),
	)
	return img, p, nil
}

// Encode renders spec and writes it to w as PNG.
func (g *Generator) Encode(w io.Writer, spec Spec) (Placement, error) {
	img, p, err := g.Render(spec)
	if err != nil {
		return Placement{}, err
	}
	if err := png.Encode(w, img); err != nil {
		return Placement{}, fmt.Errorf("pwaicon: encoding %s: %w", spec.Filename, err)
	}
	return p, nil
}

// Path returns where spec is written.
func (g *Generator) Path(spec Spec) string {
	if g.dir == "" || filepath.IsAbs(spec.Filename) {
		return spec.Filename
	}
	return filepath.Join(g.dir, spec.Filename)
}

// Generate renders spec, writes it over any existing file and prints a
// confirmation line.
func (g *Generator) Generate(spec Spec) (Result, error) {
	var buf bytes.Buffer
	p, err := g.Encode(&buf, spec)
	if err != nil {
		return Result{}, err
	}

	path := g.Path(spec)
	if err := fsutil.AtomicWrite(path, buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("pwaicon: writing %s: %w", path, err)
	}
	Logger().Info("icon written", "path", path, "bytes", buf.Len(), "font", p.Font)

	fmt.Fprintf(g.out, "✓ Created icon: %s (%s)\n", spec.Filename, spec.Dimensions())
	return Result{Spec: spec, Path: path, Font: p.Font}, nil
}
