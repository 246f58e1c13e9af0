package pwaicon

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

type failingFont struct{ err error }

func (f failingFont) Name() string                { return "failing" }
func (f failingFont) Load(float64) (Face, error) { return nil, f.err }

// dejaVu returns the DejaVu Sans Bold path or skips the test.
func dejaVu(t *testing.T) string {
	t.Helper()
	if _, err := os.Stat(DejaVuSansBold); err != nil {
		t.Skipf("%s not available on this system", DejaVuSansBold)
	}
	return DejaVuSansBold
}

func TestResolveFallsThrough(t *testing.T) {
	chain := FontChain{
		failingFont{errors.New("boom")},
		FileFont(filepath.Join(t.TempDir(), "missing.ttf")),
		BuiltinFont(),
	}
	face := chain.Resolve(48)
	if _, ok := face.(bitmapFace); !ok {
		t.Errorf("Resolve returned %T, want bitmapFace", face)
	}
}

func TestResolveIsTotal(t *testing.T) {
	tests := []struct {
		name  string
		chain FontChain
	}{
		{"nil", nil},
		{"empty", FontChain{}},
		{"all failing", FontChain{failingFont{errors.New("a")}, failingFont{errors.New("b")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face := tt.chain.Resolve(48)
			if face == nil {
				t.Fatal("Resolve returned nil")
			}
			if face.Bounds(DefaultLabel).Empty() {
				t.Error("fallback face has empty bounds for the label")
			}
		})
	}
}

func TestResolveFirstWins(t *testing.T) {
	path := dejaVu(t)

	face := FontChain{FileFont(path), BuiltinFont()}.Resolve(48)
	if _, ok := face.(*scalableFace); !ok {
		t.Fatalf("Resolve returned %T, want *scalableFace", face)
	}
	if face.Name() == "" {
		t.Error("scalable face has no name")
	}
}

func TestFileFontErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("definitely not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := FileFont(filepath.Join(dir, "missing.ttf")).Load(12); !errors.Is(err, errFontNotFound) {
		t.Errorf("missing file: err = %v, want errFontNotFound", err)
	}
	if _, err := FileFont(garbage).Load(12); err == nil {
		t.Error("garbage file: expected parse error")
	}
	if _, err := FileFont(dir).Load(12); err == nil {
		t.Error("directory: expected error")
	}
}

func TestFileFontRejectsZeroSize(t *testing.T) {
	path := dejaVu(t)
	if _, err := FileFont(path).Load(0); err == nil {
		t.Error("expected error for zero point size")
	}
}

func TestSystemFontSearchesDirs(t *testing.T) {
	empty := systemFont{names: []string{"arialbd.ttf"}, dirs: func() []string { return []string{t.TempDir()} }}
	if _, err := empty.Load(12); !errors.Is(err, errFontNotFound) {
		t.Errorf("err = %v, want errFontNotFound", err)
	}

	path := dejaVu(t)
	found := systemFont{
		names: []string{"arialbd.ttf", filepath.Base(path)},
		dirs:  func() []string { return []string{filepath.Dir(path)} },
	}
	face, err := found.Load(24)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if face.Bounds("M3").Empty() {
		t.Error("empty bounds for M3")
	}
}

func TestBitmapFaceBounds(t *testing.T) {
	b := bitmapFace{}.Bounds("M3")
	// 6 pixel wide cells on a 7 pixel advance, 11 above and 2 below the baseline.
	want := image.Rect(0, -11, 13, 2)
	if b != want {
		t.Errorf("Bounds(M3) = %v, want %v", b, want)
	}
	if !(bitmapFace{}).Bounds("").Empty() {
		t.Error("empty label should have empty bounds")
	}
}

func TestBitmapFaceIgnoresSize(t *testing.T) {
	small, _ := BuiltinFont().Load(4)
	large, _ := BuiltinFont().Load(400)
	if small.Bounds("M3") != large.Bounds("M3") {
		t.Error("built-in face should have a fixed size")
	}
}

func TestScalableFaceBoundsMatchInk(t *testing.T) {
	face, err := FileFont(dejaVu(t)).Load(48)
	if err != nil {
		t.Fatal(err)
	}
	ink := face.Bounds("M3")
	if ink.Min.Y >= 0 || ink.Max.Y > 2 {
		t.Errorf("ink box %v should sit on the baseline", ink)
	}

	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	origin := image.Pt(10, 60)
	face.Draw(img, "M3", origin, color.White)

	drawn := image.Rectangle{}
	for y := 0; y < 80; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y).A > 0x80 {
				drawn = drawn.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	box := ink.Add(origin)
	if !drawn.In(box.Inset(-1)) {
		t.Errorf("drawn pixels %v escape ink box %v", drawn, box)
	}
	if drawn.Dx() < box.Dx()-2 || drawn.Dy() < box.Dy()-2 {
		t.Errorf("drawn pixels %v much smaller than ink box %v", drawn, box)
	}
}

func TestDefaultFontChainOrder(t *testing.T) {
	chain := DefaultFontChain("/tmp/a.ttf", "/tmp/b.ttf")
	if len(chain) != 5 {
		t.Fatalf("len(chain) = %d, want 5", len(chain))
	}
	names := []string{"file:/tmp/a.ttf", "file:/tmp/b.ttf", "", "file:" + DejaVuSansBold, "builtin:7x13"}
	for i, want := range names {
		if want == "" {
			if _, ok := chain[i].(systemFont); !ok {
				t.Errorf("chain[%d] = %T, want systemFont", i, chain[i])
			}
			continue
		}
		if got := chain[i].Name(); got != want {
			t.Errorf("chain[%d].Name() = %q, want %q", i, got, want)
		}
	}
}
