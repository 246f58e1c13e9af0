package pwaicon

import (
	"fmt"
	"io"
	"path/filepath"
)

// Config holds the driver settings. The zero value reproduces the default
// behavior: "M3" icons in the current directory, no manifest.
type Config struct {
	Dir      string   // output directory
	Label    string   // label text, DefaultLabel when empty
	Fonts    []string // extra font files tried before the default chain
	Manifest string   // manifest fragment path, relative to Dir; empty skips it
}

// Run acquires the drawing backend, then generates DefaultSpecs in order,
// writing status lines to w. When the backend cannot be opened nothing is
// written and the error wraps ErrMissingDependency.
func Run(w io.Writer, open BackendOpener, cfg Config) ([]Result, error) {
	if open == nil {
		open = OpenBackend
	}
	backend, err := open()
	if err != nil {
		return nil, err
	}

	label := cfg.Label
	if label == "" {
		label = DefaultLabel
	}
	gen := NewGenerator(backend,
		WithDir(cfg.Dir),
		WithLabel(label),
		WithFonts(DefaultFontChain(cfg.Fonts...)),
		WithOutput(w),
	)

	fmt.Fprintln(w, "Creating icons for MacThree PWA...")
	results := make([]Result, 0, len(DefaultSpecs))
	for _, spec := range DefaultSpecs {
		res, err := gen.Generate(spec)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	if cfg.Manifest != "" {
		path := cfg.Manifest
		if cfg.Dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Dir, path)
		}
		if err := WriteManifest(path, DefaultSpecs); err != nil {
			return results, err
		}
		fmt.Fprintf(w, "✓ Wrote manifest icons: %s\n", cfg.Manifest)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done! Icons created.")
	fmt.Fprintln(w, "Reload the page in the browser to pick them up.")
	return results, nil
}
