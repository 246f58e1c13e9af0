package pwaicon

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/gogpu/pwaicon/internal/fsutil"
)

// ManifestIcon is one entry of a web app manifest's "icons" member.
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// Manifest is the fragment of manifest.json that lists the icons.
type Manifest struct {
	Icons []ManifestIcon `json:"icons"`
}

// ManifestIcons returns manifest entries for specs, in order. Sources use
// forward slashes as manifests hold URLs, not file paths.
func ManifestIcons(specs []Spec) []ManifestIcon {
	icons := make([]ManifestIcon, 0, len(specs))
	for _, s := range specs {
		icons = append(icons, ManifestIcon{
			Src:   filepath.ToSlash(s.Filename),
			Sizes: s.Dimensions(),
			Type:  "image/png",
		})
	}
	return icons
}

// MarshalManifest renders the icons fragment with two-space indentation.
func MarshalManifest(specs []Spec) ([]byte, error) {
	data, err := json.MarshalIndent(Manifest{Icons: ManifestIcons(specs)}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteManifest writes the icons fragment for specs to path.
func WriteManifest(path string, specs []Spec) error {
	data, err := MarshalManifest(specs)
	if err != nil {
		return fmt.Errorf("pwaicon: encoding manifest: %w", err)
	}
	if err := fsutil.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("pwaicon: writing %s: %w", path, err)
	}
	Logger().Info("manifest written", "path", path, "icons", len(specs))
	return nil
}
