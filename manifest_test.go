package pwaicon

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestManifestIcons(t *testing.T) {
	icons := ManifestIcons(DefaultSpecs)
	want := []ManifestIcon{
		{Src: "icon-192.png", Sizes: "192x192", Type: "image/png"},
		{Src: "icon-512.png", Sizes: "512x512", Type: "image/png"},
	}
	if len(icons) != len(want) {
		t.Fatalf("len = %d, want %d", len(icons), len(want))
	}
	for i := range want {
		if icons[i] != want[i] {
			t.Errorf("icons[%d] = %+v, want %+v", i, icons[i], want[i])
		}
	}
}

func TestManifestIconsSlashes(t *testing.T) {
	spec := Spec{Size: 64, Filename: filepath.Join("icons", "small.png")}
	if got := ManifestIcons([]Spec{spec})[0].Src; got != "icons/small.png" {
		t.Errorf("Src = %q, want icons/small.png", got)
	}
}

func TestMarshalManifest(t *testing.T) {
	data, err := MarshalManifest(DefaultSpecs[:1])
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "icons": [
    {
      "src": "icon-192.png",
      "sizes": "192x192",
      "type": "image/png"
    }
  ]
}
`
	if string(data) != want {
		t.Errorf("MarshalManifest =\n%s\nwant\n%s", data, want)
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web", "manifest-icons.json")
	if err := WriteManifest(path, DefaultSpecs); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(m.Icons) != 2 || m.Icons[1].Sizes != "512x512" {
		t.Errorf("manifest = %+v", m)
	}
}
