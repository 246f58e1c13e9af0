// Package pwaicon renders the installable-app icons for the MacThree web
// application.
//
// # Overview
//
// Each icon is a black square with a white rectangular outline inset from
// the edges and the label "M3" centered in white. Icons are rendered with
// the gg 2D graphics library and written as opaque PNG files.
//
// # Quick Start
//
//	backend, err := pwaicon.OpenBackend()
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, pwaicon.ErrMissingDependency)
//	}
//
//	gen := pwaicon.NewGenerator(backend)
//	for _, spec := range pwaicon.DefaultSpecs {
//	    if _, err := gen.Generate(spec); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Geometry
//
// For an icon of side n (integer division throughout):
//   - border inset: n/10
//   - outline thickness: n/10/2, growing inward from the inset
//   - label point size: n/4
//   - label ink box top-left: ((n-w)/2, (n-h)/2)
//
// # Fonts
//
// The label font comes from a [FontChain]: an ordered list of strategies
// tried in sequence. The default chain prefers a platform bold sans-serif,
// then DejaVu Sans Bold, and always ends with a built-in 7x13 bitmap face,
// so resolution never fails.
package pwaicon
