// Command pwaicon writes icon-192.png and icon-512.png, the installable-app
// icons of the MacThree web application, to the current directory.
//
// Usage:
//
//	pwaicon [--dir DIR] [--label TEXT] [--font FILE]... [--manifest FILE]
//
// With no flags it reproduces the stock icons: a white outline and "M3"
// centered on black.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	os.Exit(0)
}
