package main

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"io/fs"
)

// static holds style.css and app.js, plus unitdata.wasm.gz and wasm_exec.js once `go generate` has run.
//
//go:embed static
var static embed.FS

func StaticAssets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic("static assets: " + err.Error())
	}
	return sub
}

// AssetHash returns a short content hash of the named asset for cache busting.
func AssetHash(assets fs.FS, name string) (string, error) {
	buf, err := fs.ReadFile(assets, name)
	if err != nil {
		return "", fmt.Errorf("hashing asset %q: %w", name, err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(buf))[:12], nil
}
