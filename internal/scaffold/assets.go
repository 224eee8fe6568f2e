// Package scaffold installs the spec-driven workflow into a project:
// the .claude directory tree, the workflow slash commands, the document
// templates, the workflow config file, and the CLAUDE.md section.
package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assetsFS embed.FS

// commandAssets returns the embedded workflow slash-command files.
func commandAssets() (fs.FS, error) {
	return fs.Sub(assetsFS, "assets/commands")
}

// templateAssets returns the embedded document template files.
func templateAssets() (fs.FS, error) {
	return fs.Sub(assetsFS, "assets/templates")
}
