package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specflow/specflow/internal/ui"
)

// Installer sets up the spec workflow under a project root.
type Installer struct {
	root    string
	version string
	rep     ui.Reporter
}

// NewInstaller creates an installer for the given project root. A nil
// reporter is replaced with a no-op one.
func NewInstaller(root, version string, rep ui.Reporter) *Installer {
	if rep == nil {
		rep = ui.NopReporter{}
	}
	return &Installer{root: root, version: version, rep: rep}
}

// IsInstalled reports whether the workflow appears to be set up under root.
func IsInstalled(root string) bool {
	_, err := os.Stat(filepath.Join(root, ".claude", "spec-config.json"))
	return err == nil
}

// Run performs the full setup: directories, commands, templates, config,
// and the CLAUDE.md section. Steps report through the injected reporter and
// the first failing step aborts the run.
func (in *Installer) Run() error {
	steps := []struct {
		message string
		fn      func() error
	}{
		{"Creating .claude directories", in.createDirectories},
		{"Installing workflow commands", in.installCommands},
		{"Installing document templates", in.installTemplates},
		{"Writing spec-config.json", in.writeConfig},
		{"Updating CLAUDE.md", in.mergeClaudeMD},
	}

	for _, step := range steps {
		in.rep.Start(step.message)
		if err := step.fn(); err != nil {
			in.rep.Failure(step.message)
			return err
		}
		in.rep.Success(step.message)
	}
	return nil
}

func (in *Installer) createDirectories() error {
	for _, dir := range []string{"commands", "specs", "templates"} {
		if err := os.MkdirAll(filepath.Join(in.root, ".claude", dir), 0755); err != nil {
			return fmt.Errorf("creating .claude/%s: %w", dir, err)
		}
	}
	return nil
}

func (in *Installer) installCommands() error {
	assets, err := commandAssets()
	if err != nil {
		return fmt.Errorf("loading command assets: %w", err)
	}
	return copyAssets(assets, filepath.Join(in.root, ".claude", "commands"))
}

func (in *Installer) installTemplates() error {
	assets, err := templateAssets()
	if err != nil {
		return fmt.Errorf("loading template assets: %w", err)
	}
	return copyAssets(assets, filepath.Join(in.root, ".claude", "templates"))
}

func (in *Installer) writeConfig() error {
	return WriteConfig(in.root, DefaultConfig(in.version))
}

func (in *Installer) mergeClaudeMD() error {
	return MergeClaudeMD(in.root)
}

// copyAssets writes every file in src into dst, overwriting existing files.
func copyAssets(src fs.FS, dst string) error {
	entries, err := fs.ReadDir(src, ".")
	if err != nil {
		return fmt.Errorf("reading assets: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(src, entry.Name())
		if err != nil {
			return fmt.Errorf("reading asset %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dst, entry.Name()), data, 0644); err != nil {
			return fmt.Errorf("installing %s: %w", entry.Name(), err)
		}
	}
	return nil
}
