package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstallerRun(t *testing.T) {
	root := t.TempDir()

	if err := NewInstaller(root, "1.0.0", nil).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, rel := range []string{
		".claude/commands/spec-create.md",
		".claude/commands/spec-requirements.md",
		".claude/commands/spec-design.md",
		".claude/commands/spec-tasks.md",
		".claude/commands/spec-execute.md",
		".claude/commands/spec-status.md",
		".claude/commands/spec-list.md",
		".claude/templates/requirements-template.md",
		".claude/templates/design-template.md",
		".claude/templates/tasks-template.md",
		".claude/spec-config.json",
		"CLAUDE.md",
	} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	if _, err := os.Stat(filepath.Join(root, ".claude", "specs")); err != nil {
		t.Errorf("expected specs directory: %v", err)
	}
}

func TestIsInstalled(t *testing.T) {
	root := t.TempDir()
	if IsInstalled(root) {
		t.Errorf("fresh directory should not be installed")
	}

	if err := NewInstaller(root, "1.0.0", nil).Run(); err != nil {
		t.Fatal(err)
	}
	if !IsInstalled(root) {
		t.Errorf("expected IsInstalled after setup")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	root := t.TempDir()
	os.MkdirAll(filepath.Join(root, ".claude"), 0755)

	want := DefaultConfig("2.3.4")
	if err := WriteConfig(root, want); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	got, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Errorf("config round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestMergeClaudeMDCreates(t *testing.T) {
	root := t.TempDir()

	if err := MergeClaudeMD(root); err != nil {
		t.Fatalf("MergeClaudeMD: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "CLAUDE.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Spec-Driven Workflow") {
		t.Errorf("expected workflow section in created CLAUDE.md")
	}
}

func TestMergeClaudeMDAppendsToExisting(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "CLAUDE.md")
	os.WriteFile(path, []byte("# Project Rules\n\nKeep these.\n"), 0644)

	if err := MergeClaudeMD(root); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	content := string(data)
	if !strings.Contains(content, "# Project Rules") {
		t.Errorf("existing content should be preserved")
	}
	if !strings.Contains(content, "Spec-Driven Workflow") {
		t.Errorf("workflow section should be appended")
	}
}

func TestMergeClaudeMDReplacesSection(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "CLAUDE.md")

	stale := "before\n\n" + sectionBegin + "\nstale workflow text\n" + sectionEnd + "\nafter\n"
	os.WriteFile(path, []byte(stale), 0644)

	if err := MergeClaudeMD(root); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	content := string(data)
	if strings.Contains(content, "stale workflow text") {
		t.Errorf("stale section should be replaced")
	}
	if !strings.Contains(content, "before") || !strings.Contains(content, "after") {
		t.Errorf("content outside the markers should be preserved")
	}
	if strings.Count(content, sectionBegin) != 1 {
		t.Errorf("expected exactly one workflow section")
	}
}

func TestInstallerRunIdempotent(t *testing.T) {
	root := t.TempDir()

	if err := NewInstaller(root, "1.0.0", nil).Run(); err != nil {
		t.Fatal(err)
	}
	if err := NewInstaller(root, "1.0.0", nil).Run(); err != nil {
		t.Fatalf("second Run should succeed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(root, "CLAUDE.md"))
	if strings.Count(string(data), "Spec-Driven Workflow") != 1 {
		t.Errorf("repeated setup should not duplicate the CLAUDE.md section")
	}
}
