package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScaffoldWritesManifestAndStub(t *testing.T) {
	dir := t.TempDir()
	project := filepath.Join(dir, "hello")

	if err := scaffold(project, "hello"); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	manifestPath := filepath.Join(project, "zoid.toml")
	if _, err := os.Stat(manifestPath); err != nil {
		t.Fatalf("expected %s to exist: %v", manifestPath, err)
	}

	entryPath := filepath.Join(project, "main.zoid")
	content, err := os.ReadFile(entryPath)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", entryPath, err)
	}
	if string(content) != stubSource {
		t.Fatalf("expected stub source, got %q", content)
	}
}

func TestScaffoldDoesNotOverwriteExistingEntry(t *testing.T) {
	dir := t.TempDir()
	if err := scaffold(dir, "hello"); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	custom := "fn main(): i32 { return 7; }\n"
	entryPath := filepath.Join(dir, "main.zoid")
	if err := os.WriteFile(entryPath, []byte(custom), 0o644); err != nil {
		t.Fatalf("writing custom entry: %v", err)
	}

	if err := scaffold(dir, "hello"); err != nil {
		t.Fatalf("second scaffold: %v", err)
	}

	content, err := os.ReadFile(entryPath)
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	if string(content) != custom {
		t.Fatalf("expected custom entry to survive re-scaffolding, got %q", content)
	}
}
