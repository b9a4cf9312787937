package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "nrl.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[extension]
name = "string-utils"
version = "1.2.0"
description = "string helpers"
entry = "lib.asm"
authors = ["dev@example.com"]
license = "MIT"
repository = "https://github.com/example/string-utils"

[[exports]]
name = "reverse"
description = "reverse a string in place"
inputs = ["string"]
output = "string"

[[exports]]
name = "repeat"
inputs = ["string", "int"]
output = "string"
label = "do_repeat"

[dependencies]
helper = { path = "../helper" }
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Extension.Name != "string-utils" {
		t.Errorf("name = %q, want string-utils", m.Extension.Name)
	}
	if m.Extension.Version != "1.2.0" {
		t.Errorf("version = %q, want 1.2.0", m.Extension.Version)
	}
	if m.Extension.Entry != "lib.asm" {
		t.Errorf("entry = %q, want lib.asm", m.Extension.Entry)
	}
	if len(m.Exports) != 2 {
		t.Fatalf("exports count = %d, want 2", len(m.Exports))
	}
	if m.Exports[0].Name != "reverse" || len(m.Exports[0].Inputs) != 1 {
		t.Errorf("export 0 = %+v", m.Exports[0])
	}
	if m.Exports[1].Label != "do_repeat" {
		t.Errorf("export 1 label = %q, want do_repeat", m.Exports[1].Label)
	}
	if len(m.Dependencies) != 1 {
		t.Errorf("dependencies count = %d, want 1", len(m.Dependencies))
	}
	if dep, ok := m.Dependencies["helper"]; !ok || dep.Path != "../helper" {
		t.Errorf("helper dep = %v, want path ../helper", m.Dependencies["helper"])
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[extension]
name = "minimal"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Extension.Entry != "main.asm" {
		t.Errorf("default entry = %q, want main.asm", m.Extension.Entry)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"missing name", "[extension]\nversion = \"1.0.0\"\n"},
		{"bad name", "[extension]\nname = \"Bad Name\"\n"},
		{"bad export name", `
[extension]
name = "ok"
[[exports]]
name = "Not-OK"
`},
		{"duplicate export", `
[extension]
name = "ok"
[[exports]]
name = "f"
[[exports]]
name = "f"
`},
		{"unknown input type", `
[extension]
name = "ok"
[[exports]]
name = "f"
inputs = ["complex"]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tt.toml)
			if _, err := Load(dir); err == nil {
				t.Error("Load succeeded, want validation error")
			}
		})
	}
}

func TestFindAndLoad(t *testing.T) {
	dir := t.TempDir()
	subDir := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeManifest(t, dir, "[extension]\nname = \"found\"\n")

	m, err := FindAndLoad(subDir)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil")
	}
	if m.Extension.Name != "found" {
		t.Errorf("name = %q, want found", m.Extension.Name)
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	dir := t.TempDir()
	m, err := FindAndLoad(dir)
	if err != nil {
		t.Fatalf("FindAndLoad error: %v", err)
	}
	if m != nil {
		t.Error("expected nil manifest when no nrl.toml exists")
	}
}

func TestImportPath(t *testing.T) {
	tests := []struct {
		repo    string
		version string
		name    string
		want    string
	}{
		{"https://github.com/example/lib", "1.0.0", "lib", "github.com/example/lib@1.0.0"},
		{"git://host/lib", "2.0.0", "lib", "host/lib@2.0.0"},
		{"", "1.0.0", "local-lib", "local/local-lib"},
	}

	for _, tt := range tests {
		m := &Manifest{Extension: Extension{
			Name: tt.name, Version: tt.version, Repository: tt.repo,
		}}
		if got := m.ImportPath(); got != tt.want {
			t.Errorf("ImportPath(%q) = %q, want %q", tt.repo, got, tt.want)
		}
	}
}

func TestLockFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	lockPath := filepath.Join(dir, "lock.toml")

	lf := &LockFile{
		Deps: []LockedDep{
			{Name: "mathlib", Git: "https://github.com/example/mathlib", Commit: "abc123", Tag: "v0.5.0"},
			{Name: "helper", Path: "../helper"},
		},
	}

	if err := WriteLock(lockPath, lf); err != nil {
		t.Fatalf("WriteLock failed: %v", err)
	}

	loaded, err := ReadLock(lockPath)
	if err != nil {
		t.Fatalf("ReadLock failed: %v", err)
	}

	if len(loaded.Deps) != 2 {
		t.Fatalf("expected 2 deps, got %d", len(loaded.Deps))
	}
	if loaded.Deps[0].Commit != "abc123" {
		t.Errorf("dep[0].Commit = %q, want abc123", loaded.Deps[0].Commit)
	}

	found := loaded.FindLockedDep("helper")
	if found == nil || found.Path != "../helper" {
		t.Errorf("FindLockedDep(helper) = %v, want path ../helper", found)
	}
	if loaded.FindLockedDep("nonexistent") != nil {
		t.Error("FindLockedDep(nonexistent) should be nil")
	}
}

func TestReadLockMissing(t *testing.T) {
	lf, err := ReadLock("/nonexistent/path/lock.toml")
	if err != nil {
		t.Fatalf("ReadLock error for missing file: %v", err)
	}
	if lf == nil || len(lf.Deps) != 0 {
		t.Errorf("ReadLock for missing file = %v, want empty lock", lf)
	}
}

func TestNames(t *testing.T) {
	valid := []string{"lib", "string-utils", "my_ext2"}
	for _, s := range valid {
		if !IsValidName(s) {
			t.Errorf("IsValidName(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "2lib", "Lib", "has space", "-lead"}
	for _, s := range invalid {
		if IsValidName(s) {
			t.Errorf("IsValidName(%q) = true, want false", s)
		}
	}

	snake := map[string]string{
		"my-ext": "my_ext",
		"MyExt":  "my_ext",
		"parse":  "parse",
	}
	for in, want := range snake {
		if got := ToSnakeCase(in); got != want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
