// Package manifest handles nrl.toml extension package configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest represents an nrl.toml extension package configuration.
type Manifest struct {
	Extension    Extension             `toml:"extension"`
	Exports      []Export              `toml:"exports"`
	Dependencies map[string]Dependency `toml:"dependencies"`

	// Dir is the directory containing the nrl.toml file (set at load time).
	Dir string `toml:"-"`
}

// Extension contains package metadata.
type Extension struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Description string   `toml:"description"`
	Entry       string   `toml:"entry"`
	Authors     []string `toml:"authors"`
	License     string   `toml:"license"`
	Repository  string   `toml:"repository"`
}

// Export is one function the package exposes to the resolver.
type Export struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Inputs      []string `toml:"inputs"`
	Output      string   `toml:"output"`
	Label       string   `toml:"label"`
}

// Dependency represents a single package dependency.
type Dependency struct {
	Git  string `toml:"git"`
	Tag  string `toml:"tag"`
	Path string `toml:"path"`
}

// paramTypes are the parameter types an export may declare.
var paramTypes = map[string]bool{
	"int":    true,
	"float":  true,
	"string": true,
	"buffer": true,
	"bool":   true,
}

// Load parses an nrl.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "nrl.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Extension.Entry == "" {
		m.Extension.Entry = "main.asm"
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find an nrl.toml file, then
// loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "nrl.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Validate checks package and export names and export signatures.
func (m *Manifest) Validate() error {
	if m.Extension.Name == "" {
		return fmt.Errorf("extension name is required")
	}
	if !IsValidName(m.Extension.Name) {
		return fmt.Errorf("invalid extension name %q", m.Extension.Name)
	}

	seen := make(map[string]bool)
	for _, e := range m.Exports {
		if !IsValidName(e.Name) {
			return fmt.Errorf("invalid export name %q", e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate export %q", e.Name)
		}
		seen[e.Name] = true

		for _, in := range e.Inputs {
			if !paramTypes[strings.TrimPrefix(in, "[]")] {
				return fmt.Errorf("export %q: unknown input type %q", e.Name, in)
			}
		}
		if e.Output != "" && !paramTypes[strings.TrimPrefix(e.Output, "[]")] {
			return fmt.Errorf("export %q: unknown output type %q", e.Name, e.Output)
		}
	}
	return nil
}

// ImportPath returns the canonical import path for this package:
// repository@version when a repository is set, local/<name> otherwise.
func (m *Manifest) ImportPath() string {
	if m.Extension.Repository != "" {
		repo := m.Extension.Repository
		for _, prefix := range []string{"https://", "http://", "git://"} {
			if strings.HasPrefix(repo, prefix) {
				repo = repo[len(prefix):]
				break
			}
		}
		return repo + "@" + m.Extension.Version
	}
	return "local/" + m.Extension.Name
}

// EntryPath returns the absolute path of the entry source file.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Dir, m.Extension.Entry)
}

// DepsDir returns the path to the .nrl/deps directory.
func (m *Manifest) DepsDir() string {
	return filepath.Join(m.Dir, ".nrl", "deps")
}

// LockFilePath returns the path to .nrl/lock.toml.
func (m *Manifest) LockFilePath() string {
	return filepath.Join(m.Dir, ".nrl", "lock.toml")
}
