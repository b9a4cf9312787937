package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LockFile pins resolved dependencies in .nrl/lock.toml.
type LockFile struct {
	Deps []LockedDep `toml:"deps"`
}

// LockedDep is one pinned dependency.
type LockedDep struct {
	Name   string `toml:"name"`
	Git    string `toml:"git,omitempty"`
	Tag    string `toml:"tag,omitempty"`
	Commit string `toml:"commit,omitempty"`
	Path   string `toml:"path,omitempty"`
}

// FindLockedDep returns the pinned entry for name, or nil.
func (l *LockFile) FindLockedDep(name string) *LockedDep {
	for i := range l.Deps {
		if l.Deps[i].Name == name {
			return &l.Deps[i]
		}
	}
	return nil
}

// ReadLock loads a lock file. A missing file yields an empty lock.
func ReadLock(path string) (*LockFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LockFile{}, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var l LockFile
	if err := toml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return &l, nil
}

// WriteLock writes the lock file.
func WriteLock(path string, l *LockFile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(l); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
