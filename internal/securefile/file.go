// Package securefile writes generated files atomically and resolves config
// file locations.
package securefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// AtomicWriteFile writes data to a temp file next to path and renames it into
// place, creating the parent directory first.
func AtomicWriteFile(fsys afero.Fs, path string, data []byte, filePerm, dirPerm os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	tmp := path + ".tmp"

	// Best effort cleanup if something already exists.
	_ = fsys.Remove(tmp)

	if err := afero.WriteFile(fsys, tmp, data, filePerm); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// ConfigPathCandidates returns directories to search for the config file, in
// priority order. envVar optionally selects a subfolder (local/ or develop/).
func ConfigPathCandidates(app, envVar string) ([]string, error) {
	if app == "" {
		return nil, errors.New("app must not be empty")
	}

	envFolder, err := EnvFolder(envVar)
	if err != nil {
		return nil, err
	}

	var paths []string
	seen := map[string]bool{}
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}
	withEnv := func(dir string) string {
		if envFolder != "" {
			return filepath.Join(dir, envFolder)
		}
		return dir
	}

	// <home>/.config/<app>/<env?>
	if home := os.Getenv("HOME"); home != "" {
		add(withEnv(filepath.Join(home, ".config", app)))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		add(withEnv(filepath.Join(dir, app)))
	}
	add(".")

	return paths, nil
}

// EnvFolder maps the value of envVar to a config subfolder. Empty and prod
// values map to no subfolder.
func EnvFolder(envVar string) (string, error) {
	raw := strings.TrimSpace(os.Getenv(envVar))
	switch strings.ToLower(raw) {
	case "", "prod", "production":
		return "", nil
	case "local":
		return "local", nil
	case "dev", "develop", "development":
		return "develop", nil
	default:
		return "", fmt.Errorf("invalid %s %q (allowed: local, develop, prod, empty)", envVar, raw)
	}
}
