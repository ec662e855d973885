// Package config resolves the installation root and the presets directory.
//
// Both paths are resolved once at startup from, in priority order, a command
// line override, an environment variable, the persisted global config file and
// a built-in default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ports/rampage/internal/fsutil"
)

// Environment variables consulted by Resolve.
const (
	EnvRoot    = "RAMPAGE_ROOT"
	EnvPresets = "RAMPAGE_PRESETS_PATH"
)

// Keys of the global config file.
const (
	KeyRoot    = "root"
	KeyPresets = "presets_path"
)

// Resolution sources reported in Paths.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceConfig  = "config"
	SourceDefault = "default"
)

// ErrUnknownKey is returned by SetPersisted and ClearPersisted for keys other
// than KeyRoot and KeyPresets.
var ErrUnknownKey = errors.New("unknown config key")

// ---------------------------------------------------------------------------
// Paths
// ---------------------------------------------------------------------------

// Overrides carries values that take precedence over the environment,
// typically command line flags. Empty fields are ignored.
type Overrides struct {
	Root    string
	Presets string
}

// Paths is the resolved startup configuration.
type Paths struct {
	Root          string `yaml:"root"`
	RootSource    string `yaml:"root_source"`
	Presets       string `yaml:"presets_path"`
	PresetsSource string `yaml:"presets_path_source"`
}

// LogDir returns the directory the log file is written to.
func (p Paths) LogDir() string {
	return filepath.Join(p.Root, "logs")
}

// Resolve returns the root and presets paths.
// Root: override → RAMPAGE_ROOT → persisted root → ~/.rampage.
// Presets: override → RAMPAGE_PRESETS_PATH → persisted presets_path → <root>/presets.
func Resolve(o Overrides) Paths {
	persisted, _ := readGlobal()

	var p Paths
	p.Root, p.RootSource = resolveOne(o.Root, EnvRoot, persisted[KeyRoot])
	if p.Root == "" {
		home, _ := os.UserHomeDir()
		p.Root, p.RootSource = filepath.Join(home, ".rampage"), SourceDefault
	}

	p.Presets, p.PresetsSource = resolveOne(o.Presets, EnvPresets, persisted[KeyPresets])
	if p.Presets == "" {
		p.Presets, p.PresetsSource = filepath.Join(p.Root, "presets"), SourceDefault
	}
	return p
}

// resolveOne applies override → env → persisted. Values that fail to
// normalise fall through to the next source.
func resolveOne(override, env string, persisted any) (path, source string) {
	if override != "" {
		if p, err := normalizePath(override); err == nil {
			return p, SourceFlag
		}
	}
	if v := os.Getenv(env); v != "" {
		if p, err := normalizePath(v); err == nil {
			return p, SourceEnv
		}
	}
	if v, ok := persisted.(string); ok && strings.TrimSpace(v) != "" {
		if p, err := normalizePath(strings.TrimSpace(v)); err == nil {
			return p, SourceConfig
		}
	}
	return "", ""
}

// normalizePath expands ~ and environment variables and makes the path absolute.
func normalizePath(path string) (string, error) {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return filepath.Abs(path)
}

// ---------------------------------------------------------------------------
// Global config file
// ---------------------------------------------------------------------------

// GlobalConfigPath returns the path of the global rampage config file.
func GlobalConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rampage", "config.yaml"), nil
}

// readGlobal loads the global config as a raw map. A missing or unparsable
// file yields an empty map.
func readGlobal() (map[string]any, error) {
	cfgPath, err := GlobalConfigPath()
	if err != nil {
		return map[string]any{}, err
	}
	data, _, err := fsutil.ReadFileOptional(cfgPath)
	if err != nil {
		return map[string]any{}, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil || raw == nil {
		return map[string]any{}, nil
	}
	return raw, nil
}

// SetPersisted normalises path and stores it under key in the global config,
// preserving other keys. Returns the normalised path.
func SetPersisted(key, path string) (string, error) {
	if key != KeyRoot && key != KeyPresets {
		return "", fmt.Errorf("config.SetPersisted: %w: %q", ErrUnknownKey, key)
	}
	normalized, err := normalizePath(path)
	if err != nil {
		return "", fmt.Errorf("config.SetPersisted: %w", err)
	}
	cfgPath, err := GlobalConfigPath()
	if err != nil {
		return "", fmt.Errorf("config.SetPersisted: %w", err)
	}

	raw, _ := readGlobal()
	raw[key] = normalized

	out, err := yaml.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("config.SetPersisted: %w", err)
	}
	if err := fsutil.WriteFileAtomic(cfgPath, out, 0o600); err != nil {
		return "", fmt.Errorf("config.SetPersisted: %w", err)
	}
	return normalized, nil
}

// ClearPersisted removes key from the global config and reports whether it was
// present. The file is deleted once it holds no keys.
func ClearPersisted(key string) (bool, error) {
	if key != KeyRoot && key != KeyPresets {
		return false, fmt.Errorf("config.ClearPersisted: %w: %q", ErrUnknownKey, key)
	}
	cfgPath, err := GlobalConfigPath()
	if err != nil {
		return false, fmt.Errorf("config.ClearPersisted: %w", err)
	}

	raw, err := readGlobal()
	if err != nil {
		return false, fmt.Errorf("config.ClearPersisted: %w", err)
	}
	if _, ok := raw[key]; !ok {
		return false, nil
	}
	delete(raw, key)

	if len(raw) == 0 {
		if err := os.Remove(cfgPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("config.ClearPersisted: %w", err)
		}
		return true, nil
	}

	out, err := yaml.Marshal(raw)
	if err != nil {
		return false, fmt.Errorf("config.ClearPersisted: %w", err)
	}
	if err := fsutil.WriteFileAtomic(cfgPath, out, 0o600); err != nil {
		return false, fmt.Errorf("config.ClearPersisted: %w", err)
	}
	return true, nil
}
