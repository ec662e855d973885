package config_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/rampage/internal/config"
)

// isolate points the user home and config directories at a temp dir and
// clears the rampage environment variables.
func isolate(c *qt.C) string {
	c.Helper()
	home := c.TB.TempDir()
	c.Setenv("HOME", home)
	c.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	c.Setenv(config.EnvRoot, "")
	c.Setenv(config.EnvPresets, "")
	return home
}

func TestResolve_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("defaults", func(c *qt.C) {
		home := isolate(c)
		p := config.Resolve(config.Overrides{})
		c.Assert(p.Root, qt.Equals, filepath.Join(home, ".rampage"))
		c.Assert(p.RootSource, qt.Equals, config.SourceDefault)
		c.Assert(p.Presets, qt.Equals, filepath.Join(home, ".rampage", "presets"))
		c.Assert(p.PresetsSource, qt.Equals, config.SourceDefault)
		c.Assert(p.LogDir(), qt.Equals, filepath.Join(home, ".rampage", "logs"))
	})

	c.Run("presets default follows the root", func(c *qt.C) {
		home := isolate(c)
		root := filepath.Join(home, "install")
		c.Setenv(config.EnvRoot, root)

		p := config.Resolve(config.Overrides{})
		c.Assert(p.Root, qt.Equals, root)
		c.Assert(p.RootSource, qt.Equals, config.SourceEnv)
		c.Assert(p.Presets, qt.Equals, filepath.Join(root, "presets"))
	})

	c.Run("environment overrides persisted config", func(c *qt.C) {
		home := isolate(c)
		_, err := config.SetPersisted(config.KeyPresets, filepath.Join(home, "persisted"))
		c.Assert(err, qt.IsNil)
		c.Setenv(config.EnvPresets, filepath.Join(home, "env"))

		p := config.Resolve(config.Overrides{})
		c.Assert(p.Presets, qt.Equals, filepath.Join(home, "env"))
		c.Assert(p.PresetsSource, qt.Equals, config.SourceEnv)
	})

	c.Run("flags override everything", func(c *qt.C) {
		home := isolate(c)
		c.Setenv(config.EnvRoot, filepath.Join(home, "env-root"))
		c.Setenv(config.EnvPresets, filepath.Join(home, "env-presets"))

		p := config.Resolve(config.Overrides{
			Root:    filepath.Join(home, "flag-root"),
			Presets: filepath.Join(home, "flag-presets"),
		})
		c.Assert(p.Root, qt.Equals, filepath.Join(home, "flag-root"))
		c.Assert(p.RootSource, qt.Equals, config.SourceFlag)
		c.Assert(p.Presets, qt.Equals, filepath.Join(home, "flag-presets"))
		c.Assert(p.PresetsSource, qt.Equals, config.SourceFlag)
	})

	c.Run("persisted values are used when env is unset", func(c *qt.C) {
		home := isolate(c)
		_, err := config.SetPersisted(config.KeyRoot, filepath.Join(home, "persisted-root"))
		c.Assert(err, qt.IsNil)

		p := config.Resolve(config.Overrides{})
		c.Assert(p.Root, qt.Equals, filepath.Join(home, "persisted-root"))
		c.Assert(p.RootSource, qt.Equals, config.SourceConfig)
		c.Assert(p.Presets, qt.Equals, filepath.Join(home, "persisted-root", "presets"))
	})

	c.Run("tilde and env vars are expanded", func(c *qt.C) {
		home := isolate(c)
		c.Setenv("RAMPAGE_TEST_DIR", "nested")
		c.Setenv(config.EnvPresets, "~/$RAMPAGE_TEST_DIR/presets")

		p := config.Resolve(config.Overrides{})
		c.Assert(p.Presets, qt.Equals, filepath.Join(home, "nested", "presets"))
	})
}

func TestSetPersisted_HappyPath(t *testing.T) {
	c := qt.New(t)
	home := isolate(c)

	got, err := config.SetPersisted(config.KeyPresets, filepath.Join(home, "a"))
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, filepath.Join(home, "a"))

	_, err = config.SetPersisted(config.KeyRoot, filepath.Join(home, "r"))
	c.Assert(err, qt.IsNil)

	cfgPath, err := config.GlobalConfigPath()
	c.Assert(err, qt.IsNil)
	data, err := os.ReadFile(cfgPath)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, "presets_path: "+filepath.Join(home, "a"))
	c.Assert(string(data), qt.Contains, "root: "+filepath.Join(home, "r"))

	info, err := os.Stat(cfgPath)
	c.Assert(err, qt.IsNil)
	c.Assert(info.Mode().Perm(), qt.Equals, os.FileMode(0o600))
}

func TestSetPersisted_FailurePath(t *testing.T) {
	c := qt.New(t)
	isolate(c)

	_, err := config.SetPersisted("embedding", "/x")
	c.Assert(err, qt.ErrorIs, config.ErrUnknownKey)

	_, err = config.ClearPersisted("embedding")
	c.Assert(err, qt.ErrorIs, config.ErrUnknownKey)
}

func TestClearPersisted_HappyPath(t *testing.T) {
	c := qt.New(t)
	home := isolate(c)

	c.Run("absent key reports false", func(c *qt.C) {
		changed, err := config.ClearPersisted(config.KeyPresets)
		c.Assert(err, qt.IsNil)
		c.Assert(changed, qt.IsFalse)
	})

	c.Run("other keys are preserved", func(c *qt.C) {
		_, err := config.SetPersisted(config.KeyPresets, filepath.Join(home, "p"))
		c.Assert(err, qt.IsNil)
		_, err = config.SetPersisted(config.KeyRoot, filepath.Join(home, "r"))
		c.Assert(err, qt.IsNil)

		changed, err := config.ClearPersisted(config.KeyPresets)
		c.Assert(err, qt.IsNil)
		c.Assert(changed, qt.IsTrue)

		p := config.Resolve(config.Overrides{})
		c.Assert(p.Root, qt.Equals, filepath.Join(home, "r"))
		c.Assert(p.PresetsSource, qt.Equals, config.SourceDefault)
	})

	c.Run("file is removed once empty", func(c *qt.C) {
		changed, err := config.ClearPersisted(config.KeyRoot)
		c.Assert(err, qt.IsNil)
		c.Assert(changed, qt.IsTrue)

		cfgPath, err := config.GlobalConfigPath()
		c.Assert(err, qt.IsNil)
		_, err = os.Stat(cfgPath)
		c.Assert(os.IsNotExist(err), qt.IsTrue)
	})
}
