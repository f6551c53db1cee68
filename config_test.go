package orbitalsim

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func resetConfig(t *testing.T) {
	cfgLoaded = false
	config = _simconfig{}
	t.Cleanup(func() {
		cfgLoaded = false
		config = _simconfig{}
	})
}

func TestConfigDefaults(t *testing.T) {
	resetConfig(t)
	os.Unsetenv("ORBITALSIM_CONFIG")

	cfg := simConfig()
	if cfg.Ephemeris != "static" || cfg.outputDir != "." {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	// The provider selection follows suit.
	env := NewEnvironmentFromConfig(time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC))
	if _, ok := env.(*StaticEnvironment); !ok {
		t.Fatalf("default ephemeris must be static: %T", env)
	}
}

func TestConfigFromFile(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	conf := `[ephemeris]
source = "meeus"

[general]
output_path = "` + dir + `"
`
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("ORBITALSIM_CONFIG", dir)
	t.Cleanup(func() { os.Unsetenv("ORBITALSIM_CONFIG") })

	cfg := simConfig()
	if cfg.Ephemeris != "meeus" {
		t.Fatalf("ephemeris source not read: %+v", cfg)
	}
	if cfg.outputDir != dir {
		t.Fatalf("output path not read: %+v", cfg)
	}
	env := NewEnvironmentFromConfig(time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC))
	if _, ok := env.(*MeeusEnvironment); !ok {
		t.Fatalf("configured ephemeris must be meeus: %T", env)
	}
}

func TestConfigBrokenPathPanics(t *testing.T) {
	resetConfig(t)
	os.Setenv("ORBITALSIM_CONFIG", filepath.Join(t.TempDir(), "nowhere"))
	t.Cleanup(func() { os.Unsetenv("ORBITALSIM_CONFIG") })
	assertPanic(t, func() { simConfig() })
}
