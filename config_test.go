package cartoon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Player.RewindStep != DefaultRewindStep {
		t.Errorf("RewindStep = %v", c.Player.RewindStep)
	}
}

func TestParseConfigOverDefaults(t *testing.T) {
	c, err := ParseConfig([]byte(`
run:
  title: walker
  showFPS: true
player:
  rewindStep: 5s
  autoPlay: true
export:
  fps: 12
remote:
  url: tcp://localhost:1883
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if c.Run.Title != "walker" || !c.Run.ShowFPS {
		t.Errorf("run = %+v", c.Run)
	}
	if c.Run.Width != 640 || c.Run.Background != "#fff" {
		t.Errorf("defaults lost: %+v", c.Run)
	}
	if c.Player.RewindStep != 5*time.Second || !c.Player.AutoPlay {
		t.Errorf("player = %+v", c.Player)
	}
	if c.Export.FPS != 12 || c.Export.OutputDir != "frames" {
		t.Errorf("export = %+v", c.Export)
	}
	if c.Remote.URL != "tcp://localhost:1883" || c.Remote.Topics.Commands != "cartoon/commands" {
		t.Errorf("remote = %+v", c.Remote)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	for _, doc := range []string{
		"export:\n  fps: 0\n",
		"run:\n  width: -1\n",
		"export:\n  workers: -2\n",
		"player:\n  rewindStep: -1s\n",
	} {
		_, err := ParseConfig([]byte(doc))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%q: err = %v, want ErrInvalidConfig", doc, err)
		}
	}
}

func TestParseConfigMalformed(t *testing.T) {
	if _, err := ParseConfig([]byte("run: [")); err == nil {
		t.Error("expected a YAML error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cartoon.yaml")
	if err := os.WriteFile(path, []byte("export:\n  outputDir: out\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Export.OutputDir != "out" {
		t.Errorf("OutputDir = %q", c.Export.OutputDir)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}
