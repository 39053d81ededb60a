package cartoon

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by LoadConfig when a loaded value is out of
// range.
var ErrInvalidConfig = errors.New("cartoon: invalid config")

// RunConfig holds window and display options for Run.
type RunConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"showFPS"`
	// Background is the CSS color painted behind every canvas.
	Background string `yaml:"background"`
}

// PlayerConfig holds playback options.
type PlayerConfig struct {
	RewindStep time.Duration `yaml:"rewindStep"`
	Debug      bool          `yaml:"debug"`
	AutoPlay   bool          `yaml:"autoPlay"`
}

// ExportConfig holds options for rendering a playback to PNG frames.
type ExportConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	FPS       int    `yaml:"fps"`
	OutputDir string `yaml:"outputDir"`
	// Workers is the number of parallel encoders; 0 picks one per core.
	Workers int `yaml:"workers"`
}

// RemoteConfig holds MQTT settings for remote control.
type RemoteConfig struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"clientID"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topics   struct {
		Commands string `yaml:"commands"`
		Status   string `yaml:"status"`
		Progress string `yaml:"progress"`
	} `yaml:"topics"`
}

// Config is the top-level YAML document.
type Config struct {
	Run    RunConfig    `yaml:"run"`
	Player PlayerConfig `yaml:"player"`
	Export ExportConfig `yaml:"export"`
	Remote RemoteConfig `yaml:"remote"`
}

// DefaultConfig returns the values used for anything a config file leaves
// out.
func DefaultConfig() Config {
	var c Config
	c.Run = RunConfig{Title: "cartoon", Width: 640, Height: 480, Background: "#fff"}
	c.Player = PlayerConfig{RewindStep: DefaultRewindStep}
	c.Export = ExportConfig{Width: 640, Height: 480, FPS: 30, OutputDir: "frames"}
	c.Remote.ClientID = "cartoon"
	c.Remote.Topics.Commands = "cartoon/commands"
	c.Remote.Topics.Status = "cartoon/status"
	c.Remote.Topics.Progress = "cartoon/progress"
	return c
}

// LoadConfig reads a YAML config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch {
	case c.Run.Width <= 0 || c.Run.Height <= 0:
		return fmt.Errorf("%w: run size %dx%d", ErrInvalidConfig, c.Run.Width, c.Run.Height)
	case c.Export.Width <= 0 || c.Export.Height <= 0:
		return fmt.Errorf("%w: export size %dx%d", ErrInvalidConfig, c.Export.Width, c.Export.Height)
	case c.Export.FPS <= 0:
		return fmt.Errorf("%w: export fps %d", ErrInvalidConfig, c.Export.FPS)
	case c.Export.Workers < 0:
		return fmt.Errorf("%w: export workers %d", ErrInvalidConfig, c.Export.Workers)
	case c.Player.RewindStep < 0:
		return fmt.Errorf("%w: rewind step %v", ErrInvalidConfig, c.Player.RewindStep)
	}
	return nil
}

// Apply copies the playback options onto p.
func (pc PlayerConfig) Apply(p *Player) {
	if pc.RewindStep > 0 {
		p.RewindStep = pc.RewindStep
	}
}
