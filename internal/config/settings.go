package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings holds the runtime options that may differ between runs.
type Settings struct {
	// Seed for the particle generator; 0 means time-based.
	Seed int64 `yaml:"seed"`

	// Constrained selects the small particle count (narrow displays).
	Constrained bool `yaml:"constrained"`

	// ReduceMotion keeps the field static.
	ReduceMotion bool `yaml:"reduce_motion"`

	Window  WindowSettings  `yaml:"window"`
	Page    PageSettings    `yaml:"page"`
	Stream  StreamSettings  `yaml:"stream"`
	Logging LoggingSettings `yaml:"logging"`
}

// WindowSettings configures the desktop frontends.
type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PageSettings configures the virtual page that drives the visibility gate.
type PageSettings struct {
	Sections    int     `yaml:"sections"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// StreamSettings configures the websocket frame server.
type StreamSettings struct {
	Addr       string `yaml:"addr"`
	TickRate   int    `yaml:"tick_rate"`
	MaxClients int    `yaml:"max_clients"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
}

// LoggingSettings configures the zap logger.
type LoggingSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "Particle Field",
		},
		Page: PageSettings{
			Sections:    PageSections,
			ScrollSpeed: ScrollSpeed,
		},
		Stream: StreamSettings{
			Addr:       StreamAddr,
			TickRate:   StreamTickRate,
			MaxClients: StreamMaxClients,
			Width:      ScreenWidth,
			Height:     ScreenHeight,
		},
		Logging: LoggingSettings{Level: "info"},
	}
}

// Load reads settings from a YAML file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read settings: %w", err)
		default:
			if err := yaml.Unmarshal(data, s); err != nil {
				return nil, fmt.Errorf("failed to parse settings: %w", err)
			}
		}
	}

	if err := s.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes settings to a YAML file, creating the directory if needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func (s *Settings) applyEnvOverrides() error {
	if v := os.Getenv("FIELD_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid FIELD_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv("FIELD_CONSTRAINED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid FIELD_CONSTRAINED %q: %w", v, err)
		}
		s.Constrained = b
	}
	if v := os.Getenv("FIELD_REDUCE_MOTION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid FIELD_REDUCE_MOTION %q: %w", v, err)
		}
		s.ReduceMotion = b
	}
	if v := os.Getenv("FIELD_STREAM_ADDR"); v != "" {
		s.Stream.Addr = v
	}
	return nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Page.Sections < 1 {
		return fmt.Errorf("page.sections must be at least 1, got %d", s.Page.Sections)
	}
	if s.Page.ScrollSpeed <= 0 {
		return fmt.Errorf("page.scroll_speed must be positive, got %g", s.Page.ScrollSpeed)
	}
	if s.Stream.TickRate <= 0 {
		return fmt.Errorf("stream.tick_rate must be positive, got %d", s.Stream.TickRate)
	}
	if s.Stream.MaxClients <= 0 {
		return fmt.Errorf("stream.max_clients must be positive, got %d", s.Stream.MaxClients)
	}
	if s.Stream.Width <= 0 || s.Stream.Height <= 0 {
		return fmt.Errorf("stream size must be positive, got %dx%d", s.Stream.Width, s.Stream.Height)
	}
	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", s.Logging.Level)
	}
	return nil
}

// ParticleCountFor выбирает количество частиц по классу устройства.
func ParticleCountFor(constrained bool) int {
	if constrained {
		return ParticleCountConstrained
	}
	return ParticleCountDefault
}
