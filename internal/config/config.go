package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"songsearch/internal/deezer"
	"songsearch/internal/eventbus"
)

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Deezer  DeezerSettings `toml:"deezer"`
	Search  SearchSettings `toml:"search"`
	Log     LogSettings    `toml:"log"`
	UI      UISettings     `toml:"ui"`
}

// DeezerSettings configures the search client
type DeezerSettings struct {
	Endpoint          string   `toml:"endpoint"`
	Timeout           Duration `toml:"timeout"` // 0 means no timeout
	RequestsPerWindow int      `toml:"requests_per_window"`
	Window            Duration `toml:"window"`
}

// SearchSettings configures dispatch behaviour
type SearchSettings struct {
	CancelStale  bool   `toml:"cancel_stale"`
	InitialQuery string `toml:"initial_query,omitempty"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCover bool `toml:"show_cover"`
	AltScreen bool `toml:"alt_screen"`
}

// Duration is a time.Duration stored as text ("10s") in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "songsearch", "config.toml")
}

// NewConfigService creates a config service for path. An empty path uses DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values that would make the client unusable
func (c *Config) Validate() error {
	if c.Deezer.Endpoint == "" {
		return fmt.Errorf("%w: deezer.endpoint is empty", ErrInvalid)
	}
	if !strings.HasPrefix(c.Deezer.Endpoint, "http://") && !strings.HasPrefix(c.Deezer.Endpoint, "https://") {
		return fmt.Errorf("%w: deezer.endpoint %q is not an http(s) URL", ErrInvalid, c.Deezer.Endpoint)
	}
	if c.Deezer.Timeout.Duration < 0 {
		return fmt.Errorf("%w: deezer.timeout must not be negative", ErrInvalid)
	}
	if c.Deezer.RequestsPerWindow < 0 {
		return fmt.Errorf("%w: deezer.requests_per_window must not be negative", ErrInvalid)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Deezer: DeezerSettings{
			Endpoint:          deezer.DefaultEndpoint,
			RequestsPerWindow: 50,
			Window:            Duration{5 * time.Second},
		},
		Log: LogSettings{
			Level:      "info",
			File:       "songsearch.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		UI: UISettings{
			ShowCover: true,
			AltScreen: true,
		},
	}
}

// Overrides layers SONGSEARCH_* environment variables and explicitly set
// command line flags on top of cfg. Flag names map to keys as
// "log-level" -> "log.level".
func Overrides(cfg *Config, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SONGSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("deezer.endpoint", cfg.Deezer.Endpoint)
	v.SetDefault("deezer.timeout", cfg.Deezer.Timeout.Duration)
	v.SetDefault("deezer.requests_per_window", cfg.Deezer.RequestsPerWindow)
	v.SetDefault("deezer.window", cfg.Deezer.Window.Duration)
	v.SetDefault("search.cancel_stale", cfg.Search.CancelStale)
	v.SetDefault("search.initial_query", cfg.Search.InitialQuery)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("ui.show_cover", cfg.UI.ShowCover)
	v.SetDefault("ui.alt_screen", cfg.UI.AltScreen)

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	out := *cfg
	out.Deezer.Endpoint = v.GetString("deezer.endpoint")
	out.Deezer.Timeout = Duration{v.GetDuration("deezer.timeout")}
	out.Deezer.RequestsPerWindow = v.GetInt("deezer.requests_per_window")
	out.Deezer.Window = Duration{v.GetDuration("deezer.window")}
	out.Search.CancelStale = v.GetBool("search.cancel_stale")
	out.Search.InitialQuery = v.GetString("search.initial_query")
	out.Log.Level = v.GetString("log.level")
	out.Log.File = v.GetString("log.file")
	out.UI.ShowCover = v.GetBool("ui.show_cover")
	out.UI.AltScreen = v.GetBool("ui.alt_screen")

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// flagKeys maps config keys to the command line flags that override them
var flagKeys = map[string]string{
	"deezer.endpoint":      "endpoint",
	"deezer.timeout":       "timeout",
	"search.cancel_stale":  "cancel-stale",
	"search.initial_query": "query",
	"log.level":            "log-level",
	"log.file":             "log-file",
	"ui.alt_screen":        "alt-screen",
}
