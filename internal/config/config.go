// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/tovenaar/easel/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	MaxHistory      int     `toml:"max_history"`       // Undo stack depth
	SystemClipboard bool    `toml:"system_clipboard"`  // Copy/paste through the OS clipboard
	PasteOffset     float64 `toml:"paste_offset"`      // Offset applied to pasted objects, both axes
	DefaultFontSize float64 `toml:"default_font_size"` // Font size for new text objects
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Empty means the default path logic in main applies
		},
		Editor: EditorConfig{
			MaxHistory:      DefaultMaxHistory,
			SystemClipboard: SystemClipboard,
			PasteOffset:     DefaultPasteOffset,
			DefaultFontSize: DefaultFontSize,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error; the defaults simply stand.
func loadFromFile(filePath string, verbose bool) (*Config, error) {
	cfg := &Config{} // Start empty, merged by the caller
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Editor.DefaultFontSize <= 0 {
		c.Editor.DefaultFontSize = defaults.Editor.DefaultFontSize
	}
	// A zero paste offset is legal (paste in place); negative offsets are not.
	if c.Editor.PasteOffset < 0 {
		c.Editor.PasteOffset = defaults.Editor.PasteOffset
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		// During the initial load the logger isn't initialized yet, so
		// stay quiet.
		verbose := false

		cfg := NewDefaultConfig()

		// Determine effective config file path
		effectivePath := configFilePath
		if effectivePath == "" { // If flag not set, try default location
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			} else {
				effectivePath = "" // Cannot load default path
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath, verbose)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.MaxHistory > 0 {
					cfg.Editor.MaxHistory = fileCfg.Editor.MaxHistory
				}
				if fileCfg.Editor.PasteOffset >= 0 {
					cfg.Editor.PasteOffset = fileCfg.Editor.PasteOffset
				}
				if fileCfg.Editor.DefaultFontSize > 0 {
					cfg.Editor.DefaultFontSize = fileCfg.Editor.DefaultFontSize
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
			}
		}

		// Apply flag overrides (if flags were parsed)
		if flags != nil {
			flags.ApplyOverrides(cfg, verbose)
		}

		cfg.validate()

		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig
// wasn't called; that is a programming error in main, not a runtime state.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
