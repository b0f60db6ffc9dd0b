package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/oomph-ac/entsim/game"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a simulation server.
type Settings struct {
	Simulation struct {
		// TickRate is the amount of ticks run per second. Zero or less means game.DefaultTickRate.
		TickRate int
		// Workers is the amount of goroutines bodies are simulated on. Zero means one per CPU.
		Workers int
		// JournalSize is the amount of recent events kept in memory.
		JournalSize int
	}
	Logging struct {
		// Level is one of debug, info, warn or error.
		Level string
		// Format is either text or json.
		Format string
	}
	Debug struct {
		StatsView     bool
		StatsViewAddr string
		SentryDSN     string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Simulation.TickRate = game.DefaultTickRate
	settings.Simulation.JournalSize = 256

	settings.Logging.Level = "info"
	settings.Logging.Format = "text"

	settings.Debug.StatsViewAddr = "localhost:18066"
	return settings
}

// TickDuration returns the duration of a single tick.
func (s Settings) TickDuration() time.Duration {
	if s.Simulation.TickRate <= 0 {
		return time.Second / game.DefaultTickRate
	}
	return time.Second / time.Duration(s.Simulation.TickRate)
}

// LogLevel returns the slog level matching Logging.Level. Unknown levels map to info.
func (s Settings) LogLevel() slog.Level {
	switch strings.ToLower(s.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file. If the file does not exist, the default settings
// are written to it and returned.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	return settings, nil
}
