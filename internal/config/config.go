// Package config loads and provides access to calmind's settings.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	// Config holds all configuration settings
	Config struct {
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Chat          ChatConfig         `mapstructure:"chat"`
		Reminder      ReminderConfig     `mapstructure:"reminder"`
	}

	// SettingsConfig holds general behavior settings
	SettingsConfig struct {
		// Cmd is an arbitrary command executed after each game session
		Cmd string `mapstructure:"cmd"`
		// MediaDir is where relaxation audio files are looked up
		MediaDir string `mapstructure:"media_dir"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// ChatConfig locates the companion chat endpoint
	ChatConfig struct {
		Endpoint string `mapstructure:"endpoint"`
	}

	// ReminderConfig drives the daily training reminder
	ReminderConfig struct {
		Time    string `mapstructure:"time"`
		Message string `mapstructure:"message"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "calmind"
	configFileName = "config.yml"
	dbFileName     = "calmind.db"
	logFileName    = "calmind.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func init() {
	var err error

	configFilePath, err = xdg.ConfigFile(
		filepath.Join(configDir, configFileName),
	)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath, err = xdg.DataFile(filepath.Join(configDir, dbFileName))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logFilePath, err = xdg.StateFile(filepath.Join(configDir, logFileName))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func Dir() string {
	return configDir
}

func ConfigFilePath() string {
	return configFilePath
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

// New creates a Config, applying the given options in order.
func New(opts ...Option) (*Config, error) {
	c := &Config{}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// InitLogging routes slog output to a size-rotated log file.
func InitLogging() {
	w := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
}
