package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keySessionCmd           = "settings.cmd"
	keyMediaDir             = "settings.media_dir"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyChatEndpoint         = "chat.endpoint"
	keyReminderTime         = "reminder.time"
	keyReminderMessage      = "reminder.message"
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing a default config file if none exists yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return v.Unmarshal(c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyMediaDir, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyChatEndpoint, "http://localhost:8000")
	v.SetDefault(keyReminderTime, "09:00")
	v.SetDefault(
		keyReminderMessage,
		"Time for your daily cognitive training.",
	)
}
