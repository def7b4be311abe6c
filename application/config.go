package application

import (
	"errors"
	"fmt"
	"sale-alerts/models/constants"
	"sale-alerts/utils/databases"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrFeedURLMissing   = errors.New("feed url is missing")
	ErrInvalidInterval  = errors.New("poll interval must be at least one minute")
	ErrNtfyURLMissing   = errors.New("ntfy url is missing")
	ErrUnknownSink      = errors.New("unknown notification sink")
	ErrInvalidTimeout   = errors.New("feed timeout must be positive")
	ErrInvalidDedupTTL  = errors.New("notification dedup ttl must be positive")
	ErrTelegramSettings = errors.New("telegram sink needs a bot token and a chat id")
)

type Config struct {
	Database       databases.Config
	FeedURL        string
	UserAgent      string
	FeedTimeout    time.Duration
	PollInterval   time.Duration
	NotifySink     string
	NtfyURL        string
	TelegramToken  string
	TelegramChatID int64
	NotifyTimezone string
	NotifyDedupTTL time.Duration
	ProbePort      int
	HealthCronTab  string
}

// LoadConfig reads the settings registered in viper once, so nothing downstream touches viper.
func LoadConfig() Config {
	return Config{
		Database: databases.Config{
			Driver:    viper.GetString(constants.DatabaseDriver),
			User:      viper.GetString(constants.DatabaseUser),
			Password:  viper.GetString(constants.DatabasePassword),
			Host:      viper.GetString(constants.DatabaseHost),
			Port:      viper.GetInt(constants.DatabasePort),
			Name:      viper.GetString(constants.DatabaseName),
			SSLMode:   viper.GetString(constants.DatabaseSSLMode),
			SqliteURL: viper.GetString(constants.SqliteURL),
		},
		FeedURL:        viper.GetString(constants.FeedURL),
		UserAgent:      viper.GetString(constants.UserAgent),
		FeedTimeout:    time.Duration(viper.GetInt(constants.FeedTimeout)) * time.Second,
		PollInterval:   time.Duration(viper.GetInt(constants.PollIntervalMinutes)) * time.Minute,
		NotifySink:     viper.GetString(constants.NotifySink),
		NtfyURL:        viper.GetString(constants.NtfyURL),
		TelegramToken:  viper.GetString(constants.TelegramBotToken),
		TelegramChatID: viper.GetInt64(constants.TelegramChatID),
		NotifyTimezone: viper.GetString(constants.NotifyTimezone),
		NotifyDedupTTL: viper.GetDuration(constants.NotifyDedupTTL),
		ProbePort:      viper.GetInt(constants.ProbePort),
		HealthCronTab:  viper.GetString(constants.HealthCronTab),
	}
}

func (cfg Config) Validate() error {
	if cfg.FeedURL == "" {
		return invalidKey(ErrFeedURLMissing, constants.FeedURL)
	}

	if cfg.PollInterval < time.Minute {
		return invalidKey(ErrInvalidInterval, constants.PollIntervalMinutes)
	}

	if cfg.FeedTimeout <= 0 {
		return invalidKey(ErrInvalidTimeout, constants.FeedTimeout)
	}

	if cfg.NotifyDedupTTL <= 0 {
		return invalidKey(ErrInvalidDedupTTL, constants.NotifyDedupTTL)
	}

	switch cfg.NotifySink {
	case constants.SinkNtfy:
		if cfg.NtfyURL == "" {
			return invalidKey(ErrNtfyURLMissing, constants.NtfyURL)
		}
	case constants.SinkTelegram:
		if cfg.TelegramToken == "" {
			return invalidKey(ErrTelegramSettings, constants.TelegramBotToken)
		}
		if cfg.TelegramChatID == 0 {
			return invalidKey(ErrTelegramSettings, constants.TelegramChatID)
		}
	default:
		return fmt.Errorf("%w: %s=%q", ErrUnknownSink, constants.NotifySink, cfg.NotifySink)
	}

	return nil
}

func invalidKey(err error, key string) error {
	return fmt.Errorf("%w (check %s)", err, key)
}
