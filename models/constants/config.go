package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	ConfigFileName = ".env"

	// Database driver, one of [postgres, sqlite].
	DatabaseDriver = "DB_DRIVER"

	// Postgres credentials and location.
	DatabaseUser = "DB_USER"
	//nolint:gosec // False positive.
	DatabasePassword = "DB_PASSWORD"
	DatabaseHost     = "DB_HOST"
	DatabasePort     = "DB_PORT"
	DatabaseName     = "DB_NAME"
	DatabaseSSLMode  = "DB_SSLMODE"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Feed polled every cycle.
	FeedURL = "FEED_URL"

	// User agent sent when fetching the feed.
	UserAgent = "USER_AGENT"

	// Feed fetch timeout, in seconds.
	FeedTimeout = "FEED_TIMEOUT"

	// Delay between two cycles, in minutes.
	PollIntervalMinutes = "POLL_INTERVAL_MINUTES"

	// Notification sink, one of [ntfy, telegram].
	NotifySink = "NOTIFY_SINK"

	// Ntfy topic URL.
	NtfyURL = "NTFY_URL"

	// TELEGRAM BOT
	TelegramBotToken = "TELEGRAM_BOT_TOKEN"
	TelegramChatID   = "TELEGRAM_CHAT_ID"

	// IANA zone used to render the listing timestamp in notifications.
	NotifyTimezone = "NOTIFY_TIMEZONE"

	// Window during which a listing already sent is not sent again. Duration type.
	NotifyDedupTTL = "NOTIFY_DEDUP_TTL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Probe port.
	ProbePort = "PROBE_PORT"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"

	SinkNtfy     = "ntfy"
	SinkTelegram = "telegram"

	defaultDatabaseDriver      = DriverPostgres
	defaultDatabaseUser        = ""
	defaultDatabasePassword    = ""
	defaultDatabaseHost        = "localhost"
	defaultDatabasePort        = 5432
	defaultDatabaseName        = "rssFeed"
	defaultDatabaseSSLMode     = "disable"
	defaultSqliteURL           = "sale-alerts.db"
	defaultUserAgent           = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/118.0"
	defaultFeedTimeout         = 30
	defaultPollIntervalMinutes = 5
	defaultNotifySink          = SinkNtfy
	defaultNotifyTimezone      = "Local"
	defaultNotifyDedupTTL      = time.Hour
	defaultProbePort           = 9090
	defaultHealthCrontab       = "*/15 * * * *"
	defaultLogLevel            = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		DatabaseDriver:      defaultDatabaseDriver,
		DatabaseUser:        defaultDatabaseUser,
		DatabasePassword:    defaultDatabasePassword,
		DatabaseHost:        defaultDatabaseHost,
		DatabasePort:        defaultDatabasePort,
		DatabaseName:        defaultDatabaseName,
		DatabaseSSLMode:     defaultDatabaseSSLMode,
		SqliteURL:           defaultSqliteURL,
		UserAgent:           defaultUserAgent,
		FeedTimeout:         defaultFeedTimeout,
		PollIntervalMinutes: defaultPollIntervalMinutes,
		NotifySink:          defaultNotifySink,
		NotifyTimezone:      defaultNotifyTimezone,
		NotifyDedupTTL:      defaultNotifyDedupTTL,
		ProbePort:           defaultProbePort,
		HealthCronTab:       defaultHealthCrontab,
		LogLevel:            defaultLogLevel.String(),
	}
}
