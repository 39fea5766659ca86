package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server    ServerConfig
	Dirs      DirConfig
	API       APIConfig
	Retention RetentionConfig
	SMTP      SMTPConfig
	Schedule  ScheduleConfig
}

type ServerConfig struct {
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	CustomersFile string `envconfig:"CUSTOMERS_FILE" default:"./customers.yaml"`
}

type DirConfig struct {
	Database string `envconfig:"DIR_DB" default:"./data/db"`
	Images   string `envconfig:"DIR_IMAGES" default:"./data/images"`
	Logs     string `envconfig:"DIR_LOGS" default:"./log"`
}

type APIConfig struct {
	HealthEndpoint string        `envconfig:"API_ENDPOINT_HEALTH" default:"https://graph.microsoft.com/v1.0/admin/serviceAnnouncement/healthOverviews"`
	AuthEndpoint   string        `envconfig:"API_ENDPOINT_AUTH" default:"https://login.microsoftonline.com"`
	Scope          string        `envconfig:"API_SCOPE" default:"https://graph.microsoft.com/.default"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

type RetentionConfig struct {
	// RetentionDays is the rolling window beyond which stored records are
	// pruned after each poll cycle.
	RetentionDays int `envconfig:"DB_RETENTION_DAYS" default:"30"`
	// ReportDaysFrom/To bound the report window as day offsets from now,
	// both inclusive. Misconfigured values fall back to the prior calendar
	// day.
	ReportDaysFrom int `envconfig:"DB_DAYS_PREV_FROM" default:"11"`
	ReportDaysTo   int `envconfig:"DB_DAYS_PREV_TO" default:"1"`
}

type SMTPConfig struct {
	Host      string `envconfig:"SMTP_HOST" required:"true"`
	Port      int    `envconfig:"SMTP_PORT" default:"25"`
	From      string `envconfig:"MAIL_FROM" required:"true"`
	Password  string `envconfig:"MAIL_PASSWORD" default:""`
	Subject   string `envconfig:"MAIL_SUBJECT" default:"MS Service health report"`
	Signature string `envconfig:"MAIL_SIGNATURE" default:"<hr><p style=\"color: gray;\">This is an automated message - please do not reply.</p>"`
}

type ScheduleConfig struct {
	ScanSpec   string `envconfig:"SCAN_CRON" default:"*/15 * * * *"`
	ReportSpec string `envconfig:"REPORT_CRON" default:"0 7 * * *"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
