package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Mail   MailConfig
	Intake IntakeConfig
	Admin  AdminConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	From         string
	To           string
}

type IntakeConfig struct {
	PersistEnabled bool
	NotifyEnabled  bool
	NotifyTimeout  time.Duration
}

type AdminConfig struct {
	APIToken           string
	RateLimitPerMinute int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("INTAKE_PERSIST_ENABLED", true)
	viper.SetDefault("INTAKE_NOTIFY_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine when everything comes from the environment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	notifyTimeout, err := time.ParseDuration(viper.GetString("NOTIFY_TIMEOUT"))
	if err != nil {
		notifyTimeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Mail: MailConfig{
			SMTPHost:     viper.GetString("SMTP_HOST"),
			SMTPPort:     viper.GetInt("SMTP_PORT"),
			SMTPUsername: viper.GetString("SMTP_USERNAME"),
			SMTPPassword: viper.GetString("SMTP_PASSWORD"),
			From:         viper.GetString("MAIL_FROM"),
			To:           viper.GetString("MAIL_TO"),
		},
		Intake: IntakeConfig{
			PersistEnabled: viper.GetBool("INTAKE_PERSIST_ENABLED"),
			NotifyEnabled:  viper.GetBool("INTAKE_NOTIFY_ENABLED"),
			NotifyTimeout:  notifyTimeout,
		},
		Admin: AdminConfig{
			APIToken:           viper.GetString("ADMIN_API_TOKEN"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
	}

	return config, nil
}
