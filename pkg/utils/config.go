package utils

import (
	"errors"
	"io/fs"
	"net"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout int
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
}

type AuthConfig struct {
	Enabled            bool
	SessionExpiryHours int
	AdminUsername      string
	AdminPassword      string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "airline-backoffice")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_AUTO_MIGRATE", true)
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// .env is optional, the environment alone is enough in containers
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			ShutdownTimeout: viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			Name:        viper.GetString("DB_NAME"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			SSLMode:     viper.GetString("DB_SSLMODE"),
			MaxConns:    viper.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Auth: AuthConfig{
			Enabled:            viper.GetBool("AUTH_ENABLED"),
			SessionExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			AdminUsername:      viper.GetString("ADMIN_USERNAME"),
			AdminPassword:      viper.GetString("ADMIN_PASSWORD"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

// DSN builds a postgres URL usable by both pgx and golang-migrate.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
