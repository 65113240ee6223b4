package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Cache CacheConfig
	Admin AdminConfig
}

type AppConfig struct {
	Port            string
	Env             string
	BasePath        string // public prefix of the JSON API, rendered into pages
	CORSAllowOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Migrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type CacheConfig struct {
	LookupTTL time.Duration
}

// AdminConfig seeds the first admin account when the users table is empty.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("APP_BASE_PATH", "/api/v1")
	viper.SetDefault("CORS_ALLOW_ORIGIN", "*")
	viper.SetDefault("DB_MIGRATE", true)
	viper.SetDefault("ADMIN_NAME", "Administrator")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	return &Config{
		App: AppConfig{
			Port:            viper.GetString("APP_PORT"),
			Env:             viper.GetString("APP_ENV"),
			BasePath:        viper.GetString("APP_BASE_PATH"),
			CORSAllowOrigin: viper.GetString("CORS_ALLOW_ORIGIN"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			Migrate:  viper.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  parseDuration(viper.GetString("JWT_ACCESS_EXPIRY"), 15*time.Minute),
			RefreshExpiry: parseDuration(viper.GetString("JWT_REFRESH_EXPIRY"), 7*24*time.Hour),
		},
		Cache: CacheConfig{
			LookupTTL: parseDuration(viper.GetString("CACHE_LOOKUP_TTL"), 10*time.Minute),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Name:     viper.GetString("ADMIN_NAME"),
		},
	}, nil
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
