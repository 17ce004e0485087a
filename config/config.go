package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Seed  SeedConfig
}

type AppConfig struct {
	Port string
	Env  string
	// CORSAllowedOrigins holds the browser origins allowed to call the API.
	// Empty config falls back to "*".
	CORSAllowedOrigins []string
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

// SeedUser is a staff credential provisioned at startup. Operators configure
// these through the environment; nothing is hard-coded into the auth layer.
type SeedUser struct {
	Email    string
	Password string
	FullName string
	Role     string
}

type SeedConfig struct {
	Users []SeedUser
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:               viper.GetString("APP_PORT"),
			Env:                viper.GetString("APP_ENV"),
			CORSAllowedOrigins: loadAllowedOrigins(),
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
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Seed: loadSeedUsers(),
	}

	return config, nil
}

func loadAllowedOrigins() []string {
	raw := viper.GetString("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}

	origins := []string{}
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func loadSeedUsers() SeedConfig {
	seed := SeedConfig{}

	if email := viper.GetString("ADMIN_EMAIL"); email != "" {
		seed.Users = append(seed.Users, SeedUser{
			Email:    email,
			Password: viper.GetString("ADMIN_PASSWORD"),
			FullName: viper.GetString("ADMIN_NAME"),
			Role:     "admin",
		})
	}

	if email := viper.GetString("MANAGER_EMAIL"); email != "" {
		seed.Users = append(seed.Users, SeedUser{
			Email:    email,
			Password: viper.GetString("MANAGER_PASSWORD"),
			FullName: viper.GetString("MANAGER_NAME"),
			Role:     "manager",
		})
	}

	return seed
}
