package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Email    *EmailConfig    `mapstructure:"email"`
	Booking  *BookingConfig  `mapstructure:"booking"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AdminSigningKey    string   `mapstructure:"admin_signing_key"`
	AdminPINHash       string   `mapstructure:"admin_pin_hash"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

type EmailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	From         string `mapstructure:"from"`
	AdminTo      string `mapstructure:"admin_to"`
}

type BookingConfig struct {
	OrderTTLHours int `mapstructure:"order_ttl_hours"`
}

// Load reads the yml config and applies environment overrides
// (API_JWT_SIGNING_KEY, POSTGRES_PASSWORD, EMAIL_RESEND_API_KEY, ...).
func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	applyEnvOverrides(conf)

	if err := validate(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// applyEnvOverrides keeps secrets out of the yml file. Only values
// that are actually set replace the file's.
func applyEnvOverrides(conf *AppConfig) {
	override(&conf.API.JWTSigningKey, "API_JWT_SIGNING_KEY")
	override(&conf.API.AdminSigningKey, "API_ADMIN_SIGNING_KEY")
	override(&conf.API.AdminPINHash, "API_ADMIN_PIN_HASH")
	override(&conf.Postgres.Host, "POSTGRES_HOST")
	override(&conf.Postgres.Port, "POSTGRES_PORT")
	override(&conf.Postgres.User, "POSTGRES_USER")
	override(&conf.Postgres.Password, "POSTGRES_PASSWORD")
	override(&conf.Postgres.DB, "POSTGRES_DB")
	override(&conf.Email.ResendAPIKey, "EMAIL_RESEND_API_KEY")
	override(&conf.Email.AdminTo, "EMAIL_ADMIN_TO")
}

func override(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func validate(conf *AppConfig) error {
	if conf.API == nil || conf.Postgres == nil || conf.Email == nil || conf.Booking == nil || conf.Gin == nil {
		return fmt.Errorf("config: missing section in config file")
	}
	if conf.API.JWTSigningKey == "" || conf.API.AdminSigningKey == "" {
		return fmt.Errorf("config: signing keys must not be empty")
	}
	if conf.API.AdminPINHash == "" {
		return fmt.Errorf("config: admin pin hash must not be empty")
	}
	if conf.Booking.OrderTTLHours <= 0 {
		conf.Booking.OrderTTLHours = 24
	}
	return nil
}
