// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type PostgresConfig struct {
	User     string `mapstructure:"postgres_user"`
	Password string `mapstructure:"postgres_password"`
	Host     string `mapstructure:"postgres_host"`
	Port     string `mapstructure:"postgres_port"`
	DBName   string `mapstructure:"postgres_db"`

	MaxOpenConns    int32         `mapstructure:"db_max_open_conns"`
	MinConns        int32         `mapstructure:"db_min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"db_conn_max_idle_time"`
}

type RateLimitConfig struct {
	// requests per second per client ip
	RPS        float64 `mapstructure:"rate_limit_rps"`
	Burst      int     `mapstructure:"rate_limit_burst"`
	MaxClients int     `mapstructure:"rate_limit_max_clients"`
}

type DocumentConfig struct {
	StorageDir string `mapstructure:"document_storage_dir"`
	// bytes
	MaxSize int64 `mapstructure:"document_max_size"`
}

type ActiveBusinessCacheConfig struct {
	TTL  time.Duration `mapstructure:"active_business_cache_ttl"`
	Size int           `mapstructure:"active_business_cache_size"`
}

// OTelConfig selects the span exporter. An empty exporter disables tracing.
type OTelConfig struct {
	Exporter    string `mapstructure:"otel_exporter"`
	Endpoint    string `mapstructure:"otel_exporter_otlp_endpoint"`
	Insecure    bool   `mapstructure:"otel_exporter_otlp_insecure"`
	ServiceName string `mapstructure:"otel_service_name"`
}

type Config struct {
	Environment        string   `mapstructure:"environment"`
	LogLevel           string   `mapstructure:"log_level"`
	Port               int      `mapstructure:"port"`
	FrontendURL        string   `mapstructure:"frontend_url"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	AdminToken         string   `mapstructure:"admin_token"`
	ErrorTrackingDSN   string   `mapstructure:"error_tracking_dsn"`

	KratosPublicURL string `mapstructure:"ory_kratos_public"`
	KratosAdminURL  string `mapstructure:"ory_kratos_admin"`

	DisableAutomigrate bool   `mapstructure:"disable_automigrate"`
	RBACConfigPath     string `mapstructure:"rbac_config_path"`

	Postgres            PostgresConfig            `mapstructure:",squash"`
	RateLimit           RateLimitConfig           `mapstructure:",squash"`
	Documents           DocumentConfig            `mapstructure:",squash"`
	ActiveBusinessCache ActiveBusinessCacheConfig `mapstructure:",squash"`
	OTel                OTelConfig                `mapstructure:",squash"`
}

func (c Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

var defaults = map[string]any{
	"environment":          "dev",
	"log_level":            "debug",
	"port":                 8080,
	"frontend_url":         "http://localhost:3000",
	"cors_allowed_origins": []string{},
	"admin_token":          "",
	"error_tracking_dsn":   "",

	"ory_kratos_public": "http://localhost:4433",
	"ory_kratos_admin":  "http://localhost:4434",

	"disable_automigrate": false,
	"rbac_config_path":    "",

	"postgres_user":         "wbi",
	"postgres_password":     "wbi",
	"postgres_host":         "localhost",
	"postgres_port":         "5432",
	"postgres_db":           "wbi",
	"db_max_open_conns":     25,
	"db_min_conns":          5,
	"db_conn_max_lifetime":  4 * time.Hour,
	"db_conn_max_idle_time": 15 * time.Minute,

	"rate_limit_rps":         10.0,
	"rate_limit_burst":       30,
	"rate_limit_max_clients": 10000,

	"document_storage_dir": "./data/documents",
	"document_max_size":    int64(25 << 20),

	"active_business_cache_ttl":  15 * time.Minute,
	"active_business_cache_size": 4096,

	"otel_exporter":               "",
	"otel_exporter_otlp_endpoint": "",
	"otel_exporter_otlp_insecure": false,
	"otel_service_name":           "wbi",
}

// Load reads the configuration from the environment. Every key has a default,
// so a missing variable never fails.
func Load() (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, errors.Wrap(err, "could not decode configuration")
	}

	cfg.CORSAllowedOrigins = trimAll(cfg.CORSAllowedOrigins)
	if len(cfg.CORSAllowedOrigins) == 0 && cfg.FrontendURL != "" {
		cfg.CORSAllowedOrigins = []string{cfg.FrontendURL}
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.RateLimit.RPS <= 0 || cfg.RateLimit.Burst <= 0 {
		return Config{}, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return cfg, nil
}

// MustLoad panics if the configuration cannot be decoded.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func trimAll(values []string) []string {
	res := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
