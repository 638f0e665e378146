package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the server and tooling configuration read from the environment
type Config struct {
	Environment    string        `mapstructure:"app_env"`
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	KeepAlive      time.Duration `mapstructure:"keepalive"`
	LogLevel       string        `mapstructure:"log_level"`
	TemplatesDir   string        `mapstructure:"templates_dir"`
	StaticDir      string        `mapstructure:"static_dir"`
	RedisURL       string        `mapstructure:"redis_url"`

	Firebase FirebaseConfig `mapstructure:",squash"`
}

// FirebaseConfig holds both the Admin SDK settings and the web SDK values
// that pages hand to the browser
type FirebaseConfig struct {
	CredentialsPath string `mapstructure:"firebase_credentials_path"`
	StorageBucket   string `mapstructure:"firebase_storage_bucket"`

	APIKey            string `mapstructure:"firebase_api_key"`
	AuthDomain        string `mapstructure:"firebase_auth_domain"`
	ProjectID         string `mapstructure:"firebase_project_id"`
	MessagingSenderID string `mapstructure:"firebase_messaging_sender_id"`
	AppID             string `mapstructure:"firebase_app_id"`
}

// WebConfig is the subset of Firebase settings safe to expose to templates
type WebConfig struct {
	APIKey            string
	AuthDomain        string
	ProjectID         string
	StorageBucket     string
	MessagingSenderID string
	AppID             string
}

// Web returns the browser-facing Firebase configuration
func (f FirebaseConfig) Web() WebConfig {
	return WebConfig{
		APIKey:            f.APIKey,
		AuthDomain:        f.AuthDomain,
		ProjectID:         f.ProjectID,
		StorageBucket:     f.StorageBucket,
		MessagingSenderID: f.MessagingSenderID,
		AppID:             f.AppID,
	}
}

// ToolConfig is the part of the configuration read by one-shot admin
// commands. Server settings are not decoded or validated.
type ToolConfig struct {
	LogLevel string         `mapstructure:"log_level"`
	Firebase FirebaseConfig `mapstructure:",squash"`
}

var logLevels = []interface{}{"trace", "debug", "info", "warn", "warning", "error"}

// Load reads configuration from environment variables on top of defaults.
// A .env file, if any, must already be loaded into the process environment.
func Load() (*Config, error) {
	v := newViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.Host == "" {
		cfg.Host = defaultHost(cfg.Environment)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadTool reads the logging and Firebase settings only
func LoadTool() (*ToolConfig, error) {
	v := newViper()

	var cfg ToolConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvProduction)
	v.SetDefault("host", "")
	v.SetDefault("port", "5000")
	v.SetDefault("request_timeout", 120*time.Second)
	v.SetDefault("keepalive", 5*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("templates_dir", "")
	v.SetDefault("static_dir", "web/static")
	v.SetDefault("redis_url", "")

	v.SetDefault("firebase_credentials_path", "./credentials.json")
	v.SetDefault("firebase_storage_bucket", "alabaztrum.appspot.com")
	v.SetDefault("firebase_api_key", "")
	v.SetDefault("firebase_auth_domain", "")
	v.SetDefault("firebase_project_id", "")
	v.SetDefault("firebase_messaging_sender_id", "")
	v.SetDefault("firebase_app_id", "")
}

// Local development binds to loopback; deployments listen on every interface.
func defaultHost(env string) string {
	if env == EnvDevelopment {
		return "127.0.0.1"
	}
	return "0.0.0.0"
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment,
			validation.Required,
			validation.In(EnvDevelopment, EnvProduction),
		),
		validation.Field(&c.Host, validation.Required, is.Host),
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.RequestTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.KeepAlive, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.LogLevel, validation.Required, validation.In(logLevels...)),
		validation.Field(&c.RedisURL, is.RequestURL),
		validation.Field(&c.Firebase),
	)
}

// Validate checks the tool settings
func (c *ToolConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, validation.In(logLevels...)),
		validation.Field(&c.Firebase),
	)
}

// Validate checks the Firebase settings
func (f FirebaseConfig) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.StorageBucket, validation.Required),
	)
}

// Address is the listen address for the HTTP server
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDevelopment reports whether the server runs in local development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}
