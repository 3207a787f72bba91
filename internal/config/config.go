package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	CacheBackendFile  = "file"
	CacheBackendMySQL = "mysql"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Wordnik   WordnikConfig   `mapstructure:"wordnik"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Refresh   RefreshConfig   `mapstructure:"refresh"`
	Database  DatabaseConfig  `mapstructure:"database"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
	// BaseURL is the public URL of the page used in feed links. Taken from the request when empty.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type WordnikConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type CacheConfig struct {
	Backend string `mapstructure:"backend" validate:"oneof=file mysql"`
	File    string `mapstructure:"file" validate:"required_if=Backend file"`
	// Memory keeps the current record in process memory in front of the backend
	Memory bool `mapstructure:"memory"`
}

type TemplatesConfig struct {
	IndexTemplate string `mapstructure:"index_template" validate:"omitempty,template"`
	ErrorTemplate string `mapstructure:"error_template" validate:"omitempty,template"`
}

// RefreshConfig schedules a resolution of the word while the server is running.
// Schedule is a five field cron spec in UTC.
type RefreshConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordoftheday")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.base_url", "")
	v.SetDefault("wordnik.base_url", "https://api.wordnik.com/v4")
	v.SetDefault("wordnik.timeout", 10*time.Second)
	v.SetDefault("cache.backend", CacheBackendFile)
	v.SetDefault("cache.file", "cache.json")
	v.SetDefault("cache.memory", true)
	// Templates are optional; the embedded ones are used when empty
	v.SetDefault("templates.index_template", "")
	v.SetDefault("templates.error_template", "")
	v.SetDefault("refresh.enabled", true)
	v.SetDefault("refresh.schedule", "5 0 * * *")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "local")
	v.SetDefault("database.username", "user")

	// WORDNIK_API_KEY takes precedence over wordnik.api_key in the config file
	if err := v.BindEnv("wordnik.api_key", "WORDNIK_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDNIK_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
