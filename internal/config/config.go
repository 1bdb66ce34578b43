package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the tool
type Config struct {
	Request RequestConfig
	Schema  SchemaConfig
	Output  OutputConfig
	API     APIConfig
	Logger  LoggerConfig
}

// RequestConfig holds the default field values used when no positional
// arguments are supplied on the command line.
type RequestConfig struct {
	DefaultUsername string `mapstructure:"DEFAULT_USERNAME"`
	DefaultEmail    string `mapstructure:"DEFAULT_EMAIL"`
	DefaultAge      int32  `mapstructure:"DEFAULT_AGE"`
}

// SchemaConfig holds the location of the compiled protobuf schema.
type SchemaConfig struct {
	DescriptorPath string `mapstructure:"SCHEMA_DESCRIPTOR_PATH"`
}

// OutputConfig holds the destination of the encoded request file.
type OutputConfig struct {
	File string `mapstructure:"OUTPUT_FILE"`
}

// APIConfig holds the endpoint advertised in the printed curl hint.
// The tool never talks to it.
type APIConfig struct {
	BaseURL string `mapstructure:"API_BASE_URL"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level          string `mapstructure:"LOG_LEVEL"`
	Format         string `mapstructure:"LOG_FORMAT"`
	OutputPath     string `mapstructure:"LOG_OUTPUT_PATH"`
	EnableSampling bool   `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName    string `mapstructure:"SERVICE_NAME"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults first
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	v.AutomaticEnv() // Read from environment variables

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	// Manually populate config from viper
	config.Request.DefaultUsername = v.GetString("DEFAULT_USERNAME")
	config.Request.DefaultEmail = v.GetString("DEFAULT_EMAIL")
	config.Request.DefaultAge = v.GetInt32("DEFAULT_AGE")

	config.Schema.DescriptorPath = v.GetString("SCHEMA_DESCRIPTOR_PATH")
	config.Output.File = v.GetString("OUTPUT_FILE")
	config.API.BaseURL = v.GetString("API_BASE_URL")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DEFAULT_USERNAME", "testuser")
	v.SetDefault("DEFAULT_EMAIL", "test@example.com")
	v.SetDefault("DEFAULT_AGE", 25)

	v.SetDefault("SCHEMA_DESCRIPTOR_PATH", "user.protoset")
	v.SetDefault("OUTPUT_FILE", "create_user.bin")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")

	// Logger defaults
	env := os.Getenv("APP_ENV")
	if env == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	// Keep stdout clean for the confirmation block and curl hint.
	v.SetDefault("LOG_OUTPUT_PATH", "stderr")
	v.SetDefault("SERVICE_NAME", "protoreq")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if c.Output.File == "" {
		return fmt.Errorf("OUTPUT_FILE must not be empty")
	}
	if c.Schema.DescriptorPath == "" {
		return fmt.Errorf("SCHEMA_DESCRIPTOR_PATH must not be empty")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("API_BASE_URL is not a valid URL: %w", err)
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logger.Format)
	}
	return nil
}
