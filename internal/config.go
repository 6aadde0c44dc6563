package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Memory MemoryConfig      `yaml:"memory"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Memory.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// MemoryConfig locates the memory workspace and its documents.
//
// Root is the workspace directory; LongTermFile and DailyDir are relative
// to it. Extensions lists the recognized daily-file suffixes.
type MemoryConfig struct {
	Root         string   `yaml:"root"`
	LongTermFile string   `yaml:"long_term_file"`
	DailyDir     string   `yaml:"daily_dir"`
	Extensions   []string `yaml:"extensions"`
}

// Validate validates the memory configuration and normalises defaults.
func (c *MemoryConfig) Validate() error {
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".md"}
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.LongTermFile, validation.Required),
		validation.Field(&c.DailyDir, validation.Required),
	); err != nil {
		return err
	}
	for _, ext := range c.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("memory: invalid extension %q (must start with '.')", ext)
		}
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Memory: MemoryConfig{
			Root:         "./workspace",
			LongTermFile: "MEMORY.md",
			DailyDir:     "memory",
			Extensions:   []string{".md"},
		},
	}
}
