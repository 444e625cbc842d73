package config

import (
	"fmt"
	"os"

	"github.com/skillsenselab/skillgraph/interview"
	"github.com/skillsenselab/skillgraph/judge"
	"github.com/skillsenselab/skillgraph/logger"
	"github.com/skillsenselab/skillgraph/server"
)

// ServiceConfig holds service identity settings.
type ServiceConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// GraphConfig holds knowledge graph settings.
type GraphConfig struct {
	// SeedFile is a YAML node set loaded into the registry at startup.
	// Empty means start with an empty graph.
	SeedFile string `yaml:"seed_file" mapstructure:"seed_file"`
}

// Config is the full service configuration.
type Config struct {
	Service   ServiceConfig    `yaml:"service" mapstructure:"service"`
	Logging   logger.Config    `yaml:"logging" mapstructure:"logging"`
	Server    server.Config    `yaml:"server" mapstructure:"server"`
	Graph     GraphConfig      `yaml:"graph" mapstructure:"graph"`
	Judge     judge.Config     `yaml:"judge" mapstructure:"judge"`
	Interview interview.Config `yaml:"interview" mapstructure:"interview"`
}

// LoadConfig loads, defaults, and validates the full service configuration.
func LoadConfig(serviceName string, opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := Load(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults(serviceName)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults sets sensible default values for unset fields in all sections.
func (c *Config) ApplyDefaults(serviceName string) {
	if c.Service.Name == "" {
		c.Service.Name = serviceName
	}
	if c.Service.Environment == "" {
		c.Service.Environment = "development"
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Service.Name
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Judge.ApplyDefaults()
	c.Interview.ApplyDefaults()

	// The judge credential is env-only by convention, never written to the
	// config file.
	if c.Judge.APIKey == "" {
		c.Judge.APIKey = os.Getenv("JUDGE_API_KEY")
	}
	if c.Judge.BaseURL == "" {
		c.Judge.BaseURL = os.Getenv("JUDGE_BASE_URL")
	}
}

// Validate checks all sections for invalid values.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Judge.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Interview.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
