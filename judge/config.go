package judge

import "fmt"

// Config holds scoring service configuration. An empty APIKey is not an
// error: it selects the dummy judge.
type Config struct {
	APIKey      string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"` // Azure endpoint when set
	Model       string  `yaml:"model" mapstructure:"model"`
	Temperature float32 `yaml:"temperature" mapstructure:"temperature"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("judge.temperature must be between 0 and 2 (got: %g)", c.Temperature)
	}
	return nil
}
