package interview

import "fmt"

// Default term-overlap thresholds per target level.
const (
	DefaultThresholdA1 = 0.20
	DefaultThresholdA2 = 0.30
	DefaultThresholdA3 = 0.40
)

// MinTermLength is the shortest criteria term considered meaningful. Words of
// this length or shorter are noise ("the", "and", "is").
const MinTermLength = 3

// Config holds the scoring gate thresholds.
type Config struct {
	ThresholdA1 float64 `yaml:"threshold_a1" mapstructure:"threshold_a1"`
	ThresholdA2 float64 `yaml:"threshold_a2" mapstructure:"threshold_a2"`
	ThresholdA3 float64 `yaml:"threshold_a3" mapstructure:"threshold_a3"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.ThresholdA1 == 0 {
		c.ThresholdA1 = DefaultThresholdA1
	}
	if c.ThresholdA2 == 0 {
		c.ThresholdA2 = DefaultThresholdA2
	}
	if c.ThresholdA3 == 0 {
		c.ThresholdA3 = DefaultThresholdA3
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"threshold_a1": c.ThresholdA1,
		"threshold_a2": c.ThresholdA2,
		"threshold_a3": c.ThresholdA3,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("interview.%s must be between 0 and 1 (got: %g)", name, v)
		}
	}
	return nil
}
