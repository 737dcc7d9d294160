package grid

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero spacing", func(c *Config) { c.Spacing = 0 }, false},
		{"negative spacing", func(c *Config) { c.Spacing = -1 }, false},
		{"zero rows", func(c *Config) { c.Rows = 0 }, false},
		{"zero scale floor", func(c *Config) { c.ScaleFloor = 0 }, false},
		{"zero divisor", func(c *Config) { c.ScaleDivisor = 0 }, false},
		{"coverage below one", func(c *Config) { c.Coverage = 0.5 }, false},
		{"vanish out of range", func(c *Config) { c.VanishY = 1.5 }, false},
		{"NaN speed", func(c *Config) { c.Speed = math.NaN() }, false},
		{"infinite spacing", func(c *Config) { c.Spacing = math.Inf(1) }, false},
		{"negative speed", func(c *Config) { c.Speed = -1 }, false},
		{"zero min font", func(c *Config) { c.Text.MinSize = 0 }, false},
		{"shrink above one", func(c *Config) { c.Text.ShrinkFactor = 1.5 }, false},
		{"paused speed", func(c *Config) { c.Speed = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
