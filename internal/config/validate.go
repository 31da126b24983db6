package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateROIs(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateROIs() error {
	if len(c.ROIs) == 0 {
		return errors.New("at least one [[roi]] entry must be configured")
	}
	seen := make(map[string]struct{}, len(c.ROIs))
	for i, roi := range c.ROIs {
		if roi.Name == "" {
			return fmt.Errorf("roi[%d].name must be set", i)
		}
		if _, dup := seen[roi.Name]; dup {
			return fmt.Errorf("roi name %q is duplicated; names double as output subfolders and must be unique", roi.Name)
		}
		seen[roi.Name] = struct{}{}

		if roi.Skip < 0 {
			return fmt.Errorf("roi %q: skip must not be negative", roi.Name)
		}
		switch roi.Anchor {
		case AnchorDistal:
			if roi.Copy <= 0 {
				return fmt.Errorf("roi %q: distal regions need copy > 0", roi.Name)
			}
			if roi.Count != 0 {
				return fmt.Errorf("roi %q: count is a proximal-only field", roi.Name)
			}
		case AnchorProximal:
			if roi.Count <= 0 {
				return fmt.Errorf("roi %q: proximal regions need count > 0", roi.Name)
			}
			if roi.Copy != 0 {
				return fmt.Errorf("roi %q: copy is a distal-only field", roi.Name)
			}
		default:
			return fmt.Errorf("roi %q: anchor must be %q or %q, got %q", roi.Name, AnchorDistal, AnchorProximal, roi.Anchor)
		}
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if c.Display.MaxWidth <= 0 {
		return errors.New("display.max_width must be positive")
	}
	if c.Display.MaxHeight <= 0 {
		return errors.New("display.max_height must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
