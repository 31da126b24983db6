// Package config loads, normalizes, and validates roimark's TOML
// configuration, including the configurable region-of-interest definitions.
package config
