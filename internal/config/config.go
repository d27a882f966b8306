// Package config provides YAML-based configuration loading for the
// 2048 platform: tick rate, run storage, SSH server and tile theme.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalid is returned by Validate when a setting is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all configuration for the 2048 platform.
type Config struct {
	TickRate int           `yaml:"tick_rate"`
	Storage  StorageConfig `yaml:"storage"`
	SSH      SSHConfig     `yaml:"ssh"`
	Theme    ThemeConfig   `yaml:"theme"`
}

// StorageConfig defines where finished runs are journalled.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ThemeConfig maps tile values to colors.
// Colors are hex strings ("#eee4da") or ANSI 256 codes ("208").
type ThemeConfig struct {
	Tiles     map[int]string `yaml:"tiles"`
	Super     string         `yaml:"super"`      // Tiles above the largest mapped value
	Empty     string         `yaml:"empty"`      // Empty cell background
	DarkText  string         `yaml:"dark_text"`  // Text on 2 and 4
	LightText string         `yaml:"light_text"` // Text on everything above 4
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|[0-9]{1,3})$`)

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("%w: tick_rate %d (want 1-240)", ErrInvalid, c.TickRate)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalid)
	}
	if c.SSH.Address == "" {
		return fmt.Errorf("%w: ssh.address is empty", ErrInvalid)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout %s is negative", ErrInvalid, c.SSH.IdleTimeout)
	}
	return c.Theme.Validate()
}

// Validate checks tile values and color strings.
func (t ThemeConfig) Validate() error {
	for value, color := range t.Tiles {
		if value < 2 || value&(value-1) != 0 {
			return fmt.Errorf("%w: theme tile %d is not a power of two", ErrInvalid, value)
		}
		if !colorPattern.MatchString(color) {
			return fmt.Errorf("%w: theme tile %d color %q", ErrInvalid, value, color)
		}
	}
	named := map[string]string{
		"super":      t.Super,
		"empty":      t.Empty,
		"dark_text":  t.DarkText,
		"light_text": t.LightText,
	}
	for name, color := range named {
		if color != "" && !colorPattern.MatchString(color) {
			return fmt.Errorf("%w: theme %s color %q", ErrInvalid, name, color)
		}
	}
	return nil
}

// TileColor returns the configured background for a tile value.
// Values above every mapped tile use Super.
func (t ThemeConfig) TileColor(value int) string {
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	return t.Super
}
