package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Storage: StorageConfig{
			DBPath: "~/.t2048/runs.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Theme: DefaultTheme(),
	}
}

// DefaultTheme returns the classic 2048 tile palette.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Tiles: map[int]string{
			2:    "#eee4da",
			4:    "#ede0c8",
			8:    "#f2b179",
			16:   "#f59563",
			32:   "#f67c5f",
			64:   "#f65e3b",
			128:  "#edcf72",
			256:  "#edcc61",
			512:  "#edc850",
			1024: "#edc53f",
			2048: "#edc22e",
		},
		Super:     "#3c3a32",
		Empty:     "#cdc1b4",
		DarkText:  "#776e65",
		LightText: "#f9f6f2",
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultYAML
}
