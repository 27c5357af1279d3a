package main

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
)

// Color is an opaque #RRGGBB value in a config file.
type Color struct {
	color.NRGBA
}

func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("color %q: want #RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fmt.Errorf("color %q: %v", s, err)
	}
	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: 255}
	return nil
}

type Config struct {
	Background Color  `toml:"background"`
	Face       Color  `toml:"face"`
	Out        string `toml:"out"`
}

func DefaultConfig() Config {
	return Config{
		Background: Color{color.NRGBA{R: 66, G: 133, B: 244, A: 255}},
		Face:       Color{color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		Out:        ".",
	}
}

// LoadConfig reads p over the defaults; fields absent from the file keep
// their default values.
func LoadConfig(p string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(p, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
