package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
//
//	name = "toolbox"
//	[colors]
//	panel = "#a06de4"
//	border = "#5021d4"
//	label = "#000000"
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Colors thTOMLColors `toml:"colors"`
}

type thTOMLColors struct {
	Panel  string `toml:"panel"`
	Border string `toml:"border"`
	Label  string `toml:"label"`
}

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:   tt.Name,
		Panel:  tt.Colors.Panel,
		Border: tt.Colors.Border,
		Label:  tt.Colors.Label,
	}
	if err := Validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a TOML theme file and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, err
	}
	thRegister(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Colors: thTOMLColors{
			Panel:  t.Panel,
			Border: t.Border,
			Label:  t.Label,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}
