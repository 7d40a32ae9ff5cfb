// Package config provides TOML (or YAML) configuration for svgpanel.
//
// The defaults reproduce the Toolbox "modscan" panel: 8 HP, purple theme,
// the model name set in Quicksand Light at 22pt.
package config

import (
	"fmt"

	"gitlab.com/tinyland/lab/svgpanel/pkg/panel"
	"gitlab.com/tinyland/lab/svgpanel/pkg/theme"
)

// Config is the complete generator configuration.
type Config struct {
	// Output is where the primary panel is written.
	Output string `toml:"output" yaml:"output"`

	// Theme names a registered theme; ThemeFile optionally loads one first.
	Theme     string `toml:"theme" yaml:"theme"`
	ThemeFile string `toml:"theme_file" yaml:"theme_file"`

	// FontFile is the TrueType/OpenType font labels are measured with.
	FontFile string `toml:"font_file" yaml:"font_file"`

	Panel PanelConfig `toml:"panel" yaml:"panel"`
	Label LabelConfig `toml:"label" yaml:"label"`

	// Panels lists extra panels generated alongside the primary one. Unset
	// fields inherit from the top-level settings.
	Panels []PanelJobConfig `toml:"panels" yaml:"panels"`
}

// PanelConfig sets the plate geometry and colours. Colours left empty come
// from the theme.
type PanelConfig struct {
	WidthHP     int     `toml:"width_hp" yaml:"width_hp"`
	HeightMM    float64 `toml:"height_mm" yaml:"height_mm"`
	FillColor   string  `toml:"fill_color" yaml:"fill_color"`
	BorderColor string  `toml:"border_color" yaml:"border_color"`
}

// LabelConfig sets the model-name label.
type LabelConfig struct {
	Text   string  `toml:"text" yaml:"text"`
	Points float64 `toml:"points" yaml:"points"`
	TopMM  float64 `toml:"top_mm" yaml:"top_mm"`
	ID     string  `toml:"id" yaml:"id"`

	// Style replaces the generated stroke style when set.
	Style string `toml:"style" yaml:"style"`
}

// PanelJobConfig describes one extra panel.
type PanelJobConfig struct {
	Output  string `toml:"output" yaml:"output"`
	Label   string `toml:"label" yaml:"label"`
	WidthHP int    `toml:"width_hp" yaml:"width_hp"`
	Theme   string `toml:"theme" yaml:"theme"`
}

// Job is one fully resolved panel to generate.
type Job struct {
	Output      string
	FontFile    string
	WidthHP     int
	HeightMM    float64
	FillColor   string
	BorderColor string
	Text        string
	Label       panel.LabelOptions
}

// DefaultConfig returns the configuration of the modscan panel.
func DefaultConfig() *Config {
	return &Config{
		Output:   "../res/modscan.svg",
		Theme:    theme.DefaultName,
		FontFile: "Quicksand-Light.ttf",
		Panel: PanelConfig{
			WidthHP:  8,
			HeightMM: panel.PanelHeightMM,
		},
		Label: LabelConfig{
			Text:   "modscan",
			Points: panel.DefaultLabelPoints,
			TopMM:  panel.DefaultLabelTopMM,
			ID:     panel.DefaultLabelID,
		},
	}
}

// Validate checks the configuration for values no panel can be built from.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("config: output path is required")
	}
	if c.FontFile == "" {
		return fmt.Errorf("config: font_file is required")
	}
	if c.Panel.WidthHP < 1 {
		return fmt.Errorf("config: panel.width_hp %d: %w", c.Panel.WidthHP, panel.ErrInvalidDimension)
	}
	if c.Panel.HeightMM <= 0 {
		return fmt.Errorf("config: panel.height_mm %v: %w", c.Panel.HeightMM, panel.ErrInvalidDimension)
	}
	for _, f := range []struct{ field, value string }{
		{"panel.fill_color", c.Panel.FillColor},
		{"panel.border_color", c.Panel.BorderColor},
	} {
		if f.value != "" && !theme.IsHexColor(f.value) {
			return fmt.Errorf("config: %s %q: %w", f.field, f.value, panel.ErrInvalidColor)
		}
	}
	if c.Label.Text == "" {
		return fmt.Errorf("config: label.text is required")
	}
	if c.Label.Points <= 0 {
		return fmt.Errorf("config: label.points %v must be positive", c.Label.Points)
	}
	for i, p := range c.Panels {
		if p.Output == "" {
			return fmt.Errorf("config: panels[%d]: output path is required", i)
		}
		if p.Label == "" {
			return fmt.Errorf("config: panels[%d]: label is required", i)
		}
		if p.WidthHP < 0 {
			return fmt.Errorf("config: panels[%d]: width_hp %d: %w", i, p.WidthHP, panel.ErrInvalidDimension)
		}
	}
	return nil
}

// Jobs resolves themes and returns the primary panel followed by any extra
// panels. Explicit colours take precedence over the theme.
func (c *Config) Jobs() ([]Job, error) {
	if c.ThemeFile != "" {
		if _, err := theme.LoadFile(c.ThemeFile); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	primary, err := c.job(c.Output, c.Label.Text, c.Panel.WidthHP, c.Theme)
	if err != nil {
		return nil, err
	}
	jobs := []Job{primary}

	for i, p := range c.Panels {
		width := p.WidthHP
		if width == 0 {
			width = c.Panel.WidthHP
		}
		name := p.Theme
		if name == "" {
			name = c.Theme
		}
		j, err := c.job(p.Output, p.Label, width, name)
		if err != nil {
			return nil, fmt.Errorf("config: panels[%d]: %w", i, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func (c *Config) job(output, text string, widthHP int, themeName string) (Job, error) {
	th, ok := theme.Get(themeName)
	if !ok {
		return Job{}, fmt.Errorf("config: unknown theme %q", themeName)
	}

	fill, border := th.Panel, th.Border
	if c.Panel.FillColor != "" {
		fill = c.Panel.FillColor
	}
	if c.Panel.BorderColor != "" {
		border = c.Panel.BorderColor
	}

	style := c.Label.Style
	if style == "" {
		s := panel.DefaultLabelStyle()
		s.Stroke = th.Label
		style = s.String()
	}

	return Job{
		Output:      output,
		FontFile:    c.FontFile,
		WidthHP:     widthHP,
		HeightMM:    c.Panel.HeightMM,
		FillColor:   fill,
		BorderColor: border,
		Text:        text,
		Label: panel.LabelOptions{
			Points:      c.Label.Points,
			TopOffsetMM: c.Label.TopMM,
			Style:       style,
			ID:          c.Label.ID,
		},
	}, nil
}
