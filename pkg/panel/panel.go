// Package panel computes the geometry of a module front panel: its physical
// size from a count of horizontal pitch units, the themed background
// rectangle that spans it, and the position of a label centered on it.
//
// Everything here is a pure function of its inputs. The package knows
// nothing about SVG; svgdoc turns the descriptors into markup.
package panel

import (
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/svgpanel/pkg/theme"
)

const (
	// UnitWidthMM is one horizontal pitch unit (HP) in millimeters.
	UnitWidthMM = 5.08

	// PanelHeightMM is the height of a 3U panel in millimeters.
	PanelHeightMM = 128.5
)

var (
	// ErrInvalidDimension reports a non-positive width or height.
	ErrInvalidDimension = errors.New("invalid panel dimension")

	// ErrInvalidColor reports a colour that is not "#RRGGBB".
	ErrInvalidColor = errors.New("invalid panel color")
)

// ComputePanelWidth returns the physical width of a panel that is
// widthUnits HP wide.
func ComputePanelWidth(widthUnits int) (float64, error) {
	if widthUnits <= 0 {
		return 0, fmt.Errorf("panel: %w: width %d HP must be at least 1", ErrInvalidDimension, widthUnits)
	}
	return float64(widthUnits) * UnitWidthMM, nil
}

// BorderRect is the background rectangle covering the whole panel.
type BorderRect struct {
	WidthUnits  int
	FillColor   string
	BorderColor string
	MMHeight    float64
}

// MMWidth is the rectangle width in millimeters.
func (b BorderRect) MMWidth() float64 {
	return float64(b.WidthUnits) * UnitWidthMM
}

// Style is the inline SVG style of the rectangle.
func (b BorderRect) Style() string {
	return "display:inline;fill:" + b.FillColor +
		";fill-opacity:1;fill-rule:nonzero;stroke:" + b.BorderColor +
		";stroke-width:0.7;stroke-linecap:round;stroke-linejoin:round;stroke-miterlimit:4;stroke-dasharray:none;stroke-opacity:1"
}

// BuildBorder returns the background rectangle of a widthUnits panel.
func BuildBorder(widthUnits int, fillColor, borderColor string, mmHeight float64) (BorderRect, error) {
	if _, err := ComputePanelWidth(widthUnits); err != nil {
		return BorderRect{}, err
	}
	if mmHeight <= 0 {
		return BorderRect{}, fmt.Errorf("panel: %w: height %vmm must be positive", ErrInvalidDimension, mmHeight)
	}
	if !theme.IsHexColor(fillColor) {
		return BorderRect{}, fmt.Errorf("panel: %w: fill %q", ErrInvalidColor, fillColor)
	}
	if !theme.IsHexColor(borderColor) {
		return BorderRect{}, fmt.Errorf("panel: %w: border %q", ErrInvalidColor, borderColor)
	}
	return BorderRect{
		WidthUnits:  widthUnits,
		FillColor:   fillColor,
		BorderColor: borderColor,
		MMHeight:    mmHeight,
	}, nil
}
