package panel

import (
	"fmt"
	"strconv"

	"gitlab.com/tinyland/lab/svgpanel/pkg/fontmetrics"
)

// Label defaults.
const (
	DefaultLabelPoints = 22.0
	DefaultLabelTopMM  = 0.2
	DefaultLabelID     = "model_name"
)

// Face is the font-metrics provider a label is measured and drawn with.
// Lengths are millimeters. (x, y) passed to Outline is the top-left corner
// of the line box.
type Face interface {
	Measure(text string, points float64) (width, height float64, err error)
	Outline(text string, points, x, y float64) (string, error)
}

// TextItem is a string to be set in a face at a point size. The face is
// borrowed; whoever opened it closes it.
type TextItem struct {
	Text   string
	Face   Face
	Points float64
}

// Extent is a measured text size in millimeters. Width is the advance
// width, not the ink bounding box.
type Extent struct {
	Width  float64
	Height float64
}

// LabelStyle describes the stroke a label outline is painted with.
type LabelStyle struct {
	Display     string
	Stroke      string
	StrokeWidth float64
	LineCap     string
	LineJoin    string
}

// DefaultLabelStyle is a thin black round-capped stroke.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		Display:     "inline",
		Stroke:      "#000000",
		StrokeWidth: 0.35,
		LineCap:     "round",
		LineJoin:    "bevel",
	}
}

// String renders the style as an inline SVG style attribute value.
func (s LabelStyle) String() string {
	return "display:" + s.Display +
		";stroke:" + s.Stroke +
		";stroke-width:" + strconv.FormatFloat(s.StrokeWidth, 'f', -1, 64) +
		";stroke-linecap:" + s.LineCap +
		";stroke-linejoin:" + s.LineJoin
}

// LabelOptions controls how BuildLabel sets a label.
type LabelOptions struct {
	Points      float64
	TopOffsetMM float64
	Style       string
	ID          string
}

// DefaultLabelOptions returns 22pt text 0.2mm below the top edge in the
// default style.
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{
		Points:      DefaultLabelPoints,
		TopOffsetMM: DefaultLabelTopMM,
		Style:       DefaultLabelStyle().String(),
		ID:          DefaultLabelID,
	}
}

// TextPath is a label positioned on the panel. PathData holds the glyph
// outlines in panel millimeters.
type TextPath struct {
	Item     TextItem
	X, Y     float64
	Style    string
	ID       string
	PathData string
}

// MeasureText measures item with its face at its point size.
func MeasureText(item TextItem) (Extent, error) {
	if item.Face == nil {
		return Extent{}, fmt.Errorf("panel: measure %q: no font face: %w", item.Text, fontmetrics.ErrFontLoad)
	}
	w, h, err := item.Face.Measure(item.Text, item.Points)
	if err != nil {
		return Extent{}, fmt.Errorf("panel: measure %q at %vpt: %w", item.Text, item.Points, err)
	}
	return Extent{Width: w, Height: h}, nil
}

// CenterText returns the top-left position that centers item horizontally
// on a panel panelMMWidth wide, topOffsetMM below the top edge.
// Centering uses the advance width: x = (panelMMWidth - advance) / 2.
func CenterText(item TextItem, panelMMWidth, topOffsetMM float64) (x, y float64, err error) {
	ext, err := MeasureText(item)
	if err != nil {
		return 0, 0, err
	}
	return (panelMMWidth - ext.Width) / 2, topOffsetMM, nil
}

// BuildLabel measures text, centers it on the panel and traces its
// outline. Any measurement failure is returned; no label is produced with
// guessed geometry.
func BuildLabel(text string, face Face, panelMMWidth float64, opts LabelOptions) (TextPath, error) {
	if opts.Style == "" {
		opts.Style = DefaultLabelStyle().String()
	}
	if opts.ID == "" {
		opts.ID = DefaultLabelID
	}

	item := TextItem{Text: text, Face: face, Points: opts.Points}
	x, y, err := CenterText(item, panelMMWidth, opts.TopOffsetMM)
	if err != nil {
		return TextPath{}, err
	}
	d, err := face.Outline(text, opts.Points, x, y)
	if err != nil {
		return TextPath{}, fmt.Errorf("panel: outline %q: %w", text, err)
	}
	return TextPath{
		Item:     item,
		X:        x,
		Y:        y,
		Style:    opts.Style,
		ID:       opts.ID,
		PathData: d,
	}, nil
}
