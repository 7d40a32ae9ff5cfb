// Package svgdoc assembles panel descriptors into an SVG document and saves
// it. A Panel owns an ordered list of layers; each Layer paints its
// elements in the order they were appended.
package svgdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"gitlab.com/tinyland/lab/svgpanel/pkg/panel"
)

// decimals is the precision of every length written to the document.
const decimals = 3

// ErrWrite reports that the document could not be written to its target.
var ErrWrite = errors.New("write failed")

// Element is something a Layer can paint.
type Element interface {
	draw(c *svg.SVG)
}

// BorderElement paints a panel's background rectangle.
type BorderElement struct {
	Rect panel.BorderRect
}

// Border wraps a border descriptor as an Element.
func Border(r panel.BorderRect) *BorderElement {
	return &BorderElement{Rect: r}
}

func (e *BorderElement) draw(c *svg.SVG) {
	c.Rect(0, 0, e.Rect.MMWidth(), e.Rect.MMHeight, `id="border_rect"`, e.Rect.Style())
}

// LabelElement paints a label as glyph outlines.
type LabelElement struct {
	Path panel.TextPath
}

// Label wraps a positioned label as an Element.
func Label(p panel.TextPath) *LabelElement {
	return &LabelElement{Path: p}
}

func (e *LabelElement) draw(c *svg.SVG) {
	c.Path(e.Path.PathData, `id="`+e.Path.ID+`"`, e.Path.Style)
}

// Layer is a named group of elements.
type Layer struct {
	id       string
	elements []Element
}

// NewLayer returns an empty layer rendered as <g id="id">.
func NewLayer(id string) *Layer {
	return &Layer{id: id}
}

// ID returns the layer's group id.
func (l *Layer) ID() string {
	return l.id
}

// Append adds e on top of the elements already in the layer.
func (l *Layer) Append(e Element) {
	l.elements = append(l.elements, e)
}

// Elements returns the layer's elements in painting order.
func (l *Layer) Elements() []Element {
	out := make([]Element, len(l.elements))
	copy(out, l.elements)
	return out
}

// Panel is the root of a panel document.
type Panel struct {
	widthUnits int
	mmWidth    float64
	mmHeight   float64
	layers     []*Layer
}

// NewPanel returns an empty document for a widthUnits HP panel mmHeight tall.
func NewPanel(widthUnits int, mmHeight float64) (*Panel, error) {
	w, err := panel.ComputePanelWidth(widthUnits)
	if err != nil {
		return nil, err
	}
	if mmHeight <= 0 {
		return nil, fmt.Errorf("svgdoc: %w: height %vmm must be positive", panel.ErrInvalidDimension, mmHeight)
	}
	return &Panel{widthUnits: widthUnits, mmWidth: w, mmHeight: mmHeight}, nil
}

// WidthUnits returns the panel width in HP.
func (p *Panel) WidthUnits() int { return p.widthUnits }

// MMWidth returns the panel width in millimeters.
func (p *Panel) MMWidth() float64 { return p.mmWidth }

// MMHeight returns the panel height in millimeters.
func (p *Panel) MMHeight() float64 { return p.mmHeight }

// AppendLayer adds l above the layers already in the panel.
func (p *Panel) AppendLayer(l *Layer) {
	p.layers = append(p.layers, l)
}

// Layers returns the panel's layers in painting order.
func (p *Panel) Layers() []*Layer {
	out := make([]*Layer, len(p.layers))
	copy(out, p.layers)
	return out
}

// Bytes renders the document.
func (p *Panel) Bytes() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = decimals
	canvas.StartviewUnit(p.mmWidth, p.mmHeight, "mm", 0, 0, p.mmWidth, p.mmHeight)
	for _, l := range p.layers {
		canvas.Gid(l.id)
		for _, e := range l.elements {
			e.draw(canvas)
		}
		canvas.Gend()
	}
	canvas.End()
	return buf.Bytes()
}

// WriteTo renders the document to w.
func (p *Panel) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("svgdoc: %w: %w", ErrWrite, err)
	}
	return int64(n), nil
}
