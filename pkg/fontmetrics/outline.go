package fontmetrics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Outline returns SVG path data tracing the glyph contours of text at the
// given point size. (x, y) is the top-left corner of the line box in
// millimeters; the baseline sits one ascent below y. Pen positions are the
// same ones Measure uses, so a string placed at x spans exactly the
// measured advance width.
func (f *Font) Outline(text string, points, x, y float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	run, err := f.shape(text, points)
	if err != nil {
		return "", err
	}

	upem := fixed.I(int(f.sf.UnitsPerEm()))
	baseline := y + run.units(run.ascent)

	var b strings.Builder
	for _, g := range run.glyphs {
		segs, err := f.sf.LoadGlyph(&f.buf, g.index, upem, nil)
		if err != nil {
			return "", fmt.Errorf("fontmetrics: %w: outline glyph %d: %w", ErrMeasurement, g.index, err)
		}
		writeSegments(&b, segs, x+run.units(g.penX), baseline, run.scale)
	}
	return strings.TrimSpace(b.String()), nil
}

// writeSegments appends one glyph's contours. sfnt reports Y increasing
// downwards, which matches SVG, so only translation and scale are applied.
// Contours are not closed by sfnt itself; each new MoveTo closes the
// previous one.
func writeSegments(b *strings.Builder, segs sfnt.Segments, originX, baseline, scale float64) {
	pt := func(p fixed.Point26_6) string {
		px := originX + float64(p.X)/64*scale
		py := baseline + float64(p.Y)/64*scale
		return formatMM(px) + " " + formatMM(py)
	}

	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				b.WriteString("Z ")
			}
			b.WriteString("M " + pt(s.Args[0]) + " ")
			open = true
		case sfnt.SegmentOpLineTo:
			b.WriteString("L " + pt(s.Args[0]) + " ")
		case sfnt.SegmentOpQuadTo:
			b.WriteString("Q " + pt(s.Args[0]) + " " + pt(s.Args[1]) + " ")
		case sfnt.SegmentOpCubeTo:
			b.WriteString("C " + pt(s.Args[0]) + " " + pt(s.Args[1]) + " " + pt(s.Args[2]) + " ")
		}
	}
	if open {
		b.WriteString("Z ")
	}
}

// formatMM renders a coordinate with at most three decimals and no
// trailing zeros. Output must be stable across runs.
func formatMM(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
