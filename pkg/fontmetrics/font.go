// Package fontmetrics measures and outlines text using the metrics of a
// TrueType/OpenType font. All lengths it returns are in millimeters.
//
// A Font is acquired with Open (or Parse for embedded data) and must be
// released with Close. WithFont wraps both in a scoped call so the font is
// released on every exit path.
package fontmetrics

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// MMPerPoint converts typographic points to millimeters.
const MMPerPoint = 25.4 / 72.0

var (
	// ErrFontLoad reports that a font resource could not be opened or parsed,
	// or was used after Close.
	ErrFontLoad = errors.New("font load failed")

	// ErrMeasurement reports that a string could not be shaped with the font,
	// typically because a glyph is missing.
	ErrMeasurement = errors.New("text measurement failed")
)

// Font is an opened font resource. It is safe for concurrent use, but
// callers normally scope one Font to one generation run.
type Font struct {
	mu     sync.Mutex
	path   string
	sf     *sfnt.Font
	buf    sfnt.Buffer
	closed bool
}

// Open reads and parses the font file at path.
func Open(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontmetrics: open %q: %w: %w", path, ErrFontLoad, err)
	}
	f, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontmetrics: parse %q: %w", path, err)
	}
	f.path = path
	return f, nil
}

// Parse parses font data already held in memory, such as an embedded font.
func Parse(data []byte) (*Font, error) {
	f, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontmetrics: %w", err)
	}
	return f, nil
}

func parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", ErrFontLoad)
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	return &Font{sf: sf}, nil
}

// WithFont opens the font at path, calls fn with it, and closes it again
// regardless of how fn returns.
func WithFont(path string, fn func(*Font) error) (err error) {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

// Close releases the font. Calling Close more than once is a no-op.
func (f *Font) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.sf = nil
	return nil
}

// Path returns the file the font was opened from, or "" for parsed data.
func (f *Font) Path() string {
	return f.path
}

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ""
	}
	name, err := f.sf.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Measure returns the advance width and line height of text rendered at the
// given point size. The width is the sum of glyph advances plus pair
// kerning; the height is the face's ascent plus descent.
func (f *Font) Measure(text string, points float64) (width, height float64, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	run, err := f.shape(text, points)
	if err != nil {
		return 0, 0, err
	}
	return run.units(run.advance), run.units(run.ascent + run.descent), nil
}

// glyphPos is one shaped glyph and the pen position it is drawn at.
type glyphPos struct {
	index sfnt.GlyphIndex
	penX  fixed.Int26_6
}

// shapedRun is a string laid out on a single baseline, in font units.
type shapedRun struct {
	glyphs  []glyphPos
	advance fixed.Int26_6
	ascent  fixed.Int26_6
	descent fixed.Int26_6
	scale   float64 // millimeters per font unit
}

func (r shapedRun) units(v fixed.Int26_6) float64 {
	return float64(v) / 64 * r.scale
}

// shape lays out text glyph by glyph. Coordinates stay in font units so
// measurement and outlining share exactly the same pen positions.
// The caller must hold f.mu.
func (f *Font) shape(text string, points float64) (shapedRun, error) {
	if f.closed || f.sf == nil {
		return shapedRun{}, fmt.Errorf("fontmetrics: %w: font is closed", ErrFontLoad)
	}
	if points <= 0 {
		return shapedRun{}, fmt.Errorf("fontmetrics: %w: point size %v must be positive", ErrMeasurement, points)
	}
	if text == "" {
		return shapedRun{}, fmt.Errorf("fontmetrics: %w: empty string", ErrMeasurement)
	}

	upem := fixed.I(int(f.sf.UnitsPerEm()))
	run := shapedRun{
		scale: points * MMPerPoint / float64(f.sf.UnitsPerEm()),
	}

	m, err := f.sf.Metrics(&f.buf, upem, font.HintingNone)
	if err != nil {
		return shapedRun{}, fmt.Errorf("fontmetrics: %w: metrics: %w", ErrMeasurement, err)
	}
	run.ascent, run.descent = m.Ascent, m.Descent

	var (
		pen  fixed.Int26_6
		prev sfnt.GlyphIndex
	)
	for i, r := range text {
		gi, err := f.sf.GlyphIndex(&f.buf, r)
		if err != nil {
			return shapedRun{}, fmt.Errorf("fontmetrics: %w: glyph for %q: %w", ErrMeasurement, r, err)
		}
		if gi == 0 {
			return shapedRun{}, fmt.Errorf("fontmetrics: %w: no glyph for %q at offset %d", ErrMeasurement, r, i)
		}
		if i > 0 {
			k, err := f.sf.Kern(&f.buf, prev, gi, upem, font.HintingNone)
			switch {
			case err == nil:
				pen += k
			case errors.Is(err, sfnt.ErrNotFound):
			default:
				return shapedRun{}, fmt.Errorf("fontmetrics: %w: kern: %w", ErrMeasurement, err)
			}
		}
		adv, err := f.sf.GlyphAdvance(&f.buf, gi, upem, font.HintingNone)
		if err != nil {
			return shapedRun{}, fmt.Errorf("fontmetrics: %w: advance for %q: %w", ErrMeasurement, r, err)
		}
		run.glyphs = append(run.glyphs, glyphPos{index: gi, penX: pen})
		pen += adv
		prev = gi
	}
	run.advance = pen
	return run, nil
}
