package svgdoc

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/svgpanel/pkg/panel"
)

// parsedDoc is the subset of the SVG structure the tests inspect.
type parsedDoc struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Groups  []struct {
		ID    string `xml:"id,attr"`
		Items []struct {
			XMLName xml.Name
			ID      string `xml:"id,attr"`
			Width   string `xml:"width,attr"`
			Height  string `xml:"height,attr"`
			Style   string `xml:"style,attr"`
			D       string `xml:"d,attr"`
		} `xml:",any"`
	} `xml:"g"`
}

func parseDoc(t *testing.T, data []byte) parsedDoc {
	t.Helper()
	var doc parsedDoc
	require.NoError(t, xml.Unmarshal(data, &doc), "document:\n%s", data)
	return doc
}

func attrFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "mm"), 64)
	require.NoError(t, err, "attribute %q", s)
	return v
}

func samplePanel(t *testing.T) *Panel {
	t.Helper()
	p, err := NewPanel(8, panel.PanelHeightMM)
	require.NoError(t, err)

	border, err := panel.BuildBorder(8, "#a06de4", "#5021d4", panel.PanelHeightMM)
	require.NoError(t, err)
	label := panel.TextPath{
		X: 10, Y: 0.2,
		ID:       "model_name",
		Style:    panel.DefaultLabelStyle().String(),
		PathData: "M 10 0.2 L 12 0.2 L 12 2 Z",
	}

	l := NewLayer("PanelLayer")
	p.AppendLayer(l)
	l.Append(Border(border))
	l.Append(Label(label))
	return p
}

// --- NewPanel ---

func TestNewPanelDimensions(t *testing.T) {
	p, err := NewPanel(8, panel.PanelHeightMM)
	require.NoError(t, err)
	assert.Equal(t, 8, p.WidthUnits())
	assert.Equal(t, 8*panel.UnitWidthMM, p.MMWidth())
	assert.Equal(t, panel.PanelHeightMM, p.MMHeight())
}

func TestNewPanelInvalid(t *testing.T) {
	_, err := NewPanel(0, panel.PanelHeightMM)
	assert.ErrorIs(t, err, panel.ErrInvalidDimension)
	_, err = NewPanel(4, -1)
	assert.ErrorIs(t, err, panel.ErrInvalidDimension)
}

// --- Rendering ---

func TestRenderStructure(t *testing.T) {
	doc := parseDoc(t, samplePanel(t).Bytes())

	assert.Equal(t, "40.640mm", doc.Width)
	assert.Equal(t, "128.500mm", doc.Height)
	assert.Equal(t, "0 0 40.640 128.500", doc.ViewBox)

	require.Len(t, doc.Groups, 1)
	g := doc.Groups[0]
	assert.Equal(t, "PanelLayer", g.ID)
	require.Len(t, g.Items, 2)

	rect := g.Items[0]
	assert.Equal(t, "rect", rect.XMLName.Local)
	assert.Equal(t, "border_rect", rect.ID)
	assert.Equal(t, "40.640", rect.Width)
	assert.Equal(t, "128.500", rect.Height)
	assert.Contains(t, rect.Style, "fill:#a06de4")
	assert.Contains(t, rect.Style, "stroke:#5021d4")

	path := g.Items[1]
	assert.Equal(t, "path", path.XMLName.Local)
	assert.Equal(t, "model_name", path.ID)
	assert.Equal(t, "M 10 0.2 L 12 0.2 L 12 2 Z", path.D)
	assert.Equal(t, panel.DefaultLabelStyle().String(), path.Style)
}

func TestRenderKeepsThreeDecimals(t *testing.T) {
	const height = 128.125
	p, err := NewPanel(8, height)
	require.NoError(t, err)
	border, err := panel.BuildBorder(8, "#a06de4", "#5021d4", height)
	require.NoError(t, err)
	l := NewLayer("PanelLayer")
	p.AppendLayer(l)
	l.Append(Border(border))

	doc := parseDoc(t, p.Bytes())
	assert.Equal(t, "128.125mm", doc.Height)
	assert.Equal(t, "0 0 40.640 128.125", doc.ViewBox)
	require.Len(t, doc.Groups, 1)
	require.Len(t, doc.Groups[0].Items, 1)
	rect := doc.Groups[0].Items[0]
	assert.Equal(t, "128.125", rect.Height)
	assert.Equal(t, height, attrFloat(t, doc.Height))
	assert.Equal(t, attrFloat(t, doc.Height), attrFloat(t, rect.Height))
}

func TestRenderDeterministic(t *testing.T) {
	assert.Equal(t, samplePanel(t).Bytes(), samplePanel(t).Bytes())
}

func TestLayerOrder(t *testing.T) {
	p := samplePanel(t)
	layers := p.Layers()
	require.Len(t, layers, 1)
	els := layers[0].Elements()
	require.Len(t, els, 2)
	_, isBorder := els[0].(*BorderElement)
	_, isLabel := els[1].(*LabelElement)
	assert.True(t, isBorder, "first element should be the border")
	assert.True(t, isLabel, "second element should be the label")
}

func TestWriteTo(t *testing.T) {
	p := samplePanel(t)
	var sb strings.Builder
	n, err := p.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), n)
	assert.Equal(t, string(p.Bytes()), sb.String())
}

// --- Save ---

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modscan.svg")
	p := samplePanel(t)
	require.NoError(t, p.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p.Bytes(), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not remain")
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modscan.svg")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	require.NoError(t, samplePanel(t).Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(data))
}

func TestSaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "modscan.svg")
	err := samplePanel(t).Save(path)
	assert.ErrorIs(t, err, ErrWrite)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveOntoDirectoryLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o644))

	err := samplePanel(t).Save(target)
	assert.ErrorIs(t, err, ErrWrite)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the pre-existing directory should remain")
}
