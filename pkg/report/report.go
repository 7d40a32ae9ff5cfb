// Package report prints the generator's human-readable status lines.
// Colour is used only when the destination is a terminal.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/svgpanel/pkg/generate"
	"gitlab.com/tinyland/lab/svgpanel/pkg/panel"
	"gitlab.com/tinyland/lab/svgpanel/pkg/theme"
)

// Reporter writes status to an output and an error stream.
type Reporter struct {
	prog   string
	out    io.Writer
	errOut io.Writer

	ok   lipgloss.Style
	fail lipgloss.Style
	dim  lipgloss.Style
	re   *lipgloss.Renderer
}

// New returns a Reporter whose lines are prefixed with prog.
func New(prog string, out, errOut io.Writer) *Reporter {
	re := lipgloss.NewRenderer(out)
	if !isTerminal(out) {
		re.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		prog:   prog,
		out:    out,
		errOut: errOut,
		ok:     re.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ec970")),
		fail:   re.NewStyle().Bold(true).Foreground(lipgloss.Color("#e06c75")),
		dim:    re.NewStyle().Foreground(lipgloss.Color("#6b6b6b")),
		re:     re,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Written lists each generated panel.
func (r *Reporter) Written(results []generate.Result) {
	for _, res := range results {
		fmt.Fprintf(r.out, "%s %s %s\n",
			r.dim.Render(r.prog+":"),
			res.Output,
			r.dim.Render(fmt.Sprintf("(%.2fmm, label at %.3f,%.3f)", res.MMWidth, res.LabelX, res.LabelY)),
		)
	}
}

// Success prints the final success line.
func (r *Reporter) Success() {
	fmt.Fprintf(r.out, "%s %s\n", r.prog+":", r.ok.Render("SUCCESS"))
}

// Failure prints err on the error stream.
func (r *Reporter) Failure(err error) {
	fmt.Fprintf(r.errOut, "%s %s %v\n", r.prog+":", r.fail.Render("FAILED"), err)
}

// Themes prints one line per theme with a swatch for each colour.
func (r *Reporter) Themes(themes []theme.Theme) {
	for _, t := range themes {
		fmt.Fprintf(r.out, "%-10s %s  %s  %s\n", t.Name,
			r.swatch(t.Panel), r.swatch(t.Border), r.swatch(t.Label))
	}
}

func (r *Reporter) swatch(hex string) string {
	return r.re.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + hex
}

// Extent prints a measured text extent.
func (r *Reporter) Extent(text string, points float64, ext panel.Extent) {
	fmt.Fprintf(r.out, "%q at %gpt: advance %.3fmm, height %.3fmm\n", text, points, ext.Width, ext.Height)
}
