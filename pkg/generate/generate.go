// Package generate runs the panel pipeline: open the font, lay out the
// border and label, compose the document and save it.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"gitlab.com/tinyland/lab/svgpanel/pkg/config"
	"gitlab.com/tinyland/lab/svgpanel/pkg/fontmetrics"
	"gitlab.com/tinyland/lab/svgpanel/pkg/panel"
	"gitlab.com/tinyland/lab/svgpanel/pkg/svgdoc"
)

// LayerID is the id of the group holding the border and label.
const LayerID = "PanelLayer"

// Result describes a generated panel.
type Result struct {
	Output  string
	MMWidth float64
	LabelX  float64
	LabelY  float64
}

// Build lays out job with face and returns the composed document. Nothing
// is written.
func Build(job config.Job, face panel.Face) (*svgdoc.Panel, Result, error) {
	doc, err := svgdoc.NewPanel(job.WidthHP, job.HeightMM)
	if err != nil {
		return nil, Result{}, err
	}
	border, err := panel.BuildBorder(job.WidthHP, job.FillColor, job.BorderColor, job.HeightMM)
	if err != nil {
		return nil, Result{}, err
	}
	label, err := panel.BuildLabel(job.Text, face, doc.MMWidth(), job.Label)
	if err != nil {
		return nil, Result{}, err
	}

	layer := svgdoc.NewLayer(LayerID)
	doc.AppendLayer(layer)
	layer.Append(svgdoc.Border(border))
	layer.Append(svgdoc.Label(label))

	return doc, Result{
		Output:  job.Output,
		MMWidth: doc.MMWidth(),
		LabelX:  label.X,
		LabelY:  label.Y,
	}, nil
}

// Generate builds job and saves it to job.Output. The font is released
// before the file is written.
func Generate(job config.Job, logger *slog.Logger) (Result, error) {
	logger = orDiscard(logger)

	var (
		doc *svgdoc.Panel
		res Result
	)
	err := fontmetrics.WithFont(job.FontFile, func(f *fontmetrics.Font) error {
		logger.Debug("font opened", "path", job.FontFile, "family", f.Name())
		var err error
		doc, res, err = Build(job, f)
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("generate %s: %w", job.Output, err)
	}

	if res.LabelX < 0 {
		logger.Warn("label is wider than the panel",
			"output", job.Output, "label", job.Text, "width_hp", job.WidthHP)
	}
	if err := doc.Save(job.Output); err != nil {
		return Result{}, fmt.Errorf("generate %s: %w", job.Output, err)
	}
	logger.Info("panel written",
		"output", job.Output,
		"width_mm", res.MMWidth,
		"label_x", res.LabelX,
		"label_y", res.LabelY,
	)
	return res, nil
}

// Render builds job and writes the document to w instead of a file.
func Render(job config.Job, w io.Writer) (Result, error) {
	var res Result
	err := fontmetrics.WithFont(job.FontFile, func(f *fontmetrics.Font) error {
		doc, r, err := Build(job, f)
		if err != nil {
			return err
		}
		res = r
		_, err = doc.WriteTo(w)
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}
	return res, nil
}

// GenerateAll generates every job. Panels share no state, so they run in
// parallel; results keep the order of jobs. Jobs not yet started when ctx
// is cancelled are skipped with ctx's error.
func GenerateAll(ctx context.Context, jobs []config.Job, logger *slog.Logger) ([]Result, error) {
	logger = orDiscard(logger)

	results := make([]Result, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		i, job := i, job
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("generate %s: %w", job.Output, err)
				return
			}
			results[i], errs[i] = Generate(job, logger)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return results, err
	}
	return results, nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

// Measure opens fontFile and measures text at points.
func Measure(fontFile, text string, points float64) (panel.Extent, error) {
	var ext panel.Extent
	err := fontmetrics.WithFont(fontFile, func(f *fontmetrics.Font) error {
		var err error
		ext, err = panel.MeasureText(panel.TextItem{Text: text, Face: f, Points: points})
		return err
	})
	return ext, err
}
