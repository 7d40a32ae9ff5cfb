// svgpanel generates SVG front panels for rack modules.
//
// A panel is a themed plate N HP wide with the module name centered near
// the top edge. The label is emitted as glyph outlines measured from a real
// font, so the panel renders the same everywhere.
//
// Usage:
//
//	svgpanel [flags]
//	svgpanel themes
//	svgpanel measure <text>
//
// Flags:
//
//	--config string   Path to configuration file (.toml, .yaml)
//	--output string   Output path, "-" for stdout (default: ../res/modscan.svg)
//	--width int       Panel width in HP
//	--label string    Label text
//	--theme string    Theme name
//	--font string     Font file
//	--verbose         Enable verbose logging
//	--version         Print version and exit
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/svgpanel/pkg/config"
	"gitlab.com/tinyland/lab/svgpanel/pkg/generate"
	"gitlab.com/tinyland/lab/svgpanel/pkg/report"
	"gitlab.com/tinyland/lab/svgpanel/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

const progName = "svgpanel"

type options struct {
	configPath string
	output     string
	width      int
	label      string
	themeName  string
	fontFile   string
	points     float64
	verbose    bool
}

func main() {
	rep := report.New(progName, os.Stdout, os.Stderr)
	if err := newRootCmd(rep).Execute(); err != nil {
		rep.Failure(err)
		os.Exit(1)
	}
}

func newRootCmd(rep *report.Reporter) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           progName,
		Short:         "Generate SVG front panels with font-measured, centered labels",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(opts.verbose)

			jobs, err := cfg.Jobs()
			if err != nil {
				return err
			}

			if cfg.Output == "-" {
				if len(jobs) > 1 {
					return fmt.Errorf("output %q writes a single panel, but %d are configured", cfg.Output, len(jobs))
				}
				_, err := generate.Render(jobs[0], cmd.OutOrStdout())
				return err
			}

			results, err := generate.GenerateAll(context.Background(), jobs, logger)
			if err != nil {
				return err
			}
			if opts.verbose {
				rep.Written(results)
			}
			rep.Success()
			return nil
		},
	}

	f := root.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	f.StringVarP(&opts.output, "output", "o", "", "Output path, \"-\" for stdout")
	f.IntVarP(&opts.width, "width", "w", 0, "Panel width in HP")
	f.StringVarP(&opts.label, "label", "l", "", "Label text")
	f.StringVarP(&opts.themeName, "theme", "t", "", "Theme name")
	f.StringVar(&opts.fontFile, "font", "", "Font file used to measure and outline the label")
	f.Float64Var(&opts.points, "points", 0, "Label point size")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newThemesCmd(rep), newMeasureCmd(rep))
	return root
}

func newThemesCmd(rep *report.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available panel themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []theme.Theme
			for _, name := range theme.Names() {
				t, _ := theme.Get(name)
				list = append(list, t)
			}
			rep.Themes(list)
			return nil
		},
	}
}

func newMeasureCmd(rep *report.Reporter) *cobra.Command {
	var (
		fontFile string
		points   float64
	)
	cmd := &cobra.Command{
		Use:   "measure <text>",
		Short: "Print the advance width and height of text in millimeters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, err := generate.Measure(fontFile, args[0], points)
			if err != nil {
				return err
			}
			rep.Extent(args[0], points, ext)
			return nil
		},
	}
	def := config.DefaultConfig()
	cmd.Flags().StringVar(&fontFile, "font", def.FontFile, "Font file")
	cmd.Flags().Float64Var(&points, "points", def.Label.Points, "Point size")
	return cmd
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("width") {
		cfg.Panel.WidthHP = opts.width
	}
	if flags.Changed("label") {
		cfg.Label.Text = opts.label
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.themeName
	}
	if flags.Changed("font") {
		cfg.FontFile = opts.fontFile
	}
	if flags.Changed("points") {
		cfg.Label.Points = opts.points
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger writes text logs to stderr; verbose enables debug output.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
