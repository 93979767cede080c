// Package cli implements the stackchart command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/buildinfo"
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/dataset"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "stackchart"

	// defaultKind is the chart type used when --type is not given.
	defaultKind = chart.Bar
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackchart renders animated bar, line and pie charts",
		Long:         `Stackchart is a CLI tool for rendering datasets as animated, interactive bar, line and pie charts, with SVG, PNG and JSON output and a live terminal preview.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Input Helpers
// =============================================================================

// chartFlags holds the flags shared by commands that build a chart.
type chartFlags struct {
	kind      string
	selection string
	config    string
	width     float64
	height    float64
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "type", "t", string(defaultKind), "chart type: bar, line, pie")
	cmd.Flags().StringVarP(&f.selection, "select", "s", "", "dataset to show (default: first in file)")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "chart options file (TOML)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "chart width (overrides config)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "chart height (overrides config)")
}

// options loads the chart options file, if any, and applies size flags.
func (f *chartFlags) options() (chart.Options, error) {
	opts := chart.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = chart.LoadOptions(f.config); err != nil {
			return chart.Options{}, err
		}
	}
	if f.width > 0 {
		opts.Width = f.width
	}
	if f.height > 0 {
		opts.Height = f.height
	}
	return opts, opts.Validate()
}

// selectionIn returns the selection flag, or the collection's default.
func (f *chartFlags) selectionIn(coll dataset.Collection) dataset.Selection {
	if f.selection != "" {
		return dataset.Selection(f.selection)
	}
	return coll.Default()
}

// loadCollection reads a dataset file, or returns the built-in sample
// collection when path is empty.
func loadCollection(path string) (dataset.Collection, error) {
	if path == "" {
		return dataset.Sample(), nil
	}
	return dataset.Load(path)
}
