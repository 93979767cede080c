package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/observability"
	"github.com/matzehuels/stackchart/pkg/sink"
	"github.com/matzehuels/stackchart/pkg/surface"
)

// epoch is the frame clock origin for rendered snapshots, so --at is
// reproducible.
var epoch = time.Unix(0, 0).UTC()

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chartFlags
	output  string        // output file path (or base path for multiple outputs)
	formats []string      // output formats: "svg", "png", "json"
	at      time.Duration // snapshot time after the rebuild; 0 means settled
	static  bool          // omit hover script from SVG output
	cacheFlags
}

// renderCommand creates the render command for writing chart files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a dataset to SVG, PNG or JSON",
		Long: `Render a dataset file (TOML or JSON) as a chart.

Without a file the built-in sample collection is used. By default the chart is
captured after every entrance animation has finished; --at captures the frame
at the given time instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return runRender(cmd.Context(), input, &opts)
		},
	}

	opts.chartFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().DurationVar(&opts.at, "at", 0, "capture the frame this long after the render started (default: settled)")
	cmd.Flags().BoolVar(&opts.static, "static", false, "omit hover interaction from SVG output")
	opts.cacheFlags.register(cmd)

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{string(sink.FormatSVG)}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := sink.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension, it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := sink.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to.
func outputPaths(output, input string, formats []string) []string {
	if len(formats) == 1 && output != "" {
		return []string{output}
	}
	base := basePath(output, input)
	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = base + "." + f
	}
	return paths
}

// runRender builds the chart on an in-memory scene and writes one file per
// requested format. Artifacts found in the cache skip the rebuild entirely.
func runRender(ctx context.Context, input string, opts *renderOpts) (err error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	kind, err := chart.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	chartOpts, err := opts.options()
	if err != nil {
		return err
	}
	coll, err := loadCollection(input)
	if err != nil {
		return err
	}
	sel := opts.selectionIn(coll)
	logger.Infof("Rendering %s chart of %q", kind, sel)

	store := openCache(logger, opts.noCache, opts.cacheDir)
	defer store.Close()
	keyFor, err := artifactKeys(coll, sel, kind, chartOpts, opts)
	if err != nil {
		return err
	}

	var (
		scene   *surface.Scene
		release func() error
	)
	defer func() {
		if release != nil {
			release()
		}
	}()
	frame := func() (*surface.Scene, error) {
		if scene != nil {
			return scene, nil
		}
		s, closeChart, err := buildFrame(ctx, coll, sel, kind, chartOpts, opts.at)
		if err != nil {
			return nil, err
		}
		scene, release = s, closeChart
		return scene, nil
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.formats, time.Since(start), err)
	}()

	paths := outputPaths(opts.output, input, opts.formats)
	for i, name := range opts.formats {
		f, _ := sink.ParseFormat(name)
		key := keyFor(f)

		data, hit, err := store.Get(ctx, key)
		if err != nil {
			logger.Warnf("Cache read failed: %v", err)
		}
		if hit {
			logger.Debugf("Cache hit for %s", f)
		} else {
			s, err := frame()
			if err != nil {
				return err
			}
			if data, err = renderFormat(f, s, opts.static); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			logger.Debugf("Generated %s: %d bytes", f, len(data))
			if err := store.Set(ctx, key, data, artifactTTL); err != nil {
				logger.Warnf("Cache write failed: %v", err)
			}
		}

		if err := writeOutput(paths[i], data); err != nil {
			return err
		}
		if paths[i] != "-" {
			printFile(paths[i])
		}
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", len(paths)))
	return nil
}

// buildFrame renders sel onto a fresh scene and advances the clock to the
// requested capture time, or until every transition has settled. The chart
// stays open, and its nodes on the scene, until the returned func is called.
func buildFrame(ctx context.Context, coll dataset.Collection, sel dataset.Selection, kind chart.Kind, chartOpts chart.Options, at time.Duration) (*surface.Scene, func() error, error) {
	logger := loggerFromContext(ctx)

	scene := surface.NewScene(chartOpts.Width, chartOpts.Height)
	c, err := chart.New(kind, scene,
		chart.WithOptions(chartOpts),
		chart.WithLogger(logger),
		chart.WithClock(epoch),
	)
	if err != nil {
		return nil, nil, err
	}

	if err := c.Select(ctx, coll, sel); err != nil {
		c.Close()
		return nil, nil, err
	}
	for _, s := range c.Layout().Skipped {
		printWarning("skipped record %d (%s): %v", s.Index, s.Key, s.Err)
	}
	if at > 0 {
		running := c.Tick(epoch.Add(at))
		logger.Debugf("Captured frame at %s with %d transitions running", at, running)
	} else {
		logger.Debugf("Settled at %s", c.Settle().Sub(epoch))
	}
	return scene, c.Close, nil
}

func renderFormat(f sink.Format, scene *surface.Scene, static bool) ([]byte, error) {
	if f == sink.FormatSVG && static {
		return sink.RenderSVG(scene, sink.WithStatic()), nil
	}
	return sink.Render(f, scene)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing; "-" is stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
