package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/sink"
	"github.com/matzehuels/stackchart/pkg/surface"
)

const (
	// frameInterval paces the preview at about 60 frames per second.
	frameInterval = time.Second / 60

	// previewHeader is the number of lines above the chart raster.
	previewHeader = 3
	// previewFooter is the number of lines below it.
	previewFooter = 3
)

var (
	previewKeyStyle = lipgloss.NewStyle().Foreground(colorCyan)
	previewTipStyle = lipgloss.NewStyle().Foreground(colorWhite).Background(lipgloss.Color("236")).Padding(0, 1)
)

// previewCommand creates the interactive terminal preview.
func (c *CLI) previewCommand() *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Preview charts interactively in the terminal",
		Long: `Preview a dataset file (or the built-in samples) as an animated chart.

Keys: tab cycles datasets, b/l/p switch between bar, line and pie charts,
q quits. Moving the mouse over a mark highlights it and shows its value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return runPreview(cmd.Context(), input, &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runPreview(ctx context.Context, input string, flags *chartFlags) error {
	logger := loggerFromContext(ctx)

	kind, err := chart.ParseKind(flags.kind)
	if err != nil {
		return err
	}
	opts, err := flags.options()
	if err != nil {
		return err
	}
	coll, err := loadCollection(input)
	if err != nil {
		return err
	}

	m, err := newPreviewModel(ctx, coll, flags.selectionIn(coll), kind, opts, time.Now())
	if err != nil {
		return err
	}
	defer m.chart.Close()

	logger.Debugf("Starting preview of %d dataset(s)", coll.Len())
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// previewModel - Interactive chart preview
// =============================================================================

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type previewModel struct {
	ctx   context.Context
	chart *chart.Chart
	scene *surface.Scene
	coll  dataset.Collection
	sel   dataset.Selection
	cols  int
	err   error
}

func newPreviewModel(ctx context.Context, coll dataset.Collection, sel dataset.Selection, kind chart.Kind, opts chart.Options, now time.Time) (*previewModel, error) {
	scene := surface.NewScene(opts.Width, opts.Height)
	c, err := chart.New(kind, scene,
		chart.WithOptions(opts),
		chart.WithLogger(loggerFromContext(ctx)),
		chart.WithClock(now),
	)
	if err != nil {
		return nil, err
	}
	if err := c.Select(ctx, coll, sel); err != nil {
		c.Close()
		return nil, err
	}
	return &previewModel{ctx: ctx, chart: c, scene: scene, coll: coll, sel: sel, cols: 80}, nil
}

func (m *previewModel) Init() tea.Cmd {
	return nextFrame()
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.sel = m.coll.Next(m.sel)
			m.err = m.chart.Select(m.ctx, m.coll, m.sel)
		case "b":
			m.err = m.chart.SetKind(m.ctx, chart.Bar)
		case "l":
			m.err = m.chart.SetKind(m.ctx, chart.Line)
		case "p":
			m.err = m.chart.SetKind(m.ctx, chart.Pie)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			if x, y, ok := m.toScene(msg.X, msg.Y); ok {
				m.scene.Pointer(x, y)
			} else {
				m.scene.PointerOut()
			}
		}
	case tea.WindowSizeMsg:
		m.cols = m.fit(msg.Width, msg.Height)
	case frameMsg:
		m.chart.Tick(time.Time(msg))
		return m, nextFrame()
	}
	return m, nil
}

// fit returns the widest raster that fits the terminal, keeping the
// chart's aspect ratio.
func (m *previewModel) fit(width, height int) int {
	w, h := m.scene.Size()
	rows := max(1, height-previewHeader-previewFooter)
	byHeight := int(float64(rows*2) * w / h)
	return max(1, min(width, byHeight))
}

// toScene converts a terminal cell to scene coordinates at the cell's
// upper pixel.
func (m *previewModel) toScene(col, row int) (float64, float64, bool) {
	w, h := m.scene.Size()
	k := float64(m.cols) / w
	x := (float64(col) + 0.5) / k
	y := (float64(row-previewHeader)*2 + 0.5) / k
	if x < 0 || y < 0 || x > w || y > h {
		return 0, 0, false
	}
	return x, y, true
}

func (m *previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s · %s", m.chart.Kind(), m.sel)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(
		previewKeyStyle.Render("tab") + " dataset  " +
			previewKeyStyle.Render("b/l/p") + " chart type  " +
			previewKeyStyle.Render("q") + " quit"))
	b.WriteString("\n\n")

	b.WriteString(sink.RenderTerminal(m.scene, m.cols))
	b.WriteString("\n\n")

	if tip, ok := m.chart.Tooltip(); ok && tip.Owner != "" {
		b.WriteString(previewTipStyle.Render(tip.Content))
	} else {
		w, _ := m.scene.Size()
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d/%d datasets · %d nodes · scale %.2f",
			indexOf(m.coll.Names(), m.sel)+1, m.coll.Len(), m.scene.Len(), float64(m.cols)/math.Max(1, w))))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	}
	return b.String()
}

func indexOf(names []dataset.Selection, sel dataset.Selection) int {
	for i, n := range names {
		if n == sel {
			return i
		}
	}
	return -1
}
