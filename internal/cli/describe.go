package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/axis"
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/surface"
)

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// describeCommand creates the describe command, which prints the computed
// scales, ticks and primitives instead of drawing them.
func (c *CLI) describeCommand() *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Print the layout of a chart as tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return runDescribe(cmd.Context(), input, &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runDescribe(ctx context.Context, input string, flags *chartFlags) error {
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
	sel := flags.selectionIn(coll)

	scene := surface.NewScene(opts.Width, opts.Height)
	c, err := chart.New(kind, scene, chart.WithOptions(opts), chart.WithLogger(loggerFromContext(ctx)))
	if err != nil {
		return err
	}
	defer c.Close()
	if err := c.Select(ctx, coll, sel); err != nil {
		return err
	}

	l := c.Layout()
	printKeyValue("chart", string(kind))
	printKeyValue("dataset", string(sel))
	printKeyValue("size", fmt.Sprintf("%sx%s", geom.FormatValue(l.Frame.Width), geom.FormatValue(l.Frame.Height)))
	inner := l.Frame.Inner()
	printKeyValue("plot area", fmt.Sprintf("%s,%s %sx%s",
		geom.FormatValue(inner.X), geom.FormatValue(inner.Y), geom.FormatValue(inner.W), geom.FormatValue(inner.H)))
	if kind != chart.Pie {
		lo, hi := l.Scales.Value.Domain()
		printKeyValue("values", fmt.Sprintf("%s … %s", geom.FormatValue(lo), geom.FormatValue(hi)))
	}
	printNewline()

	if axes := c.Axes(); len(axes) > 0 {
		fmt.Println(axisTable(axes))
		printNewline()
	}
	fmt.Println(primitiveTable(l.Primitives))

	for _, s := range l.Skipped {
		printWarning("skipped record %d (%s): %v", s.Index, s.Key, s.Err)
	}
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
}

func axisTable(axes []axis.Axis) string {
	t := newTable("Axis", "Ticks", "Labels")
	for _, a := range axes {
		t.Row(string(a.Edge), fmt.Sprint(len(a.Ticks)), strings.Join(a.Labels(), " "))
	}
	return t.Render()
}

func primitiveTable(prims []geom.Primitive) string {
	t := newTable("ID", "Kind", "Role", "Datum", "Geometry")
	for _, p := range prims {
		datum := "-"
		if p.Datum != nil {
			datum = fmt.Sprintf("%s = %s", p.Datum.Key, geom.FormatValue(p.Datum.Value))
		}
		t.Row(p.ID, string(p.Kind), string(p.Role), datum, geometry(p))
	}
	return t.Render()
}

// geometry summarises the shape of p in one line.
func geometry(p geom.Primitive) string {
	f := geom.FormatValue
	switch p.Kind {
	case geom.KindRect:
		return fmt.Sprintf("x=%s y=%s w=%s h=%s", f(p.Rect.X), f(p.Rect.Y), f(p.Rect.W), f(p.Rect.H))
	case geom.KindPath:
		return fmt.Sprintf("%d commands, length %s", len(p.Path), f(p.Path.Length()))
	case geom.KindArc:
		return fmt.Sprintf("%s°–%s° r=%s", f(p.Arc.StartAngle*180/math.Pi), f(p.Arc.EndAngle*180/math.Pi), f(p.Arc.OuterRadius))
	case geom.KindCircle:
		return fmt.Sprintf("cx=%s cy=%s r=%s", f(p.Circle.CX), f(p.Circle.CY), f(p.Circle.R))
	case geom.KindLine:
		return fmt.Sprintf("%s,%s → %s,%s", f(p.Line.X1), f(p.Line.Y1), f(p.Line.X2), f(p.Line.Y2))
	case geom.KindText:
		return fmt.Sprintf("%q at %s,%s", p.Text.Content, f(p.Text.X), f(p.Text.Y))
	}
	return ""
}
