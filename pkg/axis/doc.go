// Package axis generates tick marks and labels for chart scales.
//
// An [Axis] is a list of ticks along one edge of the plot area. Categorical
// axes ([FromBand], [FromPoint]) place one tick per key at its slot center
// and label it with the key verbatim. Linear axes ([FromLinear]) place ticks
// at the scale's human-friendly values and label them compactly.
//
// [Axis.Primitives] turns an axis into geometry: the domain line, one short
// tick line per tick and one text label per tick, all with the axis role so
// the chart controller fades them in without making them interactive.
package axis
