// Package dataset defines the tabular input of the chart engine.
//
// A [Dataset] is an ordered sequence of [Record] values, each a categorical
// key and one numeric measure. Record order is significant: it defines the
// categorical ordering used by band and point scales and the slice order of
// pie charts. Keys are unique within one dataset.
//
// A [Collection] groups named datasets; a [Selection] picks one of them.
// Switching the selection is what triggers a full chart rebuild.
//
// # Files
//
// Collections are loaded from TOML or JSON with [Load]. Record keys may be
// spelled key, name, month or category:
//
//	[[dataset]]
//	name = "sales"
//
//	[[dataset.records]]
//	month = "Jan"
//	value = 30.0
//
// Empty datasets are valid and render as empty charts.
package dataset
