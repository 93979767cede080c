package dataset

// Sample selections shipped with the engine.
const (
	SelectionSales      Selection = "sales"
	SelectionRevenue    Selection = "revenue"
	SelectionCategories Selection = "categories"
	SelectionOriginal   Selection = "original"
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

func monthly(name string, values ...float64) Dataset {
	ds := Dataset{Name: name, Records: make([]Record, len(values))}
	for i, v := range values {
		ds.Records[i] = Record{Key: months[i%len(months)], Value: v}
	}
	return ds
}

// Sample returns the built-in demo collection: two monthly series for bar and
// line charts, a categorical breakdown for pie charts, and the five-value
// series the first bar chart prototype was drawn from.
func Sample() Collection {
	c, err := NewCollection(
		monthly(string(SelectionSales), 30, 45, 28, 60, 52, 70),
		monthly(string(SelectionRevenue), 120, 98, 143, 110, 160, 175),
		New(string(SelectionCategories),
			Record{Key: "Electronics", Value: 35},
			Record{Key: "Clothing", Value: 25},
			Record{Key: "Groceries", Value: 20},
			Record{Key: "Books", Value: 12},
			Record{Key: "Toys", Value: 8},
		),
		FromValues(string(SelectionOriginal), 10, 20, 39, 21, 50),
	)
	if err != nil {
		panic("dataset: invalid sample collection: " + err.Error())
	}
	return c
}
