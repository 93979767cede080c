package dataset

import (
	"slices"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Selection names one dataset of a collection.
type Selection string

// Collection is an ordered set of uniquely named datasets.
type Collection struct {
	sets []Dataset
}

// NewCollection validates every dataset and returns the collection.
// Dataset names must be unique.
func NewCollection(sets ...Dataset) (Collection, error) {
	seen := make(map[string]bool, len(sets))
	for _, ds := range sets {
		if err := ds.Validate(); err != nil {
			return Collection{}, err
		}
		if seen[ds.Name] {
			return Collection{}, errors.New(errors.ErrCodeInvalidDataset, "duplicate dataset name %q", ds.Name)
		}
		seen[ds.Name] = true
	}
	return Collection{sets: slices.Clone(sets)}, nil
}

// Len returns the number of datasets.
func (c Collection) Len() int { return len(c.sets) }

// Names returns the available selections in collection order.
func (c Collection) Names() []Selection {
	names := make([]Selection, len(c.sets))
	for i, ds := range c.sets {
		names[i] = Selection(ds.Name)
	}
	return names
}

// Datasets returns a copy of the datasets in collection order.
func (c Collection) Datasets() []Dataset { return slices.Clone(c.sets) }

// Get returns the dataset for sel.
func (c Collection) Get(sel Selection) (Dataset, error) {
	for _, ds := range c.sets {
		if ds.Name == string(sel) {
			return ds, nil
		}
	}
	return Dataset{}, errors.New(errors.ErrCodeUnknownSelection,
		"unknown selection %q (available: %v)", sel, c.Names())
}

// Default returns the first selection, or "" for an empty collection.
func (c Collection) Default() Selection {
	if len(c.sets) == 0 {
		return ""
	}
	return Selection(c.sets[0].Name)
}

// Next returns the selection after sel, wrapping around. Unknown selections
// yield the default.
func (c Collection) Next(sel Selection) Selection {
	for i, ds := range c.sets {
		if ds.Name == string(sel) {
			return Selection(c.sets[(i+1)%len(c.sets)].Name)
		}
	}
	return c.Default()
}
