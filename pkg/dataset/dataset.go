package dataset

import (
	"math"
	"strconv"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Record is one row of a dataset: a categorical key and its value.
type Record struct {
	Key   string  `json:"key" toml:"key"`
	Value float64 `json:"value" toml:"value"`
}

// Dataset is an ordered, named sequence of records.
type Dataset struct {
	Name    string
	Records []Record
}

// New creates a dataset from records, preserving their order.
func New(name string, records ...Record) Dataset {
	return Dataset{Name: name, Records: records}
}

// FromValues creates a dataset whose keys are the record indices ("0", "1", ...).
func FromValues(name string, values ...float64) Dataset {
	records := make([]Record, len(values))
	for i, v := range values {
		records[i] = Record{Key: strconv.Itoa(i), Value: v}
	}
	return Dataset{Name: name, Records: records}
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.Records) }

// Keys returns the record keys in dataset order.
func (d Dataset) Keys() []string {
	keys := make([]string, len(d.Records))
	for i, r := range d.Records {
		keys[i] = r.Key
	}
	return keys
}

// Values returns the record values in dataset order.
func (d Dataset) Values() []float64 {
	values := make([]float64, len(d.Records))
	for i, r := range d.Records {
		values[i] = r.Value
	}
	return values
}

// Extent returns the minimum and maximum finite value. ok is false when the
// dataset has no finite values.
func (d Dataset) Extent() (lo, hi float64, ok bool) {
	for _, r := range d.Records {
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			continue
		}
		if !ok {
			lo, hi, ok = r.Value, r.Value, true
			continue
		}
		lo = math.Min(lo, r.Value)
		hi = math.Max(hi, r.Value)
	}
	return lo, hi, ok
}

// Sum returns the sum of the positive finite values.
func (d Dataset) Sum() float64 {
	var total float64
	for _, r := range d.Records {
		if r.Value > 0 && !math.IsInf(r.Value, 1) {
			total += r.Value
		}
	}
	return total
}

// Validate checks the dataset name, each key, and key uniqueness.
func (d Dataset) Validate() error {
	if err := errors.ValidateName(d.Name); err != nil {
		return err
	}
	seen := make(map[string]int, len(d.Records))
	for i, r := range d.Records {
		if err := errors.ValidateKey(r.Key); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "dataset %q record %d", d.Name, i)
		}
		if j, dup := seen[r.Key]; dup {
			return errors.New(errors.ErrCodeInvalidDataset,
				"dataset %q: duplicate key %q (records %d and %d)", d.Name, r.Key, j, i)
		}
		seen[r.Key] = i
	}
	return nil
}
