package dataset

import (
	"math"
	"testing"

	"github.com/matzehuels/stackchart/pkg/errors"
)

func TestDatasetKeysAndValues(t *testing.T) {
	ds := New("sales", Record{"Jan", 30}, Record{"Feb", 45})

	keys := ds.Keys()
	if len(keys) != 2 || keys[0] != "Jan" || keys[1] != "Feb" {
		t.Errorf("Keys() = %v, want [Jan Feb]", keys)
	}
	values := ds.Values()
	if len(values) != 2 || values[0] != 30 || values[1] != 45 {
		t.Errorf("Values() = %v, want [30 45]", values)
	}
}

func TestFromValues(t *testing.T) {
	ds := FromValues("original", 10, 20, 39)
	want := []string{"0", "1", "2"}
	for i, k := range ds.Keys() {
		if k != want[i] {
			t.Errorf("Keys()[%d] = %v, want %v", i, k, want[i])
		}
	}
}

func TestExtent(t *testing.T) {
	tests := []struct {
		name           string
		ds             Dataset
		wantLo, wantHi float64
		wantOK         bool
	}{
		{"empty", New("e"), 0, 0, false},
		{"positive", FromValues("p", 3, 1, 2), 1, 3, true},
		{"mixed", FromValues("m", -4, 2), -4, 2, true},
		{"skips non-finite", FromValues("n", math.NaN(), 5, math.Inf(1)), 5, 5, true},
		{"only NaN", FromValues("nan", math.NaN()), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := tt.ds.Extent()
			if lo != tt.wantLo || hi != tt.wantHi || ok != tt.wantOK {
				t.Errorf("Extent() = (%v, %v, %v), want (%v, %v, %v)", lo, hi, ok, tt.wantLo, tt.wantHi, tt.wantOK)
			}
		})
	}
}

func TestSum(t *testing.T) {
	ds := FromValues("s", 1, -2, 3, math.NaN())
	if got := ds.Sum(); got != 4 {
		t.Errorf("Sum() = %v, want 4", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		ds       Dataset
		wantCode errors.Code
	}{
		{"valid", New("sales", Record{"Jan", 1}), ""},
		{"empty records", New("empty"), ""},
		{"duplicate key", New("dup", Record{"Jan", 1}, Record{"Jan", 2}), errors.ErrCodeInvalidDataset},
		{"missing name", New("", Record{"Jan", 1}), errors.ErrCodeInvalidDataset},
		{"control key", New("ctl", Record{"Ja\tn", 1}), errors.ErrCodeInvalidDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("Validate() code = %v, want %v (err %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestCollection(t *testing.T) {
	c, err := NewCollection(New("sales"), New("revenue"))
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}

	if c.Default() != "sales" {
		t.Errorf("Default() = %v, want sales", c.Default())
	}
	if got := c.Next("sales"); got != "revenue" {
		t.Errorf("Next(sales) = %v, want revenue", got)
	}
	if got := c.Next("revenue"); got != "sales" {
		t.Errorf("Next(revenue) = %v, want sales", got)
	}
	if got := c.Next("bogus"); got != "sales" {
		t.Errorf("Next(bogus) = %v, want sales", got)
	}

	if _, err := c.Get("missing"); !errors.Is(err, errors.ErrCodeUnknownSelection) {
		t.Errorf("Get(missing) error = %v, want %v", err, errors.ErrCodeUnknownSelection)
	}
	ds, err := c.Get("revenue")
	if err != nil || ds.Name != "revenue" {
		t.Errorf("Get(revenue) = %v, %v", ds.Name, err)
	}
}

func TestCollectionDuplicateNames(t *testing.T) {
	_, err := NewCollection(New("a"), New("a"))
	if !errors.Is(err, errors.ErrCodeInvalidDataset) {
		t.Errorf("NewCollection() error = %v, want %v", err, errors.ErrCodeInvalidDataset)
	}
}

func TestEmptyCollection(t *testing.T) {
	var c Collection
	if c.Default() != "" {
		t.Errorf("Default() = %q, want empty", c.Default())
	}
	if c.Next("x") != "" {
		t.Errorf("Next() = %q, want empty", c.Next("x"))
	}
}

func TestSample(t *testing.T) {
	c := Sample()
	for _, sel := range []Selection{SelectionSales, SelectionRevenue, SelectionCategories, SelectionOriginal} {
		ds, err := c.Get(sel)
		if err != nil {
			t.Fatalf("Get(%s): %v", sel, err)
		}
		if ds.Len() == 0 {
			t.Errorf("sample %s is empty", sel)
		}
	}
}
