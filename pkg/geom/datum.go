package geom

import (
	"strconv"

	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/errors"
)

// admit reports why a record cannot be drawn, or nil. seen tracks keys
// already placed in this layout.
func admit(r dataset.Record, seen map[string]bool, needFinite bool) error {
	if seen[r.Key] {
		return errors.New(errors.ErrCodeInvalidDataset, "duplicate key %q", r.Key)
	}
	if needFinite && !finite(r.Value) {
		return errors.New(errors.ErrCodeInvalidInput, "value for %q is not finite", r.Key)
	}
	seen[r.Key] = true
	return nil
}

func (l *Layout) skip(i int, key string, err error) {
	l.Skipped = append(l.Skipped, Skip{Index: i, Key: key, Err: err})
}

func primitiveID(prefix string, i int) string { return prefix + "-" + strconv.Itoa(i) }

func valueLabel(id string, d *Datum, x, y float64, anchor, baseline string) Primitive {
	return Primitive{
		ID:    id,
		Kind:  KindText,
		Role:  RoleLabel,
		Datum: d,
		Text:  Text{X: x, Y: y, Content: FormatValue(d.Value)},
		Style: Style{
			Fill:     "#333333",
			Opacity:  1,
			FontSize: DefaultLabelSize,
			Anchor:   anchor,
			Baseline: baseline,
		},
	}
}
