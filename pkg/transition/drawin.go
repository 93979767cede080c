package transition

import (
	"strconv"

	"github.com/matzehuels/stackchart/pkg/surface"
)

// StyleSetter sets string styles on elements.
type StyleSetter interface {
	SetStyle(id, name, value string) error
}

// DrawIn reveals a stroked path from its start. It sets the dash pattern to
// one dash of the path's full length followed by an equal gap, offsets the
// pattern by that length so nothing is visible, and animates the offset to
// 0.
func (s *Scheduler) DrawIn(st StyleSetter, id string, length float64, opts ...Option) (*Group, error) {
	l := strconv.FormatFloat(length, 'f', -1, 64)
	if err := st.SetStyle(id, surface.StyleDashArray, l+","+l); err != nil {
		return nil, err
	}
	if err := s.target.SetAttr(id, surface.AttrDashOffset, length); err != nil {
		return nil, err
	}
	return s.Animate(id, map[string]float64{surface.AttrDashOffset: 0}, opts...), nil
}
