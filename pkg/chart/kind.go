package chart

import (
	"strings"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Kind is a chart type.
type Kind string

const (
	Bar  Kind = "bar"
	Line Kind = "line"
	Pie  Kind = "pie"
)

// Kinds lists the supported chart types.
var Kinds = []Kind{Bar, Line, Pie}

// ParseKind parses a chart type name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Bar, Line, Pie:
		return k, nil
	}
	return "", errors.New(errors.ErrCodeInvalidChartType, "unknown chart type %q (want bar, line or pie)", s)
}
