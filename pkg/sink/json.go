package sink

import (
	"encoding/json"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
)

type jsonOutput struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Nodes  []jsonNode `json:"nodes"`
}

type jsonNode struct {
	ID     string             `json:"id"`
	Kind   geom.Kind          `json:"kind"`
	Attrs  map[string]float64 `json:"attrs,omitempty"`
	Styles map[string]string  `json:"styles,omitempty"`
	Path   string             `json:"path,omitempty"`
}

// RenderJSON exports the nodes of src with their current attributes as a
// pretty-printed JSON document. Arc nodes carry their outline in path so
// consumers need not reimplement the arc geometry.
func RenderJSON(src Source) ([]byte, error) {
	w, h := src.Size()
	nodes := src.Nodes()
	out := jsonOutput{Width: w, Height: h, Nodes: make([]jsonNode, 0, len(nodes))}
	for _, n := range nodes {
		jn := jsonNode{ID: n.ID, Kind: n.Kind, Attrs: n.Attrs, Styles: n.Styles}
		switch n.Kind {
		case geom.KindPath:
			jn.Path = n.Path.String()
		case geom.KindArc:
			jn.Path = n.Arc().Path()
		}
		out.Nodes = append(out.Nodes, jn)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return data, nil
}
