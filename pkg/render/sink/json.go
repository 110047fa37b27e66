package sink

import (
	"encoding/json"
	"image/color"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/render/canvas"
)

// Output is the document written by RenderJSON.
type Output struct {
	Layout      config.Layout     `json:"layout"`
	Dimensions  canvas.Dimensions `json:"dimensions"`
	BranchCount int               `json:"branch_count"`
	Commits     int               `json:"commits"`
	Ops         []canvas.Op       `json:"ops"`
}

// RenderJSON renders commits onto a recorder and returns the drawing
// operations together with the layout they were computed for.
func RenderJSON(commits []graph.Commit, cfg config.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	res, err := r.render(commits, cfg, func(color.Color) canvas.Factory { return canvas.RecorderFactory })
	if err != nil {
		return nil, err
	}

	ops := res.Surface.(*canvas.Recorder).Ops
	if ops == nil {
		ops = []canvas.Op{}
	}
	out := Output{
		Layout:      res.Layout,
		Dimensions:  res.Dimensions,
		BranchCount: res.BranchCount,
		Commits:     len(commits),
		Ops:         ops,
	}

	var data []byte
	if r.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return data, nil
}
