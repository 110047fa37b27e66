package commitgraph

import (
	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/render/canvas"
)

// Size computes the surface dimensions for commitCount rows and branchCount
// lanes. The returned layout is l with Width and Height replaced by the
// computed logical size, ready to build a geometry from.
func Size(l config.Layout, commitCount, branchCount int) (config.Layout, canvas.Dimensions) {
	rows := float64(commitCount) + 2
	lanes := float64(branchCount) + 0.5

	if l.IsHorizontal() {
		l.Width = rows * l.StepPrimary
		l.Height = lanes * l.StepLane
	} else {
		l.Width = lanes * l.StepLane
		l.Height = rows * l.StepPrimary
	}

	dim := canvas.Dimensions{
		Width:         l.Width,
		Height:        l.Height,
		BackingWidth:  l.Width,
		BackingHeight: l.Height,
	}
	if l.ScalesBackingStore() {
		s := l.EffectiveScale()
		dim.BackingWidth *= s
		dim.BackingHeight *= s
	}
	return l, dim
}
