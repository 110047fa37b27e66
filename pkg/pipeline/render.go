package pipeline

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/observability"
	"github.com/matzehuels/commitgraph/pkg/render/commitgraph"
	"github.com/matzehuels/commitgraph/pkg/render/sink"
)

// Render encodes commits in one format without touching a cache. Renderer
// state transitions are reported to the registered pipeline hooks.
func Render(ctx context.Context, commits []graph.Commit, layout config.Layout, format string, logger *log.Logger) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	opts := []sink.Option{
		sink.WithStateHook(func(id string, s commitgraph.State) {
			hooks.OnRenderState(ctx, format, id, s.String())
		}),
	}
	if logger != nil {
		opts = append(opts, sink.WithLogger(logger))
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(commits, layout, opts...)
	case FormatJSON:
		return sink.RenderJSON(commits, layout, append(opts, sink.WithIndent())...)
	default:
		return sink.RenderPNG(commits, layout, opts...)
	}
}
