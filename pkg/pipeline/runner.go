package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/commitgraph/pkg/buildinfo"
	"github.com/matzehuels/commitgraph/pkg/cache"
	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/observability"
)

// Runner executes the pipeline against a cache.
//
// A Runner holds no per-run state, so one Runner may serve concurrent
// Execute calls.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching; a nil keyer
// scopes default keys by release.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    config.DefaultCacheTTL,
	}
}

// Execute decodes the input and produces every requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	result := &Result{Artifacts: make(map[string][]byte, len(opts.Formats))}

	decodeStart := time.Now()
	commits, err := r.decode(opts)
	if err != nil {
		observability.Pipeline().OnDecodeComplete(ctx, 0, 0, time.Since(decodeStart), err)
		return nil, err
	}
	result.Commits = commits
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.CommitCount = len(commits)
	result.Stats.BranchCount = graph.BranchCount(commits)
	result.Stats.RouteCount = graph.RouteCount(commits)
	observability.Pipeline().OnDecodeComplete(ctx, result.Stats.CommitCount, result.Stats.BranchCount, result.Stats.DecodeTime, nil)

	canonical, err := graph.Marshal(commits)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode canonical input")
	}
	result.InputHash = cache.Hash(canonical)

	opts.Logger.Debug("decoded input",
		"commits", result.Stats.CommitCount,
		"branches", result.Stats.BranchCount,
		"routes", result.Stats.RouteCount,
		"duration", result.Stats.DecodeTime)

	renderStart := time.Now()
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, hit, err := r.renderFormat(ctx, result, opts, format)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
		if hit {
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered graph",
		"formats", opts.Formats,
		"cached", len(result.CacheInfo.Hits),
		"duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) decode(opts Options) ([]graph.Commit, error) {
	if opts.Commits != nil {
		if err := graph.Validate(opts.Commits); err != nil {
			return nil, err
		}
		return opts.Commits, nil
	}
	return graph.Unmarshal(opts.Source, opts.Encoding)
}

// renderFormat returns one artifact, from the cache when possible. Cache
// failures are logged and otherwise ignored.
func (r *Runner) renderFormat(ctx context.Context, res *Result, opts Options, format string) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(res.InputHash, cache.ArtifactKeyOpts{Format: format, Layout: opts.Layout})

	hooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			opts.Logger.Warn("cache read failed", "format", format, "error", err)
			hooks.OnCacheError(ctx, "get", err)
		case hit:
			opts.Logger.Debug("cache hit", "format", format)
			hooks.OnCacheHit(ctx, format)
			return data, true, nil
		default:
			hooks.OnCacheMiss(ctx, format)
		}
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, format, len(res.Commits))
	data, err := Render(ctx, res.Commits, opts.Layout, format, opts.Logger)
	observability.Pipeline().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "error", err)
		hooks.OnCacheError(ctx, "set", err)
	} else {
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}
