// Package pipeline turns commit layout input into encoded artifacts.
//
// The CLI and the HTTP server both go through a [Runner] so that caching,
// logging and format handling behave the same everywhere.
//
// # Stages
//
//  1. Decode: parse the tuple or object input (JSON or YAML) and validate it
//  2. Render: draw each requested format with pkg/render/sink
//
// Rendered artifacts are cached under a key derived from the canonical
// encoding of the commits, the layout configuration and the format, so two
// inputs that differ only in formatting share cache entries.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:   data,
//	    Encoding: graph.EncodingJSON,
//	    Layout:   cfg,
//	    Formats:  []string{pipeline.FormatPNG, pipeline.FormatSVG},
//	})
//	png := result.Artifacts[pipeline.FormatPNG]
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultFormats is used when no format is requested.
var DefaultFormats = []string{FormatPNG}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// ContentType returns the MIME type of an artifact format.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list such as "png,svg". Blank
// entries are skipped and duplicates removed.
func ParseFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(formats, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// Options configures one pipeline run.
type Options struct {
	// Source is the raw input. It is decoded with Encoding unless Commits
	// is already set.
	Source   []byte `json:"-"`
	Encoding string `json:"encoding,omitempty"`

	// Commits skips decoding when non-nil.
	Commits []graph.Commit `json:"-"`

	Layout  config.Layout `json:"layout"`
	Formats []string      `json:"formats,omitempty"`

	// Refresh renders even when the cache holds the artifacts, then
	// overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults fills defaults and checks the options. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = unique(o.Formats)

	o.Layout.SetDefaults()
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

func unique(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if !slices.Contains(out, x) {
			out = append(out, x)
		}
	}
	return out
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Commits is the decoded, validated input.
	Commits []graph.Commit

	// InputHash identifies the canonical input.
	InputHash string

	// Artifacts holds the encoded outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds sizes and timings of a run.
type Stats struct {
	CommitCount int
	BranchCount int
	RouteCount  int
	DecodeTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo records which formats were served from the cache.
type CacheInfo struct {
	Hits []string
}

// AllHit reports whether every artifact came from the cache.
func (c CacheInfo) AllHit(formats []string) bool {
	for _, f := range formats {
		if !slices.Contains(c.Hits, f) {
			return false
		}
	}
	return true
}
