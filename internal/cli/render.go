package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/io"
	"github.com/matzehuels/commitgraph/pkg/pipeline"
)

// stdinArg names standard input as the render source.
const stdinArg = "-"

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output      string
	formats     string
	orientation string
	stepPrimary float64
	stepLane    float64
	dotRadius   float64
	lineWidth   float64
	scale       float64
	scaleRule   string
	background  string
	watch       bool
	noCache     bool
	refresh     bool
}

// renderJob is a fully resolved render invocation.
type renderJob struct {
	input   string
	outputs map[string]string
	options pipeline.Options
}

func (c *CLI) renderCommand() *cobra.Command {
	d := config.Default()
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a commit graph layout to PNG, SVG or JSON",
		Long: `Render a commit graph layout file (JSON or YAML, tuple or object form).
Use "-" to read JSON from standard input.

Layout settings are taken from the defaults, then the --config file, then
the flags given on the command line.`,
		Example: `  commitgraph render history.json
  commitgraph render history.yaml -f png,svg -o out/graph
  commitgraph render history.json --orientation horizontal --scale 2 --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			job, cfg, err := c.resolveRender(cmd, args[0], &opts)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, cfg.Cache, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			if opts.watch {
				return c.watch(ctx, runner, job)
			}
			_, err = renderOnce(ctx, runner, job)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several formats)")
	f.StringVarP(&opts.formats, "format", "f", pipeline.FormatPNG, "output format(s): png, svg, json (comma-separated)")
	f.StringVar(&opts.orientation, "orientation", string(d.Orientation), "vertical or horizontal")
	f.Float64Var(&opts.stepPrimary, "step-primary", d.StepPrimary, "distance between commits")
	f.Float64Var(&opts.stepLane, "step-lane", d.StepLane, "distance between lanes")
	f.Float64Var(&opts.dotRadius, "dot-radius", d.DotRadius, "commit dot radius")
	f.Float64Var(&opts.lineWidth, "line-width", d.LineWidth, "route stroke width")
	f.Float64Var(&opts.scale, "scale", d.Scale, "device scale factor")
	f.StringVar(&opts.scaleRule, "scale-rule", string(d.ScaleRule), "legacy or uniform")
	f.StringVar(&opts.background, "background", "", "background color (hex); transparent when empty")
	f.BoolVarP(&opts.watch, "watch", "w", false, "re-render whenever the input file changes")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	f.BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and overwrite them")

	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"png", "svg", "json"}, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("orientation", cobra.FixedCompletions([]string{"vertical", "horizontal"}, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("scale-rule", cobra.FixedCompletions([]string{"legacy", "uniform"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// resolveRender layers config file and flags and works out output paths.
func (c *CLI) resolveRender(cmd *cobra.Command, input string, opts *renderOpts) (renderJob, config.File, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return renderJob{}, cfg, err
	}
	layout := cfg.Layout
	applyLayoutFlags(cmd, opts, &layout)
	layout.SetDefaults()
	if err := layout.Validate(); err != nil {
		return renderJob{}, cfg, err
	}

	formats, err := pipeline.ParseFormats(opts.formats)
	if err != nil {
		return renderJob{}, cfg, err
	}
	if len(formats) == 0 {
		formats = pipeline.DefaultFormats
	}
	if opts.watch && input == stdinArg {
		return renderJob{}, cfg, errors.New(errors.ErrCodeInvalidInput, "--watch needs a file, not standard input")
	}

	return renderJob{
		input:   input,
		outputs: outputPaths(input, opts.output, formats),
		options: pipeline.Options{
			Layout:  layout,
			Formats: formats,
			Refresh: opts.refresh,
		},
	}, cfg, nil
}

// applyLayoutFlags copies explicitly set flags onto l.
func applyLayoutFlags(cmd *cobra.Command, opts *renderOpts, l *config.Layout) {
	set := cmd.Flags().Changed
	if set("orientation") {
		l.Orientation = config.Orientation(opts.orientation)
	}
	if set("step-primary") {
		l.StepPrimary = opts.stepPrimary
	}
	if set("step-lane") {
		l.StepLane = opts.stepLane
	}
	if set("dot-radius") {
		l.DotRadius = opts.dotRadius
	}
	if set("line-width") {
		l.LineWidth = opts.lineWidth
	}
	if set("scale") {
		l.Scale = opts.scale
	}
	if set("scale-rule") {
		l.ScaleRule = config.ScaleRule(opts.scaleRule)
	}
	if set("background") {
		l.Background = opts.background
	}
}

// outputPaths maps each format to its destination. Without -o the input
// name is reused with the format's extension; a single format writes to -o
// verbatim, several formats use -o as a base name.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	base := output
	if base == "" {
		base = input
		if input == stdinArg {
			base = appName
		}
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// renderOnce reads the input, runs the pipeline and writes every artifact.
func renderOnce(ctx context.Context, runner *pipeline.Runner, job renderJob) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	commits, err := readInput(job.input)
	if err != nil {
		return nil, err
	}
	opts := job.options
	opts.Commits = commits
	opts.Logger = logger

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		return nil, err
	}

	printSuccess("Rendered %s", job.input)
	printStats(res.Stats.CommitCount, res.Stats.BranchCount, res.CacheInfo.AllHit(opts.Formats))
	for _, format := range opts.Formats {
		path := job.outputs[format]
		if err := io.WriteArtifact(path, res.Artifacts[format]); err != nil {
			return nil, err
		}
		printFile(path)
	}
	prog.done("render complete")
	return res, nil
}

func readInput(input string) ([]graph.Commit, error) {
	if input == stdinArg {
		return io.Read(os.Stdin, graph.EncodingJSON)
	}
	return io.ImportFile(input)
}
