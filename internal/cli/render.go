package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/seaviz/seaviz/pkg/pipeline"
)

// timePrecision rounds stage durations in the summary line.
const timePrecision = time.Millisecond

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	dir         string   // directory globbed for lssea*log
	hosts       []string // restrict output to these hostnames
	output      string   // output file or base path
	vizType     string   // "diagram" or "nodelink"
	formats     []string // output formats
	collide     bool     // run the collision resolution pass
	detailed    bool     // include hardware paths in DOT labels
	scale       float64  // PNG supersampling factor
	thumbWidth  int      // thumbnail width in pixels, 0 disables
	configPath  string   // TOML config file
	interactive bool     // pick hosts with a terminal picker
	refresh     bool     // bypass every cache stage
	noCache     bool     // disable caching entirely
}

// renderCommand creates the render command for generating diagrams.
//
// Default settings:
//   - type: diagram (tiered box-and-line view)
//   - format: png
//   - scale: 2.0 (2x supersampling)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [lssea.log ...]",
		Short: "Render SEA diagrams from lssea logs",
		Long: `Render SEA diagrams from lssea diagnostic logs.

Each host found in the logs becomes one diagram. The tiered diagram view
stacks hostname, virtual, SEA, etherchannel, and real adapter boxes with
connecting lines; the nodelink view delegates placement to Graphviz.

Results are cached locally for faster subsequent runs.

Examples:
  seaviz render lssea_vios1.log                       # PNG next to the log
  seaviz render --dir /var/log/vios -f svg,json -o out # Batch render
  seaviz render lssea_vios1.log -t nodelink -f svg     # Graphviz view
  seaviz render --dir . --interactive                  # Pick hosts in a TUI`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.dir == "" {
				return fmt.Errorf("provide lssea log files or --dir")
			}
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "directory to scan for lssea*log files")
	cmd.Flags().StringArrayVar(&opts.hosts, "host", nil, "only render these hostnames (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single host/format) or base path")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", "", "visualization type: diagram (default), nodelink")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, json, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.collide, "collide", false, "run the collision resolution pass")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include hardware paths in nodelink labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG supersampling factor (default 2.0)")
	cmd.Flags().IntVar(&opts.thumbWidth, "thumb-width", 0, "also downscale PNG output to this width")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file with layout and color overrides")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick hosts with a terminal picker")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// buildOptions assembles pipeline options from flags and the optional config
// file. Flags win over config file values.
func (o *renderOpts) buildOptions() (pipeline.Options, error) {
	opts := pipeline.Options{
		Dir:        o.dir,
		Hosts:      o.hosts,
		Refresh:    o.refresh,
		VizType:    o.vizType,
		Collide:    o.collide,
		Formats:    o.formats,
		Scale:      o.scale,
		ThumbWidth: o.thumbWidth,
		Detailed:   o.detailed,
	}

	if o.configPath != "" {
		fc, err := loadConfigFile(o.configPath)
		if err != nil {
			return opts, err
		}
		cfg, err := fc.diagramConfig()
		if err != nil {
			return opts, err
		}
		opts.Config = &cfg
		fc.applyRenderDefaults(&opts)
		// --collide wins, but the config file can enable the pass on its own.
		if !o.collide {
			opts.Collide = cfg.ResolveCollisions
		}
	}

	return opts, nil
}

func (c *CLI) runRender(ctx context.Context, args []string, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts, err := opts.buildOptions()
	if err != nil {
		return err
	}
	pipeOpts.Inputs = args
	pipeOpts.Logger = c.Logger

	if opts.interactive {
		hosts, err := pickHosts(ctx, runner, pipeOpts)
		if err != nil {
			return err
		}
		if len(hosts) == 0 {
			printInfo("No host selected")
			return nil
		}
		pipeOpts.Hosts = hosts
	}

	spinner := newSpinnerWithContext(ctx, "Rendering diagrams...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if err := c.writeResult(result, opts, args); err != nil {
		return err
	}

	if result.Stats.ResidualOverlaps > 0 {
		printWarning("%d box overlap(s) could not be resolved", result.Stats.ResidualOverlaps)
	}
	return nil
}

// writeResult writes every artifact of every host to disk and prints the
// per-host summary.
func (c *CLI) writeResult(result *pipeline.Result, opts *renderOpts, args []string) error {
	var base string
	switch {
	case opts.output != "":
		base = basePath(opts.output, "")
	case len(args) > 0:
		base = basePath("", args[0])
	default:
		base = filepath.Join(opts.dir, appName)
	}
	multiHost := len(result.Hosts) > 1

	printSuccess("Rendered %d host(s)", len(result.Hosts))
	for _, host := range result.Hosts {
		printHostStats(host.Hostname, len(host.Layout.Boxes), len(host.Layout.Edges), host.CacheInfo.RenderHit)
		for _, format := range opts.formats {
			data, ok := host.Artifacts[format]
			if !ok {
				continue
			}
			path := artifactPath(base, host.Hostname, format, multiHost)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printFile(path)
		}
	}
	printDetail("parse %s · layout %s · render %s",
		result.Stats.ParseTime.Round(timePrecision),
		result.Stats.LayoutTime.Round(timePrecision),
		result.Stats.RenderTime.Round(timePrecision))
	return nil
}
