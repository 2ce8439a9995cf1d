package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seaviz/seaviz/pkg/pipeline"
	"github.com/seaviz/seaviz/pkg/topology"
)

// extractOpts holds the command-line flags for the extract command.
type extractOpts struct {
	dir     string   // directory globbed for lssea*log
	hosts   []string // restrict output to these hostnames
	output  string   // output file path (stdout if empty)
	refresh bool     // bypass cached topologies
	noCache bool     // disable caching entirely
}

// extractCommand creates the extract command, which parses lssea logs into
// topology JSON without rendering anything.
func (c *CLI) extractCommand() *cobra.Command {
	var opts extractOpts

	cmd := &cobra.Command{
		Use:   "extract [lssea.log ...]",
		Short: "Extract SEA topologies from lssea logs",
		Long: `Extract SEA topologies from lssea diagnostic logs.

The command parses each log into a host topology (SEAs with their real,
virtual, and etherchannel adapters) and writes the result as a JSON array.
The JSON can be inspected directly or fed back into 'render'.

Examples:
  seaviz extract lssea_vios1.log                    # Single log to stdout
  seaviz extract --dir /var/log/vios -o topo.json   # All lssea*log files
  seaviz extract --dir . --host vios1 --host vios2  # Filter hosts`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.dir == "" {
				return fmt.Errorf("provide lssea log files or --dir")
			}
			return c.runExtract(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "directory to scan for lssea*log files")
	cmd.Flags().StringArrayVar(&opts.hosts, "host", nil, "only extract these hostnames (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached topologies")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runExtract(cmd *cobra.Command, args []string, opts extractOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Inputs:  args,
		Dir:     opts.dir,
		Hosts:   opts.hosts,
		Refresh: opts.refresh,
		Logger:  logger,
	}

	prog := newProgress(logger)
	topos, err := runner.Parse(ctx, pipeOpts)
	if err != nil {
		return err
	}

	adapters := 0
	for _, t := range topos {
		adapters += t.AdapterCount()
	}
	prog.done(fmt.Sprintf("Extracted %d host(s) with %d adapter(s)", len(topos), adapters))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := topology.WriteJSON(topos, out); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote %d topologies", len(topos))
		printFile(opts.output)
	}
	return nil
}
