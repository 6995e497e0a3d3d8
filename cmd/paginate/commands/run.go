package commands

import (
	"github.com/spf13/cobra"
	"github.com/yunzck8s/paginate/cmd/paginate/opts"
	"github.com/yunzck8s/paginate/pkg/runner"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Patch pagination into the configured list pages",
		Long: `Run rewrites every configured resource list page that does not yet
paginate. For each target it will:
1. Skip the file when pagination markers are already present
2. Inject the state hooks and the Pagination component import
3. Inject the page state, slice math, and handlers
4. Redirect the render loop to the current page slice
5. Render the Pagination widget before the closing markup

A target that is missing or whose shape does not match is counted as an
error and the batch continues. The exit code is always zero; the final
tally is the signal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunBatch(cmd, opts)
		},
	}

	return cmd
}

// 🏃 RunBatch executes the patch batch and prints the tally. Shared with
// the root command so a bare invocation behaves like the original script.
func RunBatch(cmd *cobra.Command, opts *opts.RootOpts) error {
	ctx := cmd.Context()

	opts.UserLogger.Header("adding pagination to resource list pages")

	r, err := runner.New(runner.Options{
		Config: opts.Config,
		Logger: opts.UserLogger,
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	summary := r.Run(ctx)
	opts.UserLogger.Summary(summary.Patched, summary.Skipped, summary.Errored)

	// Per-file failures are reported in the tally, never via the exit code
	return nil
}
