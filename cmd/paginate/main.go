package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/yunzck8s/paginate/cmd/paginate/commands"
	"github.com/yunzck8s/paginate/cmd/paginate/opts"
)

func main() {
	ro := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "paginate",
		Short: "A tool for patching pagination into dashboard list pages",
		Long: `paginate rewrites the dashboard's resource list pages (Services, Jobs,
ConfigMaps, ...) to add pagination: state hooks, slice math, and the shared
Pagination widget. Pages that already paginate are left untouched.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags are parsed by now; wire logging and config here
			logger := setupLogging()
			ctx := logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			built, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			*ro = *built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// A bare invocation behaves like the original batch script
			return commands.RunBatch(cmd, ro)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewRunCmd(ro),
		commands.NewStatusCmd(ro),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
