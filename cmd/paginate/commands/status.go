package commands

import (
	"github.com/spf13/cobra"
	"github.com/yunzck8s/paginate/cmd/paginate/opts"
	"github.com/yunzck8s/paginate/pkg/log"
	"github.com/yunzck8s/paginate/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report which list pages already paginate",
		Long: `Status surveys the pages root without modifying anything. It will:
1. Match page files against the glob pattern
2. Check each for pagination markers
3. Report paginated and unpatched pages`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts.UserLogger.Header("surveying resource list pages")

			statuses, err := scan.Scan(ctx, opts.Config.Root, pattern)
			if err != nil {
				return errors.Errorf("scanning pages: %w", err)
			}

			paginated := 0
			for _, s := range statuses {
				if s.Paginated {
					paginated++
					opts.UserLogger.LogTargetEvent(log.TargetEvent{
						Type:        log.TargetSkipped,
						Path:        s.Path,
						Description: "paginated",
					})
				} else {
					opts.UserLogger.LogTargetEvent(log.TargetEvent{
						Type:        log.TargetMissing,
						Path:        s.Path,
						Description: "no pagination",
					})
				}
			}

			opts.UserLogger.Infof("%d of %d pages paginated", paginated, len(statuses))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", scan.DefaultPattern, "glob pattern for page files")

	return cmd
}
