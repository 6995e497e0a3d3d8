// Package runner drives the patch batch over the configured target pages.
package runner

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/yunzck8s/paginate/pkg/config"
	"github.com/yunzck8s/paginate/pkg/log"
	"github.com/yunzck8s/paginate/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// 📊 Summary holds the final tally of a batch run
type Summary struct {
	Patched int
	Skipped int
	Errored int
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Config is the target table and root
	Config *config.Config
	// Logger reports per-file outcomes to the user
	Logger *log.UserLogger
}

// 🏃 Runner processes targets in list order, one file at a time
type Runner struct {
	config *config.Config
	logger *log.UserLogger
}

// 🏭 New creates a new runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
	}, nil
}

// 🏃 Run patches every target sequentially and returns the tally. A target
// that is missing or fails to patch is counted and the batch continues;
// nothing aborts the run.
func (r *Runner) Run(ctx context.Context) Summary {
	logger := zerolog.Ctx(ctx)

	var summary Summary
	for _, target := range r.config.Targets {
		path := r.config.AbsPath(target)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			summary.Errored++
			r.logger.LogTargetEvent(log.TargetEvent{
				Type:        log.TargetMissing,
				Path:        path,
				Description: "file does not exist",
			})
			continue
		}

		result, err := r.processTarget(ctx, target, path)
		if err != nil {
			summary.Errored++
			r.logger.LogTargetEvent(log.TargetEvent{
				Type:  log.TargetError,
				Path:  path,
				Error: err,
			})
			continue
		}

		switch result.Outcome {
		case patch.OutcomePatched:
			summary.Patched++
			desc := ""
			if result.NamespaceReset {
				desc = "with namespace reset"
			}
			r.logger.LogTargetEvent(log.TargetEvent{
				Type:        log.TargetPatched,
				Path:        path,
				Description: desc,
			})
		case patch.OutcomeSkipped:
			summary.Skipped++
			r.logger.LogTargetEvent(log.TargetEvent{
				Type:        log.TargetSkipped,
				Path:        path,
				Description: "already paginated",
			})
		}
	}

	logger.Debug().
		Int("patched", summary.Patched).
		Int("skipped", summary.Skipped).
		Int("errored", summary.Errored).
		Msg("batch complete")

	return summary
}

// 📄 processTarget patches one target inside the per-file error boundary
func (r *Runner) processTarget(ctx context.Context, target config.Target, path string) (*patch.Result, error) {
	result, err := patch.New(target).PatchFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("processing target %s: %w", target.Path, err)
	}
	return result, nil
}
