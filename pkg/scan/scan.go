// Package scan surveys a page tree and reports which list pages already
// paginate.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/yunzck8s/paginate/pkg/patch"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultPattern matches the resource list pages under a pages root.
const DefaultPattern = "**/*.tsx"

// scanConcurrency bounds the parallel file reads. The scan is read-only,
// unlike patching, which stays strictly sequential.
const scanConcurrency = 8

// 📄 PageStatus is the survey result for one page file
type PageStatus struct {
	// Path is relative to the scan root
	Path string
	// Paginated reports whether pagination markers are present
	Paginated bool
}

// 🔍 Scan walks root, matches page files against pattern, and reports
// which of them carry pagination markers. Results are sorted by path.
func Scan(ctx context.Context, root, pattern string) ([]PageStatus, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := os.Stat(root); err != nil {
		return nil, errors.Errorf("checking scan root: %w", err)
	}

	// Collect matching paths first, then read them concurrently
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("resolving relative path: %w", err)
		}

		matched, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return errors.Errorf("matching pattern %q: %w", pattern, err)
		}
		if matched {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Int("pages", len(paths)).Str("pattern", pattern).Msg("scanning pages")

	var mu sync.Mutex
	statuses := make([]PageStatus, 0, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanConcurrency)
	for _, rel := range paths {
		rel := rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := os.ReadFile(filepath.Join(root, rel))
			if err != nil {
				return errors.Errorf("reading %s: %w", rel, err)
			}

			mu.Lock()
			statuses = append(statuses, PageStatus{
				Path:      rel,
				Paginated: patch.AlreadyPaginated(content),
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Path < statuses[j].Path
	})
	return statuses, nil
}
