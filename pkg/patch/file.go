package patch

import (
	"context"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 📄 PatchFile reads a page file, applies the pipeline, and writes the
// patched buffer back in place. Nothing touches the disk unless every
// anchor matched; a skipped file is never rewritten.
func (p *Patcher) PatchFile(ctx context.Context, path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	result, err := p.Apply(ctx, content)
	if err != nil {
		return nil, errors.Errorf("patching %s: %w", path, err)
	}

	if result.Outcome != OutcomePatched {
		return result, nil
	}

	if err := writeFileAtomic(path, result.ModifiedContent); err != nil {
		return nil, errors.Errorf("writing file: %w", err)
	}

	return result, nil
}

// 💾 writeFileAtomic writes content via a temp file and rename
func writeFileAtomic(path string, content []byte) error {
	tempPath := path + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
