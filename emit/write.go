package emit

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/napalu/xcgen/errs"
)

// WriteFile writes data to path through a temporary file in the same
// directory, creating the directory first
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errs.ErrOutputDir.WithArgs(dir).Wrap(err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errs.ErrWriteOutput.WithArgs(path).Wrap(err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errs.ErrWriteOutput.WithArgs(path).Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return errs.ErrWriteOutput.WithArgs(path).Wrap(err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errs.ErrWriteOutput.WithArgs(path).Wrap(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errs.ErrWriteOutput.WithArgs(path).Wrap(err)
	}

	return nil
}

// WriteUnused replaces the report at path with one identifier per line,
// sorted. An existing report is removed first and no file is written when
// ids is empty.
func WriteUnused(path string, ids []string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.ErrRemoveOutput.WithArgs(path).Wrap(err)
	}
	if len(ids) == 0 {
		return nil
	}

	return WriteFile(path, []byte(FormatUnused(ids)))
}

// FormatUnused returns the report content for ids
func FormatUnused(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	var b strings.Builder
	for _, id := range sorted {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	return b.String()
}
