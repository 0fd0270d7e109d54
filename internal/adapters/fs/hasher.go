package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// fileHash computes the XXHash of a file's content. A missing file reports ok=false.
func fileHash(path string) (sum uint64, ok bool, err error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, false, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), true, nil
}

// unchanged reports whether the file at path already holds content.
func unchanged(path, content string) (bool, error) {
	sum, ok, err := fileHash(path)
	if err != nil || !ok {
		return false, err
	}
	return sum == xxhash.Sum64String(content), nil
}
