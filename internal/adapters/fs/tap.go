// Package fs reads and writes the files of a tap checkout.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TapStore = (*TapStore)(nil)

// TapStore implements ports.TapStore on the local filesystem.
type TapStore struct{}

// NewTapStore creates a new TapStore.
func NewTapStore() *TapStore {
	return &TapStore{}
}

// WriteFormula writes content to path, creating the formula folder when needed.
func (s *TapStore) WriteFormula(path, content string) (bool, error) {
	changed, err := s.write(path, content)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFormulaWriteFailed.Error()), "path", path)
	}
	return changed, nil
}

// WriteFile writes content to path unless the file already holds it.
func (s *TapStore) WriteFile(path, content string) (bool, error) {
	changed, err := s.write(path, content)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return changed, nil
}

func (s *TapStore) write(path, content string) (bool, error) {
	same, err := unchanged(path, content)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, err
	}
	//nolint:gosec // Path is inside the tap checkout
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return false, err
	}
	return true, nil
}

// ReadFile returns the content of path.
func (s *TapStore) ReadFile(path string) (string, error) {
	//nolint:gosec // Path is inside the tap checkout
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return string(data), nil
}

// ListFormulas returns the *.rb files directly inside dir, sorted by name.
func (s *TapStore) ListFormulas(dir string) ([]domain.FormulaFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNoFormulas, ""), "dir", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", dir)
	}

	var files []domain.FormulaFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != domain.FormulaExt {
			continue
		}
		files = append(files, domain.FormulaFile{
			Name: strings.TrimSuffix(e.Name(), domain.FormulaExt),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	if len(files) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoFormulas, ""), "dir", dir)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// FindReadme returns the first README candidate present in root.
func (s *TapStore) FindReadme(root string) (string, error) {
	for _, name := range domain.ReadmeCandidates() {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrReadmeNotFound, ""), "dir", root)
}
