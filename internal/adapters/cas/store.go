// Package cas stores downloaded release artifacts under their SHA-256 digest.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ArtifactStore on a work directory.
type Store struct{}

// NewStore creates a new artifact store.
func NewStore() *Store {
	return &Store{}
}

// Put streams r into root/name while hashing it.
func (s *Store) Put(root, name string, r io.Reader) (*domain.Artifact, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkDirCreateFailed.Error()), "path", root)
	}

	path := filepath.Join(root, filepath.Base(name))
	//nolint:gosec // root is a work directory created by the release flow
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.PrivateFilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "artifact", name)
	}

	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(f, hash), r); err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "artifact", name)
	}
	if err := f.Close(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "artifact", name)
	}

	return &domain.Artifact{
		Path:     path,
		Checksum: hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

// WriteManifest writes the checksum.txt manifest for entries into root.
// Lines use the "<sha256>  <filename>" layout understood by sha256sum -c.
func (s *Store) WriteManifest(root string, entries []domain.ChecksumEntry) (string, error) {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Checksum)
		b.WriteString("  ")
		b.WriteString(e.Filename)
		b.WriteByte('\n')
	}

	path := filepath.Join(root, domain.ChecksumFileName)
	if err := os.WriteFile(path, []byte(b.String()), domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	return path, nil
}
