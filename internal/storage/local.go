// Package storage is the blob store the rest of the service treats as
// an external collaborator: save bytes, get back a stable path.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

// StoredFile describes one saved blob.
type StoredFile struct {
	Path      string
	Name      string
	Ext       string
	Size      int64
	SHA256Hex string
}

// Store writes uploads under a single directory with uuid-derived
// names, so original filenames never influence paths on disk.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Save writes data as <uuid>.<ext> and returns the stored path plus a
// sha256 content hash. The extension is taken from originalName;
// extensions outside the allow-list are still stored, since unknown
// kinds take the image OCR path downstream.
func (s *Store) Save(originalName string, data []byte) (StoredFile, error) {
	ext := constants.NormalizeExt(filepath.Ext(originalName))
	name := uuid.NewString()
	if ext != "" {
		name = name + "." + ext
	}
	path := filepath.Join(s.dir, name)

	sum := sha256.Sum256(data)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("failed to write upload", "path", path, "error", err)
		return StoredFile{}, fmt.Errorf("write upload: %w", err)
	}

	sf := StoredFile{
		Path:      path,
		Name:      name,
		Ext:       ext,
		Size:      int64(len(data)),
		SHA256Hex: hex.EncodeToString(sum[:]),
	}
	s.logger.Debug("upload stored", "path", path, "bytes", sf.Size, "sha256", sf.SHA256Hex)
	return sf, nil
}
