package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	apperrors "protoreq/pkg/errors"
)

// Store persists encoded payloads on a filesystem. The afero abstraction
// keeps callers testable against an in-memory filesystem while production
// writes through to the OS.
type Store struct {
	fs  afero.Fs    // Target filesystem, os-backed in production
	log *zap.Logger // Structured logger for file operations
}

// New creates a new Store writing to fs.
func New(fs afero.Fs, log *zap.Logger) *Store {
	return &Store{fs: fs, log: log}
}

// Write saves data at path, replacing any previous payload at the same
// location. Parent directories are created as needed.
func (s *Store) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != string(filepath.Separator) {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			s.log.Error("failed to create output directory", zap.Error(err), zap.String("dir", dir))
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		s.log.Error("failed to write payload", zap.Error(err), zap.String("path", path))
		return fmt.Errorf("failed to write payload to %s: %w", path, err)
	}

	s.log.Debug("payload written", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// Read loads a previously written payload.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(path, fmt.Sprintf("payload file %s not found", path))
		}
		s.log.Error("failed to read payload", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("failed to read payload from %s: %w", path, err)
	}
	return data, nil
}
