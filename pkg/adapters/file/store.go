package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/spf13/afero"
)

// DefaultDir is where traces are kept when no directory is given.
var DefaultDir = filepath.Join(".ribbon", "traces")

// ErrEmptyID is returned when a trace has no ID to name its file after.
var ErrEmptyID = errors.New("trace id cannot be empty")

// Store implements ports.TraceStore on a filesystem.
// It stores traces as JSON files in a configured directory.
type Store struct {
	fs       afero.Fs
	BasePath string
}

// New creates a Store on the OS filesystem rooted at basePath.
// If basePath is empty, it defaults to DefaultDir.
func New(basePath string) *Store {
	return NewWithFs(afero.NewOsFs(), basePath)
}

// NewWithFs creates a Store on an arbitrary afero filesystem (e.g. afero.NewMemMapFs in tests).
func NewWithFs(fsys afero.Fs, basePath string) *Store {
	if basePath == "" {
		basePath = DefaultDir
	}
	return &Store{fs: fsys, BasePath: basePath}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.BasePath, id+".json")
}

// Save persists the trace to a JSON file atomically.
// It writes to a temporary file first, syncs it, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, trace *domain.Trace) error {
	if trace.ID == "" {
		return ErrEmptyID
	}
	if err := s.fs.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure trace directory: %w", err)
	}

	data, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	tmp, err := afero.TempFile(s.fs, s.BasePath, "tmp-"+trace.ID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := s.path(trace.ID)
	if ok, _ := afero.Exists(s.fs, dest); ok {
		if err := s.fs.Remove(dest); err != nil {
			return fmt.Errorf("failed to remove existing trace file for overwrite: %w", err)
		}
	}
	if err := s.fs.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file to trace: %w", err)
	}
	return nil
}

// Load retrieves the trace from its JSON file.
func (s *Store) Load(ctx context.Context, id string) (*domain.Trace, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	data, err := afero.ReadFile(s.fs, s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrTraceNotFound
		}
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	var trace domain.Trace
	if err := json.Unmarshal(data, &trace); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trace: %w", err)
	}
	return &trace, nil
}

// Delete removes the trace file.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	err := s.fs.Remove(s.path(id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete trace file: %w", err)
	}
	return nil
}

// List returns the IDs of all stored traces.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.BasePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}

	ids := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}
