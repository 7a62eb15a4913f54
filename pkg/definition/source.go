package definition

import (
	"context"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/spf13/afero"
)

// FileSource implements ports.GraphSource by loading a YAML definition from a filesystem.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a source reading path from fsys.
func NewFileSource(fsys afero.Fs, path string) *FileSource {
	return &FileSource{fs: fsys, path: path}
}

// Graph loads and builds the definition. The file is re-read on every call.
func (s *FileSource) Graph(ctx context.Context) (*domain.Graph, error) {
	def, err := LoadFile(s.fs, s.path)
	if err != nil {
		return nil, err
	}
	return Build(def)
}

// Definition loads the definition without building it.
func (s *FileSource) Definition() (*Definition, error) {
	return LoadFile(s.fs, s.path)
}
