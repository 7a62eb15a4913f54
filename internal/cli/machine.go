package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/pkg/definition"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/ports"
	"github.com/spf13/afero"
)

// loadMachine reads a definition file and builds a machine over it.
// The machine is named after the definition, or after the file when the definition has no name.
func loadMachine(ctx context.Context, fsys afero.Fs, path string, logger *slog.Logger, hooks domain.LifecycleHooks) (*ribbon.Machine, error) {
	source := definition.NewFileSource(fsys, path)
	name := machineName(source, path)
	g, err := graphFrom(ctx, source)
	if err != nil {
		return nil, err
	}
	return ribbon.FromGraph(g,
		ribbon.WithName(name),
		ribbon.WithLogger(logger),
		ribbon.WithLifecycleHooks(hooks),
	)
}

func graphFrom(ctx context.Context, source ports.GraphSource) (*domain.Graph, error) {
	return source.Graph(ctx)
}

func machineName(source *definition.FileSource, path string) string {
	if def, err := source.Definition(); err == nil && def.Name != "" {
		return def.Name
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
