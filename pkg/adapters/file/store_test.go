package file_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/ribbon/pkg/adapters/file"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/ports"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.NewWithFs(afero.NewMemMapFs(), "traces")
	ports.RunTraceStoreContract(t, store)
}

func TestFileStore_Contract_OsFs(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunTraceStoreContract(t, store)
}

func TestFileStore_Layout(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := file.NewWithFs(fsys, "")
	ctx := context.Background()

	trace := domain.NewTrace("ab")
	require.NoError(t, store.Save(ctx, trace))

	ok, err := afero.Exists(fsys, filepath.Join(file.DefaultDir, trace.ID+".json"))
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := afero.ReadDir(fsys, file.DefaultDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.NewWithFs(afero.NewMemMapFs(), "nowhere")
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStore_EmptyID(t *testing.T) {
	store := file.NewWithFs(afero.NewMemMapFs(), "traces")
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, &domain.Trace{}), file.ErrEmptyID)
	_, err := store.Load(ctx, "")
	assert.ErrorIs(t, err, file.ErrEmptyID)
}
