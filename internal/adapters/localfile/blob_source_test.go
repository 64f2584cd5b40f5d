package localfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
)

func TestReadPendingImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.png")
	require.NoError(t, os.WriteFile(path, []byte("PNGDATA"), 0o644))

	filename, data, err := NewBlobSourceAdapter().Read(domain.PendingImage(path))
	require.NoError(t, err)
	assert.Equal(t, "plan.png", filename)
	assert.Equal(t, []byte("PNGDATA"), data)
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := NewBlobSourceAdapter().Read(domain.PendingImage(filepath.Join(t.TempDir(), "gone.png")))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRejectsNonPendingRefs(t *testing.T) {
	adapter := NewBlobSourceAdapter()

	_, _, err := adapter.Read(domain.PersistedImage("https://cdn/a.png"))
	assert.Error(t, err)

	_, _, err = adapter.Read(domain.ImageRef{})
	assert.Error(t, err)
}
