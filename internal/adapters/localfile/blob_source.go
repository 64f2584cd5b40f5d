// Package localfile resolves Pending image references against the local
// filesystem.
package localfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
)

// BlobSourceAdapter implements payload.BlobSource by reading selected image
// files from disk.
type BlobSourceAdapter struct{}

// NewBlobSourceAdapter creates the adapter.
func NewBlobSourceAdapter() *BlobSourceAdapter {
	return &BlobSourceAdapter{}
}

// Read loads the file behind a Pending reference. The base name of the path
// becomes the upload filename.
func (a *BlobSourceAdapter) Read(ref domain.ImageRef) (string, []byte, error) {
	if !ref.IsPending() {
		return "", nil, fmt.Errorf("localfile: reference is not a pending image")
	}
	data, err := os.ReadFile(ref.Path())
	if err != nil {
		return "", nil, fmt.Errorf("localfile: read %q: %w", ref.Path(), err)
	}
	return filepath.Base(ref.Path()), data, nil
}
