package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"kgraph/internal/util"
)

// Disk stores request artifacts on the local filesystem: uploaded
// documents in one directory, generated images in another. Files are
// written once under random unique names and never cleaned up here.
type Disk struct {
	UploadDir    string
	GeneratedDir string
}

// NewDisk creates both directories if needed and returns the store.
func NewDisk(uploadDir, generatedDir string) (*Disk, error) {
	for _, dir := range []string{uploadDir, generatedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	return &Disk{
		UploadDir:    uploadDir,
		GeneratedDir: generatedDir,
	}, nil
}

// SaveUpload writes src into the upload directory under a random name that
// keeps the extension of the original filename. It returns the full path
// of the stored file.
func (d *Disk) SaveUpload(originalName string, src io.Reader) (string, error) {
	name, err := util.RandomFileName(filepath.Ext(originalName))
	if err != nil {
		return "", err
	}
	path := filepath.Join(d.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return path, nil
}

// GeneratedPath resolves a filename inside the generated-output directory.
func (d *Disk) GeneratedPath(name string) string {
	return filepath.Join(d.GeneratedDir, name)
}
