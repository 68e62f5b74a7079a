package loader

import (
	"context"
)

// DocumentLoader extracts the plain-text content of a document on disk.
// Implementations are format-specific; the pipeline only sees the interface.
type DocumentLoader interface {
	GetFileText(ctx context.Context, path string) (string, error)
}
