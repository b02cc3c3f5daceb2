package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"nostalgic/nostalgic/config"
)

// ImageStore persists uploaded bytes and returns the address recorded in the
// Images table.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// FileName derives the stored name from the upload time: YYYYMMDDhhmmss
// followed by six digits of microseconds and the original extension.
func FileName(t time.Time, original string) string {
	return fmt.Sprintf("%s%06d%s", t.Format("20060102150405"), t.Nanosecond()/1000, filepath.Ext(filepath.Base(original)))
}

// New builds the backend selected by cfg.StorageBackend.
func New(ctx context.Context, cfg config.Config) (ImageStore, error) {
	switch cfg.StorageBackend {
	case config.BackendFS:
		return NewFSStore(cfg.UploadDir)
	case config.BackendMinIO:
		return NewMinIOStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
