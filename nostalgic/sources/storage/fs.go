package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FSStore writes uploads into a local directory. Writes are not atomic.
type FSStore struct {
	dir string
}

func NewFSStore(dir string) (*FSStore, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

// maxNameAttempts bounds how many suffixed names Save tries when uploads
// share a timestamp.
const maxNameAttempts = 100

// Save never overwrites: when name is taken it tries name_1, name_2 and so on.
func (s *FSStore) Save(ctx context.Context, name string, r io.Reader) (addr string, err error) {
	f, path, err := s.create(name)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			addr, err = "", fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

func (s *FSStore) create(name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}
		path := filepath.Join(s.dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file: %w", err)
		}
		return f, path, nil
	}
	return nil, "", fmt.Errorf("failed to create file: no free name for %q", name)
}
