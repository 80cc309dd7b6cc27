package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Local writes uploads into a flat directory on disk.
type Local struct {
	Dir string
}

func NewLocal() (*Local, error) {
	dir := viper.GetString("upload.dir")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory, %w", err)
	}

	return &Local{Dir: dir}, nil
}

func (l *Local) Save(_ context.Context, r io.Reader, key string, _ int64, _ string) (StoredFile, error) {
	dst := filepath.Join(l.Dir, key)

	f, err := os.Create(dst)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to create file, %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(dst)
		return StoredFile{}, fmt.Errorf("failed to write file, %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(dst)
		return StoredFile{}, fmt.Errorf("failed to flush file, %w", err)
	}

	return StoredFile{Key: key, Path: dst, Size: n}, nil
}
