// Package storage persists accepted uploads to the configured backend
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// StoredFile describes where an accepted upload ended up.
type StoredFile struct {
	Key  string
	Path string
	Size int64
}

type Store interface {
	// Save writes the upload under key and returns its final location.
	Save(ctx context.Context, r io.Reader, key string, size int64, contentType string) (StoredFile, error)
}

// New picks the backend configured under storage.type.
func New() (Store, error) {
	switch viper.GetString("storage.type") {
	case "s3":
		return NewS3()
	case "local":
		return NewLocal()
	default:
		return nil, fmt.Errorf("invalid storage type %q", viper.GetString("storage.type"))
	}
}

// FileKey builds the storage name for an upload from the form field
// name, the upload time and the original file's extension, e.g.
// image-1693412345678.png. Two uploads of the same field within the
// same millisecond collide; timestamp granularity is the only
// uniqueness this scheme provides.
func FileKey(fieldName, originalName string, now time.Time) string {
	return fieldName + "-" + strconv.FormatInt(now.UnixMilli(), 10) + path.Ext(originalName)
}
