package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKey(t *testing.T) {
	now := time.UnixMilli(1693412345678)

	assert.Equal(t, "image-1693412345678.png", FileKey("image", "photo.png", now))
	assert.Equal(t, "image-1693412345678.jpeg", FileKey("image", "my.vacation.jpeg", now))

	// The original extension is carried over untouched
	assert.Equal(t, "image-1693412345678.PNG", FileKey("image", "PHOTO.PNG", now))
	assert.Equal(t, "image-1693412345678", FileKey("image", "noext", now))
}

func TestFileKeyUsesMillis(t *testing.T) {
	now := time.Now()
	key := FileKey("image", "photo.png", now)

	assert.Equal(t, "image-"+strconv.FormatInt(now.UnixMilli(), 10)+".png", key)
}

func TestLocalSave(t *testing.T) {
	dir := t.TempDir()
	viper.Set("upload.dir", dir)

	l, err := NewLocal()
	require.NoError(t, err)

	payload := []byte("fake png bytes")
	stored, err := l.Save(context.Background(), bytes.NewReader(payload), "image-123.png", int64(len(payload)), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "image-123.png", stored.Key)
	assert.Equal(t, int64(len(payload)), stored.Size)

	got, err := os.ReadFile(filepath.Join(dir, "image-123.png"))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestLocalSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "nested")
	viper.Set("upload.dir", dir)

	_, err := NewLocal()
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewPicksBackend(t *testing.T) {
	viper.Set("storage.type", "local")
	viper.Set("upload.dir", t.TempDir())

	st, err := New()
	require.NoError(t, err)
	assert.IsType(t, &Local{}, st)

	viper.Set("storage.type", "floppy")
	_, err = New()
	assert.Error(t, err)

	viper.Set("storage.type", "local")
}
