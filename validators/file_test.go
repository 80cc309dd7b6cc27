package validators

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func header(filename, contentType string, size int64) *multipart.FileHeader {
	fh := &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   make(textproto.MIMEHeader),
	}
	fh.Header.Set("Content-Type", contentType)
	return fh
}

func TestFileValidatorAccepts(t *testing.T) {
	viper.Set("upload.max_size", int64(1_000_000))

	assert.NoError(t, FileValidator(header("photo.png", "image/png", 1000)))
	assert.NoError(t, FileValidator(header("photo.jpg", "image/jpeg", 1000)))
	assert.NoError(t, FileValidator(header("photo.jpeg", "image/jpeg", 1000)))

	// Extension matching is case-insensitive
	assert.NoError(t, FileValidator(header("PHOTO.PNG", "image/png", 1000)))

	// Content type parameters don't matter
	assert.NoError(t, FileValidator(header("photo.png", "image/png; charset=binary", 1000)))

	// Exactly at the cap is still fine
	assert.NoError(t, FileValidator(header("photo.png", "image/png", 1_000_000)))
}

func TestFileValidatorRejectsExtension(t *testing.T) {
	viper.Set("upload.max_size", int64(1_000_000))

	// Bad extension loses no matter what the client declares
	assert.ErrorIs(t, FileValidator(header("malware.exe", "image/png", 1000)), ErrFileTypeUnsupported)
	assert.ErrorIs(t, FileValidator(header("notes.txt", "text/plain", 1000)), ErrFileTypeUnsupported)
	assert.ErrorIs(t, FileValidator(header("photo", "image/png", 1000)), ErrFileTypeUnsupported)
}

func TestFileValidatorRejectsContentType(t *testing.T) {
	viper.Set("upload.max_size", int64(1_000_000))

	assert.ErrorIs(t, FileValidator(header("photo.png", "text/plain", 1000)), ErrFileTypeUnsupported)
	assert.ErrorIs(t, FileValidator(header("photo.png", "", 1000)), ErrFileTypeUnsupported)
	assert.ErrorIs(t, FileValidator(header("photo.png", "application/octet-stream", 1000)), ErrFileTypeUnsupported)
}

func TestFileValidatorRejectsOversize(t *testing.T) {
	viper.Set("upload.max_size", int64(1_000_000))

	assert.ErrorIs(t, FileValidator(header("photo.png", "image/png", 1_000_001)), ErrFileTooLarge)
}

func TestFileValidatorRejectsMissingAndAbsurd(t *testing.T) {
	viper.Set("upload.max_size", int64(1_000_000))

	assert.ErrorIs(t, FileValidator(nil), ErrNoFile)
	assert.ErrorIs(t, FileValidator(header(strings.Repeat("a", 300)+".png", "image/png", 1000)), ErrFileNameTooLong)
}
