package validators

import (
	"errors"
	"mime"
	"mime/multipart"
	"path"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrNoFile              = errors.New("no file uploaded")
	ErrFileNameTooLong     = errors.New("file name is too long")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileTypeUnsupported = errors.New("only images (jpg, jpeg, png) are allowed")
)

const maxFileNameSize = 255

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedTypes = map[string]bool{
	"image/jpg":  true,
	"image/jpeg": true,
	"image/png":  true,
}

// FileValidator accepts an upload only when both the file extension and
// the declared content type match the image allowlist, and the size is
// within the configured cap. The declared type is what the client sent,
// the bytes are deliberately not sniffed here: a well-formed lie passes,
// which is a documented limitation of this check.
func FileValidator(fh *multipart.FileHeader) error {
	if fh == nil {
		return ErrNoFile
	}

	if len(fh.Filename) > maxFileNameSize {
		return ErrFileNameTooLong
	}

	ext := strings.ToLower(path.Ext(fh.Filename))
	if !allowedExts[ext] {
		return ErrFileTypeUnsupported
	}

	ct := fh.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mediaType = ct
	}

	if !allowedTypes[strings.ToLower(mediaType)] {
		return ErrFileTypeUnsupported
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return ErrFileTooLarge
	}

	return nil
}
