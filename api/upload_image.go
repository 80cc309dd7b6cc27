package api

import (
	"io"
	"net/http"
	"time"

	"agritech/plantcare-api/model"
	"agritech/plantcare-api/storage"
	"agritech/plantcare-api/validators"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func (a *API) UploadImage(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	field := viper.GetString("upload.field")

	fh, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file uploaded",
			"requestID": requestID,
		})
		return
	}

	if err := validators.FileValidator(fh); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open uploaded file", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer f.Close()

	// Sniff what the bytes actually are for the record. The accept
	// decision was already made on extension + declared type, a
	// mismatch here is only worth knowing about, not rejecting.
	detected := ""
	if mtype, err := mimetype.DetectReader(f); err == nil {
		detected = mtype.String()
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to rewind uploaded file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	declared := fh.Header.Get("Content-Type")
	key := storage.FileKey(field, fh.Filename, time.Now())

	stored, err := a.Store.Save(c.Request.Context(), f, key, fh.Size, declared)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to store file",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Create(&model.File{
		FileKey:      stored.Key,
		OriginalName: fh.Filename,
		DeclaredType: declared,
		DetectedType: detected,
		Size:         stored.Size,
		StoragePath:  stored.Path,
		CreatedAt:    time.Now().Unix(),
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save file record to db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	result, err := a.Analyzer.Analyze(c.Request.Context(), stored)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Analysis failed",
			"requestID": requestID,
		})

		zap.L().Error("Analysis failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": result,
	})
}
