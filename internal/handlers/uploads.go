package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

// stashUploadedFile writes a multipart file to a temp path so the media store
// can stream it out. The caller is responsible for invoking cleanup.
func stashUploadedFile(c *gin.Context, file *multipart.FileHeader) (string, func(), error) {
	dst := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", nil, fmt.Errorf("failed to stash uploaded file: %w", apperrors.ErrUpload)
	}
	cleanup := func() { _ = os.Remove(dst) }
	return dst, cleanup, nil
}

// storeFormFile stashes the named form file and uploads it to media storage,
// returning the public URL. Required=false lets optional files (cover image)
// be absent without error.
func storeFormFile(c *gin.Context, media portssvc.MediaStorageSvc, field string, folder string, required bool) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if !required {
			return "", nil
		}
		return "", fmt.Errorf("please upload %s: %w", field, apperrors.ErrValidation)
	}

	localPath, cleanup, err := stashUploadedFile(c, file)
	if err != nil {
		return "", err
	}
	defer cleanup()

	return media.Store(c.Request.Context(), localPath, folder)
}
