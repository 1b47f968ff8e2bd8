package handlers

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var imageExtensions = map[string]bool{
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

// UploadHandler stores product images on disk and hands back the relative
// path that callers put into a product's image field.
type UploadHandler struct {
	dir    string
	logger *zap.Logger
}

func NewUploadHandler(dir string, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		dir:    dir,
		logger: logger,
	}
}

// UploadImage accepts a multipart "image" file, saves it under a random
// name and returns its path relative to the server root.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, name)); err != nil {
		h.logger.Error("failed to save uploaded image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"image": path.Join("/", filepath.Base(h.dir), name),
	})
}
