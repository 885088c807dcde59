package handler

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"storefront-service/pkg/config"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var uploadConfig config.UploadConfig

// InitUploads configures where uploaded images are written and the public
// URL prefix they are served under
func InitUploads(cfg config.UploadConfig) error {
	uploadConfig = cfg
	return os.MkdirAll(cfg.Dir, 0o755)
}

// UploadImage accepts a multipart image and stores it under a
// content-hashed filename so re-uploads of the same bytes dedupe.
// Responds with the public URL used as Product.ImageURL.
func UploadImage(c echo.Context) error {
	log := logger.FromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn("Upload request without file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to store file"})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Error("Failed to read uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to store file"})
	}

	sum := md5.Sum(data)
	name := hex.EncodeToString(sum[:]) + filepath.Ext(fileHeader.Filename)

	dst := filepath.Join(uploadConfig.Dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		log.Error("Failed to write uploaded file",
			zap.String("path", dst),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to store file"})
	}

	url := path.Join(uploadConfig.URLPrefix, name)
	log.Info("Image uploaded",
		zap.String("file", name),
		zap.Int("size", len(data)),
		zap.String("url", url))

	return c.JSON(http.StatusOK, echo.Map{"url": url})
}
