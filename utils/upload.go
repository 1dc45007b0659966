package utils

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/attajnr2001/adwumawura-2/config"

	"github.com/google/uuid"
)

// MaxImageSize is the upload limit for profile images.
const MaxImageSize = 5 << 20 // 5MB

var ErrInvalidImage = errors.New("only JPEG/PNG images are allowed")
var ErrImageTooLarge = errors.New("image exceeds the 5MB size limit")

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// SaveImage validates and stores an uploaded image under the configured upload
// directory and returns the public path ("/uploads/<name>"). Stored names are
// a fresh UUID plus the original extension, so uploads never collide.
func SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return "", ErrInvalidImage
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", ErrInvalidImage
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(config.AppConfig.UploadDir, name)

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// DeleteImage removes a previously stored image. Only paths under /uploads are
// touched; external URLs (e.g. seeded picsum links) are left alone. Failures
// are logged and ignored so a missing file never fails the request.
func DeleteImage(imagePath string) {
	const prefix = "/uploads/"
	if !strings.HasPrefix(imagePath, prefix) {
		return
	}

	name := filepath.Base(strings.TrimPrefix(imagePath, prefix))
	if err := os.Remove(filepath.Join(config.AppConfig.UploadDir, name)); err != nil && !os.IsNotExist(err) {
		log.Println("Error removing replaced image:", err)
	}
}
