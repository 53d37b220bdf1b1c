package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SaveUploadedImage сохраняет загруженное изображение под случайным именем
// в подкаталог subdir и возвращает путь относительно каталога загрузок.
// Оригинальное имя файла не используется, только его расширение.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, baseDir, subdir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return filepath.Join(subdir, name), nil
}
