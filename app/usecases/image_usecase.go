package usecases

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxImageSize = 2 << 20 // 2MB

type ImageUsecase interface {
	UploadImage(file *multipart.FileHeader, baseURL string) (string, error)
}

type imageUsecase struct{}

func NewImageUsecase() ImageUsecase {
	return &imageUsecase{}
}

// UploadImage writes the file into assets/temp under a random name and
// returns its URL. The file stays temporary until a menu item or blog post
// references it, at which point it moves to the permanent folder.
func (u *imageUsecase) UploadImage(file *multipart.FileHeader, baseURL string) (string, error) {
	if file == nil {
		return "", NewValidationError("no image file in request")
	}
	contentType := file.Header.Get("Content-Type")
	if !(strings.HasPrefix(contentType, "image/jpeg") || strings.HasPrefix(contentType, "image/png")) {
		return "", NewValidationError("invalid file type, only jpeg and png are allowed")
	}
	if file.Size > maxImageSize {
		return "", NewValidationError("file size is too large, maximum is 2MB")
	}

	src, err := file.Open()
	if err != nil {
		return "", NewInternalError()
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		if strings.HasPrefix(contentType, "image/png") {
			ext = ".png"
		} else {
			ext = ".jpeg"
		}
	}
	fileName := uuid.NewString() + ext

	tempDir := filepath.Join("assets", "temp")
	if err := os.MkdirAll(tempDir, os.ModePerm); err != nil {
		return "", NewInternalError()
	}

	dst, err := os.Create(filepath.Join(tempDir, fileName))
	if err != nil {
		return "", NewInternalError()
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", NewInternalError()
	}

	cleanBaseURL := strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("%s/assets/temp/%s", cleanBaseURL, fileName), nil
}
