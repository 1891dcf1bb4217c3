package employee

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	utils "ems-backend/shared/utils/auth"
)

// MaxProfilePhotoSize is the upload limit for profile photos.
const MaxProfilePhotoSize = 5 * 1024 * 1024

var allowedPhotoExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// ValidateProfilePhoto checks type and size of an uploaded photo.
// Accepted types are jpeg, jpg, png and gif, up to 5MB.
func ValidateProfilePhoto(header *multipart.FileHeader) error {
	if header.Size == 0 {
		return fmt.Errorf("file is empty")
	}

	if header.Size > MaxProfilePhotoSize {
		return fmt.Errorf("file size exceeds 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPhotoExtensions[ext] {
		return fmt.Errorf("only image files are allowed (jpeg, jpg, png, gif)")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("only image files are allowed (jpeg, jpg, png, gif)")
	}

	return nil
}

// GenerateProfilePhotoName builds the stored object name for an
// uploaded photo: profile-<unix millis>-<random>.<ext>. The original
// name only contributes its extension.
func GenerateProfilePhotoName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	random, err := utils.GenerateNumericCode(9)
	if err != nil {
		random = "000000000"
	}

	return fmt.Sprintf("profile-%d-%s%s", time.Now().UnixMilli(), random, ext)
}
