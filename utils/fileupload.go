package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// MaxImageSize is 10MB in bytes
	MaxImageSize = 10 * 1024 * 1024
	// DefaultImageExtension is used when an upload carries an unrecognized extension
	DefaultImageExtension = ".jpg"
)

// allowedImageExtensions are the upload formats stored as-is; anything else
// is coerced to DefaultImageExtension rather than rejected.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateImageSize checks the upload against the size limit
func ValidateImageSize(size int64) error {
	if size > MaxImageSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024)),
		}
	}
	return nil
}

// NormalizeImageExtension lower-cases the extension of the original filename
// and coerces anything outside the allowed set to DefaultImageExtension.
func NormalizeImageExtension(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedImageExtensions[ext] {
		return DefaultImageExtension
	}
	return ext
}

// ImageStem returns the original filename without its extension
func ImageStem(originalFilename string) string {
	base := filepath.Base(originalFilename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
