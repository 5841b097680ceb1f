package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/utils"
)

// ImageService persists design photos in one flat directory. Stored names
// are built from sanitized display and original names, so they survive the
// text sanitizer on reload, and an existing file is never overwritten.
type ImageService interface {
	// StoreImage writes the photo and returns the stored filename.
	// The caller records the returned name as the design's Image Path.
	StoreImage(displayName, originalFilename string, src io.Reader) (string, error)

	// ImagePath returns the on-disk path of a stored filename
	ImagePath(filename string) string

	// ImageExists reports whether the stored filename is present on disk
	ImageExists(filename string) bool
}

// LocalImageService implements ImageService over a flat local directory
type LocalImageService struct {
	Dir string
}

var imageServiceInstance ImageService

// InitImageService initializes the image service over the given directory
func InitImageService(dir string) ImageService {
	imageServiceInstance = &LocalImageService{Dir: dir}
	return imageServiceInstance
}

// GetImageService returns the initialized image service instance
func GetImageService() ImageService {
	return imageServiceInstance
}

// SetImageService sets the image service instance (primarily for testing)
func SetImageService(service ImageService) {
	imageServiceInstance = service
}

// StoreImage builds a collision-free filename and writes the photo to it.
// The base name is sanitize(display)-sanitize(original stem); extensions
// outside png/jpg/jpeg are coerced to jpg. When the name is taken, a -1,
// -2, ... suffix is searched first-fit until a free one is found.
func (s *LocalImageService) StoreImage(displayName, originalFilename string, src io.Reader) (filename string, err error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	base := utils.SanitizeFilename(displayName)
	stem := utils.SanitizeFilename(utils.ImageStem(originalFilename))
	ext := utils.NormalizeImageExtension(originalFilename)

	name := joinBase(base, stem)
	filename = name + ext
	fullPath := filepath.Join(s.Dir, filename)

	for i := 1; ; i++ {
		if _, statErr := os.Stat(fullPath); os.IsNotExist(statErr) {
			break
		}
		filename = fmt.Sprintf("%s-%d%s", name, i, ext)
		fullPath = filepath.Join(s.Dir, filename)
	}

	// O_EXCL keeps the no-overwrite guarantee even if the stat raced
	dst, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", closeErr)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return filename, nil
}

// ImagePath returns the on-disk path of a stored filename
func (s *LocalImageService) ImagePath(filename string) string {
	return filepath.Join(s.Dir, filename)
}

// ImageExists reports whether the stored filename is present on disk
func (s *LocalImageService) ImageExists(filename string) bool {
	if filename == "" || filename == models.NoImage {
		return false
	}
	_, err := os.Stat(s.ImagePath(filename))
	return err == nil
}

// joinBase glues the display and original parts, tolerating either being empty
func joinBase(base, stem string) string {
	switch {
	case base == "":
		return stem
	case stem == "":
		return base
	}
	return base + "-" + stem
}
