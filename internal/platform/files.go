package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
)

// Image file extensions the UI can render
var (
	SupportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".gif"}
)

// ResolveImagePath turns a dataset image path into a filesystem path.
// Web-root style paths ("/images/ocean.jpg") and relative paths are both
// resolved against baseDir; absolute paths that exist are kept as-is.
func ResolveImagePath(baseDir, imagePath string) string {
	if imagePath == "" {
		return ""
	}

	if filepath.IsAbs(imagePath) && FileExists(imagePath) {
		return filepath.Clean(imagePath)
	}

	rel := strings.TrimLeft(filepath.FromSlash(imagePath), string(filepath.Separator))
	if baseDir == "" {
		baseDir = "."
	}
	return filepath.Join(baseDir, rel)
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsSupportedImage checks the file extension against SupportedImageExtensions
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedImageExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ImageResource loads the image for a dataset entry
func ImageResource(baseDir, imagePath string) (fyne.Resource, error) {
	path := ResolveImagePath(baseDir, imagePath)
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	if !IsSupportedImage(path) {
		return nil, fmt.Errorf("unsupported image type: %s", path)
	}
	if !FileExists(path) {
		return nil, fmt.Errorf("image does not exist: %s", path)
	}

	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return res, nil
}

// DataDir returns the directory images are resolved against: the directory
// of the dataset file, or the working directory for the embedded dataset.
func DataDir(dataPath string) string {
	if dataPath != "" {
		if abs, err := filepath.Abs(filepath.Dir(dataPath)); err == nil {
			return abs
		}
		return filepath.Dir(dataPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
