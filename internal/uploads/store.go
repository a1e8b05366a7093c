package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrInvalidFile marks upload validation failures (missing file, empty
// filename, disallowed extension). Callers map it to HTTP 400.
var ErrInvalidFile = errors.New("invalid upload file")

var (
	modelExtensions = map[string]bool{
		".gltf": true,
		".glb":  true,
	}
	thumbnailExtensions = map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".webp": true,
	}
)

// Store writes uploaded files into two fixed buckets: one for 3D model
// files, one for thumbnail images.
type Store struct {
	modelsDir     string
	thumbnailsDir string
}

func NewStore(modelsDir, thumbnailsDir string) (*Store, error) {
	for _, dir := range []string{modelsDir, thumbnailsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", dir, err)
		}
	}
	return &Store{modelsDir: modelsDir, thumbnailsDir: thumbnailsDir}, nil
}

// SaveModel stores a required model file and returns the stored filename.
// A file with the same sanitized name is overwritten silently; uploads do
// not get unique names.
func (s *Store) SaveModel(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", fmt.Errorf("%w: model file is missing", ErrInvalidFile)
	}
	if !allowedExtension(fh.Filename, modelExtensions) {
		return "", fmt.Errorf("%w: model file type is not allowed", ErrInvalidFile)
	}

	name := SanitizeFilename(fh.Filename)
	if name == "" {
		return "", fmt.Errorf("%w: model filename is unusable", ErrInvalidFile)
	}

	if err := saveTo(fh, filepath.Join(s.modelsDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// SaveThumbnail stores an optional thumbnail. A missing, unnamed or
// disallowed thumbnail is dropped without error: the asset simply has no
// thumbnail. Only an actual write failure is reported.
func (s *Store) SaveThumbnail(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	if !allowedExtension(fh.Filename, thumbnailExtensions) {
		return "", nil
	}

	name := SanitizeFilename(fh.Filename)
	if name == "" {
		return "", nil
	}

	if err := saveTo(fh, filepath.Join(s.thumbnailsDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// ModelURL builds the public URL for a stored model file. No existence check.
func ModelURL(fileName string) string {
	return "/static/models/" + fileName
}

// ThumbnailURL builds the public URL for a stored thumbnail file.
func ThumbnailURL(fileName string) string {
	return "/static/thumbnails/" + fileName
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename strips path components and unsafe characters from an
// uploaded filename, keeping the extension. Returns "" when nothing safe
// remains.
func SanitizeFilename(name string) string {
	// Client filenames may carry Windows-style separators.
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	// No hidden files from names like ".env".
	name = strings.TrimLeft(name, ".")
	if name == "" || name == "-" || name == "_" {
		return ""
	}
	return name
}

func allowedExtension(name string, allowed map[string]bool) bool {
	return allowed[strings.ToLower(filepath.Ext(name))]
}

func saveTo(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return out.Close()
}
