package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStorage writes uploads under a base directory and exposes them through
// a static URL prefix. Stored names are uuids so originals can never collide
// or traverse paths.
type DiskStorage struct {
	baseDir   string
	staticURL string
}

func NewDiskStorage(baseDir, staticURL string) *DiskStorage {
	return &DiskStorage{baseDir: baseDir, staticURL: strings.TrimRight(staticURL, "/")}
}

// Save stores the file under subdir and returns its public URL.
func (s *DiskStorage) Save(file *multipart.FileHeader, subdir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.staticURL + "/" + subdir + "/" + name, nil
}

// Remove deletes the file a public URL points to. Unknown URLs are ignored.
func (s *DiskStorage) Remove(fileURL string) error {
	rel, ok := strings.CutPrefix(fileURL, s.staticURL+"/")
	if !ok {
		return nil
	}
	path := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
