// Package storage persists uploaded avatar images on the local filesystem,
// mirroring the uploads/ directory the panel always served from.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileAvatarStorage stores avatars as randomly named files under Dir and
// serves them under BaseURL. The random name prevents collisions and avoids
// trusting client-supplied filenames.
type FileAvatarStorage struct {
	dir     string
	baseURL string
}

// NewFileAvatarStorage ensures the upload directory exists and returns the store.
func NewFileAvatarStorage(dir, baseURL string) (*FileAvatarStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &FileAvatarStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Store writes the uploaded data to disk and returns the public URL.
// Only the extension of the original filename is kept.
func (s *FileAvatarStorage) Store(_ context.Context, filename string, data io.Reader) (string, error) {
	name, err := randomName()
	if err != nil {
		return "", err
	}
	if ext := sanitizeExt(filename); ext != "" {
		name += ext
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write avatar file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Remove deletes the file behind url. URLs outside BaseURL and already
// missing files are ignored.
func (s *FileAvatarStorage) Remove(_ context.Context, url string) error {
	name := strings.TrimPrefix(url, s.baseURL+"/")
	if name == url || name == "" {
		return nil
	}

	// path.Base guards against traversal in stored URLs.
	target := filepath.Join(s.dir, path.Base(name))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove avatar file: %w", err)
	}
	return nil
}

// Dir returns the directory uploads are written to, for static file serving.
func (s *FileAvatarStorage) Dir() string {
	return s.dir
}

func randomName() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate avatar name: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// sanitizeExt keeps a short, plain extension from the uploaded filename.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if len(ext) < 2 || len(ext) > 5 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
