// Package storage persists uploaded images on the local filesystem and hands
// back the public URLs the catalog stores. Durability, deduplication and
// cleanup of orphaned files are out of scope here.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 5 << 20 // 5 MiB

// MaxBatchSize is the most files a single upload request may carry.
const MaxBatchSize = 10

var allowedExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type Local struct {
	dir     string
	baseURL string // public prefix the stored names are appended to
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Dir() string { return l.dir }

// AllowedImage reports whether the file looks like one of the accepted image
// formats, judged by extension and by the declared content type.
func AllowedImage(fh *multipart.FileHeader) bool {
	if !allowedExt[strings.ToLower(filepath.Ext(fh.Filename))] {
		return false
	}
	ct := fh.Header.Get("Content-Type")
	return ct == "" || strings.HasPrefix(ct, "image/")
}

// Save writes one uploaded file under a fresh random name, keeping the
// original extension, and returns its public URL.
func (l *Local) Save(fh *multipart.FileHeader) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	name := id + strings.ToLower(filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return l.baseURL + "/" + name, nil
}
