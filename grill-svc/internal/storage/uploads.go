package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const UploadsURLPrefix = "/uploads/"

// DiskImageStore writes uploaded images under Dir and serves them from /uploads/.
type DiskImageStore struct {
	Dir string
}

func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DiskImageStore{Dir: dir}, nil
}

func (s *DiskImageStore) Save(filename string, content io.Reader) (string, error) {
	name := filepath.Base(filename)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return UploadsURLPrefix + name, nil
}
