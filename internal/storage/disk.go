package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filegate/internal/config"
)

// diskStore implements Store on top of a single flat local directory.
// It holds no state beyond the directory path and is safe for concurrent
// use; writers never share a target path because stored names are unique.
type diskStore struct {
	dir string
}

// NewDisk creates a disk-backed Store rooted at cfg.Dir.
// It ensures the directory exists (creating it if absent) and returns an
// error the caller should treat as fatal: the process cannot serve requests
// without its storage directory.
func NewDisk(cfg config.StorageConfig) (Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &diskStore{dir: cfg.Dir}, nil
}

// validName rejects anything that is not a plain base name. The service
// layer validates client input already; this guard keeps the store safe no
// matter who calls it.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return name == filepath.Base(name)
}

func (d *diskStore) Save(_ context.Context, name string, r io.Reader) (FileInfo, error) {
	if !validName(name) {
		return FileInfo{}, ErrInvalidName
	}
	path := filepath.Join(d.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path) // drop the partial file
		return FileInfo{}, fmt.Errorf("write file content: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return FileInfo{}, fmt.Errorf("close file: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat file: %w", err)
	}
	return FileInfo{Name: name, Size: st.Size(), ModTime: st.ModTime()}, nil
}

func (d *diskStore) Open(_ context.Context, name string) (io.ReadCloser, FileInfo, error) {
	if !validName(name) {
		return nil, FileInfo{}, ErrInvalidName
	}
	path := filepath.Join(d.dir, name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, FileInfo{}, ErrNotFound
		}
		return nil, FileInfo{}, fmt.Errorf("open file: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, FileInfo{}, fmt.Errorf("stat file: %w", err)
	}
	return f, FileInfo{Name: name, Size: st.Size(), ModTime: st.ModTime()}, nil
}

func (d *diskStore) List(_ context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("read storage directory: %w", err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fi := FileInfo{Name: e.Name()}
		if st, err := e.Info(); err == nil {
			fi.Size = st.Size()
			fi.ModTime = st.ModTime()
		}
		infos = append(infos, fi)
	}
	return infos, nil
}
