package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"filegate/internal/model"
	"filegate/internal/storage"
)

var (
	ErrReaderNil       = errors.New("reader is nil")
	ErrInvalidFilename = errors.New("invalid filename")
	ErrNotFound        = errors.New("file not found")
)

// FileService defines the use cases for handling stored files.
type FileService interface {
	// Upload persists the content under a generated stored name and returns
	// the file's metadata including its retrieval URL.
	// - originalFilename is the client-supplied name; it becomes the suffix
	//   of the stored name and must be a plain base name.
	// - baseURL is the request's scheme+host, used to build the URL.
	Upload(ctx context.Context, r io.Reader, originalFilename, baseURL string) (*model.StoredFile, error)

	// List returns every stored file with its retrieval URL, in the order
	// the storage directory enumerates them.
	List(ctx context.Context, baseURL string) ([]model.StoredFile, error)

	// Open returns a stored file's content for streaming to the client.
	Open(ctx context.Context, filename string) (io.ReadCloser, storage.FileInfo, error)
}

// fileService is a concrete implementation of FileService.
type fileService struct {
	store storage.Store
}

// NewFileService constructs a new FileService backed by the given store.
func NewFileService(store storage.Store) FileService {
	return &fileService{store: store}
}

// validFilename rejects client-controlled names that could act as path
// components: separators, parent-directory sequences, or anything whose base
// name differs from the name itself.
func validFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return name == filepath.Base(name)
}

func fileURL(baseURL, storedName string) string {
	return strings.TrimSuffix(baseURL, "/") + "/file/" + storedName
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, originalFilename, baseURL string) (*model.StoredFile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !validFilename(originalFilename) {
		return nil, ErrInvalidFilename
	}

	// Stored name: upload time in millis, a hyphen, the original name.
	// Uniqueness is probabilistic; two same-name uploads in the same
	// millisecond collide, an accepted limitation.
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalFilename)

	if _, err := s.store.Save(ctx, storedName, r); err != nil {
		return nil, fmt.Errorf("save to storage: %w", err)
	}

	return &model.StoredFile{
		Filename: storedName,
		URL:      fileURL(baseURL, storedName),
	}, nil
}

func (s *fileService) List(ctx context.Context, baseURL string) ([]model.StoredFile, error) {
	infos, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]model.StoredFile, 0, len(infos))
	for _, fi := range infos {
		files = append(files, model.StoredFile{
			Filename: fi.Name,
			URL:      fileURL(baseURL, fi.Name),
		})
	}
	return files, nil
}

// Open validates the requested name before touching the filesystem. Names
// with path components can never have been stored, so they map to
// ErrNotFound rather than a distinct error.
func (s *fileService) Open(ctx context.Context, filename string) (io.ReadCloser, storage.FileInfo, error) {
	if !validFilename(filename) {
		return nil, storage.FileInfo{}, ErrNotFound
	}
	rc, info, err := s.store.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return nil, storage.FileInfo{}, ErrNotFound
		}
		return nil, storage.FileInfo{}, err
	}
	return rc, info, nil
}
