package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage models the storage directory as a capability object:
// handlers and services only reach the filesystem through the Store
// interface, never through os calls of their own.

var (
	// ErrNotFound is returned when no file with the requested name exists.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidName is returned for names that are not a plain base name
	// (path separators, parent-directory components, empty strings).
	ErrInvalidName = errors.New("invalid file name")
)

// FileInfo contains basic information about a stored file.
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Store is the interface for the flat storage directory.
// Implementations must be safe for concurrent use; names are always plain
// base names, one directory level, no subdirectories.
type Store interface {
	// Save writes the reader's content to a new file with the given name.
	Save(ctx context.Context, name string, r io.Reader) (FileInfo, error)
	// Open returns the file's content as a streaming reader alongside its info.
	Open(ctx context.Context, name string) (io.ReadCloser, FileInfo, error)
	// List enumerates every file in the directory, in directory order.
	List(ctx context.Context) ([]FileInfo, error)
}
