package services

import (
	"context"
	"io"
)

// StoredFile describes a file held in the document store.
type StoredFile struct {
	FileID   string
	Name     string
	ViewURL  string
	MimeType string
}

// DocStorageSvc abstracts the Drive-backed document store used for POD
// images. Folders are created lazily and looked up by name before creation
// so repeated calls converge on the same folder.
type DocStorageSvc interface {
	// EnsureFolder returns the ID of the named folder under parentID,
	// creating it if absent. An empty parentID means the configured root.
	EnsureFolder(ctx context.Context, parentID string, name string) (string, error)

	// UploadImage stores an image in the given folder and returns the
	// created file with a shareable view URL.
	UploadImage(ctx context.Context, folderID string, name string, mimeType string, content io.Reader) (*StoredFile, error)

	// DeleteFile removes a stored file.
	DeleteFile(ctx context.Context, fileID string) error
}
