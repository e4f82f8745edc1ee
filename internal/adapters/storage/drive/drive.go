package drive

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/platform/config"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Storage is the Google Drive implementation of the document store for POD
// images. It authenticates with an offline OAuth refresh token so the server
// never needs an interactive login.
type Storage struct {
	svc        *gdrive.Service
	rootFolder string
}

// NewStorage builds a Drive client from the configured OAuth credentials.
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gdrive.DriveScope},
	}
	token := &oauth2.Token{RefreshToken: cfg.GoogleRefreshToken}

	svc, err := gdrive.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Storage{svc: svc, rootFolder: cfg.DriveRootFolderID}, nil
}

// Ensure Storage implements the portssvc.DocStorageSvc interface
var _ portssvc.DocStorageSvc = (*Storage)(nil)

// findFolder returns the ID of an existing folder with the given name under
// the parent, or "" if none exists.
func (s *Storage) findFolder(ctx context.Context, parentID string, name string) (string, error) {
	query := fmt.Sprintf("name='%s' and '%s' in parents and mimeType='%s' and trashed=false", name, parentID, folderMimeType)
	list, err := s.svc.Files.List().Q(query).Fields("files(id)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to search for folder %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

// EnsureFolder returns the ID of the named folder under parentID, creating
// it if absent. Lookup before create keeps repeated calls convergent.
func (s *Storage) EnsureFolder(ctx context.Context, parentID string, name string) (string, error) {
	if parentID == "" {
		parentID = s.rootFolder
	}

	existing, err := s.findFolder(ctx, parentID, name)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	folder, err := s.svc.Files.Create(&gdrive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}
	return folder.Id, nil
}

// UploadImage stores an image in the given folder, marks it world readable
// and returns the created file with its view URL.
func (s *Storage) UploadImage(ctx context.Context, folderID string, name string, mimeType string, content io.Reader) (*portssvc.StoredFile, error) {
	file, err := s.svc.Files.Create(&gdrive.File{
		Name:    name,
		Parents: []string{folderID},
	}).Media(content).Fields("id", "name", "webViewLink").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload file %q: %w", name, err)
	}

	// The app shows POD links to parties without Google accounts.
	_, err = s.svc.Permissions.Create(file.Id, &gdrive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to set permission on file %s: %w", file.Id, err)
	}

	viewURL := file.WebViewLink
	if viewURL == "" {
		viewURL = fmt.Sprintf("https://drive.google.com/file/d/%s/view", file.Id)
	}
	return &portssvc.StoredFile{
		FileID:   file.Id,
		Name:     file.Name,
		ViewURL:  viewURL,
		MimeType: mimeType,
	}, nil
}

// DeleteFile removes a stored file.
func (s *Storage) DeleteFile(ctx context.Context, fileID string) error {
	if err := s.svc.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}
	return nil
}
