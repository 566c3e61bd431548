package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fileapi/internal/identity"
	"fileapi/internal/model"
	"fileapi/internal/repository"
	"fileapi/internal/storage"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrFileNotFound = errors.New("file not found")
	ErrNotOwner     = errors.New("requester does not own the file")
	// ErrStorageKeyMismatch means the supplied storage key is not inside the
	// owner's namespace. Keys are always minted as "<ownerID>/..." so accepting
	// anything else would let a caller claim or shadow another user's object.
	ErrStorageKeyMismatch = errors.New("storage key outside owner namespace")
)

// FileListResult is the service-level DTO for paginated file listings.
type FileListResult struct {
	Items []model.File `json:"data"`
	Total int          `json:"total"`
}

// CreateFileInput carries the confirm-creation parameters. StorageKey must be
// the key returned by a prior IssueUploadURL call for the same owner.
type CreateFileInput struct {
	OwnerID     string
	Name        string
	ContentType string
	StorageKey  string
	Size        int64
}

// FileService defines the use cases for file metadata and access control.
// The caller is responsible for authenticating requesters; every id passed in
// is trusted as verified.
type FileService interface {
	// CreateFile persists a file record and enriches it with the owner's
	// identity snapshot. Object existence under StorageKey is not verified;
	// only intent is recorded.
	//
	// Enrichment is best-effort and never rolls back the record: when the
	// identity lookup fails after its retry budget, CreateFile returns the
	// persisted record (non-nil, Author == nil) together with an error
	// wrapping identity.ErrUnavailable or identity.ErrNotFound. A nil result
	// always means nothing was saved. Callers distinguish "saved, author
	// unknown" from "not saved" by the result being non-nil.
	CreateFile(ctx context.Context, in CreateFileInput) (*model.FileWithAuthor, error)

	// IssueUploadURL mints a fresh owner-scoped storage key and returns a
	// presigned PUT capability for it. Concurrent calls with identical
	// arguments always receive distinct keys.
	IssueUploadURL(ctx context.Context, ownerID, fileName, contentType string) (*storage.UploadTicket, error)

	// IssueDownloadURL returns a presigned GET capability for an existing
	// file. The requester must own the file.
	IssueDownloadURL(ctx context.Context, requesterID, fileID string) (*storage.PresignedURL, error)

	// DeleteFile removes the stored object (best-effort) and the metadata
	// record. Only the owner may delete. Success is reported once the record
	// deletion succeeds; an object-store failure is downgraded to a warning.
	DeleteFile(ctx context.Context, requesterID, fileID string) error

	// GetFile returns a single owned file with best-effort author enrichment.
	GetFile(ctx context.Context, requesterID, fileID string) (*model.FileWithAuthor, error)

	// ListFiles returns the owner's files using limit/offset and a total count.
	ListFiles(ctx context.Context, ownerID string, limit, offset int) (*FileListResult, error)
}

// fileService is a concrete implementation of FileService.
type fileService struct {
	store  storage.ObjectStore
	repo   repository.FileRepository
	ident  identity.Resolver
	logger *slog.Logger
}

// NewFileService constructs a new FileService.
func NewFileService(store storage.ObjectStore, repo repository.FileRepository, ident identity.Resolver, logger *slog.Logger) FileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &fileService{store: store, repo: repo, ident: ident, logger: logger}
}

func (s *fileService) CreateFile(ctx context.Context, in CreateFileInput) (*model.FileWithAuthor, error) {
	if in.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner id", ErrIDRequired)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	fileType, ok := model.FileTypeFromContentType(in.ContentType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrContentTypeNotAllowed, in.ContentType)
	}
	if !strings.HasPrefix(in.StorageKey, in.OwnerID+"/") {
		return nil, ErrStorageKeyMismatch
	}

	stored, err := s.repo.Create(ctx, &model.File{
		Name:        in.Name,
		FileType:    fileType,
		StorageKey:  in.StorageKey,
		OwnerID:     in.OwnerID,
		Size:        in.Size,
		ContentType: in.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("save file record: %w", err)
	}

	result := &model.FileWithAuthor{File: *stored}

	author, err := s.ident.Lookup(ctx, in.OwnerID)
	if err != nil {
		// The record stays persisted; the caller gets it back along with a
		// typed error naming the identity lookup as the cause.
		s.logger.Warn("file created without author snapshot",
			"file_id", stored.ID,
			"owner_id", stored.OwnerID,
			"error", err,
		)
		return result, fmt.Errorf("author lookup: %w", err)
	}
	result.Author = author

	s.logger.Info("file created", "file_id", stored.ID, "owner_id", stored.OwnerID)
	return result, nil
}

func (s *fileService) IssueUploadURL(ctx context.Context, ownerID, fileName, contentType string) (*storage.UploadTicket, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id", ErrIDRequired)
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}

	ticket, err := s.store.PresignUpload(ctx, ownerID, fileName, contentType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("upload url issued",
		"owner_id", ownerID,
		"storage_key", ticket.StorageKey,
		"expires_at", ticket.ExpiresAt,
	)
	return ticket, nil
}

func (s *fileService) IssueDownloadURL(ctx context.Context, requesterID, fileID string) (*storage.PresignedURL, error) {
	f, err := s.findOwned(ctx, requesterID, fileID)
	if err != nil {
		return nil, err
	}

	link, err := s.store.PresignDownload(ctx, f.StorageKey, f.Name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("download url issued", "file_id", f.ID, "owner_id", f.OwnerID)
	return link, nil
}

func (s *fileService) DeleteFile(ctx context.Context, requesterID, fileID string) error {
	f, err := s.findOwned(ctx, requesterID, fileID)
	if err != nil {
		return err
	}

	// Object-store and metadata-store deletes are not transactionally coupled.
	// A dangling object is recoverable while the record exists nowhere to
	// retry against once gone, so the record deletion is the operation of
	// record and a store failure only downgrades to a warning.
	if err := s.store.Delete(ctx, f.StorageKey); err != nil {
		s.logger.Warn("object delete failed, record will still be removed",
			"file_id", f.ID,
			"storage_key", f.StorageKey,
			"error", err,
		)
	}

	if err := s.repo.Delete(ctx, f.ID); err != nil {
		return fmt.Errorf("delete file record: %w", err)
	}

	s.logger.Info("file deleted", "file_id", f.ID, "owner_id", f.OwnerID)
	return nil
}

func (s *fileService) GetFile(ctx context.Context, requesterID, fileID string) (*model.FileWithAuthor, error) {
	f, err := s.findOwned(ctx, requesterID, fileID)
	if err != nil {
		return nil, err
	}

	result := &model.FileWithAuthor{File: *f}
	if author, err := s.ident.Lookup(ctx, f.OwnerID); err == nil {
		result.Author = author
	}
	return result, nil
}

func (s *fileService) ListFiles(ctx context.Context, ownerID string, limit, offset int) (*FileListResult, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id", ErrIDRequired)
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListByOwner(ctx, ownerID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &FileListResult{Items: res.Items, Total: res.Total}, nil
}

// findOwned loads a record and enforces that requesterID owns it.
func (s *fileService) findOwned(ctx context.Context, requesterID, fileID string) (*model.File, error) {
	if requesterID == "" || fileID == "" {
		return nil, ErrIDRequired
	}
	f, err := s.repo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	if f.OwnerID != requesterID {
		return nil, ErrNotOwner
	}
	return f, nil
}
