package storage

import (
	"context"
	"errors"
	"time"
)

// Package storage contains the object-store gateway for S3-compatible backends.
// The service never proxies file bytes: clients upload and download directly
// against the store using presigned URLs issued here.

var (
	// ErrStoreUnavailable indicates the object store rejected or could not serve the operation.
	ErrStoreUnavailable = errors.New("object store unavailable")
	// ErrContentTypeNotAllowed indicates the MIME type is rejected by the upload policy.
	ErrContentTypeNotAllowed = errors.New("content type not allowed")
)

// PresignedURL is a time-bounded capability for one direct transfer against
// the object store. It is never persisted and never reused across requests.
type PresignedURL struct {
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UploadTicket carries a presigned PUT capability together with the storage
// key it will write to. The caller must persist the key once the upload completes.
type UploadTicket struct {
	PresignedURL
	StorageKey string `json:"storage_key"`
}

// ObjectStore is the gateway to an S3-compatible object store.
// Implementations must be safe for concurrent use by many simultaneous requests.
type ObjectStore interface {
	// PresignUpload mints a fresh storage key scoped under ownerID and returns
	// a presigned PUT URL bound to exactly that key and content type.
	// Fails with ErrContentTypeNotAllowed if the MIME type is rejected by policy,
	// or ErrStoreUnavailable if the store cannot be reached.
	PresignUpload(ctx context.Context, ownerID, fileName, contentType string) (*UploadTicket, error)

	// PresignDownload returns a presigned GET URL for an existing key.
	// The URL instructs the store to serve the object inline under the given
	// display name rather than as an attachment.
	PresignDownload(ctx context.Context, key, fileName string) (*PresignedURL, error)

	// Delete removes an object by key. Best-effort and idempotent: a missing
	// object is treated as success.
	Delete(ctx context.Context, key string) error
}
