package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"fileapi/internal/config"
	"fileapi/internal/model"
)

// minioStorage implements the ObjectStore interface using an S3-compatible
// backend (MinIO, AWS S3, etc.). It is safe for concurrent use by multiple
// goroutines.
type minioStorage struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
}

// NewMinIO creates a new S3-compatible object store gateway backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (ObjectStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}
	if cfg.PresignTTLSec <= 0 {
		return nil, fmt.Errorf("presign TTL must be positive")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStorage{
		client: cli,
		bucket: cfg.Bucket,
		ttl:    time.Duration(cfg.PresignTTLSec) * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

// BuildStorageKey mints an owner-namespaced storage key for a new upload.
// The UUID disambiguator keeps keys unique even for identical file names
// requested by the same owner in the same instant; the owner prefix prevents
// key collision or hijack across users.
func BuildStorageKey(ownerID, fileName string) string {
	base := filepath.ToSlash(filepath.Base(fileName))
	return fmt.Sprintf("%s/%s_%s", ownerID, uuid.NewString(), base)
}

// PresignUpload issues a presigned PUT URL for a freshly minted key.
// The Content-Type header is part of the signature, so the client must upload
// with exactly the declared type.
func (m *minioStorage) PresignUpload(ctx context.Context, ownerID, fileName, contentType string) (*UploadTicket, error) {
	if _, ok := model.FileTypeFromContentType(contentType); !ok {
		return nil, fmt.Errorf("%w: %s", ErrContentTypeNotAllowed, contentType)
	}

	key := BuildStorageKey(ownerID, fileName)

	issuedAt := time.Now()
	u, err := m.client.PresignHeader(ctx, http.MethodPut, m.bucket, key, m.ttl,
		url.Values{}, http.Header{"Content-Type": []string{contentType}})
	if err != nil {
		return nil, fmt.Errorf("%w: presign put: %v", ErrStoreUnavailable, err)
	}

	return &UploadTicket{
		PresignedURL: PresignedURL{
			URL:       u.String(),
			Method:    http.MethodPut,
			ExpiresAt: issuedAt.Add(m.ttl),
		},
		StorageKey: key,
	}, nil
}

// PresignDownload issues a presigned GET URL for an existing key.
// The response-content-disposition parameter makes the store serve the object
// inline under its display name instead of forcing a download.
func (m *minioStorage) PresignDownload(ctx context.Context, key, fileName string) (*PresignedURL, error) {
	if fileName == "" || fileName == "." {
		fileName = filepath.Base(key)
	}

	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("inline; filename=%q", fileName))

	issuedAt := time.Now()
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, m.ttl, reqParams)
	if err != nil {
		return nil, fmt.Errorf("%w: presign get: %v", ErrStoreUnavailable, err)
	}

	return &PresignedURL{
		URL:       u.String(),
		Method:    http.MethodGet,
		ExpiresAt: issuedAt.Add(m.ttl),
	}, nil
}

// Delete removes an object by key. A missing object counts as success.
func (m *minioStorage) Delete(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	if err == nil {
		return nil
	}
	if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
		return nil
	}
	return fmt.Errorf("%w: remove object: %v", ErrStoreUnavailable, err)
}
