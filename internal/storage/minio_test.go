package storage

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStorage builds a gateway around a client that never talks to the
// network: presigning is pure signature computation.
func newTestStorage(t *testing.T) *minioStorage {
	t.Helper()
	cli, err := minio.New("127.0.0.1:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("test-access", "test-secret", ""),
		Secure: false,
		// A fixed region keeps presigning offline: without it the client
		// performs a GetBucketLocation round trip before signing.
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return &minioStorage{client: cli, bucket: "files", ttl: 15 * time.Minute}
}

func TestBuildStorageKey(t *testing.T) {
	k1 := BuildStorageKey("u1", "photo.png")
	k2 := BuildStorageKey("u1", "photo.png")

	assert.True(t, strings.HasPrefix(k1, "u1/"))
	assert.True(t, strings.HasSuffix(k1, "_photo.png"))
	// Identical inputs still yield distinct keys.
	assert.NotEqual(t, k1, k2)

	// Client-supplied path components are stripped.
	k3 := BuildStorageKey("u2", "../../etc/passwd")
	assert.True(t, strings.HasPrefix(k3, "u2/"))
	assert.NotContains(t, k3, "..")
}

func TestPresignUpload(t *testing.T) {
	ms := newTestStorage(t)
	ctx := context.Background()

	t.Run("issues put capability", func(t *testing.T) {
		before := time.Now()
		ticket, err := ms.PresignUpload(ctx, "u1", "photo.png", "image/png")

		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, ticket.Method)
		assert.True(t, strings.HasPrefix(ticket.StorageKey, "u1/"))
		assert.True(t, ticket.ExpiresAt.After(before))

		u, err := url.Parse(ticket.URL)
		require.NoError(t, err)
		assert.Contains(t, u.Path, ticket.StorageKey)
	})

	t.Run("rejects disallowed content type", func(t *testing.T) {
		ticket, err := ms.PresignUpload(ctx, "u1", "payload.bin", "application/x-msdownload")

		assert.Nil(t, ticket)
		assert.ErrorIs(t, err, ErrContentTypeNotAllowed)
	})

	t.Run("concurrent identical requests get distinct keys", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			ticket, err := ms.PresignUpload(ctx, "u1", "photo.png", "image/png")
			require.NoError(t, err)
			assert.False(t, seen[ticket.StorageKey])
			seen[ticket.StorageKey] = true
		}
	})
}

func TestPresignDownload(t *testing.T) {
	ms := newTestStorage(t)
	ctx := context.Background()

	before := time.Now()
	link, err := ms.PresignDownload(ctx, "u1/abc_photo.png", "photo.png")

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, link.Method)
	assert.True(t, link.ExpiresAt.After(before))

	u, err := url.Parse(link.URL)
	require.NoError(t, err)
	disposition := u.Query().Get("response-content-disposition")
	assert.Contains(t, disposition, "inline")
	assert.Contains(t, disposition, "photo.png")
}
