package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fileapi/internal/config"
	"fileapi/internal/identity/pb"
)

// stubIdentityClient scripts LookupUser responses per call.
type stubIdentityClient struct {
	calls     int
	responses []func() (*pb.LookupUserResponse, error)
}

func (s *stubIdentityClient) LookupUser(ctx context.Context, in *pb.LookupUserRequest, opts ...grpc.CallOption) (*pb.LookupUserResponse, error) {
	i := s.calls
	s.calls++
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return s.responses[i]()
}

func fastCfg() config.IdentityConfig {
	return config.IdentityConfig{
		Addr:           "stub",
		TimeoutSec:     1,
		MaxAttempts:    3,
		RetryBackoffMs: 1,
	}
}

func okResponse() (*pb.LookupUserResponse, error) {
	return &pb.LookupUserResponse{
		User: &pb.UserProfile{
			Id:          "u1",
			Username:    "alice",
			DisplayName: "Alice",
			AvatarUrl:   "https://cdn.example/a.png",
		},
	}, nil
}

func TestClient_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("success maps profile fields", func(t *testing.T) {
		stub := &stubIdentityClient{responses: []func() (*pb.LookupUserResponse, error){okResponse}}
		c := NewClientWithStub(stub, fastCfg(), nil)

		author, err := c.Lookup(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", author.ID)
		assert.Equal(t, "alice", author.Username)
		assert.Equal(t, "Alice", author.DisplayName)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("not found is definitive, no retry", func(t *testing.T) {
		stub := &stubIdentityClient{responses: []func() (*pb.LookupUserResponse, error){
			func() (*pb.LookupUserResponse, error) {
				return nil, status.Error(codes.NotFound, "no such user")
			},
		}}
		c := NewClientWithStub(stub, fastCfg(), nil)

		author, err := c.Lookup(ctx, "ghost")

		assert.Nil(t, author)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("recovers within retry budget", func(t *testing.T) {
		unavailable := func() (*pb.LookupUserResponse, error) {
			return nil, status.Error(codes.Unavailable, "connection refused")
		}
		stub := &stubIdentityClient{responses: []func() (*pb.LookupUserResponse, error){
			unavailable, unavailable, okResponse,
		}}
		c := NewClientWithStub(stub, fastCfg(), nil)

		author, err := c.Lookup(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", author.ID)
		assert.Equal(t, 3, stub.calls)
	})

	t.Run("budget exhausted yields ErrUnavailable", func(t *testing.T) {
		stub := &stubIdentityClient{responses: []func() (*pb.LookupUserResponse, error){
			func() (*pb.LookupUserResponse, error) {
				return nil, status.Error(codes.Unavailable, "still down")
			},
		}}
		c := NewClientWithStub(stub, fastCfg(), nil)

		author, err := c.Lookup(ctx, "u1")

		assert.Nil(t, author)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, 3, stub.calls)
	})

	t.Run("non-transient error surfaces without retry", func(t *testing.T) {
		stub := &stubIdentityClient{responses: []func() (*pb.LookupUserResponse, error){
			func() (*pb.LookupUserResponse, error) {
				return nil, status.Error(codes.PermissionDenied, "nope")
			},
		}}
		c := NewClientWithStub(stub, fastCfg(), nil)

		_, err := c.Lookup(ctx, "u1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("empty response body counts as not found", func(t *testing.T) {
		stub := &stubIdentityClient{responses: []func() (*pb.LookupUserResponse, error){
			func() (*pb.LookupUserResponse, error) { return &pb.LookupUserResponse{}, nil },
		}}
		c := NewClientWithStub(stub, fastCfg(), nil)

		_, err := c.Lookup(ctx, "u1")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("caller cancellation aborts retries", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		stub := &stubIdentityClient{responses: []func() (*pb.LookupUserResponse, error){
			func() (*pb.LookupUserResponse, error) {
				cancel()
				return nil, status.Error(codes.Unavailable, "down")
			},
		}}
		cfg := fastCfg()
		cfg.RetryBackoffMs = 5000 // cancellation must win, not the backoff timer
		c := NewClientWithStub(stub, cfg, nil)

		start := time.Now()
		_, err := c.Lookup(cancelled, "u1")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("empty user id rejected", func(t *testing.T) {
		stub := &stubIdentityClient{responses: []func() (*pb.LookupUserResponse, error){okResponse}}
		c := NewClientWithStub(stub, fastCfg(), nil)

		_, err := c.Lookup(ctx, "")

		assert.Error(t, err)
		assert.Equal(t, 0, stub.calls)
	})
}
