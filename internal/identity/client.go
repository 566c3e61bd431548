package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"fileapi/internal/config"
	"fileapi/internal/identity/pb"
	"fileapi/internal/model"
)

// Package identity contains the gRPC client for the remote identity service.
// The service is treated as an unreliable dependency: every call runs under
// its own short deadline and transient failures are retried a bounded number
// of times with a fixed pause, so a degraded identity service cannot stall
// unrelated requests or amplify load.

var (
	// ErrUnavailable indicates a transient failure that persisted through the retry budget.
	ErrUnavailable = errors.New("identity service unavailable")
	// ErrNotFound indicates the identity service definitively knows no such user.
	ErrNotFound = errors.New("identity not found")
)

// Resolver resolves a user id to a point-in-time identity snapshot.
type Resolver interface {
	Lookup(ctx context.Context, userID string) (*model.Author, error)
}

// Client is a gRPC-backed Resolver. Safe for concurrent use.
type Client struct {
	client      pb.IdentityServiceClient
	conn        *grpc.ClientConn
	timeout     time.Duration
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger
}

var _ Resolver = (*Client)(nil)

// NewClient dials the identity service and returns a Resolver around it.
// Dialing is lazy; connectivity problems surface on the first Lookup.
func NewClient(cfg config.IdentityConfig, logger *slog.Logger) (*Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("identity service address is required")
	}
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("create identity client: %w", err)
	}
	c := newClient(pb.NewIdentityServiceClient(conn), cfg, logger)
	c.conn = conn
	return c, nil
}

// NewClientWithStub wraps an existing stub; used by tests and in-process wiring.
func NewClientWithStub(stub pb.IdentityServiceClient, cfg config.IdentityConfig, logger *slog.Logger) *Client {
	return newClient(stub, cfg, logger)
}

func newClient(stub pb.IdentityServiceClient, cfg config.IdentityConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := time.Duration(cfg.RetryBackoffMs) * time.Millisecond
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}
	return &Client{
		client:      stub,
		timeout:     timeout,
		maxAttempts: attempts,
		backoff:     backoff,
		logger:      logger,
	}
}

// Close releases the underlying connection, if this client owns one.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Lookup resolves userID with a bounded retry budget. Transient transport
// failures (Unavailable, DeadlineExceeded, ResourceExhausted) are retried
// with the same request payload; a definitive NotFound is never retried.
func (c *Client) Lookup(ctx context.Context, userID string) (*model.Author, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	req := &pb.LookupUserRequest{UserId: userID}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.LookupUser(attemptCtx, req)
		cancel()

		if err == nil {
			user := resp.GetUser()
			if user == nil {
				return nil, ErrNotFound
			}
			return &model.Author{
				ID:          user.GetId(),
				Username:    user.GetUsername(),
				DisplayName: user.GetDisplayName(),
				AvatarURL:   user.GetAvatarUrl(),
			}, nil
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("identity lookup cancelled: %w", ctx.Err())
		}

		st, _ := status.FromError(err)
		if st.Code() == codes.NotFound {
			return nil, ErrNotFound
		}
		if !isTransient(st.Code()) {
			return nil, fmt.Errorf("identity lookup: %w", err)
		}

		lastErr = err
		c.logger.Warn("identity lookup retry",
			"user_id", userID,
			"attempt", attempt,
			"max_attempts", c.maxAttempts,
			"code", st.Code().String(),
		)

		if attempt < c.maxAttempts {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("identity lookup cancelled: %w", ctx.Err())
			case <-time.After(c.backoff):
			}
		}
	}

	return nil, fmt.Errorf("%w: %d attempts exhausted: %v", ErrUnavailable, c.maxAttempts, lastErr)
}

func isTransient(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	}
	return false
}
