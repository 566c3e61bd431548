package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fileapi/internal/http/middleware"
	"fileapi/internal/identity"
	"fileapi/internal/service"
)

// uploadURLRequest is the body for requesting a presigned upload capability.
type uploadURLRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// createFileRequest confirms a finished upload. StorageKey must come from a
// prior upload-url response for the same requester.
type createFileRequest struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	StorageKey  string `json:"storage_key"`
	Size        int64  `json:"size"`
}

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a trivial liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// IssueUploadURL mints an owner-scoped storage key and a presigned PUT URL.
func IssueUploadURL(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req uploadURLRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.FileName == "" {
			return writeError(c, fiber.StatusBadRequest, "FILE_NAME_REQUIRED", "file_name is required")
		}

		ticket, err := svc.IssueUploadURL(c.UserContext(), middleware.UserIDFromCtx(c), req.FileName, req.ContentType)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ticket)
	}
}

// CreateFile persists metadata for an uploaded object.
//
// A record that was saved but could not be enriched with its author snapshot
// is still a success: the service returns the persisted record alongside an
// identity error, and the handler answers 201 with author set to null.
func CreateFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createFileRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Name == "" {
			return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "name is required")
		}
		if req.StorageKey == "" {
			return writeError(c, fiber.StatusBadRequest, "STORAGE_KEY_REQUIRED", "storage_key is required")
		}

		res, err := svc.CreateFile(c.UserContext(), service.CreateFileInput{
			OwnerID:     middleware.UserIDFromCtx(c),
			Name:        req.Name,
			ContentType: req.ContentType,
			StorageKey:  req.StorageKey,
			Size:        req.Size,
		})
		if err != nil {
			identityOnly := res != nil &&
				(errors.Is(err, identity.ErrUnavailable) || errors.Is(err, identity.ErrNotFound))
			if !identityOnly {
				return writeServiceError(c, err)
			}
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// ListFiles returns the requester's files with limit/offset pagination.
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.ListFiles(c.UserContext(), middleware.UserIDFromCtx(c), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetFile returns a single owned file with its author snapshot when available.
func GetFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.GetFile(c.UserContext(), middleware.UserIDFromCtx(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// IssueDownloadURL returns a presigned GET URL for an owned file.
func IssueDownloadURL(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		link, err := svc.IssueDownloadURL(c.UserContext(), middleware.UserIDFromCtx(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(link)
	}
}

// DeleteFile removes an owned file's object and record.
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.DeleteFile(c.UserContext(), middleware.UserIDFromCtx(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
