package repository

import (
	"context"

	"fileapi/internal/model"
)

// FileRepository defines data access for file metadata using SQL queries only.
// No business logic here — strictly persistence operations.
type FileRepository interface {
	// Create inserts a new file record. The record id is generated by the
	// database; the returned record carries it along with any other values
	// set by the DB (e.g. created_at).
	Create(ctx context.Context, f *model.File) (*model.File, error)

	// FindByID returns a file record by its ID.
	// A missing row surfaces as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.File, error)

	// ListByOwner returns a paginated list of an owner's files and the total
	// rows count for that owner.
	ListByOwner(ctx context.Context, ownerID string, pq PageQuery) (*PageResult[model.File], error)

	// Delete removes a file record by ID. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
