package postgres

import (
	"context"
	"database/sql"

	"fileapi/internal/model"
	"fileapi/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

// Create inserts a new file row and returns the stored record.
// The id and created_at are generated by the database.
func (r *FilePostgres) Create(ctx context.Context, f *model.File) (*model.File, error) {
	const q = `
		INSERT INTO files (name, file_type, storage_key, owner_id, size, content_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, file_type, storage_key, owner_id, size, content_type, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		f.Name,
		f.FileType,
		f.StorageKey,
		f.OwnerID,
		f.Size,
		f.ContentType,
	)
	var out model.File
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.FileType,
		&out.StorageKey,
		&out.OwnerID,
		&out.Size,
		&out.ContentType,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single file record by its ID.
func (r *FilePostgres) FindByID(ctx context.Context, id string) (*model.File, error) {
	const q = `
		SELECT id, name, file_type, storage_key, owner_id, size, content_type, created_at
		FROM files
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var f model.File
	if err := row.Scan(
		&f.ID,
		&f.Name,
		&f.FileType,
		&f.StorageKey,
		&f.OwnerID,
		&f.Size,
		&f.ContentType,
		&f.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByOwner returns an owner's files using LIMIT/OFFSET pagination and a total count.
func (r *FilePostgres) ListByOwner(ctx context.Context, ownerID string, pq repository.PageQuery) (*repository.PageResult[model.File], error) {
	const qCount = `SELECT COUNT(*) FROM files WHERE owner_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, ownerID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, file_type, storage_key, owner_id, size, content_type, created_at
		FROM files
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, ownerID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.File, 0)
	for rows.Next() {
		var f model.File
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.FileType,
			&f.StorageKey,
			&f.OwnerID,
			&f.Size,
			&f.ContentType,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.File]{Items: items, Total: total}, nil
}

// Delete removes a file row by ID. Missing rows are not treated as errors.
func (r *FilePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM files WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
