package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"fileapi/internal/model"
	"fileapi/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var fileColumns = []string{"id", "name", "file_type", "storage_key", "owner_id", "size", "content_type", "created_at"}

func TestFilePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewFilePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	f := &model.File{
		Name:        "photo.png",
		FileType:    model.FileTypeImage,
		StorageKey:  "u1/abc_photo.png",
		OwnerID:     "u1",
		Size:        123,
		ContentType: "image/png",
	}

	rows := sqlmock.NewRows(fileColumns).
		AddRow("gen-id", f.Name, f.FileType, f.StorageKey, f.OwnerID, f.Size, f.ContentType, now)

	mock.ExpectQuery("INSERT INTO files").
		WithArgs(f.Name, f.FileType, f.StorageKey, f.OwnerID, f.Size, f.ContentType).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, f)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "gen-id", result.ID)
	// Stored key is exactly what the caller supplied.
	assert.Equal(t, f.StorageKey, result.StorageKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewFilePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(fileColumns).
			AddRow("test-id", "file.txt", model.FileTypeDocument, "u1/abc_file.txt", "u1", 100, "text/plain", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM files WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		f, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, f)
		assert.Equal(t, "test-id", f.ID)
		assert.Equal(t, "u1", f.OwnerID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM files WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		f, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, f)
	})
}

func TestFilePostgres_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewFilePostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM files WHERE owner_id = ?").
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(fileColumns).
			AddRow("test-id", "file.txt", model.FileTypeDocument, "u1/abc_file.txt", "u1", 100, "text/plain", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM files WHERE owner_id = (.+) ORDER BY").
			WithArgs("u1", 10, 0).
			WillReturnRows(rows)

		res, err := repo.ListByOwner(ctx, "u1", repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})
}

func TestFilePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewFilePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM files WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func IsNoRowsError(err error) bool {
	return err == sql.ErrNoRows
}
