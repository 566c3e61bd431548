package model

import "time"

// File represents a stored file's metadata record.
// This is a pure domain model with no database-specific dependencies or tags.
// The file bytes themselves live in object storage under StorageKey; this
// service never handles them directly.
type File struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FileType    FileType  `json:"file_type"`
	StorageKey  string    `json:"storage_key"`
	OwnerID     string    `json:"owner_id"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// Author is a point-in-time snapshot of a file owner's public identity,
// fetched from the identity service per request. It is never persisted.
type Author struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// FileWithAuthor joins a file record with its (optionally resolved) author.
// Author is nil when identity enrichment was skipped or failed.
type FileWithAuthor struct {
	File
	Author *Author `json:"author"`
}
