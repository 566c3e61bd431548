package model

import "strings"

// FileType is the category a file falls into, derived from its MIME type.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeAudio    FileType = "audio"
	FileTypeVideo    FileType = "video"
	FileTypeDocument FileType = "document"
	FileTypeArchive  FileType = "archive"
)

// documentTypes and archiveTypes list the non-prefix MIME types accepted by
// the upload policy. Image/audio/video are matched on their MIME prefix.
var documentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"text/plain": {},
	"text/csv":   {},
}

var archiveTypes = map[string]struct{}{
	"application/zip":    {},
	"application/gzip":   {},
	"application/x-tar":  {},
	"application/x-7z-compressed": {},
}

// FileTypeFromContentType maps a MIME type to its file category.
// It returns false for MIME types the upload policy does not accept.
func FileTypeFromContentType(contentType string) (FileType, bool) {
	// Strip parameters like "; charset=utf-8".
	mt := contentType
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	mt = strings.ToLower(strings.TrimSpace(mt))

	switch {
	case strings.HasPrefix(mt, "image/"):
		return FileTypeImage, true
	case strings.HasPrefix(mt, "audio/"):
		return FileTypeAudio, true
	case strings.HasPrefix(mt, "video/"):
		return FileTypeVideo, true
	}
	if _, ok := documentTypes[mt]; ok {
		return FileTypeDocument, true
	}
	if _, ok := archiveTypes[mt]; ok {
		return FileTypeArchive, true
	}
	return "", false
}
