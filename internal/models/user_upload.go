package models

import "time"

// DocumentCategory classifies an uploaded document.
type DocumentCategory string

const (
	DocumentTravel        DocumentCategory = "TRAVEL"
	DocumentAccommodation DocumentCategory = "ACCOMMODATION"
)

// Valid reports whether c is a known document category.
func (c DocumentCategory) Valid() bool {
	return c == DocumentTravel || c == DocumentAccommodation
}

// UserUpload is the metadata row for an object in external storage. The row is
// the source of truth; the object store holds no metadata of its own.
type UserUpload struct {
	ID               int              `json:"id" db:"id"`
	UploadUserID     string           `json:"upload_user_id" db:"upload_user_id"`
	TripID           int              `json:"trip_id" db:"trip_id"`
	DocumentCategory DocumentCategory `json:"document_category" db:"document_category"`
	FileName         string           `json:"file_name" db:"file_name"`
	StorageKey       string           `json:"storage_key" db:"storage_key"`
	UploadTimestamp  time.Time        `json:"upload_timestamp" db:"upload_timestamp"`
}
