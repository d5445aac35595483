package dto

// GenerateUploadURLRequest asks for a presigned PUT url for a new object
type GenerateUploadURLRequest struct {
	TripID      int    `json:"trip_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// GenerateUploadURLResponse carries the url and the object key the client must
// echo back in save-upload-metadata
type GenerateUploadURLResponse struct {
	URL        string `json:"url"`
	StorageKey string `json:"storage_key"`
}

// SaveUploadMetadataRequest persists the pointer row once the client reports a
// successful upload
type SaveUploadMetadataRequest struct {
	TripID           int    `json:"trip_id"`
	FileName         string `json:"file_name"`
	StorageKey       string `json:"storage_key"`
	DocumentCategory string `json:"document_category"` // TRAVEL | ACCOMMODATION
}

// DeleteUploadRequest removes an upload row and its backing object
type DeleteUploadRequest struct {
	TripID   int `json:"trip_id"`
	UploadID int `json:"upload_id"`
}

// UploadItem is one listed upload with a fresh download url
type UploadItem struct {
	UploadID         int    `json:"upload_id"`
	FileName         string `json:"file_name"`
	DocumentCategory string `json:"document_category"`
	UploadUserID     string `json:"upload_user_id"`
	UploadTimestamp  string `json:"upload_timestamp"`
	DownloadURL      string `json:"download_url"`
}

// GetUploadsResponse envelope
type GetUploadsResponse struct {
	Uploads []UploadItem `json:"uploads"`
}
