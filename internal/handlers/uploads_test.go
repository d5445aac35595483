package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPMATE_BACK-END/internal/config"
	"TRIPMATE_BACK-END/internal/dto"
)

// brokenStorage fails every operation with a driver-style error message.
type brokenStorage struct{}

func (brokenStorage) IssueUploadURL(context.Context, string, string, time.Duration) (string, error) {
	return "", errors.New("operation error S3: PutObject, https response error StatusCode: 403, api error AccessDenied")
}

func (brokenStorage) IssueDownloadURL(context.Context, string, time.Duration) (string, error) {
	return "", errors.New("operation error S3: GetObject, https response error StatusCode: 403, api error AccessDenied")
}

func (brokenStorage) DeleteObject(context.Context, string) error {
	return errors.New("operation error S3: DeleteObject, https response error StatusCode: 403, api error AccessDenied")
}

func uploadEnv(t *testing.T) (*testEnv, int) {
	t.Helper()
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	env.addUser(t, "bob", "Bob", "Odenkirk")
	env.addUser(t, "carol", "Carol", "Chen")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")
	env.joinTrip(t, "bob", created.TripToken)
	env.joinTrip(t, "carol", created.TripToken)
	return env, created.TripID
}

func TestGenerateUploadURL(t *testing.T) {
	env, tripID := uploadEnv(t)

	rec := env.do(t, env.uploads.GenerateUploadURL, http.MethodPost, "/user_uploads/generate-upload-url",
		dto.GenerateUploadURLRequest{TripID: tripID, FileName: "ticket.pdf", ContentType: "application/pdf"}, "bob")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[dto.GenerateUploadURLResponse](t, rec)
	assert.True(t, strings.HasPrefix(resp.StorageKey, "user_uploads/1/"))
	assert.True(t, strings.HasSuffix(resp.StorageKey, "/ticket.pdf"))
	assert.Contains(t, resp.URL, resp.StorageKey)
}

func TestGenerateUploadURLRejectsPathSeparators(t *testing.T) {
	env, tripID := uploadEnv(t)

	rec := env.do(t, env.uploads.GenerateUploadURL, http.MethodPost, "/user_uploads/generate-upload-url",
		dto.GenerateUploadURLRequest{TripID: tripID, FileName: "../../etc/passwd"}, "bob")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveAndListUploads(t *testing.T) {
	env, tripID := uploadEnv(t)

	save := func(fileName, key, category string) {
		rec := env.do(t, env.uploads.SaveUploadMetadata, http.MethodPost, "/user_uploads/save-upload-metadata",
			dto.SaveUploadMetadataRequest{
				TripID:           tripID,
				FileName:         fileName,
				StorageKey:       key,
				DocumentCategory: category,
			}, "bob")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	save("ticket.pdf", "user_uploads/1/a/ticket.pdf", "TRAVEL")
	save("booking.pdf", "user_uploads/1/b/booking.pdf", "ACCOMMODATION")

	rec := env.do(t, env.uploads.GetUploads, http.MethodGet, "/user_uploads/get-uploads?trip_id=1", nil, "host")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeBody[dto.GetUploadsResponse](t, rec)
	require.Len(t, all.Uploads, 2)
	assert.Equal(t, "https://storage.test/get/user_uploads/1/a/ticket.pdf", all.Uploads[0].DownloadURL)
	assert.Equal(t, "bob", all.Uploads[0].UploadUserID)

	rec = env.do(t, env.uploads.GetUploads, http.MethodGet, "/user_uploads/get-uploads?trip_id=1&document_category=TRAVEL", nil, "host")
	require.Equal(t, http.StatusOK, rec.Code)
	travel := decodeBody[dto.GetUploadsResponse](t, rec)
	require.Len(t, travel.Uploads, 1)
	assert.Equal(t, "ticket.pdf", travel.Uploads[0].FileName)
}

func TestStorageFailureKeepsDriverErrorOutOfBody(t *testing.T) {
	env, tripID := uploadEnv(t)
	uploads := NewUploadsHandler(env.store, brokenStorage{}, config.StorageConfig{
		Bucket:      "test-bucket",
		UploadTTL:   time.Hour,
		DownloadTTL: time.Hour,
	}, zerolog.Nop())

	rec := env.do(t, uploads.GenerateUploadURL, http.MethodPost, "/user_uploads/generate-upload-url",
		dto.GenerateUploadURLRequest{TripID: tripID, FileName: "ticket.pdf"}, "bob")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeBody[dto.ErrorResponse](t, rec)
	assert.Equal(t, "Internal server error", resp.Error)
	assert.Equal(t, "An unexpected error occurred", resp.Detail)
	assert.NotContains(t, rec.Body.String(), "AccessDenied")
}

func TestSaveUploadMetadataRejectsUnknownCategory(t *testing.T) {
	env, tripID := uploadEnv(t)

	rec := env.do(t, env.uploads.SaveUploadMetadata, http.MethodPost, "/user_uploads/save-upload-metadata",
		dto.SaveUploadMetadataRequest{
			TripID:           tripID,
			FileName:         "ticket.pdf",
			StorageKey:       "user_uploads/1/a/ticket.pdf",
			DocumentCategory: "RECEIPTS",
		}, "bob")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUploadOwnerOrHostOnly(t *testing.T) {
	env, tripID := uploadEnv(t)

	rec := env.do(t, env.uploads.SaveUploadMetadata, http.MethodPost, "/user_uploads/save-upload-metadata",
		dto.SaveUploadMetadataRequest{
			TripID:           tripID,
			FileName:         "ticket.pdf",
			StorageKey:       "user_uploads/1/a/ticket.pdf",
			DocumentCategory: "TRAVEL",
		}, "bob")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, env.uploads.GetUploads, http.MethodGet, "/user_uploads/get-uploads?trip_id=1", nil, "bob")
	uploads := decodeBody[dto.GetUploadsResponse](t, rec)
	require.Len(t, uploads.Uploads, 1)
	uploadID := uploads.Uploads[0].UploadID

	// Another non-host guest may not delete it.
	rec = env.do(t, env.uploads.DeleteUpload, http.MethodDelete, "/user_uploads/delete-upload",
		dto.DeleteUploadRequest{TripID: tripID, UploadID: uploadID}, "carol")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The host may.
	rec = env.do(t, env.uploads.DeleteUpload, http.MethodDelete, "/user_uploads/delete-upload",
		dto.DeleteUploadRequest{TripID: tripID, UploadID: uploadID}, "host")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"user_uploads/1/a/ticket.pdf"}, env.objects.deleted)

	rec = env.do(t, env.uploads.DeleteUpload, http.MethodDelete, "/user_uploads/delete-upload",
		dto.DeleteUploadRequest{TripID: tripID, UploadID: uploadID}, "host")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
