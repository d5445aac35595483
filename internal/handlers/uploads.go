package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"TRIPMATE_BACK-END/internal/config"
	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/storage"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// UploadsHandler manages document upload endpoints. Objects live in external
// storage; the database row is the authoritative record of each upload.
type UploadsHandler struct {
	store   store.Store
	objects storage.ObjectStorage
	cfg     config.StorageConfig
	logger  zerolog.Logger
}

// NewUploadsHandler creates a new UploadsHandler
func NewUploadsHandler(s store.Store, objects storage.ObjectStorage, cfg config.StorageConfig, logger zerolog.Logger) *UploadsHandler {
	return &UploadsHandler{store: s, objects: objects, cfg: cfg, logger: logger}
}

// GenerateUploadURL handles POST /user_uploads/generate-upload-url
// @Summary Issue a presigned PUT URL for a new document
// @Tags user_uploads
// @Accept json
// @Produce json
// @Param payload body dto.GenerateUploadURLRequest true "Upload payload"
// @Success 200 {object} dto.GenerateUploadURLResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /user_uploads/generate-upload-url [post]
func (h *UploadsHandler) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.GenerateUploadURLRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.FileName = strings.TrimSpace(req.FileName)
	if req.TripID <= 0 || req.FileName == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and file_name are required")
		return
	}
	if strings.Contains(req.FileName, "/") {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "file_name cannot contain '/'")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// A random segment keeps concurrent uploads of the same file name from
	// colliding.
	key := fmt.Sprintf("user_uploads/%d/%s/%s", req.TripID, uuid.NewString(), req.FileName)
	url, err := h.objects.IssueUploadURL(r.Context(), key, contentType, h.cfg.UploadTTL)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.GenerateUploadURLResponse{
		URL:        url,
		StorageKey: key,
	})
}

// SaveUploadMetadata handles POST /user_uploads/save-upload-metadata
// @Summary Record a completed upload
// @Tags user_uploads
// @Accept json
// @Produce json
// @Param payload body dto.SaveUploadMetadataRequest true "Metadata payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /user_uploads/save-upload-metadata [post]
func (h *UploadsHandler) SaveUploadMetadata(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.SaveUploadMetadataRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.FileName = strings.TrimSpace(req.FileName)
	req.StorageKey = strings.TrimSpace(req.StorageKey)
	if req.TripID <= 0 || req.FileName == "" || req.StorageKey == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id, file_name, and storage_key are required")
		return
	}
	category := models.DocumentCategory(req.DocumentCategory)
	if !category.Valid() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "document_category must be TRAVEL or ACCOMMODATION")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if _, err := h.store.CreateUpload(r.Context(), models.UserUpload{
		UploadUserID:     userID,
		TripID:           req.TripID,
		DocumentCategory: category,
		FileName:         req.FileName,
		StorageKey:       req.StorageKey,
		UploadTimestamp:  time.Now(),
	}); err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusCreated, "Upload saved successfully")
}

// GetUploads handles GET /user_uploads/get-uploads
// @Summary List a trip's uploads with fresh download URLs
// @Tags user_uploads
// @Produce json
// @Param trip_id query int true "Trip id"
// @Param document_category query string false "TRAVEL or ACCOMMODATION"
// @Success 200 {object} dto.GetUploadsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /user_uploads/get-uploads [get]
func (h *UploadsHandler) GetUploads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromQuery(w, r)
	if !ok {
		return
	}

	var category *models.DocumentCategory
	if raw := r.URL.Query().Get("document_category"); raw != "" {
		c := models.DocumentCategory(raw)
		if !c.Valid() {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "document_category must be TRAVEL or ACCOMMODATION")
			return
		}
		category = &c
	}
	if _, ok := requireGuest(w, r, h.store, tripID, userID); !ok {
		return
	}

	uploads, err := h.store.ListUploads(r.Context(), tripID, category)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	items := make([]dto.UploadItem, 0, len(uploads))
	for _, u := range uploads {
		url, err := h.objects.IssueDownloadURL(r.Context(), u.StorageKey, h.cfg.DownloadTTL)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		items = append(items, dto.UploadItem{
			UploadID:         u.ID,
			FileName:         u.FileName,
			DocumentCategory: string(u.DocumentCategory),
			UploadUserID:     u.UploadUserID,
			UploadTimestamp:  u.UploadTimestamp.UTC().Format(time.RFC3339),
			DownloadURL:      url,
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetUploadsResponse{Uploads: items})
}

// DeleteUpload handles DELETE /user_uploads/delete-upload
// @Summary Delete an upload row and its backing object
// @Tags user_uploads
// @Accept json
// @Produce json
// @Param payload body dto.DeleteUploadRequest true "Deletion payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /user_uploads/delete-upload [delete]
func (h *UploadsHandler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.DeleteUploadRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TripID <= 0 || req.UploadID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and upload_id are required")
		return
	}

	caller, ok := requireGuest(w, r, h.store, req.TripID, userID)
	if !ok {
		return
	}

	upload, err := h.store.GetUpload(r.Context(), req.TripID, req.UploadID)
	if err != nil {
		writeStoreError(w, err, "Upload not found")
		return
	}
	if upload.UploadUserID != userID && !caller.IsHost {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the uploader or the trip host may delete an upload")
		return
	}

	if err := h.store.DeleteUpload(r.Context(), req.TripID, req.UploadID); err != nil {
		writeStoreError(w, err, "Upload not found")
		return
	}

	// The row is gone; object removal is best-effort.
	if err := h.objects.DeleteObject(r.Context(), upload.StorageKey); err != nil {
		h.logger.Warn().Err(err).Str("key", upload.StorageKey).Msg("failed to delete stored object")
	}

	utils.WriteMessageResponse(w, http.StatusOK, "Upload deleted successfully")
}
