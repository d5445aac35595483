package handlers

import (
	"net/http"
	"strings"

	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// ItineraryHandler manages day-plan endpoints
type ItineraryHandler struct {
	store store.Store
}

// NewItineraryHandler creates a new ItineraryHandler
func NewItineraryHandler(s store.Store) *ItineraryHandler {
	return &ItineraryHandler{store: s}
}

// AddItem handles POST /trip_itinerary/add-item
// @Summary Add an itinerary entry
// @Tags trip_itinerary
// @Accept json
// @Produce json
// @Param payload body dto.AddItineraryItemRequest true "Entry payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trip_itinerary/add-item [post]
func (h *ItineraryHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.AddItineraryItemRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.ItemID = strings.TrimSpace(req.ItemID)
	req.Description = strings.TrimSpace(req.Description)
	if req.TripID <= 0 || req.ItemID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and item_id are required")
		return
	}
	if req.Description == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "description cannot be blank")
		return
	}
	date, err := utils.ParseItineraryDate(req.Date)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "date must be RFC1123, e.g. Fri, 08 Nov 2024 00:00:00 GMT")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if err := h.store.CreateItineraryEntry(r.Context(), models.ItineraryEntry{
		ID:          req.ItemID,
		TripID:      req.TripID,
		Date:        date,
		Description: req.Description,
	}); err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusCreated, "Itinerary item added successfully")
}

// UpdateItem handles PUT /trip_itinerary/update-item
// @Summary Rewrite an itinerary entry
// @Tags trip_itinerary
// @Accept json
// @Produce json
// @Param payload body dto.UpdateItineraryItemRequest true "Entry payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_itinerary/update-item [put]
func (h *ItineraryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateItineraryItemRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.ItemID = strings.TrimSpace(req.ItemID)
	req.Description = strings.TrimSpace(req.Description)
	if req.TripID <= 0 || req.ItemID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and item_id are required")
		return
	}
	if req.Description == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "description cannot be blank")
		return
	}
	date, err := utils.ParseItineraryDate(req.Date)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "date must be RFC1123, e.g. Fri, 08 Nov 2024 00:00:00 GMT")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if err := h.store.UpdateItineraryEntry(r.Context(), models.ItineraryEntry{
		ID:          req.ItemID,
		TripID:      req.TripID,
		Date:        date,
		Description: req.Description,
	}); err != nil {
		writeStoreError(w, err, "Itinerary item not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Itinerary item updated successfully")
}

// GetItinerary handles GET /trip_itinerary/get-itinerary
// @Summary List a trip's itinerary in date order
// @Tags trip_itinerary
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.GetItineraryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /trip_itinerary/get-itinerary [get]
func (h *ItineraryHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
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
	if _, ok := requireGuest(w, r, h.store, tripID, userID); !ok {
		return
	}

	entries, err := h.store.ListItinerary(r.Context(), tripID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	items := make([]dto.ItineraryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ItineraryItem{
			ID:          e.ID,
			Date:        utils.FormatItineraryDate(e.Date),
			Description: e.Description,
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetItineraryResponse{Itinerary: items})
}

// DeleteItem handles DELETE /trip_itinerary/delete-item
// @Summary Remove an itinerary entry
// @Tags trip_itinerary
// @Accept json
// @Produce json
// @Param payload body dto.DeleteItineraryItemRequest true "Deletion payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_itinerary/delete-item [delete]
func (h *ItineraryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.DeleteItineraryItemRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.ItemID = strings.TrimSpace(req.ItemID)
	if req.TripID <= 0 || req.ItemID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and item_id are required")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if err := h.store.DeleteItineraryEntry(r.Context(), req.TripID, req.ItemID); err != nil {
		writeStoreError(w, err, "Itinerary item not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Itinerary item deleted successfully")
}
