package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/storage"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// TripsHandler manages trip lifecycle endpoints
type TripsHandler struct {
	store   store.Store
	objects storage.ObjectStorage
	logger  zerolog.Logger
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(s store.Store, objects storage.ObjectStorage, logger zerolog.Logger) *TripsHandler {
	return &TripsHandler{store: s, objects: objects, logger: logger}
}

// CreateTrip handles POST /trips/create-trip
// @Summary Create a new trip
// @Tags trips
// @Accept json
// @Produce json
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} dto.CreateTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /trips/create-trip [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.TripName = strings.TrimSpace(req.TripName)
	if req.TripName == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_name is required")
		return
	}
	startDate, err := utils.ParseTripDate(req.TripStartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_start_date must be MM/DD/YYYY")
		return
	}
	endDate, err := utils.ParseTripDate(req.TripEndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_end_date must be MM/DD/YYYY")
		return
	}
	if endDate.Before(startDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_end_date cannot be before trip_start_date")
		return
	}

	// The verified identity must have registered a profile before hosting.
	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Host user not found")
			return
		}
		writeInternalError(w, err)
		return
	}

	trip := models.Trip{
		Token:       utils.NewInviteToken(userID, startDate, endDate),
		Name:        req.TripName,
		Description: strings.TrimSpace(req.TripDescription),
		HostID:      userID,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   time.Now(),
	}

	// One empty itinerary entry per calendar day, both bounds included.
	days := utils.DaysInclusive(startDate, endDate)
	entries := make([]models.ItineraryEntry, 0, days)
	for i := 0; i < days; i++ {
		entries = append(entries, models.ItineraryEntry{
			ID:   uuid.NewString(),
			Date: startDate.AddDate(0, 0, i),
		})
	}

	created, err := h.store.CreateTrip(r.Context(), trip, entries)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateTripResponse{
		Message:   "Trip created successfully",
		TripID:    created.ID,
		TripToken: created.Token,
	})
}

// GetTrip handles GET /trips/get-trip
// @Summary Get a trip's details
// @Tags trips
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.GetTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trips/get-trip [get]
func (h *TripsHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := requireUserID(w, r); !ok {
		return
	}
	tripID, ok := tripIDFromQuery(w, r)
	if !ok {
		return
	}

	trip, err := h.store.GetTrip(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}

	details, err := h.tripDetails(r, trip)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetTripResponse{TripDetails: details})
}

// GetUserTrips handles GET /trips/get-user-trips
// @Summary List the caller's trips with their RSVP state
// @Tags trips
// @Produce json
// @Success 200 {object} dto.GetUserTripsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /trips/get-user-trips [get]
func (h *TripsHandler) GetUserTrips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	trips, err := h.store.ListUserTrips(r.Context(), userID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	items := make([]dto.UserTripItem, 0, len(trips))
	for _, t := range trips {
		details, err := h.tripDetails(r, t.Trip)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		items = append(items, dto.UserTripItem{
			TripDetails: details,
			RsvpStatus:  string(t.RsvpStatus),
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetUserTripsResponse{Trips: items})
}

// UpdateTrip handles PUT /trips/update-trip
// @Summary Update a trip's name, description, or dates
// @Tags trips
// @Accept json
// @Produce json
// @Param payload body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trips/update-trip [put]
func (h *TripsHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TripID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id is required")
		return
	}
	if _, ok := requireHost(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	trip, err := h.store.GetTrip(r.Context(), req.TripID)
	if err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}

	if req.TripName != nil {
		name := strings.TrimSpace(*req.TripName)
		if name == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_name cannot be blank")
			return
		}
		trip.Name = name
	}
	if req.TripDescription != nil {
		trip.Description = strings.TrimSpace(*req.TripDescription)
	}
	if req.TripStartDate != nil {
		startDate, err := utils.ParseTripDate(*req.TripStartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_start_date must be MM/DD/YYYY")
			return
		}
		trip.StartDate = startDate
	}
	if req.TripEndDate != nil {
		endDate, err := utils.ParseTripDate(*req.TripEndDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_end_date must be MM/DD/YYYY")
			return
		}
		trip.EndDate = endDate
	}
	if trip.EndDate.Before(trip.StartDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_end_date cannot be before trip_start_date")
		return
	}

	if err := h.store.UpdateTrip(r.Context(), trip); err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Trip updated successfully")
}

// SetNewHost handles PUT /trips/set-new-host
// @Summary Transfer host status to another guest
// @Tags trips
// @Accept json
// @Produce json
// @Param payload body dto.SetNewHostRequest true "Transfer payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trips/set-new-host [put]
func (h *TripsHandler) SetNewHost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.SetNewHostRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TripID <= 0 || req.NewHostID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and new_host_id are required")
		return
	}
	if _, ok := requireHost(w, r, h.store, req.TripID, userID); !ok {
		return
	}
	if req.NewHostID == userID {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "You are already the host")
		return
	}

	// The target must already be a guest.
	if _, err := h.store.GetGuest(r.Context(), req.TripID, req.NewHostID); err != nil {
		writeStoreError(w, err, "New host is not a guest of this trip")
		return
	}

	if err := h.store.SetNewHost(r.Context(), req.TripID, userID, req.NewHostID); err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Host updated successfully")
}

// DeleteTrip handles DELETE /trips/delete-trip
// @Summary Delete a trip and everything attached to it
// @Tags trips
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trips/delete-trip [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
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
	if _, ok := requireHost(w, r, h.store, tripID, userID); !ok {
		return
	}

	storageKeys, err := h.store.DeleteTrip(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}

	// Object deletions happen after the commit; a leaked object is preferable
	// to a half-deleted trip.
	for _, key := range storageKeys {
		if err := h.objects.DeleteObject(r.Context(), key); err != nil {
			h.logger.Warn().Err(err).Str("key", key).Msg("failed to delete stored object")
		}
	}

	utils.WriteMessageResponse(w, http.StatusOK, "Trip deleted successfully")
}

// tripDetails assembles the response shape shared by get-trip and
// get-user-trips, joining in the host's display name.
func (h *TripsHandler) tripDetails(r *http.Request, trip models.Trip) (dto.TripDetails, error) {
	hostname := ""
	host, err := h.store.GetUser(r.Context(), trip.HostID)
	if err == nil {
		hostname = host.FirstName + " " + host.LastName
	} else if !errors.Is(err, store.ErrNotFound) {
		return dto.TripDetails{}, err
	}

	return dto.TripDetails{
		TripID:          trip.ID,
		TripToken:       trip.Token,
		TripName:        trip.Name,
		TripDescription: trip.Description,
		TripHostname:    hostname,
		TripStartDate:   utils.FormatTripDate(trip.StartDate),
		TripEndDate:     utils.FormatTripDate(trip.EndDate),
	}, nil
}
