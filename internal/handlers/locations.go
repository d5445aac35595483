package handlers

import (
	"errors"
	"net/http"
	"strings"

	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// LocationsHandler manages map pin and category endpoints
type LocationsHandler struct {
	store store.Store
}

// NewLocationsHandler creates a new LocationsHandler
func NewLocationsHandler(s store.Store) *LocationsHandler {
	return &LocationsHandler{store: s}
}

// AddCategory handles POST /trip_locations/add-category
// @Summary Create a location category
// @Tags trip_locations
// @Accept json
// @Produce json
// @Param payload body dto.AddCategoryRequest true "Category payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trip_locations/add-category [post]
func (h *LocationsHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.AddCategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.Category = strings.TrimSpace(req.Category)
	if req.TripID <= 0 || req.Category == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and category are required")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if _, err := h.store.CreateCategory(r.Context(), models.LocationCategory{
		TripID: req.TripID,
		Name:   req.Category,
	}); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "Category already exists for this trip")
			return
		}
		writeInternalError(w, err)
		return
	}
	utils.WriteMessageResponse(w, http.StatusCreated, "Category added successfully")
}

// UpdateCategory handles PUT /trip_locations/update-category
// @Summary Rename a location category
// @Tags trip_locations
// @Accept json
// @Produce json
// @Param payload body dto.UpdateCategoryRequest true "Rename payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trip_locations/update-category [put]
func (h *LocationsHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.OldCategoryName = strings.TrimSpace(req.OldCategoryName)
	req.NewCategoryName = strings.TrimSpace(req.NewCategoryName)
	if req.TripID <= 0 || req.OldCategoryName == "" || req.NewCategoryName == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id, old_category_name, and new_category_name are required")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if err := h.store.RenameCategory(r.Context(), req.TripID, req.OldCategoryName, req.NewCategoryName); err != nil {
		writeStoreError(w, err, "Category not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Category updated successfully")
}

// DeleteCategory handles DELETE /trip_locations/delete-category
// @Summary Delete a category and the locations pinned under it
// @Tags trip_locations
// @Accept json
// @Produce json
// @Param payload body dto.DeleteCategoryRequest true "Deletion payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_locations/delete-category [delete]
func (h *LocationsHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.DeleteCategoryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.CategoryName = strings.TrimSpace(req.CategoryName)
	if req.TripID <= 0 || req.CategoryName == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and category_name are required")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if err := h.store.DeleteCategory(r.Context(), req.TripID, req.CategoryName); err != nil {
		writeStoreError(w, err, "Category not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Category deleted successfully")
}

// GetCategories handles GET /trip_locations/get-categories
// @Summary List a trip's location categories
// @Tags trip_locations
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.GetCategoriesResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /trip_locations/get-categories [get]
func (h *LocationsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
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

	categories, err := h.store.ListCategories(r.Context(), tripID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	items := make([]dto.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.CategoryItem{CategoryID: c.ID, Name: c.Name})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetCategoriesResponse{Categories: items})
}

// AddLocation handles POST /trip_locations/add-location
// @Summary Pin a place onto the trip map
// @Tags trip_locations
// @Accept json
// @Produce json
// @Param payload body dto.AddLocationRequest true "Location payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trip_locations/add-location [post]
func (h *LocationsHandler) AddLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.AddLocationRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.PlaceID = strings.TrimSpace(req.PlaceID)
	req.PlaceName = strings.TrimSpace(req.PlaceName)
	if req.TripID <= 0 || req.PlaceID == "" || req.PlaceName == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id, place_id, and place_name are required")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	categoryID, ok := h.resolveCategory(w, r, req.TripID, strings.TrimSpace(req.CategoryName))
	if !ok {
		return
	}

	if _, err := h.store.CreateLocation(r.Context(), models.TripLocation{
		PlaceID:    req.PlaceID,
		TripID:     req.TripID,
		UserID:     userID,
		Name:       req.PlaceName,
		Latitude:   req.Lat,
		Longitude:  req.Lng,
		CategoryID: categoryID,
	}); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "Place is already pinned on this trip")
			return
		}
		writeInternalError(w, err)
		return
	}
	utils.WriteMessageResponse(w, http.StatusCreated, "Location added successfully")
}

// UpdateLocation handles PUT /trip_locations/update-location
// @Summary Rename or recategorize a pinned place
// @Tags trip_locations
// @Accept json
// @Produce json
// @Param payload body dto.UpdateLocationRequest true "Update payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_locations/update-location [put]
func (h *LocationsHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.PlaceID = strings.TrimSpace(req.PlaceID)
	if req.TripID <= 0 || req.PlaceID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and place_id are required")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	location, err := h.store.GetLocation(r.Context(), req.TripID, req.PlaceID)
	if err != nil {
		writeStoreError(w, err, "Location not found")
		return
	}

	if req.PlaceName != nil {
		name := strings.TrimSpace(*req.PlaceName)
		if name == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "place_name cannot be blank")
			return
		}
		location.Name = name
	}
	if req.CategoryName != nil {
		categoryID, ok := h.resolveCategory(w, r, req.TripID, strings.TrimSpace(*req.CategoryName))
		if !ok {
			return
		}
		location.CategoryID = categoryID
	}

	if err := h.store.UpdateLocation(r.Context(), location); err != nil {
		writeStoreError(w, err, "Location not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Location updated successfully")
}

// DeleteLocation handles DELETE /trip_locations/delete-location
// @Summary Remove a pinned place by its place id
// @Tags trip_locations
// @Accept json
// @Produce json
// @Param payload body dto.DeleteLocationRequest true "Deletion payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_locations/delete-location [delete]
func (h *LocationsHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.DeleteLocationRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.PlaceID = strings.TrimSpace(req.PlaceID)
	if req.TripID <= 0 || req.PlaceID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and place_id are required")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if err := h.store.DeleteLocation(r.Context(), req.TripID, req.PlaceID); err != nil {
		writeStoreError(w, err, "Location not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Location deleted successfully")
}

// GetLocations handles GET /trip_locations/get-locations
// @Summary List a trip's pinned places
// @Tags trip_locations
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.GetLocationsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /trip_locations/get-locations [get]
func (h *LocationsHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
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

	locations, err := h.store.ListLocations(r.Context(), tripID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	items := make([]dto.LocationItem, 0, len(locations))
	for _, l := range locations {
		items = append(items, dto.LocationItem{
			PlaceID:    l.PlaceID,
			Name:       l.Name,
			Lat:        l.Latitude,
			Lng:        l.Longitude,
			CategoryID: l.CategoryID,
			Category:   l.CategoryName,
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetLocationsResponse{Locations: items})
}

// resolveCategory maps a category name to its id, creating the category on
// first reference. An empty name means uncategorized (nil id).
func (h *LocationsHandler) resolveCategory(w http.ResponseWriter, r *http.Request, tripID int, name string) (*int, bool) {
	if name == "" {
		return nil, true
	}

	category, err := h.store.GetCategoryByName(r.Context(), tripID, name)
	if err == nil {
		return &category.ID, true
	}
	if !errors.Is(err, store.ErrNotFound) {
		writeInternalError(w, err)
		return nil, false
	}

	id, err := h.store.CreateCategory(r.Context(), models.LocationCategory{TripID: tripID, Name: name})
	if err != nil {
		writeInternalError(w, err)
		return nil, false
	}
	return &id, true
}
