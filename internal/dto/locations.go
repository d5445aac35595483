package dto

// AddCategoryRequest creates a location category
type AddCategoryRequest struct {
	TripID   int    `json:"trip_id"`
	Category string `json:"category"`
}

// UpdateCategoryRequest renames a category
type UpdateCategoryRequest struct {
	TripID          int    `json:"trip_id"`
	OldCategoryName string `json:"old_category_name"`
	NewCategoryName string `json:"new_category_name"`
}

// DeleteCategoryRequest deletes a category and its locations
type DeleteCategoryRequest struct {
	TripID       int    `json:"trip_id"`
	CategoryName string `json:"category_name"`
}

// CategoryItem is one category row
type CategoryItem struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

// GetCategoriesResponse envelope
type GetCategoriesResponse struct {
	Categories []CategoryItem `json:"categories"`
}

// AddLocationRequest pins a place onto the trip map. CategoryName is optional;
// a new category is created on first reference.
type AddLocationRequest struct {
	TripID       int     `json:"trip_id"`
	PlaceID      string  `json:"place_id"`
	PlaceName    string  `json:"place_name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	CategoryName string  `json:"category_name"`
}

// UpdateLocationRequest renames or recategorizes a pinned place
type UpdateLocationRequest struct {
	TripID       int     `json:"trip_id"`
	PlaceID      string  `json:"place_id"`
	PlaceName    *string `json:"place_name"`
	CategoryName *string `json:"category_name"`
}

// DeleteLocationRequest removes a pin by its place id
type DeleteLocationRequest struct {
	TripID  int    `json:"trip_id"`
	PlaceID string `json:"place_id"`
}

// LocationItem is one pinned place with its category joined in
type LocationItem struct {
	PlaceID    string  `json:"place_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	CategoryID *int    `json:"category_id"`
	Category   string  `json:"category"`
}

// GetLocationsResponse envelope
type GetLocationsResponse struct {
	Locations []LocationItem `json:"locations"`
}
