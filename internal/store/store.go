package store

import (
	"context"
	"errors"

	"TRIPMATE_BACK-END/internal/models"
)

// Sentinel errors surfaced by every implementation. Handlers translate these
// into HTTP statuses; nothing else about a failed statement escapes the store.
var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

// TripWithRsvp is a trip joined with one guest's RSVP state.
type TripWithRsvp struct {
	models.Trip
	RsvpStatus models.RsvpStatus
}

// GuestWithUser is a guest row joined with the user's profile fields.
type GuestWithUser struct {
	models.TripGuest
	FirstName string
	LastName  string
}

// ShareWithUser is an expense share joined with the user's profile fields.
type ShareWithUser struct {
	models.TripExpenseShare
	FirstName string
	LastName  string
}

// ExpenseWithShares is an expense with its share rows and the payer's name.
type ExpenseWithShares struct {
	models.TripExpense
	PayerFirstName string
	PayerLastName  string
	Shares         []ShareWithUser
}

// LocationWithCategory is a pinned location joined with its category name
// (empty for uncategorized pins).
type LocationWithCategory struct {
	models.TripLocation
	CategoryName string
}

// Store is the persistence contract consumed by the handlers. Multi-row
// operations are atomic: trip creation (trip + host guest + itinerary seed),
// trip deletion (full cascade), host transfer, expense writes with their
// shares, and category deletion with its locations each commit as one unit.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u models.User) error
	GetUser(ctx context.Context, id string) (models.User, error)

	// Trips. CreateTrip inserts the trip, a host guest row (is_host=true,
	// rsvp=YES) derived from trip.HostID, and the given itinerary entries in
	// one transaction, returning the trip with its assigned id. DeleteTrip
	// removes the whole aggregate in one transaction and returns the storage
	// keys of the trip's uploads so the caller can delete the objects.
	CreateTrip(ctx context.Context, trip models.Trip, entries []models.ItineraryEntry) (models.Trip, error)
	GetTrip(ctx context.Context, id int) (models.Trip, error)
	GetTripByToken(ctx context.Context, token string) (models.Trip, error)
	ListUserTrips(ctx context.Context, userID string) ([]TripWithRsvp, error)
	UpdateTrip(ctx context.Context, trip models.Trip) error
	DeleteTrip(ctx context.Context, id int) ([]string, error)
	SetNewHost(ctx context.Context, tripID int, oldHostID, newHostID string) error

	// Guests
	AddGuest(ctx context.Context, g models.TripGuest) error
	GetGuest(ctx context.Context, tripID int, userID string) (models.TripGuest, error)
	ListGuests(ctx context.Context, tripID int) ([]GuestWithUser, error)
	DeleteGuest(ctx context.Context, tripID int, userID string) error
	UpdateRsvp(ctx context.Context, tripID int, userID string, status models.RsvpStatus) error

	// Expenses. Create inserts the expense and its shares in one transaction;
	// Update replaces the full share set; Delete removes both.
	CreateExpense(ctx context.Context, e models.TripExpense, shares []models.TripExpenseShare) (int, error)
	UpdateExpense(ctx context.Context, e models.TripExpense, shares []models.TripExpenseShare) error
	DeleteExpense(ctx context.Context, tripID, expenseID int) error
	ListExpenses(ctx context.Context, tripID int) ([]ExpenseWithShares, error)

	// Location categories. DeleteCategory cascades to the category's locations.
	CreateCategory(ctx context.Context, c models.LocationCategory) (int, error)
	GetCategoryByName(ctx context.Context, tripID int, name string) (models.LocationCategory, error)
	RenameCategory(ctx context.Context, tripID int, oldName, newName string) error
	DeleteCategory(ctx context.Context, tripID int, name string) error
	ListCategories(ctx context.Context, tripID int) ([]models.LocationCategory, error)

	// Locations
	CreateLocation(ctx context.Context, l models.TripLocation) (int, error)
	GetLocation(ctx context.Context, tripID int, placeID string) (models.TripLocation, error)
	UpdateLocation(ctx context.Context, l models.TripLocation) error
	DeleteLocation(ctx context.Context, tripID int, placeID string) error
	ListLocations(ctx context.Context, tripID int) ([]LocationWithCategory, error)

	// Itinerary
	CreateItineraryEntry(ctx context.Context, e models.ItineraryEntry) error
	UpdateItineraryEntry(ctx context.Context, e models.ItineraryEntry) error
	DeleteItineraryEntry(ctx context.Context, tripID int, id string) error
	ListItinerary(ctx context.Context, tripID int) ([]models.ItineraryEntry, error)

	// Todos
	CreateTodo(ctx context.Context, t models.TripTodo) error
	GetTodo(ctx context.Context, tripID int, id string) (models.TripTodo, error)
	UpdateTodo(ctx context.Context, t models.TripTodo) error
	DeleteTodo(ctx context.Context, tripID int, id string) error
	ListTodos(ctx context.Context, tripID int) ([]models.TripTodo, error)

	// Uploads
	CreateUpload(ctx context.Context, u models.UserUpload) (int, error)
	GetUpload(ctx context.Context, tripID, id int) (models.UserUpload, error)
	DeleteUpload(ctx context.Context, tripID, id int) error
	ListUploads(ctx context.Context, tripID int, category *models.DocumentCategory) ([]models.UserUpload, error)
}
