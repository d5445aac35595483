package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TRIPMATE_BACK-END/internal/config"
	"TRIPMATE_BACK-END/internal/handlers"
	"TRIPMATE_BACK-END/internal/middleware"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UsersHandler
	Trips     *handlers.TripsHandler
	Guests    *handlers.GuestsHandler
	Expenses  *handlers.ExpensesHandler
	Locations *handlers.LocationsHandler
	Itinerary *handlers.ItineraryHandler
	Todos     *handlers.TodosHandler
	Uploads   *handlers.UploadsHandler
}

// SetupRoutes configures all application routes on mux.
func SetupRoutes(mux *http.ServeMux, h Handlers, authCfg *config.AuthConfig) {
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, authCfg)
	}

	// Health check routes
	mux.HandleFunc("/healthz", h.Health.HealthCheck)
	mux.HandleFunc("/livez", h.Health.LivenessCheck)
	mux.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// User routes
	mux.HandleFunc("/users/create-user", auth(h.Users.CreateUser))
	mux.HandleFunc("/users/validate-user", auth(h.Users.ValidateUser))

	// Trip routes
	mux.HandleFunc("/trips/create-trip", auth(h.Trips.CreateTrip))
	mux.HandleFunc("/trips/get-trip", auth(h.Trips.GetTrip))
	mux.HandleFunc("/trips/get-user-trips", auth(h.Trips.GetUserTrips))
	mux.HandleFunc("/trips/update-trip", auth(h.Trips.UpdateTrip))
	mux.HandleFunc("/trips/set-new-host", auth(h.Trips.SetNewHost))
	mux.HandleFunc("/trips/delete-trip", auth(h.Trips.DeleteTrip))

	// Guest routes
	mux.HandleFunc("/trip_guests/get-trip-guests", auth(h.Guests.GetTripGuests))
	mux.HandleFunc("/trip_guests/get-guest-info", auth(h.Guests.GetGuestInfo))
	mux.HandleFunc("/trip_guests/accept-invite", auth(h.Guests.AcceptInvite))
	mux.HandleFunc("/trip_guests/update-rsvp-status", auth(h.Guests.UpdateRsvpStatus))
	mux.HandleFunc("/trip_guests/delete-trip-guest", auth(h.Guests.DeleteTripGuest))

	// Expense routes
	mux.HandleFunc("/expenses/add-expense", auth(h.Expenses.AddExpense))
	mux.HandleFunc("/expenses/update-expense", auth(h.Expenses.UpdateExpense))
	mux.HandleFunc("/expenses/delete-expense", auth(h.Expenses.DeleteExpense))
	mux.HandleFunc("/expenses/get-expenses", auth(h.Expenses.GetExpenses))

	// Location and category routes
	mux.HandleFunc("/trip_locations/add-category", auth(h.Locations.AddCategory))
	mux.HandleFunc("/trip_locations/update-category", auth(h.Locations.UpdateCategory))
	mux.HandleFunc("/trip_locations/delete-category", auth(h.Locations.DeleteCategory))
	mux.HandleFunc("/trip_locations/get-categories", auth(h.Locations.GetCategories))
	mux.HandleFunc("/trip_locations/add-location", auth(h.Locations.AddLocation))
	mux.HandleFunc("/trip_locations/update-location", auth(h.Locations.UpdateLocation))
	mux.HandleFunc("/trip_locations/delete-location", auth(h.Locations.DeleteLocation))
	mux.HandleFunc("/trip_locations/get-locations", auth(h.Locations.GetLocations))

	// Itinerary routes
	mux.HandleFunc("/trip_itinerary/add-item", auth(h.Itinerary.AddItem))
	mux.HandleFunc("/trip_itinerary/update-item", auth(h.Itinerary.UpdateItem))
	mux.HandleFunc("/trip_itinerary/get-itinerary", auth(h.Itinerary.GetItinerary))
	mux.HandleFunc("/trip_itinerary/delete-item", auth(h.Itinerary.DeleteItem))

	// Todo routes
	mux.HandleFunc("/trip_todos/add-todo", auth(h.Todos.AddTodo))
	mux.HandleFunc("/trip_todos/update-todo", auth(h.Todos.UpdateTodo))
	mux.HandleFunc("/trip_todos/get-todos", auth(h.Todos.GetTodos))
	mux.HandleFunc("/trip_todos/delete-todo", auth(h.Todos.DeleteTodo))

	// Upload routes
	mux.HandleFunc("/user_uploads/generate-upload-url", auth(h.Uploads.GenerateUploadURL))
	mux.HandleFunc("/user_uploads/save-upload-metadata", auth(h.Uploads.SaveUploadMetadata))
	mux.HandleFunc("/user_uploads/get-uploads", auth(h.Uploads.GetUploads))
	mux.HandleFunc("/user_uploads/delete-upload", auth(h.Uploads.DeleteUpload))

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Tripmate backend is running."))
}
