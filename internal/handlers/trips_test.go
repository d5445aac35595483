package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
)

func TestCreateTripSeedsItineraryAndHostGuest(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")

	resp := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")
	require.NotZero(t, resp.TripID)
	require.NotEmpty(t, resp.TripToken)

	// One itinerary entry per day, both bounds included.
	entries, err := env.store.ListItinerary(context.Background(), resp.TripID)
	require.NoError(t, err)
	assert.Len(t, entries, 30)

	guest, err := env.store.GetGuest(context.Background(), resp.TripID, "host")
	require.NoError(t, err)
	assert.True(t, guest.IsHost)
	assert.Equal(t, models.RsvpYes, guest.RsvpStatus)
}

func TestCreateTripRejectsReversedDates(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")

	rec := env.do(t, env.trips.CreateTrip, http.MethodPost, "/trips/create-trip", dto.CreateTripRequest{
		TripName:      "Backwards",
		TripStartDate: "01/30/2022",
		TripEndDate:   "01/01/2022",
	}, "host")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	trips, err := env.store.ListUserTrips(context.Background(), "host")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestCreateTripRejectsBadDateFormat(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")

	rec := env.do(t, env.trips.CreateTrip, http.MethodPost, "/trips/create-trip", dto.CreateTripRequest{
		TripName:      "Bad dates",
		TripStartDate: "2022-01-01",
		TripEndDate:   "2022-01-30",
	}, "host")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTripRequiresRegisteredHost(t *testing.T) {
	env := newTestEnv(t)

	// A valid token whose subject never registered a profile must not be
	// able to host a trip.
	rec := env.do(t, env.trips.CreateTrip, http.MethodPost, "/trips/create-trip", dto.CreateTripRequest{
		TripName:      "Phantom",
		TripStartDate: "01/01/2022",
		TripEndDate:   "01/05/2022",
	}, "ghost")
	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeBody[dto.ErrorResponse](t, rec)
	assert.Equal(t, "Host user not found", resp.Detail)

	trips, err := env.store.ListUserTrips(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestGetTripReturnsDetails(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")

	rec := env.do(t, env.trips.GetTrip, http.MethodGet, "/trips/get-trip?trip_id=1", nil, "host")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[dto.GetTripResponse](t, rec)
	assert.Equal(t, created.TripID, resp.TripDetails.TripID)
	assert.Equal(t, "Winter escape", resp.TripDetails.TripName)
	assert.Equal(t, "Ada Lovelace", resp.TripDetails.TripHostname)
	assert.Equal(t, "01/01/2022", resp.TripDetails.TripStartDate)
	assert.Equal(t, "01/30/2022", resp.TripDetails.TripEndDate)
}

func TestGetTripNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")

	rec := env.do(t, env.trips.GetTrip, http.MethodGet, "/trips/get-trip?trip_id=99", nil, "host")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserTripsIncludesRsvp(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	env.addUser(t, "bob", "Bob", "Odenkirk")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")
	env.joinTrip(t, "bob", created.TripToken)

	rec := env.do(t, env.trips.GetUserTrips, http.MethodGet, "/trips/get-user-trips", nil, "bob")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[dto.GetUserTripsResponse](t, rec)
	require.Len(t, resp.Trips, 1)
	assert.Equal(t, "INVITED", resp.Trips[0].RsvpStatus)
	assert.Equal(t, created.TripID, resp.Trips[0].TripID)
}

func TestUpdateTripHostOnly(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	env.addUser(t, "bob", "Bob", "Odenkirk")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")
	env.joinTrip(t, "bob", created.TripToken)

	name := "Renamed"
	rec := env.do(t, env.trips.UpdateTrip, http.MethodPut, "/trips/update-trip", dto.UpdateTripRequest{
		TripID:   created.TripID,
		TripName: &name,
	}, "bob")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, env.trips.UpdateTrip, http.MethodPut, "/trips/update-trip", dto.UpdateTripRequest{
		TripID:   created.TripID,
		TripName: &name,
	}, "host")
	require.Equal(t, http.StatusOK, rec.Code)

	trip, err := env.store.GetTrip(context.Background(), created.TripID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", trip.Name)
}

func TestUpdateTripRejectsReversedDates(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")

	// Moving the end date before the existing start date must fail even
	// though only one bound is supplied.
	end := "12/01/2021"
	rec := env.do(t, env.trips.UpdateTrip, http.MethodPut, "/trips/update-trip", dto.UpdateTripRequest{
		TripID:      created.TripID,
		TripEndDate: &end,
	}, "host")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetNewHostFlipsExactlyOneHost(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	env.addUser(t, "bob", "Bob", "Odenkirk")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")
	env.joinTrip(t, "bob", created.TripToken)

	rec := env.do(t, env.trips.SetNewHost, http.MethodPut, "/trips/set-new-host", dto.SetNewHostRequest{
		TripID:    created.TripID,
		NewHostID: "bob",
	}, "host")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	guests, err := env.store.ListGuests(context.Background(), created.TripID)
	require.NoError(t, err)
	hosts := 0
	for _, g := range guests {
		if g.IsHost {
			hosts++
			assert.Equal(t, "bob", g.GuestID)
		}
	}
	assert.Equal(t, 1, hosts)

	trip, err := env.store.GetTrip(context.Background(), created.TripID)
	require.NoError(t, err)
	assert.Equal(t, "bob", trip.HostID)
}

func TestSetNewHostRejectsNonGuestTarget(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	env.addUser(t, "stranger", "Sam", "Stranger")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")

	rec := env.do(t, env.trips.SetNewHost, http.MethodPut, "/trips/set-new-host", dto.SetNewHostRequest{
		TripID:    created.TripID,
		NewHostID: "stranger",
	}, "host")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetNewHostForbiddenForNonHost(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	env.addUser(t, "bob", "Bob", "Odenkirk")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")
	env.joinTrip(t, "bob", created.TripToken)

	rec := env.do(t, env.trips.SetNewHost, http.MethodPut, "/trips/set-new-host", dto.SetNewHostRequest{
		TripID:    created.TripID,
		NewHostID: "bob",
	}, "bob")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteTripCascades(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	env.addUser(t, "bob", "Bob", "Odenkirk")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/05/2022")
	env.joinTrip(t, "bob", created.TripToken)
	env.confirmRsvp(t, "bob", created.TripID)

	ctx := context.Background()

	// Populate every child table.
	_, err := env.store.CreateExpense(ctx, models.TripExpense{
		TripID: created.TripID, UserID: "host", Title: "Hotel", Amount: 100,
	}, []models.TripExpenseShare{{TripID: created.TripID, UserID: "bob", Amount: 100}})
	require.NoError(t, err)
	catID, err := env.store.CreateCategory(ctx, models.LocationCategory{TripID: created.TripID, Name: "Food"})
	require.NoError(t, err)
	_, err = env.store.CreateLocation(ctx, models.TripLocation{
		TripID: created.TripID, PlaceID: "p1", UserID: "host", Name: "Cafe", CategoryID: &catID,
	})
	require.NoError(t, err)
	require.NoError(t, env.store.CreateTodo(ctx, models.TripTodo{
		ID: "todo-1", TripID: created.TripID, Text: "Pack", LastUpdatedBy: "host",
	}))
	_, err = env.store.CreateUpload(ctx, models.UserUpload{
		TripID: created.TripID, UploadUserID: "host",
		DocumentCategory: models.DocumentTravel,
		FileName:         "ticket.pdf", StorageKey: "user_uploads/1/x/ticket.pdf",
	})
	require.NoError(t, err)

	rec := env.do(t, env.trips.DeleteTrip, http.MethodDelete, "/trips/delete-trip?trip_id=1", nil, "bob")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, env.trips.DeleteTrip, http.MethodDelete, "/trips/delete-trip?trip_id=1", nil, "host")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, err = env.store.GetTrip(ctx, created.TripID)
	assert.Error(t, err)
	entries, _ := env.store.ListItinerary(ctx, created.TripID)
	assert.Empty(t, entries)
	expenses, _ := env.store.ListExpenses(ctx, created.TripID)
	assert.Empty(t, expenses)
	locations, _ := env.store.ListLocations(ctx, created.TripID)
	assert.Empty(t, locations)
	categories, _ := env.store.ListCategories(ctx, created.TripID)
	assert.Empty(t, categories)
	todos, _ := env.store.ListTodos(ctx, created.TripID)
	assert.Empty(t, todos)
	uploads, _ := env.store.ListUploads(ctx, created.TripID, nil)
	assert.Empty(t, uploads)

	// Orphaned objects get cleaned up after the commit.
	assert.Equal(t, []string{"user_uploads/1/x/ticket.pdf"}, env.objects.deleted)
}
