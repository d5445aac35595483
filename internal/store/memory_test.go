package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPMATE_BACK-END/internal/models"
)

func seedUser(t *testing.T, m *Memory, id string) {
	t.Helper()
	require.NoError(t, m.CreateUser(context.Background(), models.User{
		ID:          id,
		PhoneNumber: "+1555" + id,
		FirstName:   "First-" + id,
		LastName:    "Last-" + id,
	}))
}

func seedTrip(t *testing.T, m *Memory, hostID string) models.Trip {
	t.Helper()
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	trip, err := m.CreateTrip(context.Background(), models.Trip{
		Token:     "token-" + hostID,
		Name:      "Trip",
		HostID:    hostID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
	}, []models.ItineraryEntry{
		{ID: "seed-1-" + hostID, Date: start},
		{ID: "seed-2-" + hostID, Date: start.AddDate(0, 0, 1)},
	})
	require.NoError(t, err)
	return trip
}

func TestCreateUserDuplicatePhone(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "u1")

	err := m.CreateUser(context.Background(), models.User{
		ID:          "u2",
		PhoneNumber: "+1555u1",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateTripSeedsHostGuestRow(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "host")
	trip := seedTrip(t, m, "host")
	require.NotZero(t, trip.ID)

	guest, err := m.GetGuest(context.Background(), trip.ID, "host")
	require.NoError(t, err)
	assert.True(t, guest.IsHost)
	assert.Equal(t, models.RsvpYes, guest.RsvpStatus)

	entries, err := m.ListItinerary(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCreateTripUnknownHost(t *testing.T) {
	m := NewMemory()

	_, err := m.CreateTrip(context.Background(), models.Trip{
		Token:  "token-ghost",
		Name:   "Trip",
		HostID: "ghost",
	}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddGuestDuplicate(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "host")
	seedUser(t, m, "bob")
	trip := seedTrip(t, m, "host")

	g := models.TripGuest{TripID: trip.ID, GuestID: "bob", RsvpStatus: models.RsvpInvited}
	require.NoError(t, m.AddGuest(context.Background(), g))
	assert.ErrorIs(t, m.AddGuest(context.Background(), g), ErrDuplicate)
}

func TestSetNewHost(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "host")
	seedUser(t, m, "bob")
	trip := seedTrip(t, m, "host")
	require.NoError(t, m.AddGuest(context.Background(), models.TripGuest{
		TripID: trip.ID, GuestID: "bob", RsvpStatus: models.RsvpInvited,
	}))

	require.NoError(t, m.SetNewHost(context.Background(), trip.ID, "host", "bob"))

	updated, err := m.GetTrip(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.HostID)

	old, err := m.GetGuest(context.Background(), trip.ID, "host")
	require.NoError(t, err)
	assert.False(t, old.IsHost)
	now, err := m.GetGuest(context.Background(), trip.ID, "bob")
	require.NoError(t, err)
	assert.True(t, now.IsHost)
	assert.Equal(t, models.RsvpYes, now.RsvpStatus)
}

func TestDeleteTripReturnsStorageKeys(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "host")
	trip := seedTrip(t, m, "host")

	_, err := m.CreateUpload(context.Background(), models.UserUpload{
		TripID:           trip.ID,
		UploadUserID:     "host",
		DocumentCategory: models.DocumentTravel,
		FileName:         "ticket.pdf",
		StorageKey:       "user_uploads/1/a/ticket.pdf",
	})
	require.NoError(t, err)

	keys, err := m.DeleteTrip(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"user_uploads/1/a/ticket.pdf"}, keys)

	_, err = m.GetTrip(context.Background(), trip.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.GetGuest(context.Background(), trip.ID, "host")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateExpenseReplacesShares(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "host")
	seedUser(t, m, "bob")
	trip := seedTrip(t, m, "host")

	id, err := m.CreateExpense(context.Background(), models.TripExpense{
		TripID: trip.ID, UserID: "host", Title: "Dinner", Amount: 90,
	}, []models.TripExpenseShare{
		{TripID: trip.ID, UserID: "host", Amount: 45},
		{TripID: trip.ID, UserID: "bob", Amount: 45},
	})
	require.NoError(t, err)

	require.NoError(t, m.UpdateExpense(context.Background(), models.TripExpense{
		ID: id, TripID: trip.ID, Title: "Dinner out", Amount: 60,
	}, []models.TripExpenseShare{
		{ExpenseID: id, TripID: trip.ID, UserID: "bob", Amount: 60},
	}))

	expenses, err := m.ListExpenses(context.Background(), trip.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Dinner out", expenses[0].Title)
	require.Len(t, expenses[0].Shares, 1)
	assert.Equal(t, "bob", expenses[0].Shares[0].UserID)
	assert.Equal(t, 60.0, expenses[0].Shares[0].Amount)
}

func TestCategoryUniquePerTrip(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "host")
	trip := seedTrip(t, m, "host")

	_, err := m.CreateCategory(context.Background(), models.LocationCategory{TripID: trip.ID, Name: "Food"})
	require.NoError(t, err)
	_, err = m.CreateCategory(context.Background(), models.LocationCategory{TripID: trip.ID, Name: "Food"})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Same name on another trip is fine.
	seedUser(t, m, "other")
	trip2 := seedTrip(t, m, "other")
	_, err = m.CreateCategory(context.Background(), models.LocationCategory{TripID: trip2.ID, Name: "Food"})
	assert.NoError(t, err)
}

func TestDeleteCategoryCascades(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "host")
	trip := seedTrip(t, m, "host")

	catID, err := m.CreateCategory(context.Background(), models.LocationCategory{TripID: trip.ID, Name: "Food"})
	require.NoError(t, err)
	_, err = m.CreateLocation(context.Background(), models.TripLocation{
		TripID: trip.ID, PlaceID: "p1", UserID: "host", Name: "Cafe", CategoryID: &catID,
	})
	require.NoError(t, err)
	_, err = m.CreateLocation(context.Background(), models.TripLocation{
		TripID: trip.ID, PlaceID: "p2", UserID: "host", Name: "Park",
	})
	require.NoError(t, err)

	require.NoError(t, m.DeleteCategory(context.Background(), trip.ID, "Food"))

	locations, err := m.ListLocations(context.Background(), trip.ID)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "p2", locations[0].PlaceID)
}

func TestListUploadsFiltersByCategory(t *testing.T) {
	m := NewMemory()
	seedUser(t, m, "host")
	trip := seedTrip(t, m, "host")

	_, err := m.CreateUpload(context.Background(), models.UserUpload{
		TripID: trip.ID, UploadUserID: "host",
		DocumentCategory: models.DocumentTravel, FileName: "a", StorageKey: "k/a",
	})
	require.NoError(t, err)
	_, err = m.CreateUpload(context.Background(), models.UserUpload{
		TripID: trip.ID, UploadUserID: "host",
		DocumentCategory: models.DocumentAccommodation, FileName: "b", StorageKey: "k/b",
	})
	require.NoError(t, err)

	all, err := m.ListUploads(context.Background(), trip.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	travel := models.DocumentTravel
	filtered, err := m.ListUploads(context.Background(), trip.ID, &travel)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].FileName)
}
