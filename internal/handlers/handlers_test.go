package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"TRIPMATE_BACK-END/internal/config"
	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// fakeStorage implements storage.ObjectStorage without touching the network.
type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) IssueUploadURL(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/put/" + key, nil
}

func (f *fakeStorage) IssueDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.test/get/" + key, nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

// testEnv wires every handler onto a fresh in-memory store.
type testEnv struct {
	store   *store.Memory
	objects *fakeStorage

	users     *UsersHandler
	trips     *TripsHandler
	guests    *GuestsHandler
	expenses  *ExpensesHandler
	locations *LocationsHandler
	itinerary *ItineraryHandler
	todos     *TodosHandler
	uploads   *UploadsHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := store.NewMemory()
	objects := &fakeStorage{}
	logger := zerolog.Nop()
	storageCfg := config.StorageConfig{
		Bucket:      "test-bucket",
		Region:      "us-east-1",
		UploadTTL:   time.Hour,
		DownloadTTL: time.Hour,
	}
	return &testEnv{
		store:     s,
		objects:   objects,
		users:     NewUsersHandler(s),
		trips:     NewTripsHandler(s, objects, logger),
		guests:    NewGuestsHandler(s),
		expenses:  NewExpensesHandler(s),
		locations: NewLocationsHandler(s),
		itinerary: NewItineraryHandler(s),
		todos:     NewTodosHandler(s),
		uploads:   NewUploadsHandler(s, objects, storageCfg, logger),
	}
}

// do issues a request as userID against a single handler func. A nil body
// sends no payload.
func (e *testEnv) do(t *testing.T, handler http.HandlerFunc, method, target string, body any, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(utils.WithIdentity(req.Context(), userID, "+1555"+userID))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// addUser registers a profile row directly in the store.
func (e *testEnv) addUser(t *testing.T, id, firstName, lastName string) {
	t.Helper()
	require.NoError(t, e.store.CreateUser(context.Background(), models.User{
		ID:          id,
		PhoneNumber: "+1555" + id,
		FirstName:   firstName,
		LastName:    lastName,
		CreatedAt:   time.Now(),
	}))
}

// createTrip runs the create-trip handler as hostID and returns the response.
func (e *testEnv) createTrip(t *testing.T, hostID, name, start, end string) dto.CreateTripResponse {
	t.Helper()
	rec := e.do(t, e.trips.CreateTrip, http.MethodPost, "/trips/create-trip", dto.CreateTripRequest{
		TripName:      name,
		TripStartDate: start,
		TripEndDate:   end,
	}, hostID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[dto.CreateTripResponse](t, rec)
}

// joinTrip accepts the trip's invite as userID.
func (e *testEnv) joinTrip(t *testing.T, userID, token string) {
	t.Helper()
	rec := e.do(t, e.guests.AcceptInvite, http.MethodPost, "/trip_guests/accept-invite",
		dto.AcceptInviteRequest{TripToken: token}, userID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

// confirmRsvp marks userID as attending.
func (e *testEnv) confirmRsvp(t *testing.T, userID string, tripID int) {
	t.Helper()
	rec := e.do(t, e.guests.UpdateRsvpStatus, http.MethodPut, "/trip_guests/update-rsvp-status",
		dto.UpdateRsvpRequest{TripID: tripID, RsvpStatus: "YES"}, userID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
