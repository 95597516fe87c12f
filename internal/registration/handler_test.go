package registration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearnhq/education-platform-backend/internal/event"
)

func setupRouter(store *mockEventStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(store, nil))

	r := gin.New()
	r.POST("/events/:id/register", h.Register)
	r.GET("/events/:id/check-registration/:email", h.CheckRegistration)
	r.DELETE("/events/:id/attendees/:attendeeId", h.RemoveAttendee)
	r.GET("/export/:id", h.ExportAttendees)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	r := setupRouter(store)

	w := doJSON(t, r, http.MethodPost, "/events/evt-abc123/register", gin.H{
		"name":  "Asha Rao",
		"email": "asha@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var conf Confirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conf))
	assert.Regexp(t, `^EVT-\w{6}-\d{6}$`, conf.ConfirmationID)

	// Second registration with the same email is a 400
	w = doJSON(t, r, http.MethodPost, "/events/evt-abc123/register", gin.H{
		"name":  "Asha Rao",
		"email": "asha@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpoint_UnknownEvent(t *testing.T) {
	r := setupRouter(newMockEventStore())

	w := doJSON(t, r, http.MethodPost, "/events/missing/register", gin.H{
		"name":  "Asha Rao",
		"email": "asha@example.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterEndpoint_MissingBody(t *testing.T) {
	r := setupRouter(newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree)))

	w := doJSON(t, r, http.MethodPost, "/events/evt-abc123/register", gin.H{
		"name": "No Email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckRegistrationEndpoint(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	r := setupRouter(store)

	w := doJSON(t, r, http.MethodGet, "/events/evt-abc123/check-registration/asha@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isRegistered": false}`, w.Body.String())

	doJSON(t, r, http.MethodPost, "/events/evt-abc123/register", gin.H{
		"name":  "Asha Rao",
		"email": "asha@example.com",
	})

	w = doJSON(t, r, http.MethodGet, "/events/evt-abc123/check-registration/asha@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isRegistered": true}`, w.Body.String())
}

func TestRemoveAttendeeEndpoint_Idempotent(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	r := setupRouter(store)

	w := doJSON(t, r, http.MethodDelete, "/events/evt-abc123/attendees/att-unknown", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExportEndpoint(t *testing.T) {
	ev := upcomingEvent("evt-abc123", event.TypeFree)
	ev.Title = "Winter Meetup"
	store := newMockEventStore(ev)
	r := setupRouter(store)

	w := doJSON(t, r, http.MethodGet, "/export/evt-abc123?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Winter_Meetup.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestExportEndpoint_BadFormat(t *testing.T) {
	r := setupRouter(newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree)))

	w := doJSON(t, r, http.MethodGet, "/export/evt-abc123?format=docx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
