package registration

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearnhq/education-platform-backend/internal/event"
)

type mockEventStore struct {
	events map[string]*event.Event
	saves  int
}

func newMockEventStore(events ...*event.Event) *mockEventStore {
	m := &mockEventStore{events: map[string]*event.Event{}}
	for _, ev := range events {
		m.events[ev.ID] = ev
	}
	return m
}

func (m *mockEventStore) GetEventByID(id string) (*event.Event, error) {
	ev, ok := m.events[id]
	if !ok {
		return nil, event.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventStore) SaveEvent(ev *event.Event) error {
	m.saves++
	m.events[ev.ID] = ev
	return nil
}

func upcomingEvent(id, eventType string) *event.Event {
	return &event.Event{
		ID:        id,
		Title:     "Intro to Distributed Systems",
		Date:      time.Now().Add(48 * time.Hour),
		Location:  "Online",
		Type:      eventType,
		Attendees: []event.Attendee{},
	}
}

func TestRegister_Succeeds(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	svc := NewService(store, nil)

	conf, err := svc.Register(context.Background(), "evt-abc123", &RegisterRequest{
		Name:  "Asha Rao",
		Email: "Asha@Example.com",
		Phone: "+91 98765 43210",
	})
	require.NoError(t, err)

	assert.Equal(t, "Intro to Distributed Systems", conf.EventTitle)
	assert.Equal(t, "asha@example.com", conf.Attendee.Email)
	assert.NotEmpty(t, conf.Attendee.ID)
	assert.Regexp(t, regexp.MustCompile(`^EVT-\w{6}-\d{6}$`), conf.ConfirmationID)

	ev := store.events["evt-abc123"]
	require.Len(t, ev.Attendees, 1)
	assert.Equal(t, "Asha Rao", ev.Attendees[0].Name)
}

func TestRegister_EventNotFound(t *testing.T) {
	svc := NewService(newMockEventStore(), nil)

	_, err := svc.Register(context.Background(), "missing", &RegisterRequest{
		Name:  "Asha Rao",
		Email: "asha@example.com",
	})
	assert.ErrorIs(t, err, event.ErrNotFound)
}

func TestRegister_PastEventRejected(t *testing.T) {
	past := upcomingEvent("evt-old", event.TypeFree)
	past.Date = time.Now().Add(-time.Hour)
	store := newMockEventStore(past)
	svc := NewService(store, nil)

	_, err := svc.Register(context.Background(), "evt-old", &RegisterRequest{
		Name:  "Asha Rao",
		Email: "asha@example.com",
	})
	assert.ErrorIs(t, err, event.ErrPastEvent)
	assert.Zero(t, store.saves)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "evt-abc123", &RegisterRequest{Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)

	// Same address, different case
	_, err = svc.Register(ctx, "evt-abc123", &RegisterRequest{Name: "Asha", Email: "ASHA@example.com"})
	assert.ErrorIs(t, err, event.ErrDuplicateRegistration)

	require.Len(t, store.events["evt-abc123"].Attendees, 1)
}

func TestRegister_CapacityEnforced(t *testing.T) {
	ev := upcomingEvent("evt-full", event.TypeFree)
	for i := 0; i < event.FreeCapacity; i++ {
		ev.Attendees = append(ev.Attendees, event.Attendee{
			ID:    fmt.Sprintf("att-%d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		})
	}
	store := newMockEventStore(ev)
	svc := NewService(store, nil)

	_, err := svc.Register(context.Background(), "evt-full", &RegisterRequest{
		Name:  "Late Comer",
		Email: "late@example.com",
	})
	assert.ErrorIs(t, err, event.ErrCapacityExceeded)
}

func TestRegister_PaidCapacityIsHigher(t *testing.T) {
	ev := upcomingEvent("evt-paid", event.TypePaid)
	for i := 0; i < event.FreeCapacity; i++ {
		ev.Attendees = append(ev.Attendees, event.Attendee{
			ID:    fmt.Sprintf("att-%d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		})
	}
	store := newMockEventStore(ev)
	svc := NewService(store, nil)

	// 500 attendees leaves room on a paid event
	_, err := svc.Register(context.Background(), "evt-paid", &RegisterRequest{
		Name:  "Still Fits",
		Email: "fits@example.com",
	})
	assert.NoError(t, err)
}

func TestRegister_ValidationFailures(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	svc := NewService(store, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@example.com"}},
		{"missing email", RegisterRequest{Name: "Asha"}},
		{"malformed email", RegisterRequest{Name: "Asha", Email: "not-an-email"}},
		{"malformed phone", RegisterRequest{Name: "Asha", Email: "a@example.com", Phone: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, "evt-abc123", &tt.req)
			assert.True(t, event.IsValidation(err), "expected validation error, got %v", err)
		})
	}

	// Nothing was persisted
	assert.Zero(t, store.saves)
}

func TestCheckRegistration(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	svc := NewService(store, nil)
	ctx := context.Background()

	registered, err := svc.CheckRegistration("evt-abc123", "asha@example.com")
	require.NoError(t, err)
	assert.False(t, registered)

	_, err = svc.Register(ctx, "evt-abc123", &RegisterRequest{Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)

	registered, err = svc.CheckRegistration("evt-abc123", "ASHA@EXAMPLE.COM")
	require.NoError(t, err)
	assert.True(t, registered)
}

func TestRemoveAttendee(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	svc := NewService(store, nil)
	ctx := context.Background()

	conf, err := svc.Register(ctx, "evt-abc123", &RegisterRequest{Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveAttendee("evt-abc123", conf.Attendee.ID))
	assert.Empty(t, store.events["evt-abc123"].Attendees)

	// Removing again is a no-op, not an error
	savesBefore := store.saves
	require.NoError(t, svc.RemoveAttendee("evt-abc123", conf.Attendee.ID))
	assert.Equal(t, savesBefore, store.saves)
}

func TestRemoveAttendee_ReopensCapacity(t *testing.T) {
	ev := upcomingEvent("evt-full", event.TypeFree)
	for i := 0; i < event.FreeCapacity; i++ {
		ev.Attendees = append(ev.Attendees, event.Attendee{
			ID:    fmt.Sprintf("att-%d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		})
	}
	store := newMockEventStore(ev)
	svc := NewService(store, nil)
	ctx := context.Background()

	require.NoError(t, svc.RemoveAttendee("evt-full", "att-0"))

	_, err := svc.Register(ctx, "evt-full", &RegisterRequest{
		Name:  "Waitlisted",
		Email: "waitlisted@example.com",
	})
	assert.NoError(t, err)
}

func TestStampPaymentRef(t *testing.T) {
	store := newMockEventStore(upcomingEvent("evt-abc123", event.TypeFree))
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "evt-abc123", &RegisterRequest{Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.StampPaymentRef("evt-abc123", "ASHA@example.com", "pay_123"))
	assert.Equal(t, "pay_123", store.events["evt-abc123"].Attendees[0].PaymentRef)

	// First stamp wins
	require.NoError(t, svc.StampPaymentRef("evt-abc123", "asha@example.com", "pay_999"))
	assert.Equal(t, "pay_123", store.events["evt-abc123"].Attendees[0].PaymentRef)

	// Unknown email is a no-op, unknown event is not
	savesBefore := store.saves
	require.NoError(t, svc.StampPaymentRef("evt-abc123", "ghost@example.com", "pay_123"))
	assert.Equal(t, savesBefore, store.saves)
	assert.ErrorIs(t, svc.StampPaymentRef("missing", "asha@example.com", "pay_123"), event.ErrNotFound)
}

func TestConfirmationID_ShortEventID(t *testing.T) {
	now := time.Now()
	id := confirmationID("ab12", now)
	assert.Equal(t, fmt.Sprintf("EVT-ab12-%06d", now.UnixMilli()%1_000_000), id)
}
