package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/embersapp/embers/internal/events"
)

func TestEventStreamRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	response := jsonRequest(t, app, http.MethodGet, "/api/events", "", nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestEventStreamDeliversFramedChanges(t *testing.T) {
	app, database, hub := newTestAppWithHub(t)
	user := createTestUser(t, database, "stream@example.com", "longenough")
	authCookie := loginAndExtractAuthCookie(t, app, "stream@example.com", "longenough")

	// Publish once the stream's subscription is registered, then close the
	// hub so the response body ends and the test can read it in full.
	go func() {
		deadline := time.Now().Add(2 * time.Second)
		for hub.SubscriberCount() == 0 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		hub.Publish(user.ID, events.Change{
			Collection: events.CollectionHabits,
			Event:      events.EventCreate,
			RecordID:   "habit-a",
		})
		hub.Close()
	}()

	request := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, 5000)
	if err != nil {
		t.Fatalf("stream request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get("Content-Type"); contentType != "text/event-stream" {
		t.Fatalf("expected event-stream content type, got %q", contentType)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read stream body: %v", err)
	}
	framed := string(body)
	if !strings.Contains(framed, "event: create\n") {
		t.Fatalf("expected create event frame, got %q", framed)
	}
	if !strings.Contains(framed, "data: {") {
		t.Fatalf("expected a data line, got %q", framed)
	}
	if !strings.Contains(framed, `"record_id":"habit-a"`) {
		t.Fatalf("expected the record id in the data frame, got %q", framed)
	}

	// The writer's deferred cleanup ran when the channel closed, so the
	// hub carries no leftover subscription.
	if hub.SubscriberCount() != 0 {
		t.Fatalf("expected no subscribers after stream end, got %d", hub.SubscriberCount())
	}
}

func TestEventStreamDoesNotCarryOtherUsersChanges(t *testing.T) {
	app, database, hub := newTestAppWithHub(t)
	user := createTestUser(t, database, "mine@example.com", "longenough")
	createTestUser(t, database, "other@example.com", "longenough")
	authCookie := loginAndExtractAuthCookie(t, app, "mine@example.com", "longenough")

	go func() {
		deadline := time.Now().Add(2 * time.Second)
		for hub.SubscriberCount() == 0 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		hub.Publish(user.ID+1, events.Change{
			Collection: events.CollectionHabits,
			Event:      events.EventDelete,
			RecordID:   "foreign-habit",
		})
		hub.Publish(user.ID, events.Change{
			Collection: events.CollectionHabits,
			Event:      events.EventUpdate,
			RecordID:   "habit-b",
		})
		hub.Close()
	}()

	request := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, 5000)
	if err != nil {
		t.Fatalf("stream request failed: %v", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read stream body: %v", err)
	}
	framed := string(body)
	if strings.Contains(framed, "foreign-habit") {
		t.Fatalf("expected no foreign user events in stream, got %q", framed)
	}
	if !strings.Contains(framed, `"record_id":"habit-b"`) {
		t.Fatalf("expected own update event, got %q", framed)
	}
}
