package events

import "sync"

const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"

	CollectionHabits = "habits"
)

// Change describes one mutation of a user's records. Subscribers re-fetch on
// any event for their data, including events their own session caused.
type Change struct {
	Collection string `json:"collection"`
	Event      string `json:"event"`
	RecordID   string `json:"record_id"`
}

type subscriber struct {
	userID  uint
	channel chan Change
	once    sync.Once
}

func (sub *subscriber) shutdown() {
	sub.once.Do(func() { close(sub.channel) })
}

// Hub fans mutation events out to per-user subscribers. Delivery is
// best-effort: a subscriber that cannot keep up loses events instead of
// blocking the writer, which is safe because consumers re-fetch the full
// list on every event anyway.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]*subscriber
	closed      bool
}

const subscriberBuffer = 16

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]*subscriber)}
}

// Subscribe registers a listener for one user's change events under the
// given id and returns the delivery channel. The returned cancel func is
// idempotent and closes the channel.
func (hub *Hub) Subscribe(id string, userID uint) (<-chan Change, func()) {
	channel := make(chan Change, subscriberBuffer)

	hub.mu.Lock()
	if hub.closed {
		hub.mu.Unlock()
		close(channel)
		return channel, func() {}
	}
	sub := &subscriber{userID: userID, channel: channel}
	hub.subscribers[id] = sub
	hub.mu.Unlock()

	cancel := func() {
		hub.mu.Lock()
		if current, ok := hub.subscribers[id]; ok && current == sub {
			delete(hub.subscribers, id)
		}
		hub.mu.Unlock()
		sub.shutdown()
	}
	return channel, cancel
}

func (hub *Hub) Publish(userID uint, change Change) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if hub.closed {
		return
	}
	for _, sub := range hub.subscribers {
		if sub.userID != userID {
			continue
		}
		select {
		case sub.channel <- change:
		default:
		}
	}
}

// Close rejects further publishes and closes every subscriber channel, so
// open event streams drain and end instead of idling until their next ping.
func (hub *Hub) Close() {
	hub.mu.Lock()
	if hub.closed {
		hub.mu.Unlock()
		return
	}
	hub.closed = true
	dropped := hub.subscribers
	hub.subscribers = make(map[string]*subscriber)
	hub.mu.Unlock()

	for _, sub := range dropped {
		sub.shutdown()
	}
}

func (hub *Hub) SubscriberCount() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.subscribers)
}
