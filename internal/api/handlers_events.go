package api

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/embersapp/embers/internal/security"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const eventStreamPingInterval = 25 * time.Second

// EventStream delivers the user's record-change events as server-sent
// events. Clients re-fetch their habit list on any event; the stream carries
// no record payloads beyond the id.
func (handler *Handler) EventStream(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	subscriberID, err := security.SubscriberToken()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to subscribe")
	}

	channel, cancel := handler.hub.Subscribe(subscriberID, user.ID)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(writer *bufio.Writer) {
		defer cancel()

		ticker := time.NewTicker(eventStreamPingInterval)
		defer ticker.Stop()

		for {
			select {
			case change, open := <-channel:
				if !open {
					return
				}
				payload, err := json.Marshal(change)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(writer, "event: %s\ndata: %s\n\n", change.Event, payload); err != nil {
					return
				}
				if err := writer.Flush(); err != nil {
					return
				}
			case <-ticker.C:
				// Heartbeat doubles as disconnect detection.
				if _, err := fmt.Fprint(writer, ": ping\n\n"); err != nil {
					return
				}
				if err := writer.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}
