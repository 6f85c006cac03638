package ws

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Query     string `json:"query"`
	Board     string `json:"board"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

type ApplicationStatusEvent struct {
	Type          string `json:"type"`
	UserID        string `json:"user_id"`
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// Notifier turns domain events into hub broadcasts. Safe to call on a
// nil receiver, which keeps callers free of hub wiring checks.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) JobsUpdated(query, board string, count int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      "jobs_updated",
		Query:     strings.ToLower(strings.TrimSpace(query)),
		Board:     board,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

func (n *Notifier) ApplicationStatusChanged(userID, applicationID uuid.UUID, status string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationStatusEvent{
		Type:          "application_status_changed",
		UserID:        userID.String(),
		ApplicationID: applicationID.String(),
		Status:        status,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
