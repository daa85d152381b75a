// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// EntityQueueName is the durable queue entity change events are routed to.
const EntityQueueName = "hbnb.entity.changed"

// Event types.
const (
	EventCreated = "created"
	EventUpdated = "updated"
)

// EntityEvent is published after a record is created or updated.  It carries
// only identity so consumers re-read the record if they need its fields.
type EntityEvent struct {
	Type string    `json:"type"` // created | updated
	Kind string    `json:"kind"` // model kind, e.g. "City"
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}
