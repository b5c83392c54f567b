package ui

import (
	"github.com/scadasystems/pluto-grid/internal/eventbus"
)

// EventMsg wraps a domain event forwarded from the event bus into the UI loop
type EventMsg struct {
	Event eventbus.DomainEvent
}
