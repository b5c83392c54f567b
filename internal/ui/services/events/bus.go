package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services. Dispatch is synchronous: a
// publisher's handlers have all run by the time Publish returns, so a service
// that publishes mid-operation leaves consistent state for its listeners.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners and waits for them to finish
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := b.listeners[getEventType(event)]
	handlersCopy := make([]func(interface{}), len(handlers))
	copy(handlersCopy, handlers)
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		handler(event)
	}
}

// getEventType extracts the type name from an event
func getEventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
