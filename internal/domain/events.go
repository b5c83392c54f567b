package domain

// EventType identifies a kind of domain event
type EventType string

const (
	EventDatasetLoaded EventType = "dataset_loaded"
	EventDataChanged   EventType = "data_changed"
	EventPageSet       EventType = "page_set"
	EventError         EventType = "error"
)

// DomainEvent is the interface all events implement
type DomainEvent interface {
	Type() EventType
}

// DatasetLoadedEvent is published when a dataset has been read from disk
type DatasetLoadedEvent struct {
	Name     string
	RowCount int
	ColCount int
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// DataChangedEvent is published when the grid's rows were resorted, filtered
// or resized, so the page count may have changed
type DataChangedEvent struct {
	TotalPages int
}

func (e DataChangedEvent) Type() EventType { return EventDataChanged }

// PageSetEvent is published when a page was pushed to the grid with notify set
type PageSetEvent struct {
	Page int
}

func (e PageSetEvent) Type() EventType { return EventPageSet }

// ErrorEvent is published when an operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
