package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested EventType = "SearchRequested"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchSkipped   EventType = "SearchSkipped"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when a dispatch issues a request
type SearchRequestedEvent struct {
	Query      string
	Generation uint64
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted after the result list was replaced
type SearchCompletedEvent struct {
	Query      string
	Generation uint64
	Count      int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a request failed; the result list is untouched
type SearchFailedEvent struct {
	Query      string
	Generation uint64
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchSkippedEvent is emitted when dispatch was called with an empty query
type SearchSkippedEvent struct{}

func (e SearchSkippedEvent) Type() EventType { return EventSearchSkipped }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
