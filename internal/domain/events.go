package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded  EventType = "CatalogLoaded"
	EventQueryChanged   EventType = "QueryChanged"
	EventTermSelected   EventType = "TermSelected"
	EventRecentsChanged EventType = "RecentsChanged"
	EventRecentsCleared EventType = "RecentsCleared"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted when the term catalog has been read
type CatalogLoadedEvent struct {
	Source  string
	Entries int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// QueryChangedEvent is emitted when the search text changes
type QueryChangedEvent struct {
	Query   string
	Results int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// TermSelectedEvent is emitted when a term is committed or picked from the list
type TermSelectedEvent struct {
	Selection Selection
}

func (e TermSelectedEvent) Type() EventType { return EventTermSelected }

// RecentsChangedEvent is emitted after the recent selections were updated
type RecentsChangedEvent struct {
	Terms []string // most recent first
}

func (e RecentsChangedEvent) Type() EventType { return EventRecentsChanged }

// RecentsClearedEvent requests that all recent selections be forgotten
type RecentsClearedEvent struct{}

func (e RecentsClearedEvent) Type() EventType { return EventRecentsCleared }

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

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
