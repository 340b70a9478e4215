package ui

import (
	"songsearch/internal/eventbus"
	"songsearch/internal/screen"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// StoreChangedMsg is sent when the search store changed outside the event loop
type StoreChangedMsg struct {
	Snapshot screen.Snapshot
}

// searchSettledMsg carries the outcome of one dispatch
type searchSettledMsg struct {
	outcome screen.Outcome
}

// pagerClosedMsg is sent when the ov pager returns control
type pagerClosedMsg struct {
	err error
}
