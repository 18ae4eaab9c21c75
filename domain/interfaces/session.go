package interfaces

import "context"

// Session is a live browser session that hands out element handles
type Session interface {
	// Navigate opens the given URL in the session's page
	Navigate(ctx context.Context, url string) error

	// Element returns a lazy handle addressing the first match of selector
	Element(selector string) Element

	// Elements returns the collection of all matches of selector
	Elements(selector string) Collection

	// Close shuts the session down
	Close() error
}

// SessionStore persists browser session state between runs
type SessionStore interface {
	// LoadState loads the stored session state, nil if none was saved
	LoadState() ([]byte, error)

	// SaveState saves session state
	SaveState(state []byte) error
}
