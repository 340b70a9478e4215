package domain

// Track represents a single search result
type Track struct {
	ID       int64
	Title    string
	Artist   string
	Cover    string // URL of the medium album cover
	Album    string
	Duration int // seconds
	Link     string
	Preview  string // 30 second preview URL
}
