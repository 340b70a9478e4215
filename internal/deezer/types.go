package deezer

import "songsearch/internal/domain"

// searchResponse is the JSON body returned by GET /search.
// Deezer reports quota and parameter errors with status 200 and an
// error object instead of data.
type searchResponse struct {
	Data  []trackResult `json:"data"`
	Total int           `json:"total"`
	Next  string        `json:"next,omitempty"`
	Error *apiError     `json:"error,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type trackResult struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Duration int    `json:"duration"`
	Preview  string `json:"preview"`
	Artist   struct {
		Name string `json:"name"`
	} `json:"artist"`
	Album struct {
		Title       string `json:"title"`
		CoverMedium string `json:"cover_medium"`
	} `json:"album"`
}

func (t trackResult) toDomain() domain.Track {
	return domain.Track{
		ID:       t.ID,
		Title:    t.Title,
		Artist:   t.Artist.Name,
		Cover:    t.Album.CoverMedium,
		Album:    t.Album.Title,
		Duration: t.Duration,
		Link:     t.Link,
		Preview:  t.Preview,
	}
}
