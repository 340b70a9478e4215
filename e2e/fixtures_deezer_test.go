//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type fakeTrack struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Artist struct {
		Name string `json:"name"`
	} `json:"artist"`
	Album struct {
		Title       string `json:"title"`
		CoverMedium string `json:"cover_medium"`
	} `json:"album"`
}

func track(id int64, title, artist, cover string) fakeTrack {
	t := fakeTrack{ID: id, Title: title}
	t.Artist.Name = artist
	t.Album.CoverMedium = cover
	return t
}

// fakeDeezer answers /search with canned tracks per query. Queries not in
// the catalogue get an HTTP 500.
type fakeDeezer struct {
	srv *httptest.Server

	mu      sync.Mutex
	queries []string
}

var catalogue = map[string][]fakeTrack{
	"daft punk": {
		track(3135556, "Harder, Better, Faster, Stronger", "Daft Punk", "https://cdn.test/daft-1.jpg"),
		track(3135553, "One More Time", "Daft Punk", "https://cdn.test/daft-2.jpg"),
	},
	"abba": {
		track(884025, "Dancing Queen", "ABBA", "https://cdn.test/abba-1.jpg"),
	},
	"nothing": {},
}

func newFakeDeezer(t *testing.T) *fakeDeezer {
	t.Helper()
	f := &fakeDeezer{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		f.mu.Lock()
		f.queries = append(f.queries, q)
		f.mu.Unlock()

		tracks, ok := catalogue[q]
		if !ok {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": tracks, "total": len(tracks)})
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// Endpoint is the search URL to pass with --endpoint
func (f *fakeDeezer) Endpoint() string {
	return f.srv.URL + "/search"
}

// Queries returns every q the server has seen
func (f *fakeDeezer) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}
