package screen

import (
	"iter"
	"strconv"

	"songsearch/internal/domain"
)

// Row is one drawable result line
type Row struct {
	Key    string
	Title  string
	Artist string
	Cover  string
}

// RowFor maps a track to its row
func RowFor(t domain.Track) Row {
	return Row{
		Key:    strconv.FormatInt(t.ID, 10),
		Title:  t.Title,
		Artist: t.Artist,
		Cover:  t.Cover,
	}
}

// Rows yields one row per track in list order. The sequence can be
// ranged over any number of times.
func Rows(tracks []domain.Track) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, t := range tracks {
			if !yield(RowFor(t)) {
				return
			}
		}
	}
}
