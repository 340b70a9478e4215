package views

import (
	"github.com/charmbracelet/lipgloss"

	"songsearch/internal/screen"
)

// RowHeight is the number of terminal lines one rendered row occupies
const RowHeight = 3

// TrackRenderer handles rendering of result rows
type TrackRenderer struct {
	styles    *Styles
	showCover bool
}

// NewTrackRenderer creates a new track renderer
func NewTrackRenderer(styles *Styles, showCover bool) *TrackRenderer {
	return &TrackRenderer{
		styles:    styles,
		showCover: showCover,
	}
}

// RenderRow renders one result: a cover marker, then title over artist.
// The cover itself cannot be drawn in a terminal, so its URL is shown dimmed.
func (r *TrackRenderer) RenderRow(row screen.Row, isSelected bool, width int) string {
	marker := "  "
	if isSelected {
		marker = "▌ "
	}

	title := r.styles.TrackTitle.Render(row.Title)
	artist := r.styles.Artist.Render(row.Artist)
	if r.showCover && row.Cover != "" {
		artist += "  " + r.styles.CoverURL.Render(row.Cover)
	}

	info := lipgloss.JoinVertical(lipgloss.Left, title, artist)
	if isSelected {
		info = r.styles.SelectionBg.Render(info)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.Cover.Render(marker+"♫"),
		info,
	)
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return r.styles.Row.Render(line)
}
