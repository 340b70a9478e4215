package views

import (
	"fmt"
	"strings"

	"songsearch/internal/screen"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	InputView      string
	InputFocused   bool
	Rows           []screen.Row // every row, in list order
	SelectedIndex  int          // -1 when the list is not focused
	ViewportOffset int
	ViewportHeight int // rows, not lines
	HelpView       string
	ReadyMarker    bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	trackRender *TrackRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showCover bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		trackRender: NewTrackRenderer(styles, showCover),
	}
}

// ChromeLines is every line of the screen that is not a result row:
// padding, title, input box, button, both scroll indicators and help.
const ChromeLines = 2 + 2 + 3 + 2 + 2 + 2

// ViewportRows returns how many result rows fit in a terminal of height lines
func ViewportRows(height int) int {
	rows := (height - ChromeLines) / RowHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := r.styles.Title.Render("Song Search")
	if state.ReadyMarker {
		title += " __READY__"
	}
	content.WriteString(title)
	content.WriteString("\n")

	inputStyle := r.styles.Input
	if state.InputFocused {
		inputStyle = r.styles.InputFocus
	}
	inputWidth := state.Width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	content.WriteString(inputStyle.Width(inputWidth).Render(state.InputView))
	content.WriteString("\n")

	button := r.styles.Button
	if state.InputFocused {
		button = r.styles.ButtonFocus
	}
	content.WriteString(button.Render("[ Search ]"))
	content.WriteString("\n")

	content.WriteString(r.renderRows(state))

	if state.HelpView != "" {
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

// renderRows draws the visible slice of the result list with scroll
// indicators. An empty list draws nothing.
func (r *Renderer) renderRows(state ViewState) string {
	if len(state.Rows) == 0 {
		return ""
	}

	height := state.ViewportHeight
	if height <= 0 {
		height = len(state.Rows)
	}
	start := state.ViewportOffset
	if start < 0 || start >= len(state.Rows) {
		start = 0
	}
	end := start + height
	if end > len(state.Rows) {
		end = len(state.Rows)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(r.trackRender.RenderRow(state.Rows[i], i == state.SelectedIndex, state.Width-4))
		b.WriteString("\n")
	}
	if remaining := len(state.Rows) - end; remaining > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", remaining)))
		b.WriteString("\n")
	}
	return b.String()
}
