package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"songsearch/internal/domain"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent renders the full key reference
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	entry := func(k, desc string) string {
		return fmt.Sprintf("  %-12s %s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Song Search Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search box"))
	help.WriteString("\n")
	help.WriteString(entry("type", "Edit the search text"))
	help.WriteString(entry("Enter", "Search Deezer (empty text does nothing)"))
	help.WriteString(entry("Tab/Esc/↓", "Move focus to the results"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	help.WriteString(entry("↑/↓, j/k", "Move up/down"))
	help.WriteString(entry("PgUp/PgDn", "Page up/down"))
	help.WriteString(entry("g/G", "Go to top/bottom"))
	help.WriteString(entry("Enter", "Show track details"))
	help.WriteString(entry("Tab, /, i", "Back to the search box"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(entry("?", "Show this help"))
	help.WriteString(entry("q, Ctrl+C", "Quit"))

	return help.String()
}

// RenderTrackDetails renders everything known about one track
func (r *HelpRenderer) RenderTrackDetails(t domain.Track) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Title))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label)), value))
	}
	field("Artist", t.Artist)
	field("Album", t.Album)
	if t.Duration > 0 {
		field("Duration", (time.Duration(t.Duration) * time.Second).String())
	}
	field("Deezer", t.Link)
	field("Preview", t.Preview)
	field("Cover", t.Cover)
	field("ID", fmt.Sprintf("%d", t.ID))

	return b.String()
}

// pagerCommand shows content in the ov pager. It satisfies tea.ExecCommand
// so Bubble Tea releases the terminal while ov owns it.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showInPager hands the terminal to ov until the user quits it
func showInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
