package ui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"songsearch/internal/config"
	"songsearch/internal/eventbus"
	"songsearch/internal/screen"
	"songsearch/internal/ui/logic"
	"songsearch/internal/ui/views"
)

// Placeholder shown in the empty search box
const Placeholder = "Search for a song/artist..."

type focus int

const (
	focusInput focus = iota
	focusList
)

// Options configures a Model
type Options struct {
	InitialQuery string
	ShowCover    bool
	ReadyMarker  bool
}

// Model represents the UI state
type Model struct {
	ctx        context.Context
	store      *screen.Store
	dispatcher *screen.Dispatcher
	log        *zap.Logger
	opts       Options

	width  int
	height int
	focus  focus
	input  textinput.Model
	help   help.Model
	keys   keyMap

	navigator    *logic.Navigator
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
}

// NewModel creates a new UI model. ctx bounds every search the screen starts.
func NewModel(ctx context.Context, store *screen.Store, dispatcher *screen.Dispatcher, log *zap.Logger, opts Options) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = ""
	ti.Focus()

	m := &Model{
		ctx:          ctx,
		store:        store,
		dispatcher:   dispatcher,
		log:          log.Named("ui"),
		opts:         opts,
		input:        ti,
		help:         help.New(),
		keys:         newKeyMap(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(opts.ShowCover),
		helpRenderer: NewHelpRenderer(),
	}

	if opts.InitialQuery != "" {
		m.input.SetValue(opts.InitialQuery)
		m.store.SetQuery(opts.InitialQuery)
	}
	return m
}

// OptionsFromConfig derives UI options from the loaded configuration
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		InitialQuery: cfg.Search.InitialQuery,
		ShowCover:    cfg.UI.ShowCover,
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.opts.InitialQuery != "" {
		cmds = append(cmds, m.search())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-12, 10)
		m.syncNavigator()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)

	case searchSettledMsg:
		if o := msg.outcome; !o.Skipped && !o.Stale && o.Err == nil {
			m.navigator.Reset()
		}
		m.syncNavigator()
		return m, nil

	case StoreChangedMsg:
		m.syncNavigator()
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.log.Error("pager failed", zap.Error(msg.err))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.search()
	case key.Matches(msg, m.keys.FocusList):
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.store.Query() {
		m.store.SetQuery(v)
	}
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FocusInput):
		m.setFocus(focusInput)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Up):
		m.navigator.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.navigator.MoveDown()
	case key.Matches(msg, m.keys.PageUp):
		m.navigator.PageUp()
	case key.Matches(msg, m.keys.PageDn):
		m.navigator.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.navigator.GoToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.navigator.GoToBottom()
	case key.Matches(msg, m.keys.Details):
		tracks := m.store.Tracks()
		if i := m.navigator.GetSelectedIndex(); i < len(tracks) {
			return m, showInPager(m.helpRenderer.RenderTrackDetails(tracks[i]))
		}
	case key.Matches(msg, m.keys.Help):
		return m, showInPager(m.helpRenderer.RenderHelpContent())
	}
	return m, nil
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// search dispatches the current query and reports back when it settles.
// An empty query settles immediately without a request.
func (m *Model) search() tea.Cmd {
	pending := m.dispatcher.ExecuteSearch(m.ctx)
	return func() tea.Msg {
		out, err := pending.Wait(m.ctx)
		if err != nil {
			return nil
		}
		return searchSettledMsg{outcome: out}
	}
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch e := e.(type) {
	case eventbus.SearchCompletedEvent:
		m.log.Debug("results replaced", zap.String("query", e.Query), zap.Int("count", e.Count))
		m.syncNavigator()
	case eventbus.SearchFailedEvent:
		// Failures are not shown; the previous results stay on screen.
		m.log.Debug("search failed", zap.String("query", e.Query))
	case eventbus.ConfigLoadedEvent:
		m.log.Info("config loaded", zap.String("path", e.Path))
	case eventbus.ConfigSavedEvent:
		m.log.Info("default config written", zap.String("path", e.Path))
	}
}

func (m *Model) syncNavigator() {
	m.navigator.UpdateState(len(m.store.Tracks()), views.ViewportRows(m.height))
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	rows := slices.Collect(screen.Rows(m.store.Tracks()))

	selected := -1
	var helpView string
	if m.focus == focusList {
		selected = m.navigator.GetSelectedIndex()
		helpView = m.help.View(listKeys{m.keys})
	} else {
		helpView = m.help.View(inputKeys{m.keys})
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		InputView:      m.input.View(),
		InputFocused:   m.focus == focusInput,
		Rows:           rows,
		SelectedIndex:  selected,
		ViewportOffset: m.navigator.GetViewportOffset(),
		ViewportHeight: m.navigator.GetViewportHeight(),
		HelpView:       helpView,
		ReadyMarker:    m.opts.ReadyMarker,
	})
}
