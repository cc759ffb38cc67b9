// ABOUTME: Top-level Bubble Tea AppModel for the terminal playground: pickers, canvas, controls and status bar.
// ABOUTME: Every key that changes the view becomes a playground.Event applied to the single State value.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/2389-research/storybook-ui/catalog"
	"github.com/2389-research/storybook-ui/playground"
)

// FocusTarget indicates which panel currently has keyboard focus.
type FocusTarget int

const (
	FocusComponents FocusTarget = iota
	FocusStories
	FocusControls
)

const (
	sidebarWidth = 26
	tickInterval = time.Second
)

// AppModel is the top-level Bubble Tea model. It owns the view's State and
// rebuilds its sub-panels from it after every transition.
type AppModel struct {
	state  playground.State
	source *catalog.Source
	logger *zap.Logger

	components ListPanelModel
	stories    ListPanelModel
	controls   ControlsPanelModel
	statusBar  StatusBarModel
	docs       *glamour.TermRenderer

	focus  FocusTarget
	width  int
	height int
}

// NewAppModel creates an AppModel for state. When source is non-nil the
// model follows catalog reloads; logger may be nil.
func NewAppModel(state playground.State, source *catalog.Source, logger *zap.Logger) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	if source != nil {
		state = state.WithCatalog(source.Current())
	}

	m := AppModel{
		state:      state,
		source:     source,
		logger:     logger,
		components: NewListPanelModel("Components"),
		stories:    NewListPanelModel("Stories"),
		controls:   NewControlsPanelModel(),
		statusBar:  NewStatusBarModel(state.ViewID),
		focus:      FocusComponents,
	}
	m.statusBar.Start()
	m.sync(true)
	m.setFocus(m.focus)
	return m
}

// State returns the current view state.
func (m AppModel) State() playground.State {
	return m.state
}

// Init implements tea.Model and starts the tick loop.
func (m AppModel) Init() tea.Cmd {
	return TickCmd(tickInterval)
}

// Update implements tea.Model. Routes incoming messages and returns the
// updated model with any follow-up commands.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.docs = newDocsRenderer(msg.Width - sidebarWidth - 4)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blinks and other input messages belong to the text input.
	if m.controls.Editing() {
		var cmd tea.Cmd
		m.controls, cmd = m.controls.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick rebinds the view when the catalog source has been reloaded.
func (m AppModel) handleTick(_ TickMsg) (tea.Model, tea.Cmd) {
	if m.source != nil {
		if cur := m.source.Current(); cur != m.state.Catalog() {
			m.state = m.state.WithCatalog(cur)
			m.sync(false)
			m.statusBar.SetMessage("catalog reloaded", false)
			m.logger.Debug("catalog rebound", zap.String("view", m.state.ViewID))
		}
	}
	return m, TickCmd(tickInterval)
}

// handleKeyMsg processes keyboard input, routing to the text input while a
// text knob is being edited.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.controls.Editing() {
		switch msg.Type {
		case tea.KeyEnter:
			key, value := m.controls.Commit()
			m.apply(playground.Event{Type: playground.EventSetKnob, Key: key, Value: value})
		case tea.KeyEsc:
			m.controls.Cancel()
		case tea.KeyCtrlC:
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.controls, cmd = m.controls.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.setFocus(m.nextFocus(1))
	case "shift+tab":
		m.setFocus(m.nextFocus(-1))
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter", " ":
		m.activate()
	case "left", "h":
		m.step(-1)
	case "right", "l":
		m.step(1)
	case "s":
		m.apply(playground.Event{Type: playground.EventToggleSidebar})
	case "c":
		m.apply(playground.Event{Type: playground.EventToggleCode})
	case "1", "2", "3":
		tab := playground.Tabs[msg.String()[0]-'1']
		m.apply(playground.Event{Type: playground.EventSelectTab, Value: string(tab)})
	}
	return m, nil
}

// apply runs one event through the state machine. Rejected events leave the
// state as it was and show the reason in the status bar.
func (m *AppModel) apply(ev playground.Event) {
	next, err := m.state.Apply(ev)
	if err != nil {
		m.statusBar.SetMessage(err.Error(), true)
		m.logger.Debug("event rejected",
			zap.String("view", m.state.ViewID),
			zap.String("event", string(ev.Type)),
			zap.Error(err),
		)
		return
	}
	componentChanged := next.Component != m.state.Component
	m.state = next
	m.statusBar.SetMessage(string(ev.Type), false)
	m.logger.Debug("playground transition",
		zap.String("view", next.ViewID),
		zap.String("event", string(ev.Type)),
		zap.String("component", string(next.Component)),
		zap.String("story", next.Story),
	)
	m.sync(componentChanged)
	if !m.state.SidebarOpen && m.focus != FocusControls {
		m.setFocus(FocusControls)
	}
}

// activate handles Enter on the focused panel.
func (m *AppModel) activate() {
	switch m.focus {
	case FocusComponents:
		if it, ok := m.components.Current(); ok {
			m.apply(playground.Event{Type: playground.EventSelectComponent, Value: it.Name})
		}
	case FocusStories:
		if it, ok := m.stories.Current(); ok {
			m.apply(playground.Event{Type: playground.EventSelectStory, Value: it.Name})
		}
	case FocusControls:
		if m.controls.StartEditing() {
			return
		}
		m.step(1)
	}
}

// step changes the choice or toggle under the controls cursor.
func (m *AppModel) step(delta int) {
	if m.focus != FocusControls {
		return
	}
	if key, value, ok := m.controls.Next(delta); ok {
		m.apply(playground.Event{Type: playground.EventSetKnob, Key: key, Value: value})
	}
}

func (m *AppModel) move(delta int) {
	switch m.focus {
	case FocusComponents:
		if delta < 0 {
			m.components.MoveUp()
		} else {
			m.components.MoveDown()
		}
	case FocusStories:
		if delta < 0 {
			m.stories.MoveUp()
		} else {
			m.stories.MoveDown()
		}
	case FocusControls:
		if delta < 0 {
			m.controls.MoveUp()
		} else {
			m.controls.MoveDown()
		}
	}
}

// nextFocus cycles the focus target. The pickers are skipped while the
// sidebar is hidden.
func (m AppModel) nextFocus(delta int) FocusTarget {
	if !m.state.SidebarOpen {
		return FocusControls
	}
	n := int(FocusControls) + 1
	return FocusTarget(((int(m.focus)+delta)%n + n) % n)
}

func (m *AppModel) setFocus(f FocusTarget) {
	m.focus = f
	m.components.SetFocused(f == FocusComponents)
	m.stories.SetFocused(f == FocusStories)
	m.controls.SetFocused(f == FocusControls)
}

// sync rebuilds the panels from the current state.
func (m *AppModel) sync(componentChanged bool) {
	cat := m.state.Catalog()

	var comps []ListItem
	for _, c := range cat.Components {
		comps = append(comps, ListItem{Name: c.Name, Label: c.Label, Selected: c.Name == string(m.state.Component)})
	}
	m.components.SetItems(comps, false)

	var stories []ListItem
	for _, st := range m.state.Stories() {
		stories = append(stories, ListItem{Name: st.Name, Label: st.Label, Selected: st.Name == m.state.Story})
	}
	m.stories.SetItems(stories, componentChanged)

	m.controls.SetPanel(m.state.Controls(), m.state.Knobs)
	m.statusBar.SetView(m.state.Heading(), string(m.state.Tab))
}

// View implements tea.Model. Renders the full layout.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Minimum terminal size guard to prevent layout overflow
	if m.width < 40 || m.height < 10 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 40x10.", m.width, m.height)
	}

	mainWidth := m.width
	var sidebar string
	if m.state.SidebarOpen {
		m.components.SetWidth(sidebarWidth)
		m.stories.SetWidth(sidebarWidth)
		sidebar = lipgloss.JoinVertical(lipgloss.Left, m.components.View(), m.stories.View())
		mainWidth -= sidebarWidth + 1
	}
	m.controls.SetWidth(mainWidth)
	m.statusBar.SetWidth(m.width)

	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")
	switch m.state.Tab {
	case playground.TabDocs:
		b.WriteString(m.docsView())
	case playground.TabSettings:
		b.WriteString(m.settingsView())
	default:
		b.WriteString(m.canvasView())
	}
	main := lipgloss.NewStyle().Width(mainWidth).Render(b.String())

	body := main
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
	}

	help := MutedStyle.Render("tab focus • ↑/↓ move • enter select • ←/→ change • s sidebar • c code • 1-3 tabs • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, help, m.statusBar.View())
}

func (m AppModel) tabsView() string {
	parts := make([]string, 0, len(playground.Tabs))
	for i, t := range playground.Tabs {
		label := fmt.Sprintf("%d %s", i+1, capitalizeTab(t))
		if t == m.state.Tab {
			parts = append(parts, ActiveTabStyle.Render(label))
		} else {
			parts = append(parts, InactiveTabStyle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func capitalizeTab(t playground.Tab) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m AppModel) canvasView() string {
	ex := m.state.Example()
	rows := []string{
		TitleStyle.Render(m.state.Heading()),
		"",
		lipgloss.NewStyle().Padding(1, 2).Render(RenderExample(ex)),
	}
	if m.state.ShowCode {
		rows = append(rows, CodeStyle.Render(playground.Snippet(ex)))
	}
	rows = append(rows, m.controls.View())
	return strings.Join(rows, "\n")
}

func (m AppModel) docsView() string {
	docs := m.state.Catalog().Docs(string(m.state.Component))
	if docs == "" {
		return MutedStyle.Render("No documentation for this component.")
	}
	return renderDocs(m.docs, docs)
}

func (m AppModel) settingsView() string {
	origin := catalog.EmbeddedOrigin
	if m.source != nil {
		origin = m.source.Origin()
	}
	rows := [][2]string{
		{"View", m.state.ViewID},
		{"Catalog", origin},
		{"Component", string(m.state.Component)},
		{"Story", m.state.Story},
		{"Sidebar", fmt.Sprintf("%t", m.state.SidebarOpen)},
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Settings"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render(r[0]) + ValueStyle.Render(r[1]))
	}
	return b.String()
}
