package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kestrelworks/laneview/pkg/model"
)

// SelectionRecorder persists confirmed lane selections. The zero-value
// app works without one; recording failures are swallowed because
// history is a convenience, never a required step.
type SelectionRecorder interface {
	RecordSelection(model.LaneID) error
}

// LanesReloadedMsg carries freshly loaded workspace data into the
// program, typically posted by the file watcher.
type LanesReloadedMsg struct {
	Workspace model.Workspace
}

// Model is the top-level application model: a placeholder row that
// expands into the lane selector dropdown.
type Model struct {
	selector  LaneSelectorModel
	workspace model.Workspace
	opts      model.Options
	recorder  SelectionRecorder
	component *model.Component
	theme     Theme

	selected *model.Lane
	choice   *model.Lane

	width  int
	height int
	status string
}

// AppConfig wires the app model to its collaborators.
type AppConfig struct {
	Workspace model.Workspace
	Options   model.Options
	Recorder  SelectionRecorder
	Component *model.Component
}

// NewModel builds the app model for a loaded workspace.
func NewModel(cfg AppConfig) Model {
	theme := DefaultTheme(lipgloss.DefaultRenderer())
	opts := cfg.Options.Normalize()

	m := Model{
		selector:  NewLaneSelectorModel(cfg.Workspace.All(), opts, theme),
		workspace: cfg.Workspace,
		opts:      opts,
		recorder:  cfg.Recorder,
		component: cfg.Component,
		theme:     theme,
		width:     80,
		height:    24,
	}
	m.selected = m.resolveSelected(cfg.Workspace)
	return m
}

// resolveSelected finds the lane named by the workspace's selected ref,
// falling back to the main lane.
func (m *Model) resolveSelected(ws model.Workspace) *model.Lane {
	if ws.Selected != "" {
		if id, err := model.ParseLaneID(ws.Selected); err == nil {
			for _, lane := range ws.All() {
				if lane.ID == id {
					return &lane
				}
			}
		}
	}
	return ws.Main
}

// Choice returns the lane confirmed in this session, or nil.
func (m Model) Choice() *model.Lane {
	return m.choice
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.selector.SetSize(msg.Width, msg.Height)
		return m, nil

	case LanesReloadedMsg:
		m.workspace = msg.Workspace
		m.selector.SetLanes(msg.Workspace.All())
		m.selected = m.resolveSelected(msg.Workspace)
		m.status = "lanes reloaded"
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg.String())
	}
	return m, nil
}

func (m Model) updateKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.selector.IsOpen() {
		handled := m.selector.Update(key)

		if m.selector.IsConfirmed() {
			lane := m.selector.Choice()
			m.choice = lane
			m.selected = lane
			m.selector.Close()
			if m.recorder != nil && lane != nil {
				_ = m.recorder.RecordSelection(lane.ID)
			}
			return m, tea.Quit
		}
		if m.selector.IsCancelled() {
			m.selector.Close()
			m.selector.Reset()
			return m, nil
		}
		if handled {
			// The key belonged to a control inside the dropdown; it must
			// not fall through to the open/close toggle below.
			return m, nil
		}
		return m, nil
	}

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "enter", "o":
		// Mirrors the placeholder's disabled state: with fewer than two
		// lanes there is nothing to switch to.
		if len(m.workspace.All()) >= 2 {
			m.selector.Open()
		}
		return m, nil
	case "y":
		m.status = m.yankLink()
		return m, nil
	case "g":
		m.selector.ToggleGroupScopes()
		return m, nil
	}
	return m, nil
}

// yankLink copies the selected lane's navigable link to the clipboard
// and returns a status message.
func (m *Model) yankLink() string {
	if m.selected == nil {
		return "no lane selected"
	}
	link := m.selected.ID.String()
	if m.opts.LinkFor != nil {
		link = m.opts.LinkFor(*m.selected)
	}
	if err := clipboard.WriteAll(link); err != nil {
		return "clipboard unavailable"
	}
	return "copied " + link
}

// View implements tea.Model.
func (m Model) View() string {
	if m.selector.IsOpen() {
		return m.selector.View()
	}

	t := m.theme
	var b strings.Builder

	title := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true)
	b.WriteString(title.Render("laneview"))
	b.WriteString("\n")
	b.WriteString(RenderDivider(m.width / 2))
	b.WriteString("\n\n")

	b.WriteString(RenderPlaceholder(m.selected, len(m.workspace.All()), m.selector.GroupScopes(), t))
	if m.component != nil {
		b.WriteString("  ")
		b.WriteString(RenderScopeBubble(*m.component, t))
	}
	b.WriteString("\n\n")

	footer := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
	b.WriteString(footer.Render("enter: switch lane • y: copy link • g: group scopes • q: quit"))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Secondary).Render(m.status))
	}
	return b.String()
}
