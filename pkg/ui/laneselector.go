package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kestrelworks/laneview/pkg/lanes"
	"github.com/kestrelworks/laneview/pkg/model"
)

// LaneSelectorModel is the lane picker dropdown. It owns only transient
// UI state (search text, sort mode, group flag, filtered list, open
// flag); the lane data itself is supplied and replaced from outside.
type LaneSelectorModel struct {
	// Data
	source   []model.Lane // lanes in the order the data layer supplied them
	sorted   []model.Lane // source reordered by the active comparator
	filtered []model.Lane // visible subset after search

	// UI state
	searchInput   textinput.Model
	selectedIndex int
	sortMode      model.SortMode
	groupScopes   bool
	open          bool

	enabledSorts []model.SortMode
	fuzzy        bool
	icons        map[string]string
	onSelect     func(model.LaneID)

	// Dimensions
	width  int
	height int
	theme  Theme

	// Selection result
	confirmed bool
	cancelled bool
	choice    *model.Lane
}

// NewLaneSelectorModel creates a lane selector over the supplied lanes.
func NewLaneSelectorModel(lns []model.Lane, opts model.Options, theme Theme) LaneSelectorModel {
	opts = opts.Normalize()

	ti := textinput.New()
	ti.Placeholder = "Search lanes..."
	ti.CharLimit = 64
	ti.Width = 40

	m := LaneSelectorModel{
		searchInput:  ti,
		sortMode:     opts.SortMode,
		groupScopes:  opts.GroupScopes,
		enabledSorts: opts.EnabledSorts,
		fuzzy:        opts.Fuzzy,
		icons:        opts.ScopeIcons,
		onSelect:     opts.OnSelect,
		theme:        theme,
		width:        60,
		height:       20,
	}
	m.SetLanes(lns)
	return m
}

// SetLanes replaces the lane data. Whenever the lane count changes the
// search state is dropped and the filtered list resets to the full
// sorted list, so newly arrived data is never hidden by a stale query.
func (m *LaneSelectorModel) SetLanes(lns []model.Lane) {
	countChanged := len(lns) != len(m.source)

	m.source = lns
	m.sorted = append([]model.Lane(nil), lns...)
	lanes.Sort(m.sorted, m.sortMode, m.groupScopes)

	if countChanged || m.filtered == nil {
		m.searchInput.SetValue("")
		m.filtered = m.sorted
		m.selectedIndex = 0
		return
	}
	m.filterLanes()
}

// Open opens the dropdown and focuses the search input.
func (m *LaneSelectorModel) Open() {
	m.open = true
	m.confirmed = false
	m.cancelled = false
	m.choice = nil
	m.searchInput.Focus()
}

// Close closes the dropdown and blurs the search input.
func (m *LaneSelectorModel) Close() {
	m.open = false
	m.searchInput.Blur()
}

// IsOpen returns true while the dropdown is showing.
func (m *LaneSelectorModel) IsOpen() bool {
	return m.open
}

// SetSize updates the selector dimensions
func (m *LaneSelectorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 50 {
		inputWidth = 50
	}
	m.searchInput.Width = inputWidth
}

// Update handles a key and reports whether the selector consumed it.
// A consumed key must not reach the owner's open/close toggle: the
// search box and the group checkbox live inside the dropdown, and their
// clicks never bubble up to the container.
func (m *LaneSelectorModel) Update(key string) (handled bool) {
	if !m.open {
		return false
	}

	switch key {
	case "up":
		m.moveUp()
		return true
	case "down":
		m.moveDown()
		return true
	case "enter":
		if len(m.filtered) > 0 && m.selectedIndex < len(m.filtered) {
			lane := m.filtered[m.selectedIndex]
			m.choice = &lane
			m.confirmed = true
			if m.onSelect != nil {
				m.onSelect(lane.ID)
			}
		}
		return true
	case "esc":
		m.cancelled = true
		m.confirmed = false
		m.choice = nil
		return true
	case "ctrl+s":
		m.CycleSortMode()
		return true
	case "ctrl+g":
		m.ToggleGroupScopes()
		return true
	case "backspace":
		if v := m.searchInput.Value(); len(v) > 0 {
			m.searchInput.SetValue(v[:len(v)-1])
			m.filterLanes()
		}
		return true
	default:
		if len([]rune(key)) == 1 {
			m.searchInput.SetValue(m.searchInput.Value() + key)
			m.filterLanes()
			return true
		}
	}
	return false
}

// CycleSortMode advances to the next enabled sort mode and re-sorts the
// currently filtered list in place with the new comparator. The search
// result set is kept as-is; only its order changes.
func (m *LaneSelectorModel) CycleSortMode() {
	if len(m.enabledSorts) == 0 {
		return
	}
	next := 0
	for i, mode := range m.enabledSorts {
		if mode == m.sortMode {
			next = (i + 1) % len(m.enabledSorts)
			break
		}
	}
	m.SetSortMode(m.enabledSorts[next])
}

// SetSortMode switches the comparator and reorders the current lists.
func (m *LaneSelectorModel) SetSortMode(mode model.SortMode) {
	if !mode.IsValid() {
		return
	}
	m.sortMode = mode

	resort := m.filtered
	m.sorted = append([]model.Lane(nil), m.source...)
	lanes.Sort(m.sorted, m.sortMode, m.groupScopes)
	if m.searchInput.Value() == "" {
		m.filtered = m.sorted
	} else {
		m.filtered = append([]model.Lane(nil), resort...)
		lanes.Sort(m.filtered, m.sortMode, m.groupScopes)
	}
	m.clampSelection()
}

// ToggleGroupScopes flips the group-by-scope flag. The flag feeds both
// the placeholder display and the alphabetical comparator's scope-aware
// tie-break, so the visible order is recomputed immediately.
func (m *LaneSelectorModel) ToggleGroupScopes() {
	m.groupScopes = !m.groupScopes
	m.SetSortMode(m.sortMode)
}

// HandleTextInput processes a full replacement of the search text.
func (m *LaneSelectorModel) HandleTextInput(value string) {
	m.searchInput.SetValue(value)
	m.filterLanes()
}

func (m *LaneSelectorModel) moveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
}

func (m *LaneSelectorModel) moveDown() {
	if m.selectedIndex < len(m.filtered)-1 {
		m.selectedIndex++
	}
}

func (m *LaneSelectorModel) clampSelection() {
	if m.selectedIndex >= len(m.filtered) {
		m.selectedIndex = len(m.filtered) - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
}

func (m *LaneSelectorModel) filterLanes() {
	query := strings.TrimSpace(m.searchInput.Value())
	if m.fuzzy {
		m.filtered = lanes.FilterFuzzy(m.sorted, query)
	} else {
		m.filtered = lanes.Filter(m.sorted, m.source, query)
	}
	m.selectedIndex = 0
}

// IsConfirmed returns true if the user confirmed a selection
func (m *LaneSelectorModel) IsConfirmed() bool {
	return m.confirmed
}

// IsCancelled returns true if the user cancelled the selector
func (m *LaneSelectorModel) IsCancelled() bool {
	return m.cancelled
}

// Choice returns the confirmed lane, or nil if none.
func (m *LaneSelectorModel) Choice() *model.Lane {
	return m.choice
}

// SearchValue returns the current search input value
func (m *LaneSelectorModel) SearchValue() string {
	return m.searchInput.Value()
}

// SortMode returns the active sort mode.
func (m *LaneSelectorModel) SortMode() model.SortMode {
	return m.sortMode
}

// GroupScopes returns the group-by-scope flag.
func (m *LaneSelectorModel) GroupScopes() bool {
	return m.groupScopes
}

// VisibleLanes returns the filtered, ordered lanes currently shown.
func (m *LaneSelectorModel) VisibleLanes() []model.Lane {
	return m.filtered
}

// ItemCount returns the number of filtered lanes
func (m *LaneSelectorModel) ItemCount() int {
	return len(m.filtered)
}

// Reset clears the transient state for reuse.
func (m *LaneSelectorModel) Reset() {
	m.confirmed = false
	m.cancelled = false
	m.choice = nil
	m.searchInput.SetValue("")
	m.filtered = m.sorted
	m.selectedIndex = 0
}

// View renders the dropdown.
func (m *LaneSelectorModel) View() string {
	t := m.theme

	boxWidth := 55
	if m.width < 65 {
		boxWidth = m.width - 10
	}
	if boxWidth < 35 {
		boxWidth = 35
	}
	contentWidth := boxWidth - 4

	var lines []string

	titleStyle := t.Renderer.NewStyle().
		Foreground(t.Primary).
		Bold(true)
	lines = append(lines, titleStyle.Render("Switch Lane"))
	lines = append(lines, "")

	inputStyle := t.Renderer.NewStyle().
		Foreground(t.Base.GetForeground()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		Padding(0, 1).
		Width(contentWidth - 2)

	searchValue := m.searchInput.Value()
	if searchValue == "" {
		searchValue = t.Renderer.NewStyle().Foreground(t.Subtext).Render(m.searchInput.Placeholder)
	}
	lines = append(lines, inputStyle.Render(searchValue))
	lines = append(lines, m.renderModeLine())
	lines = append(lines, "")

	maxVisible := m.height - 12
	if maxVisible < 5 {
		maxVisible = 5
	}
	if maxVisible > 15 {
		maxVisible = 15
	}

	if len(m.filtered) == 0 {
		emptyStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
		lines = append(lines, emptyStyle.Render("  No matching lanes"))
	} else if m.groupScopes {
		lines = append(lines, m.renderGrouped(maxVisible, contentWidth)...)
	} else {
		for i, lane := range m.filtered {
			if i >= maxVisible {
				break
			}
			lines = append(lines, m.renderLane(lane, i == m.selectedIndex, false, contentWidth))
		}
	}

	if len(m.filtered) > maxVisible {
		moreStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
		lines = append(lines, moreStyle.Render(
			strings.Repeat(" ", SpaceSM)+"... and "+
				strconv.Itoa(len(m.filtered)-maxVisible)+" more"))
	}

	lines = append(lines, "")
	footerStyle := t.Renderer.NewStyle().
		Foreground(t.Subtext).
		Italic(true)
	lines = append(lines, footerStyle.Render("↑↓: navigate • enter: select • ctrl+s: sort • ctrl+g: group • esc: close"))

	content := strings.Join(lines, "\n")

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(boxWidth)

	box := boxStyle.Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

// renderModeLine shows the active sort mode and the group checkbox.
func (m *LaneSelectorModel) renderModeLine() string {
	t := m.theme
	sortStyle := t.Renderer.NewStyle().Foreground(t.Secondary)
	checkbox := "[ ]"
	if m.groupScopes {
		checkbox = "[x]"
	}
	return sortStyle.Render("sort: "+m.sortMode.Label()) + "  " +
		sortStyle.Render(checkbox+" group scopes")
}

// renderGrouped renders lanes clustered under scope headers, keeping
// the flat selectedIndex aligned with the visual order.
func (m *LaneSelectorModel) renderGrouped(maxVisible, contentWidth int) []string {
	t := m.theme
	headerStyle := t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	var lines []string
	lastScope := ""
	for i, lane := range m.filtered {
		if i >= maxVisible {
			break
		}
		if lane.ID.Scope != lastScope {
			lines = append(lines, headerStyle.Render(strings.ToUpper(lane.ID.Scope)))
			lastScope = lane.ID.Scope
		}
		lines = append(lines, m.renderLane(lane, i == m.selectedIndex, true, contentWidth))
	}
	return lines
}

func (m *LaneSelectorModel) renderLane(lane model.Lane, isSelected, grouped bool, maxWidth int) string {
	t := m.theme

	prefix := "  "
	if isSelected {
		prefix = "▸ "
	}

	icon := ""
	if glyph, ok := m.icons[lane.ID.Scope]; ok && glyph != "" {
		icon = glyph + " "
	}

	nameStyle := t.Renderer.NewStyle()
	if isSelected {
		nameStyle = nameStyle.Foreground(t.Primary).Bold(true)
	} else {
		nameStyle = nameStyle.Foreground(t.Base.GetForeground())
	}

	label := lane.ID.Name
	if !grouped {
		label = lane.ID.String()
	}
	maxLabel := maxWidth - 10
	if maxLabel > 0 {
		label = runewidth.Truncate(label, maxLabel, "…")
	}

	name := prefix + icon + nameStyle.Render(label)

	suffix := ""
	if !lane.UpdatedAt.IsZero() {
		suffix = t.Renderer.NewStyle().Foreground(t.Subtext).Render(FormatTimeRel(lane.UpdatedAt))
	}

	padding := maxWidth - lipgloss.Width(name) - lipgloss.Width(suffix)
	if padding < 1 {
		padding = 1
	}

	return name + strings.Repeat(" ", padding) + suffix
}
