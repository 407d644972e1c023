package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/kestrelworks/laneview/pkg/model"
)

// RenderPlaceholder renders the closed-state label for the lane
// selector: the selected lane's name, scope-prefixed when grouping is
// active. With fewer than two lanes there is nothing to switch to and
// the placeholder renders disabled.
func RenderPlaceholder(selected *model.Lane, laneCount int, grouped bool, t Theme) string {
	if laneCount < 2 {
		disabled := t.Renderer.NewStyle().Foreground(t.Muted).Italic(true)
		label := "no other lanes"
		if selected != nil {
			label = placeholderLabel(*selected, grouped)
		}
		return disabled.Render(label)
	}

	style := t.Renderer.NewStyle().Foreground(t.Base.GetForeground()).Bold(true)
	arrow := t.Renderer.NewStyle().Foreground(t.Subtext).Render(" ▾")

	if selected == nil {
		hint := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
		return hint.Render("select lane") + arrow
	}
	return style.Render(placeholderLabel(*selected, grouped)) + arrow
}

// placeholderLabel drops the scope prefix when grouping is active,
// since the scope is then shown by the surrounding group context.
func placeholderLabel(lane model.Lane, grouped bool) string {
	if grouped {
		return lane.ID.Name
	}
	return lane.ID.String()
}

// RenderScopeBubble renders a component's scope name as a badge label.
func RenderScopeBubble(c model.Component, t Theme) string {
	scope := c.Scope
	if scope == "" {
		scope = "unscoped"
	}
	scope = runewidth.Truncate(scope, 24, "…")

	return t.Renderer.NewStyle().
		Foreground(t.Scope).
		Background(t.ScopeBg).
		Padding(0, SpaceXS).
		Render(scope)
}
