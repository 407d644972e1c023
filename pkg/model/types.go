package model

import (
	"fmt"
	"strings"
	"time"
)

// LaneID identifies a lane by scope and name. IDs are unique within
// any lane list supplied by the workspace data layer.
type LaneID struct {
	Scope string `yaml:"scope"`
	Name  string `yaml:"name"`
}

// String renders the lane ref in "scope/name" form.
func (id LaneID) String() string {
	return id.Scope + "/" + id.Name
}

// IsZero returns true if the ID carries no scope or name.
func (id LaneID) IsZero() bool {
	return id.Scope == "" && id.Name == ""
}

// ParseLaneID parses a "scope/name" ref. The name may itself contain
// slashes; only the first separates scope from name.
func ParseLaneID(ref string) (LaneID, error) {
	scope, name, ok := strings.Cut(ref, "/")
	if !ok || scope == "" || name == "" {
		return LaneID{}, fmt.Errorf("invalid lane ref %q: want scope/name", ref)
	}
	return LaneID{Scope: scope, Name: name}, nil
}

// Lane is a named branch-like workspace grouping. Timestamps are
// optional; a zero time sorts as oldest.
type Lane struct {
	ID        LaneID    `yaml:",inline"`
	CreatedAt time.Time `yaml:"created_at,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}

// Validate checks that the lane carries a usable identity.
func (l *Lane) Validate() error {
	if l.ID.Scope == "" {
		return fmt.Errorf("lane scope cannot be empty")
	}
	if l.ID.Name == "" {
		return fmt.Errorf("lane name cannot be empty")
	}
	return nil
}

// Component is a workspace component grouped under a scope.
type Component struct {
	ID    string `yaml:"id"`
	Scope string `yaml:"scope"`
	Name  string `yaml:"name"`
}

// SortMode selects the comparator used to order the lane list.
type SortMode string

const (
	SortAlphabetical SortMode = "alphabetical"
	SortCreated      SortMode = "created"
	SortUpdated      SortMode = "updated"
)

// IsValid returns true if the sort mode is a recognized value.
func (m SortMode) IsValid() bool {
	switch m {
	case SortAlphabetical, SortCreated, SortUpdated:
		return true
	}
	return false
}

// Label returns the short display label for the sort mode.
func (m SortMode) Label() string {
	switch m {
	case SortCreated:
		return "created"
	case SortUpdated:
		return "updated"
	default:
		return "a-z"
	}
}

// ParseSortMode parses a sort mode name as given on the command line.
func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown sort mode %q (want alphabetical, created, or updated)", s)
	}
	return m, nil
}

// AllSortModes lists every sort mode in cycle order.
func AllSortModes() []SortMode {
	return []SortMode{SortAlphabetical, SortCreated, SortUpdated}
}

// Options configures the lane selector widget. All fields are optional;
// the zero value yields an alphabetical, ungrouped selector with every
// sort mode enabled and no-op callbacks.
type Options struct {
	SortMode     SortMode            // initial sort mode
	GroupScopes  bool                // cluster lanes under their scope
	Fuzzy        bool                // use fuzzy matching instead of prefix/substring
	EnabledSorts []SortMode          // sort modes offered by the cycle key
	OnSelect     func(LaneID)        // invoked when a lane is confirmed
	LinkFor      func(Lane) string   // navigable link for a lane, for yanking
	ScopeIcons   map[string]string   // scope name -> glyph prefix
}

// Normalize fills defaulted fields so callers can use the zero value.
func (o Options) Normalize() Options {
	if !o.SortMode.IsValid() {
		o.SortMode = SortAlphabetical
	}
	if len(o.EnabledSorts) == 0 {
		o.EnabledSorts = AllSortModes()
	}
	return o
}

// Workspace is the lane collection supplied by the external data layer.
// Lanes preserves file order; the selector's substring fallback depends
// on that order.
type Workspace struct {
	Main     *Lane
	Lanes    []Lane
	Selected string // optional "scope/name" ref of the current lane
}

// All returns the main lane (if any) followed by the remaining lanes.
func (w Workspace) All() []Lane {
	if w.Main == nil {
		return w.Lanes
	}
	all := make([]Lane, 0, len(w.Lanes)+1)
	all = append(all, *w.Main)
	all = append(all, w.Lanes...)
	return all
}
