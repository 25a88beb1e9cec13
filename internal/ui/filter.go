package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/navkit/navshell/internal/navigation"
)

// filterState drives the quick-jump filter over the active section's
// subnav.
type filterState struct {
	active bool
	input  textinput.Model
}

func newFilterState(styles filterStyles) filterState {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "jump to tab"
	if styles.prompt != nil {
		input.PromptStyle = *styles.prompt
	}
	if styles.text != nil {
		input.TextStyle = *styles.text
	}
	if styles.placeholder != nil {
		input.PlaceholderStyle = *styles.placeholder
	}
	return filterState{input: input}
}

type filterStyles struct {
	prompt      *lipgloss.Style
	text        *lipgloss.Style
	placeholder *lipgloss.Style
}

func (f *filterState) start() {
	f.active = true
	f.input.SetValue("")
	f.input.Focus()
}

func (f *filterState) stop() {
	f.active = false
	f.input.Blur()
	f.input.SetValue("")
}

func (f *filterState) term() string {
	return strings.TrimSpace(f.input.Value())
}

// filterTabs keeps the subnav items whose label or id fuzzily matches the
// term, preserving config order.
func filterTabs(items []navigation.SubnavItem, term string) []navigation.SubnavItem {
	if term == "" {
		return append([]navigation.SubnavItem(nil), items...)
	}
	matched := make([]navigation.SubnavItem, 0, len(items))
	for _, item := range items {
		if fuzzy.MatchNormalizedFold(term, item.Label) || fuzzy.MatchNormalizedFold(term, item.ID) {
			matched = append(matched, item)
		}
	}
	return matched
}

// bestTabIndex picks the tab a filter term should land on: an exact label
// match, then an exact id match, then a prefix match, then the first fuzzy
// match. Returns -1 when nothing matches.
func bestTabIndex(items []navigation.SubnavItem, term string) int {
	if len(items) == 0 {
		return -1
	}
	if term == "" {
		return 0
	}
	for i, item := range items {
		if strings.EqualFold(item.Label, term) {
			return i
		}
	}
	for i, item := range items {
		if strings.EqualFold(item.ID, term) {
			return i
		}
	}
	lowered := strings.ToLower(term)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lowered) || strings.HasPrefix(strings.ToLower(item.ID), lowered) {
			return i
		}
	}
	for i, item := range items {
		if fuzzy.MatchNormalizedFold(term, item.Label) || fuzzy.MatchNormalizedFold(term, item.ID) {
			return i
		}
	}
	return -1
}
