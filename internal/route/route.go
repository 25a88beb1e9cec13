// Package route serializes navigation targets to and from the location
// fragment. The fragment is the single source of truth for "where are we";
// in-memory state is a cached projection of it.
package route

import (
	"net/url"
	"strings"

	"github.com/navkit/navshell/internal/logging/events"
	"github.com/navkit/navshell/internal/navigation"
)

// Param is a single fragment parameter. Params keep insertion order, so a
// slice rather than a map.
type Param struct {
	Key   string
	Value string
}

// State is the canonical representation of the fragment:
// #section/tab?k=v&k=v.
type State struct {
	Section string
	Tab     string
	Params  []Param
}

// Param returns the value for a key.
func (s State) Param(key string) (string, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// SameTarget reports whether two states reference the same section/tab
// pair, ignoring params.
func (s State) SameTarget(other State) bool {
	return s.Section == other.Section && s.Tab == other.Tab
}

// Parse decodes a fragment against the loaded tree. Unknown or missing
// sections and tabs are replaced by the configured defaults rather than
// producing an error, so the result always references a real pair.
func Parse(hash string, cfg navigation.Config) State {
	raw := strings.TrimPrefix(strings.TrimSpace(hash), "#")
	path := raw
	query := ""
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		path, query = raw[:i], raw[i+1:]
	}

	sectionID, tabID, _ := strings.Cut(path, "/")
	if j := strings.IndexByte(tabID, '/'); j >= 0 {
		tabID = tabID[:j]
	}

	section, ok := cfg.FindSection(sectionID)
	if !ok {
		if sectionID != "" {
			events.Route.Repaired(sectionID, cfg.DefaultSection().ID)
		}
		section = cfg.DefaultSection()
		tabID = ""
	}
	if _, ok := section.FindTab(tabID); !ok {
		if tabID != "" {
			events.Route.Repaired(section.ID+"/"+tabID, section.ID+"/"+section.DefaultTab())
		}
		tabID = section.DefaultTab()
	}

	return State{Section: section.ID, Tab: tabID, Params: parseParams(query)}
}

func parseParams(query string) []Param {
	if query == "" {
		return nil
	}
	var params []Param
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		params = append(params, Param{Key: key, Value: value})
	}
	return params
}

// Serialize is the inverse of Parse, producing #section/tab?k=v&... with
// params in insertion order.
func Serialize(s State) string {
	var b strings.Builder
	b.WriteByte('#')
	b.WriteString(s.Section)
	b.WriteByte('/')
	b.WriteString(s.Tab)
	for i, p := range s.Params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
