package route

import (
	"github.com/navkit/navshell/internal/logging/events"
	"github.com/navkit/navshell/internal/navigation"
)

// Router owns the location fragment and its history. Navigation mutates the
// location, which dispatches a hash-change; the change handler re-parses
// and only notifies listeners when the resulting section/tab pair actually
// differs from the current state. That comparison is what breaks the
// navigate → hashchange → navigate feedback loop.
type Router struct {
	cfg     navigation.Config
	current State

	location string
	back     []string
	forward  []string

	onSection []func(section, tab string)
	onTab     []func(tab, section string)
}

// New parses the initial hash and seeds the location with its canonical
// form. Listeners registered afterwards are not replayed for the initial
// route; callers read Current instead.
func New(cfg navigation.Config, initialHash string) *Router {
	current := Parse(initialHash, cfg)
	return &Router{
		cfg:      cfg,
		current:  current,
		location: Serialize(current),
	}
}

// SetConfig swaps the navigation tree, re-validating the current route
// against it.
func (r *Router) SetConfig(cfg navigation.Config) {
	r.cfg = cfg
	r.location = Serialize(Parse(r.location, cfg))
	r.dispatch()
}

// OnSectionChange registers a listener fired when navigation lands on a
// different section. The active tab of the new section is passed along.
func (r *Router) OnSectionChange(fn func(section, tab string)) {
	r.onSection = append(r.onSection, fn)
}

// OnTabChange registers a listener fired when the active tab changes,
// including as part of a section change.
func (r *Router) OnTabChange(fn func(tab, section string)) {
	r.onTab = append(r.onTab, fn)
}

// Current returns the parsed state of the location.
func (r *Router) Current() State {
	return r.current
}

// Location returns the serialized fragment, canonical at all times.
func (r *Router) Location() string {
	return r.location
}

// Navigate mutates the location for an in-app navigation. The state update
// and listener dispatch happen through the same hash-change path a direct
// fragment edit takes, so programmatic navigation and history traversal
// stay consistent.
func (r *Router) Navigate(sectionID, tabID string, params ...Param) {
	events.Route.Navigate(sectionID, tabID)
	target := Parse(Serialize(State{Section: sectionID, Tab: tabID, Params: params}), r.cfg)
	r.SetHash(Serialize(target))
}

// SetHash applies an externally mutated fragment, as on a direct URL visit.
// An unchanged location is a no-op.
func (r *Router) SetHash(hash string) {
	canonical := Serialize(Parse(hash, r.cfg))
	if canonical == r.location {
		return
	}
	r.back = append(r.back, r.location)
	r.forward = r.forward[:0]
	r.location = canonical
	r.dispatch()
}

// Back pops one history entry, mirroring the browser's back button.
func (r *Router) Back() bool {
	if len(r.back) == 0 {
		return false
	}
	r.forward = append(r.forward, r.location)
	r.location = r.back[len(r.back)-1]
	r.back = r.back[:len(r.back)-1]
	r.dispatch()
	return true
}

// Forward reverses a Back.
func (r *Router) Forward() bool {
	if len(r.forward) == 0 {
		return false
	}
	r.back = append(r.back, r.location)
	r.location = r.forward[len(r.forward)-1]
	r.forward = r.forward[:len(r.forward)-1]
	r.dispatch()
	return true
}

func (r *Router) dispatch() {
	parsed := Parse(r.location, r.cfg)
	events.Route.HashChange(r.location, parsed.Section, parsed.Tab)
	prev := r.current
	r.current = parsed
	if parsed.SameTarget(prev) {
		return
	}
	if parsed.Section != prev.Section {
		for _, fn := range r.onSection {
			fn(parsed.Section, parsed.Tab)
		}
	}
	for _, fn := range r.onTab {
		fn(parsed.Tab, parsed.Section)
	}
}
