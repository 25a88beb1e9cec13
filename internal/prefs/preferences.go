package prefs

import "github.com/navkit/navshell/internal/logging"

// Preferences reads and writes the two sidebar flags on top of a Store,
// using the literal strings "true"/"false" as values.
type Preferences struct {
	store Store
}

// NewPreferences wraps a store. A nil store yields a Preferences that
// reports nothing persisted and drops writes.
func NewPreferences(store Store) *Preferences {
	return &Preferences{store: store}
}

func (p *Preferences) bool(key string) (value, ok bool) {
	if p == nil || p.store == nil {
		return false, false
	}
	raw, ok := p.store.Get(key)
	if !ok {
		return false, false
	}
	switch raw {
	case valueTrue:
		return true, true
	case valueFalse:
		return false, true
	default:
		return false, false
	}
}

func (p *Preferences) setBool(key string, value bool) {
	if p == nil || p.store == nil {
		return
	}
	raw := valueFalse
	if value {
		raw = valueTrue
	}
	if err := p.store.Set(key, raw); err != nil {
		logging.Error(err)
	}
}

func (p *Preferences) SidebarCollapsed() (value, ok bool) {
	return p.bool(KeyCollapsed)
}

func (p *Preferences) SidebarLocked() (value, ok bool) {
	return p.bool(KeyLocked)
}

func (p *Preferences) SetSidebarCollapsed(v bool) {
	p.setBool(KeyCollapsed, v)
}

func (p *Preferences) SetSidebarLocked(v bool) {
	p.setBool(KeyLocked, v)
}

// Restore resolves the initial sidebar flags. The locked flag wins: a
// persisted lock implies collapsed regardless of the stored collapsed
// value; the plain collapsed preference applies only when not locked.
func (p *Preferences) Restore() (collapsed, locked bool) {
	if lockedValue, ok := p.SidebarLocked(); ok && lockedValue {
		return true, true
	}
	if collapsedValue, ok := p.SidebarCollapsed(); ok {
		return collapsedValue, false
	}
	return false, false
}
