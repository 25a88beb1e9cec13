// Package sidebar owns the sidebar's interaction state: collapsed, locked,
// hover-expanded and mobile-open, together with the viewport regime that
// decides which of those flags are meaningful.
package sidebar

import (
	"github.com/navkit/navshell/internal/logging/events"
	"github.com/navkit/navshell/internal/prefs"
	"github.com/navkit/navshell/internal/viewport"
)

// Force expresses an explicit override for toggle operations: ForceSet
// asserts the flag (collapse, open) regardless of the current state,
// ForceClear deasserts it. NoForce is a plain toggle.
type Force int

const (
	NoForce Force = iota
	ForceSet
	ForceClear
)

// Machine is the sidebar state machine. Its joint invariants hold after
// every transition:
//
//   - hover expansion only while collapsed and unlocked
//   - mobile-open only while the viewport is mobile
//   - locking snaps to collapsed, unlocking snaps to expanded
//
// All transitions run their side effects (trace, persistence, callback)
// before returning, so no caller ever observes a mid-transition state.
type Machine struct {
	collapsed     bool
	locked        bool
	hoverExpanded bool
	mobileOpen    bool
	regime        viewport.Regime

	prefs    *prefs.Preferences
	onToggle func(collapsed bool)
}

// New builds a machine for the given starting regime, seeding collapsed and
// locked from persisted preferences. The locked preference is restored
// first since it implies collapsed.
func New(regime viewport.Regime, p *prefs.Preferences) *Machine {
	m := &Machine{regime: regime, prefs: p}
	m.collapsed, m.locked = p.Restore()
	return m
}

// OnSidebarToggle registers the collaborator callback fired synchronously
// after every transition that changes the collapsed flag.
func (m *Machine) OnSidebarToggle(fn func(collapsed bool)) {
	m.onToggle = fn
}

func (m *Machine) Collapsed() bool     { return m.collapsed }
func (m *Machine) Locked() bool        { return m.locked }
func (m *Machine) HoverExpanded() bool { return m.hoverExpanded }
func (m *Machine) MobileOpen() bool    { return m.mobileOpen }

// Regime returns the viewport regime the machine last transitioned to.
func (m *Machine) Regime() viewport.Regime { return m.regime }

// TooltipsEnabled reports whether collapsed items should offer tooltips.
// When unlocked, hover expansion already reveals the full labels.
func (m *Machine) TooltipsEnabled() bool {
	return m.collapsed && m.locked && m.regime != viewport.Mobile
}

func resolve(force Force, current bool) bool {
	switch force {
	case ForceSet:
		return true
	case ForceClear:
		return false
	default:
		return !current
	}
}

// ToggleCollapse flips the collapsed flag. A locked sidebar ignores plain
// toggles; an explicit force wins over the lock. On mobile the call is
// redirected to ToggleMobileOpen, since collapse is not a mobile concept.
func (m *Machine) ToggleCollapse(force Force) bool {
	if m.regime == viewport.Mobile {
		return m.ToggleMobileOpen(force)
	}
	if force == NoForce && m.locked {
		return false
	}
	target := resolve(force, m.collapsed)
	if target == m.collapsed {
		return false
	}
	m.collapsed = target
	m.hoverExpanded = false
	events.Sidebar.Collapse(m.collapsed, m.locked)
	m.prefs.SetSidebarCollapsed(m.collapsed)
	m.notifyToggle()
	return true
}

// ToggleMobileOpen flips the mobile overlay. Outside the mobile regime the
// flag is meaningless and the call is a no-op. The flag is transient and
// never persisted.
func (m *Machine) ToggleMobileOpen(force Force) bool {
	if m.regime != viewport.Mobile {
		return false
	}
	target := resolve(force, m.mobileOpen)
	if target == m.mobileOpen {
		return false
	}
	m.mobileOpen = target
	m.hoverExpanded = false
	events.Sidebar.MobileOpen(m.mobileOpen)
	return true
}

// ToggleLock flips the lock. Locking always snaps to collapsed and
// unlocking always snaps to expanded; both flags are persisted together.
func (m *Machine) ToggleLock() bool {
	m.locked = !m.locked
	collapsedBefore := m.collapsed
	m.collapsed = m.locked
	m.hoverExpanded = false
	events.Sidebar.Lock(m.locked, m.collapsed)
	m.prefs.SetSidebarLocked(m.locked)
	m.prefs.SetSidebarCollapsed(m.collapsed)
	if m.collapsed != collapsedBefore {
		m.notifyToggle()
	}
	return true
}

// HoverEnter marks the transient hover expansion. It applies only to a
// collapsed, unlocked sidebar, and never while the pointer is over the
// footer region, so hovering the lock button cannot trigger it.
func (m *Machine) HoverEnter(overFooter bool) bool {
	if overFooter || m.regime == viewport.Mobile {
		return false
	}
	if !m.collapsed || m.locked || m.hoverExpanded {
		return false
	}
	m.hoverExpanded = true
	events.Sidebar.Hover(true)
	return true
}

// HoverLeave clears hover expansion unless the pointer is still within the
// sidebar's bounding box (the grace check for footer crossings).
func (m *Machine) HoverLeave(stillInside bool) bool {
	if stillInside || !m.hoverExpanded {
		return false
	}
	m.hoverExpanded = false
	events.Sidebar.Hover(false)
	return true
}

// OutsideClick handles a click landing outside the sidebar. On mobile it
// closes an open overlay. Otherwise an expanded, unlocked sidebar is
// force-collapsed, and a collapsed, locked sidebar has its lock disengaged:
// the one affordance for escaping the pinned state.
func (m *Machine) OutsideClick() bool {
	if m.regime == viewport.Mobile {
		if !m.mobileOpen {
			return false
		}
		events.Sidebar.OutsideClick("close-mobile")
		return m.ToggleMobileOpen(ForceClear)
	}
	if m.collapsed && m.locked {
		events.Sidebar.OutsideClick("unlock")
		return m.ToggleLock()
	}
	if !m.collapsed && !m.locked {
		events.Sidebar.OutsideClick("collapse")
		return m.ToggleCollapse(ForceSet)
	}
	return false
}

// SetRegime runs the exit/entry actions for a viewport transition. Leaving
// mobile forces the overlay closed; entering mobile forces the equivalent
// closed state. Narrow/desktop transitions adjust rendering hints only, so
// no flags change and nothing is persisted.
func (m *Machine) SetRegime(prev, next viewport.Regime) {
	m.regime = next
	if next == viewport.Mobile {
		m.mobileOpen = false
		m.hoverExpanded = false
		return
	}
	if prev == viewport.Mobile {
		m.mobileOpen = false
	}
}

// Classes returns the visual state toggles consumed by the styling layer.
func (m *Machine) Classes() []string {
	classes := make([]string, 0, 4)
	if m.regime == viewport.Mobile {
		classes = append(classes, "overlay")
		if m.mobileOpen {
			classes = append(classes, "mobile-open")
		}
	} else {
		classes = append(classes, "push")
		if m.collapsed {
			classes = append(classes, "collapsed")
		}
		if m.hoverExpanded {
			classes = append(classes, "hover-expanded")
		}
	}
	if m.locked {
		classes = append(classes, "locked")
	}
	return classes
}

func (m *Machine) notifyToggle() {
	if m.onToggle != nil {
		m.onToggle(m.collapsed)
	}
}
