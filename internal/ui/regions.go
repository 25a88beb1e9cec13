package ui

import "github.com/navkit/navshell/internal/logging"

// Names of the caller-owned render targets gestures are resolved against.
const (
	regionSidebar       = "sidebar"
	regionSidebarFooter = "sidebar-footer"
	regionMainContent   = "main-content"
	regionLockButton    = "lock-button"
	regionMobileToggle  = "mobile-toggle"
)

// region is a rectangular hit target recorded during rendering. Navigation
// items carry the section/tab pair they activate, the cell-level analog of
// data-section/data-tab attributes.
type region struct {
	name    string
	x, y    int
	w, h    int
	section string
	tab     string
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// regionMap is rebuilt on every render pass and queried by gesture
// handlers.
type regionMap struct {
	regions []region
}

func (rm *regionMap) reset() {
	rm.regions = rm.regions[:0]
}

func (rm *regionMap) add(r region) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	rm.regions = append(rm.regions, r)
}

// at returns the most specific region under the point: later additions win,
// so items registered after their container take precedence.
func (rm *regionMap) at(x, y int) (region, bool) {
	for i := len(rm.regions) - 1; i >= 0; i-- {
		if rm.regions[i].contains(x, y) {
			return rm.regions[i], true
		}
	}
	return region{}, false
}

func (rm *regionMap) find(name string) (region, bool) {
	for _, r := range rm.regions {
		if r.name == name {
			return r, true
		}
	}
	return region{}, false
}

// requireRegion resolves an expected render target. A missing target is a
// degraded state, not a fatal one: it is logged once and the gesture that
// needed it is skipped.
func (m *Model) requireRegion(name string) (region, bool) {
	r, ok := m.regions.find(name)
	if !ok {
		if !m.warnedRegions[name] {
			m.warnedRegions[name] = true
			logging.Warnf("render target %q missing, skipping", name)
		}
		return region{}, false
	}
	return r, true
}
