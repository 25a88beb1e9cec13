package sidebar

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/navkit/navshell/internal/prefs"
	"github.com/navkit/navshell/internal/viewport"
)

// recordingStore counts writes so tests can assert which transitions
// persist.
type recordingStore struct {
	values map[string]string
	writes []string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{values: make(map[string]string)}
}

func (s *recordingStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *recordingStore) Set(key, value string) error {
	s.values[key] = value
	s.writes = append(s.writes, key+"="+value)
	return nil
}

func newTestMachine(regime viewport.Regime) (*Machine, *recordingStore) {
	store := newRecordingStore()
	return New(regime, prefs.NewPreferences(store)), store
}

func checkInvariants(t *testing.T, m *Machine) {
	t.Helper()
	if m.HoverExpanded() && (!m.Collapsed() || m.Locked()) {
		t.Fatalf("hover expansion without collapsed+unlocked: collapsed=%v locked=%v", m.Collapsed(), m.Locked())
	}
	if m.MobileOpen() && m.Regime() != viewport.Mobile {
		t.Fatalf("mobileOpen set in regime %v", m.Regime())
	}
}

func TestToggleCollapseFlipsAndPersists(t *testing.T) {
	m, store := newTestMachine(viewport.Desktop)
	if !m.ToggleCollapse(NoForce) {
		t.Fatalf("expected toggle to change state")
	}
	if !m.Collapsed() {
		t.Fatalf("expected collapsed after toggle")
	}
	if got := store.values[prefs.KeyCollapsed]; got != "true" {
		t.Fatalf("expected persisted sidebarCollapsed=true, got %q", got)
	}
	if !m.ToggleCollapse(NoForce) {
		t.Fatalf("expected second toggle to change state")
	}
	if got := store.values[prefs.KeyCollapsed]; got != "false" {
		t.Fatalf("expected persisted sidebarCollapsed=false, got %q", got)
	}
}

func TestToggleCollapseForceNoop(t *testing.T) {
	m, store := newTestMachine(viewport.Desktop)
	if m.ToggleCollapse(ForceClear) {
		t.Fatalf("force-clearing an expanded sidebar should be a no-op")
	}
	if len(store.writes) != 0 {
		t.Fatalf("no-op transition persisted: %v", store.writes)
	}
}

func TestLockedSidebarIgnoresPlainToggle(t *testing.T) {
	m, _ := newTestMachine(viewport.Desktop)
	m.ToggleLock()
	if !m.Collapsed() {
		t.Fatalf("locking should snap collapsed")
	}
	if m.ToggleCollapse(NoForce) {
		t.Fatalf("plain toggle should be ignored while locked")
	}
	if !m.ToggleCollapse(ForceClear) {
		t.Fatalf("explicit force should override the lock")
	}
	if m.Collapsed() {
		t.Fatalf("force-clear should expand")
	}
	if !m.Locked() {
		t.Fatalf("forcing collapse state should not touch the lock")
	}
}

func TestToggleLockSnapsBothDirections(t *testing.T) {
	m, store := newTestMachine(viewport.Desktop)
	var toggles []bool
	m.OnSidebarToggle(func(collapsed bool) { toggles = append(toggles, collapsed) })

	m.ToggleLock()
	if !m.Locked() || !m.Collapsed() {
		t.Fatalf("lock should snap to collapsed, got locked=%v collapsed=%v", m.Locked(), m.Collapsed())
	}
	m.ToggleLock()
	if m.Locked() || m.Collapsed() {
		t.Fatalf("unlock should snap to expanded, got locked=%v collapsed=%v", m.Locked(), m.Collapsed())
	}
	if len(toggles) != 2 || toggles[0] != true || toggles[1] != false {
		t.Fatalf("expected toggle callbacks [true false], got %v", toggles)
	}
	if got := store.values[prefs.KeyLocked]; got != "false" {
		t.Fatalf("expected persisted sidebarLocked=false, got %q", got)
	}
	if got := store.values[prefs.KeyCollapsed]; got != "false" {
		t.Fatalf("expected persisted sidebarCollapsed=false, got %q", got)
	}
}

func TestLockWhileCollapsedSkipsToggleCallback(t *testing.T) {
	m, _ := newTestMachine(viewport.Desktop)
	m.ToggleCollapse(ForceSet)
	calls := 0
	m.OnSidebarToggle(func(bool) { calls++ })
	m.ToggleLock()
	if calls != 0 {
		t.Fatalf("locking an already-collapsed sidebar fired the toggle callback")
	}
}

func TestHoverOnlyWhenCollapsedAndUnlocked(t *testing.T) {
	m, store := newTestMachine(viewport.Desktop)
	if m.HoverEnter(false) {
		t.Fatalf("hover on an expanded sidebar should be a no-op")
	}
	m.ToggleCollapse(ForceSet)
	writes := len(store.writes)
	if !m.HoverEnter(false) {
		t.Fatalf("hover on collapsed unlocked sidebar should expand")
	}
	if !m.HoverExpanded() {
		t.Fatalf("expected hoverExpanded")
	}
	if m.Collapsed() != true {
		t.Fatalf("hover expansion must not change the collapsed flag")
	}
	if len(store.writes) != writes {
		t.Fatalf("hover transitions persisted: %v", store.writes[writes:])
	}
	if !m.HoverLeave(false) {
		t.Fatalf("leave should clear hover")
	}
	if m.HoverExpanded() {
		t.Fatalf("hover still set after leave")
	}
}

func TestHoverSuppressedOverFooterAndWhileLocked(t *testing.T) {
	m, _ := newTestMachine(viewport.Desktop)
	m.ToggleCollapse(ForceSet)
	if m.HoverEnter(true) {
		t.Fatalf("hover over the footer region should not expand")
	}
	m.ToggleLock()
	if m.HoverEnter(false) {
		t.Fatalf("hover on a locked sidebar should not expand")
	}
}

func TestHoverLeaveGraceInsideSidebar(t *testing.T) {
	m, _ := newTestMachine(viewport.Desktop)
	m.ToggleCollapse(ForceSet)
	m.HoverEnter(false)
	if m.HoverLeave(true) {
		t.Fatalf("leave while still inside should keep the expansion")
	}
	if !m.HoverExpanded() {
		t.Fatalf("expected hover to survive a footer crossing")
	}
}

func TestMobileOpenRequiresMobileRegime(t *testing.T) {
	m, store := newTestMachine(viewport.Desktop)
	if m.ToggleMobileOpen(NoForce) {
		t.Fatalf("mobile-open outside mobile regime should be a no-op")
	}

	m, store = newTestMachine(viewport.Mobile)
	if !m.ToggleMobileOpen(NoForce) {
		t.Fatalf("expected overlay to open")
	}
	if !m.MobileOpen() {
		t.Fatalf("expected mobileOpen")
	}
	if len(store.writes) != 0 {
		t.Fatalf("mobileOpen must never be persisted: %v", store.writes)
	}
}

func TestToggleCollapseOnMobileRedirects(t *testing.T) {
	m, store := newTestMachine(viewport.Mobile)
	if !m.ToggleCollapse(NoForce) {
		t.Fatalf("expected the redirected call to open the overlay")
	}
	if !m.MobileOpen() {
		t.Fatalf("expected mobileOpen after redirect")
	}
	if m.Collapsed() {
		t.Fatalf("redirect must not touch the collapsed flag")
	}
	if len(store.writes) != 0 {
		t.Fatalf("redirected toggle persisted: %v", store.writes)
	}
}

func TestOutsideClick(t *testing.T) {
	t.Run("closes mobile overlay", func(t *testing.T) {
		m, _ := newTestMachine(viewport.Mobile)
		m.ToggleMobileOpen(ForceSet)
		if !m.OutsideClick() {
			t.Fatalf("expected overlay close")
		}
		if m.MobileOpen() {
			t.Fatalf("overlay still open")
		}
		if m.OutsideClick() {
			t.Fatalf("second click should be a no-op")
		}
	})

	t.Run("collapses expanded unlocked sidebar", func(t *testing.T) {
		m, _ := newTestMachine(viewport.Desktop)
		if !m.OutsideClick() {
			t.Fatalf("expected collapse")
		}
		if !m.Collapsed() {
			t.Fatalf("expected collapsed")
		}
	})

	t.Run("unlocks pinned sidebar", func(t *testing.T) {
		m, _ := newTestMachine(viewport.Desktop)
		m.ToggleLock()
		if !m.OutsideClick() {
			t.Fatalf("expected unlock")
		}
		if m.Locked() {
			t.Fatalf("still locked")
		}
		if m.Collapsed() {
			t.Fatalf("unlock should snap to expanded")
		}
	})

	t.Run("expanded locked sidebar is left alone", func(t *testing.T) {
		m, _ := newTestMachine(viewport.Desktop)
		m.ToggleLock()
		m.ToggleCollapse(ForceClear)
		if m.OutsideClick() {
			t.Fatalf("expanded+locked should ignore outside clicks")
		}
	})
}

func TestRegimeTransitionClosesOverlay(t *testing.T) {
	m, store := newTestMachine(viewport.Narrow)
	m.ToggleCollapse(ForceSet)
	writes := len(store.writes)

	m.SetRegime(viewport.Narrow, viewport.Mobile)
	if m.Regime() != viewport.Mobile {
		t.Fatalf("regime not updated")
	}
	if m.MobileOpen() || m.HoverExpanded() {
		t.Fatalf("entering mobile must clear transient flags")
	}
	if !m.Collapsed() {
		t.Fatalf("regime transitions must not touch the collapsed flag")
	}

	m.ToggleMobileOpen(ForceSet)
	m.SetRegime(viewport.Mobile, viewport.Narrow)
	if m.MobileOpen() {
		t.Fatalf("leaving mobile must force the overlay closed")
	}
	if len(store.writes) != writes {
		t.Fatalf("regime transitions persisted: %v", store.writes[writes:])
	}
}

func TestSeedFromPreferences(t *testing.T) {
	store := newRecordingStore()
	store.values[prefs.KeyCollapsed] = "false"
	store.values[prefs.KeyLocked] = "true"
	m := New(viewport.Desktop, prefs.NewPreferences(store))
	if !m.Locked() || !m.Collapsed() {
		t.Fatalf("persisted lock must imply collapsed, got locked=%v collapsed=%v", m.Locked(), m.Collapsed())
	}
}

func TestTooltipsEnabled(t *testing.T) {
	m, _ := newTestMachine(viewport.Desktop)
	if m.TooltipsEnabled() {
		t.Fatalf("tooltips on an expanded sidebar")
	}
	m.ToggleCollapse(ForceSet)
	if m.TooltipsEnabled() {
		t.Fatalf("tooltips while unlocked: hover expansion already reveals labels")
	}
	m.ToggleLock()
	if !m.TooltipsEnabled() {
		t.Fatalf("expected tooltips while collapsed and locked")
	}
	m.SetRegime(viewport.Desktop, viewport.Mobile)
	if m.TooltipsEnabled() {
		t.Fatalf("tooltips have no anchor on mobile")
	}
}

func TestClasses(t *testing.T) {
	m, _ := newTestMachine(viewport.Desktop)
	if got := strings.Join(m.Classes(), " "); got != "push" {
		t.Fatalf("expected %q, got %q", "push", got)
	}
	m.ToggleLock()
	if got := strings.Join(m.Classes(), " "); got != "push collapsed locked" {
		t.Fatalf("expected %q, got %q", "push collapsed locked", got)
	}
	m.SetRegime(viewport.Desktop, viewport.Mobile)
	m.ToggleMobileOpen(ForceSet)
	if got := strings.Join(m.Classes(), " "); got != "overlay mobile-open locked" {
		t.Fatalf("expected %q, got %q", "overlay mobile-open locked", got)
	}
}

// TestRandomTransitionSequences drives the machine through arbitrary
// transition interleavings and checks the joint invariants after each step.
func TestRandomTransitionSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	regimes := []viewport.Regime{viewport.Mobile, viewport.Narrow, viewport.Desktop}
	forces := []Force{NoForce, ForceSet, ForceClear}
	for seq := 0; seq < 100; seq++ {
		m, _ := newTestMachine(regimes[rng.Intn(len(regimes))])
		for step := 0; step < 50; step++ {
			switch rng.Intn(7) {
			case 0:
				m.ToggleCollapse(forces[rng.Intn(len(forces))])
			case 1:
				m.ToggleMobileOpen(forces[rng.Intn(len(forces))])
			case 2:
				m.ToggleLock()
			case 3:
				m.HoverEnter(rng.Intn(4) == 0)
			case 4:
				m.HoverLeave(rng.Intn(4) == 0)
			case 5:
				m.OutsideClick()
			case 6:
				next := regimes[rng.Intn(len(regimes))]
				m.SetRegime(m.Regime(), next)
			}
			checkInvariants(t, m)
		}
	}
}
