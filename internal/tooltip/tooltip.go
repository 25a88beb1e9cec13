// Package tooltip tracks the floating labels shown for collapsed, locked
// sidebar items.
package tooltip

// Anchor is the bounding box of a tooltip's trigger.
type Anchor struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Tooltip is one shown label, positioned relative to its anchor.
type Tooltip struct {
	ID     string
	Anchor Anchor
	Text   string
}

// Manager registers shown tooltips keyed by trigger id, so HideAll removes
// exactly the labels this manager created and nothing else.
type Manager struct {
	shown map[string]Tooltip
	order []string
}

func NewManager() *Manager {
	return &Manager{shown: make(map[string]Tooltip)}
}

// Show records a label for the trigger. Re-showing an id replaces its
// label in place without duplicating it.
func (m *Manager) Show(id string, anchor Anchor, text string) {
	if _, ok := m.shown[id]; !ok {
		m.order = append(m.order, id)
	}
	m.shown[id] = Tooltip{ID: id, Anchor: anchor, Text: text}
}

// Hide removes the label for one trigger.
func (m *Manager) Hide(id string) {
	if _, ok := m.shown[id]; !ok {
		return
	}
	delete(m.shown, id)
	for i, candidate := range m.order {
		if candidate == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// HideAll removes every tracked label.
func (m *Manager) HideAll() {
	m.shown = make(map[string]Tooltip)
	m.order = m.order[:0]
}

// Active returns the shown tooltips in show order.
func (m *Manager) Active() []Tooltip {
	if len(m.order) == 0 {
		return nil
	}
	active := make([]Tooltip, 0, len(m.order))
	for _, id := range m.order {
		active = append(active, m.shown[id])
	}
	return active
}

// Len reports the number of shown tooltips.
func (m *Manager) Len() int {
	return len(m.shown)
}
