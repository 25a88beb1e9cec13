package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/navkit/navshell/internal/route"
	"github.com/navkit/navshell/internal/sidebar"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.filter.active {
		return m.handleFilterKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "/":
		if len(m.activeSection().Subnav) > 0 {
			m.filter.start()
			return textinput.Blink
		}
	case "b", "ctrl+b":
		m.machine.ToggleCollapse(sidebar.NoForce)
	case "p":
		m.machine.ToggleLock()
	case "m":
		m.machine.ToggleMobileOpen(sidebar.NoForce)
	case "tab", "right", "l":
		m.cycleSection(1)
	case "shift+tab", "left", "h":
		m.cycleSection(-1)
	case "down", "j":
		m.cycleTab(1)
	case "up", "k":
		m.cycleTab(-1)
	case "[":
		m.router.Back()
	case "]":
		m.router.Forward()
	case "g", "home":
		def := m.nav.DefaultSection()
		m.router.Navigate(def.ID, def.DefaultTab())
	}
	return nil
}

func (m *Model) handleFilterKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "esc", "ctrl+c":
		m.filter.stop()
		return nil
	case "enter":
		section := m.activeSection()
		term := m.filter.term()
		matches := filterTabs(section.Subnav, term)
		idx := bestTabIndex(matches, term)
		m.filter.stop()
		if idx >= 0 {
			if term != "" {
				m.router.Navigate(section.ID, matches[idx].ID, route.Param{Key: "search", Value: term})
			} else {
				m.router.Navigate(section.ID, matches[idx].ID)
			}
		}
		return nil
	}
	var cmd tea.Cmd
	m.filter.input, cmd = m.filter.input.Update(keyMsg)
	return cmd
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	ev := tea.MouseEvent(mouseMsg)
	switch {
	case ev.Action == tea.MouseActionMotion:
		m.handlePointerMove(ev.X, ev.Y)
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		m.handleClick(ev.X, ev.Y)
	}
	return nil
}

func (m *Model) handlePointerMove(x, y int) {
	sidebarRegion, ok := m.requireRegion(regionSidebar)
	if !ok {
		return
	}
	inside := sidebarRegion.contains(x, y)
	footerRegion, hasFooter := m.regions.find(regionSidebarFooter)
	overFooter := hasFooter && footerRegion.contains(x, y)

	switch {
	case inside && !m.hoverInside:
		m.machine.HoverEnter(overFooter)
	case inside && overFooter:
		// Crossing from the body onto the footer stays within the
		// sidebar's bounding box, so the grace check keeps the expansion.
		m.machine.HoverLeave(true)
	case inside:
		m.machine.HoverEnter(false)
	case m.hoverInside:
		m.machine.HoverLeave(false)
		m.tooltips.HideAll()
	}
	m.hoverInside = inside

	m.syncTooltips(x, y, inside)
}

func (m *Model) syncTooltips(x, y int, inside bool) {
	if !m.machine.TooltipsEnabled() || !inside {
		if m.tooltips.Len() > 0 {
			m.tooltips.HideAll()
		}
		return
	}
	r, ok := m.regions.at(x, y)
	if !ok || r.section == "" {
		m.tooltips.HideAll()
		return
	}
	label := r.section
	if section, found := m.nav.FindSection(r.section); found {
		label = section.Label
		if r.tab != "" {
			if tab, found := section.FindTab(r.tab); found {
				label = tab.Label
			}
		}
	}
	m.tooltips.HideAll()
	m.tooltips.Show(r.section+"/"+r.tab, anchorFor(r), label)
}

func (m *Model) handleClick(x, y int) {
	if r, ok := m.regions.at(x, y); ok {
		switch r.name {
		case regionLockButton:
			m.machine.ToggleLock()
			return
		case regionMobileToggle:
			m.machine.ToggleMobileOpen(sidebar.NoForce)
			return
		}
		if r.section != "" {
			tab := r.tab
			if tab == "" {
				if section, found := m.nav.FindSection(r.section); found {
					tab = section.DefaultTab()
				}
			}
			m.router.Navigate(r.section, tab)
			return
		}
	}
	sidebarRegion, ok := m.requireRegion(regionSidebar)
	if !ok {
		return
	}
	if !sidebarRegion.contains(x, y) {
		m.machine.OutsideClick()
		m.tooltips.HideAll()
	}
}

func (m *Model) cycleSection(delta int) {
	if len(m.nav.Sections) == 0 {
		return
	}
	current := m.router.Current().Section
	idx := 0
	for i, section := range m.nav.Sections {
		if section.ID == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(m.nav.Sections)) % len(m.nav.Sections)
	next := m.nav.Sections[idx]
	m.router.Navigate(next.ID, next.DefaultTab())
}

func (m *Model) cycleTab(delta int) {
	section := m.activeSection()
	if len(section.Subnav) == 0 {
		return
	}
	current := m.router.Current().Tab
	idx := 0
	for i, tab := range section.Subnav {
		if tab.ID == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(section.Subnav)) % len(section.Subnav)
	m.router.Navigate(section.ID, section.Subnav[idx].ID)
}
