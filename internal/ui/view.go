package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/navkit/navshell/internal/format/table"
	"github.com/navkit/navshell/internal/tooltip"
	"github.com/navkit/navshell/internal/viewport"
)

func anchorFor(r region) tooltip.Anchor {
	return tooltip.Anchor{X: r.x, Y: r.y, Width: r.w, Height: r.h}
}

// expandedView reports whether the sidebar currently renders full labels.
func (m *Model) expandedView() bool {
	if m.machine.Regime() == viewport.Mobile {
		return true
	}
	return !m.machine.Collapsed() || m.machine.HoverExpanded()
}

func (m *Model) sidebarWidth() int {
	if m.expandedView() {
		return m.nav.Settings.SidebarWidthExpanded
	}
	return m.nav.Settings.SidebarWidthCollapsed
}

// View implements tea.Model. Rendering also rebuilds the hit-region map the
// gesture handlers resolve against.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.regions.reset()
	if m.machine.Regime() == viewport.Mobile {
		return m.viewMobile()
	}
	return m.viewSplit()
}

func (m *Model) bodyHeight() int {
	h := m.height
	if m.showFooter {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) viewSplit() string {
	w := m.sidebarWidth()
	bodyHeight := m.bodyHeight()
	m.regions.add(region{name: regionSidebar, x: 0, y: 0, w: w + 1, h: bodyHeight})

	lines := m.sidebarLines(w, bodyHeight, 0)
	sidebarCol := make([]string, 0, bodyHeight)
	lineStyle := lipgloss.NewStyle().Width(w)
	for _, line := range lines {
		sidebarCol = append(sidebarCol, lineStyle.Render(line))
	}
	sidebarBox := styles.Sidebar.Render(strings.Join(sidebarCol, "\n"))

	contentWidth := m.width - w - 1
	if contentWidth < 0 {
		contentWidth = 0
	}
	m.regions.add(region{name: regionMainContent, x: w + 1, y: 0, w: contentWidth, h: bodyHeight})
	contentLines := m.contentLines(contentWidth, bodyHeight)
	m.overlayTooltips(contentLines, contentWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebarBox, strings.Join(contentLines, "\n"))
	if !m.showFooter {
		return body
	}
	return body + "\n" + m.footerHints()
}

// sidebarLines renders the navigation chrome and records a hit region for
// every nav link, carrying its section/tab target.
func (m *Model) sidebarLines(w, height, yOff int) []string {
	current := m.router.Current()
	expanded := m.expandedView()
	lines := make([]string, 0, height)

	for _, section := range m.nav.Sections {
		if len(lines) >= height-1 {
			break
		}
		glyph := styles.Icon.Render(m.icons.Glyph(section.Icon))
		label := ""
		if expanded {
			label = " " + section.Label
		}
		row := glyph + label
		if section.ID == current.Section {
			row = styles.ActiveItem.Render(truncate.String(row, uint(w)))
		} else {
			row = styles.Item.Render(truncate.String(row, uint(w)))
		}
		m.regions.add(region{name: "nav-link", x: 0, y: yOff + len(lines), w: w, h: 1, section: section.ID})
		lines = append(lines, row)

		if section.ID != current.Section || !expanded {
			continue
		}
		for _, tab := range section.Subnav {
			if len(lines) >= height-1 {
				break
			}
			tabRow := "  " + styles.Icon.Render(m.icons.Glyph(tab.Icon)) + " " + tab.Label
			if tab.ID == current.Tab {
				tabRow = styles.ActiveItem.Render(truncate.String(tabRow, uint(w)))
			} else {
				tabRow = styles.Item.Render(truncate.String(tabRow, uint(w)))
			}
			m.regions.add(region{name: "subnav-link", x: 0, y: yOff + len(lines), w: w, h: 1, section: section.ID, tab: tab.ID})
			lines = append(lines, tabRow)
		}
	}

	if m.filter.active && len(lines) < height-1 {
		lines = append(lines, truncate.String(m.filter.input.View(), uint(w)))
	}

	for len(lines) < height-1 {
		lines = append(lines, "")
	}

	footerRow := yOff + len(lines)
	lockLabel := m.icons.Glyph("lock")
	if m.expandedView() {
		if m.machine.Locked() {
			lockLabel += " pinned"
		} else {
			lockLabel += " pin"
		}
	}
	m.regions.add(region{name: regionSidebarFooter, x: 0, y: footerRow, w: w, h: 1})
	m.regions.add(region{name: regionLockButton, x: 0, y: footerRow, w: len(lockLabel), h: 1})
	if m.machine.Locked() {
		lines = append(lines, styles.LockIndicator.Render(truncate.String(lockLabel, uint(w))))
	} else {
		lines = append(lines, styles.SidebarFooter.Render(truncate.String(lockLabel, uint(w))))
	}
	return lines
}

// contentLines renders the container page content is injected into. The
// shell itself only shows the active route and its parameters.
func (m *Model) contentLines(width, height int) []string {
	current := m.router.Current()
	section := m.activeSection()
	tabLabel := current.Tab
	if tab, ok := section.FindTab(current.Tab); ok {
		tabLabel = tab.Label
	}

	lines := make([]string, 0, height)
	lines = append(lines, styles.ContentTitle.Render(truncate.String(fmt.Sprintf(" %s › %s", section.Label, tabLabel), uint(width))))
	lines = append(lines, styles.Footer.Render(truncate.String(" "+m.router.Location(), uint(width))))
	lines = append(lines, "")
	if len(current.Params) > 0 {
		rows := make([][]string, 0, len(current.Params))
		for _, p := range current.Params {
			rows = append(rows, []string{p.Key, p.Value})
		}
		for _, row := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft}) {
			lines = append(lines, styles.Param.Render(truncate.String("   "+row, uint(width))))
		}
	}
	lines = append(lines, "")
	lines = append(lines, styles.Content.Render(truncate.String("state: "+strings.Join(m.machine.Classes(), " "), uint(width))))
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}

// overlayTooltips draws active tooltip labels over the content edge next
// to their trigger rows.
func (m *Model) overlayTooltips(contentLines []string, width int) {
	for _, tip := range m.tooltips.Active() {
		y := tip.Anchor.Y
		if y < 0 || y >= len(contentLines) {
			continue
		}
		label := styles.Tooltip.Render(tip.Text)
		contentLines[y] = truncate.String(label+" "+contentLines[y], uint(width))
	}
}

func (m *Model) viewMobile() string {
	bodyHeight := m.bodyHeight()
	topBar := styles.SectionHeader.Render(truncate.String(" ☰ "+m.titleLine(), uint(m.width)))
	m.regions.add(region{name: regionMobileToggle, x: 0, y: 0, w: 3, h: 1})

	contentWidth := m.width
	m.regions.add(region{name: regionMainContent, x: 0, y: 1, w: contentWidth, h: bodyHeight - 1})
	contentLines := m.contentLines(contentWidth, bodyHeight-1)

	if m.machine.MobileOpen() {
		panelWidth := m.nav.Settings.SidebarWidthExpanded
		if panelWidth > m.width {
			panelWidth = m.width
		}
		m.regions.add(region{name: regionSidebar, x: 0, y: 1, w: panelWidth, h: bodyHeight - 1})
		panelLines := m.sidebarLines(panelWidth, bodyHeight-1, 1)
		panelStyle := lipgloss.NewStyle().Width(panelWidth)
		for i := range contentLines {
			if i < len(panelLines) {
				contentLines[i] = panelStyle.Render(panelLines[i])
			}
		}
	} else {
		// The closed overlay leaves only the top bar as sidebar chrome.
		m.regions.add(region{name: regionSidebar, x: 0, y: 0, w: m.width, h: 1})
	}

	body := topBar + "\n" + strings.Join(contentLines, "\n")
	if !m.showFooter {
		return body
	}
	return body + "\n" + m.footerHints()
}

func (m *Model) titleLine() string {
	current := m.router.Current()
	section := m.activeSection()
	tabLabel := current.Tab
	if tab, ok := section.FindTab(current.Tab); ok {
		tabLabel = tab.Label
	}
	return section.Label + " › " + tabLabel
}

func (m *Model) footerHints() string {
	hints := "b collapse · p pin · / filter · [ ] history · q quit"
	if m.machine.Regime() == viewport.Mobile {
		hints = "m menu · [ ] history · q quit"
	}
	return styles.Footer.Render(truncate.String(hints, uint(m.width)))
}
