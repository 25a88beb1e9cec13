package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navkit/navshell/internal/icons"
	"github.com/navkit/navshell/internal/logging/events"
	"github.com/navkit/navshell/internal/navigation"
	"github.com/navkit/navshell/internal/route"
	"github.com/navkit/navshell/internal/sidebar"
	"github.com/navkit/navshell/internal/theme"
	"github.com/navkit/navshell/internal/tooltip"
	"github.com/navkit/navshell/internal/viewport"
)

var styles = theme.Default()

// cellPixels approximates the pixel width of one terminal cell, so the
// pixel-denominated regime thresholds apply to column counts.
const cellPixels = 8

// RegimeForColumns classifies a terminal width in columns.
func RegimeForColumns(cols int) viewport.Regime {
	return viewport.Classify(cols * cellPixels)
}

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the navigation shell.
type Model struct {
	nav      navigation.Config
	machine  *sidebar.Machine
	router   *route.Router
	icons    *icons.Set
	tracker  *viewport.Tracker
	tooltips *tooltip.Manager

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	filter        filterState
	regions       regionMap
	warnedRegions map[string]bool
	hoverInside   bool

	iconMapPath   string
	configUpdates <-chan navigation.Config

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around an already-loaded tree, state machine
// and router.
func NewModel(nav navigation.Config, machine *sidebar.Machine, router *route.Router, width, height int, showFooter bool, iconMapPath string, configUpdates <-chan navigation.Config) *Model {
	m := &Model{
		nav:           nav,
		machine:       machine,
		router:        router,
		icons:         icons.Builtin(),
		tracker:       viewport.NewTracker(width * cellPixels),
		tooltips:      tooltip.NewManager(),
		showFooter:    showFooter,
		warnedRegions: make(map[string]bool),
		iconMapPath:   iconMapPath,
		configUpdates: configUpdates,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.filter = newFilterState(filterStyles{
		prompt:      styles.FilterPrompt,
		text:        styles.Filter,
		placeholder: styles.Footer,
	})
	router.OnTabChange(func(tab, section string) {
		m.tooltips.HideAll()
		if m.filter.active {
			m.filter.stop()
		}
	})
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadIconsCmd(m.iconMapPath)}
	if m.configUpdates != nil {
		cmds = append(cmds, waitForConfigUpdate(m.configUpdates))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(iconsLoadedMsg{}):    m.handleIconsLoadedMsg,
		reflect.TypeOf(configReloadedMsg{}): m.handleConfigReloadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	prev, next, changed := m.tracker.Resize(m.width * cellPixels)
	if changed {
		events.Viewport.Regime(prev.String(), next.String(), m.width)
		m.machine.SetRegime(prev, next)
		m.tooltips.HideAll()
	}
	return nil
}

func (m *Model) handleIconsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(iconsLoadedMsg)
	if !ok || loaded.set == nil {
		return nil
	}
	m.icons = loaded.set
	return nil
}

func (m *Model) handleConfigReloadedMsg(msg tea.Msg) tea.Cmd {
	reloaded, ok := msg.(configReloadedMsg)
	if !ok {
		return nil
	}
	m.nav = reloaded.cfg
	m.router.SetConfig(reloaded.cfg)
	return waitForConfigUpdate(m.configUpdates)
}

// activeSection resolves the section the router currently points at. The
// router guarantees the pair is valid for the loaded tree.
func (m *Model) activeSection() navigation.Section {
	section, ok := m.nav.FindSection(m.router.Current().Section)
	if !ok {
		return m.nav.DefaultSection()
	}
	return section
}
