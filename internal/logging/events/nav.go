package events

import "github.com/navkit/navshell/internal/logging"

type SidebarTracer struct{}

type RouteTracer struct{}

type ConfigTracer struct{}

type ViewportTracer struct{}

var (
	Sidebar  = SidebarTracer{}
	Route    = RouteTracer{}
	Config   = ConfigTracer{}
	Viewport = ViewportTracer{}
)

func (SidebarTracer) Collapse(collapsed, locked bool) {
	logging.Trace("sidebar.collapse", map[string]interface{}{"collapsed": collapsed, "locked": locked})
}

func (SidebarTracer) Lock(locked, collapsed bool) {
	logging.Trace("sidebar.lock", map[string]interface{}{"locked": locked, "collapsed": collapsed})
}

func (SidebarTracer) Hover(expanded bool) {
	logging.Trace("sidebar.hover", map[string]interface{}{"expanded": expanded})
}

func (SidebarTracer) MobileOpen(open bool) {
	logging.Trace("sidebar.mobile-open", map[string]interface{}{"open": open})
}

func (SidebarTracer) OutsideClick(action string) {
	logging.Trace("sidebar.outside-click", map[string]interface{}{"action": action})
}

func (RouteTracer) Navigate(section, tab string) {
	logging.Trace("route.navigate", map[string]interface{}{"section": section, "tab": tab})
}

func (RouteTracer) HashChange(hash, section, tab string) {
	logging.Trace("route.hashchange", map[string]interface{}{"hash": hash, "section": section, "tab": tab})
}

func (RouteTracer) Repaired(requested, resolved string) {
	logging.Trace("route.repaired", map[string]interface{}{"requested": requested, "resolved": resolved})
}

func (ConfigTracer) Loaded(source string, sections int) {
	logging.Trace("config.loaded", map[string]interface{}{"source": source, "sections": sections})
}

func (ConfigTracer) Fallback(source string, err error) {
	payload := map[string]interface{}{"source": source}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("config.fallback", payload)
}

func (ViewportTracer) Regime(prev, next string, width int) {
	logging.Trace("viewport.regime", map[string]interface{}{"prev": prev, "next": next, "width": width})
}
