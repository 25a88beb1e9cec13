package navigation

// SubnavItem is a leaf navigation target within a section.
type SubnavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// Section is a top-level navigation group holding an ordered list of tabs.
type Section struct {
	ID           string       `json:"id"`
	Label        string       `json:"label"`
	Icon         string       `json:"icon,omitempty"`
	DefaultTabID string       `json:"defaultTabId,omitempty"`
	Subnav       []SubnavItem `json:"subnav"`
}

// Settings carries layout and default-target settings shipped with the tree.
type Settings struct {
	SidebarWidthExpanded  int    `json:"sidebarWidthExpanded"`
	SidebarWidthCollapsed int    `json:"sidebarWidthCollapsed"`
	DefaultSectionID      string `json:"defaultSectionId"`
	DefaultTabID          string `json:"defaultTabId"`
}

// Config is the navigation tree. It is read-only after load.
type Config struct {
	Sections []Section `json:"sections"`
	Settings Settings  `json:"settings"`
}

const (
	defaultWidthExpanded  = 28
	defaultWidthCollapsed = 6
)

// FindSection returns the section with the given id.
func (c Config) FindSection(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// DefaultSection returns the configured default section, falling back to the
// first section in the tree.
func (c Config) DefaultSection() Section {
	if s, ok := c.FindSection(c.Settings.DefaultSectionID); ok {
		return s
	}
	if len(c.Sections) > 0 {
		return c.Sections[0]
	}
	return Section{}
}

// FindTab returns the subnav item with the given id within the section.
func (s Section) FindTab(id string) (SubnavItem, bool) {
	for _, t := range s.Subnav {
		if t.ID == id {
			return t, true
		}
	}
	return SubnavItem{}, false
}

// DefaultTab resolves the section's default tab id. An invalid or missing
// DefaultTabID resolves to the first subnav entry.
func (s Section) DefaultTab() string {
	if _, ok := s.FindTab(s.DefaultTabID); ok {
		return s.DefaultTabID
	}
	if len(s.Subnav) > 0 {
		return s.Subnav[0].ID
	}
	return ""
}

// Normalize validates and repairs a loaded tree in place so that every
// caller downstream can rely on its structural invariants: sections have
// non-empty ids, tab ids are unique within their section, every
// defaultTabId resolves to an own subnav entry, and the settings defaults
// reference a real section/tab pair.
func (c *Config) Normalize() {
	sections := c.Sections[:0]
	for _, s := range c.Sections {
		if s.ID == "" {
			continue
		}
		seen := make(map[string]struct{}, len(s.Subnav))
		subnav := s.Subnav[:0]
		for _, t := range s.Subnav {
			if t.ID == "" {
				continue
			}
			if _, dup := seen[t.ID]; dup {
				continue
			}
			seen[t.ID] = struct{}{}
			subnav = append(subnav, t)
		}
		s.Subnav = subnav
		if _, ok := s.FindTab(s.DefaultTabID); !ok {
			if len(s.Subnav) > 0 {
				s.DefaultTabID = s.Subnav[0].ID
			} else {
				s.DefaultTabID = ""
			}
		}
		sections = append(sections, s)
	}
	c.Sections = sections

	if _, ok := c.FindSection(c.Settings.DefaultSectionID); !ok {
		if len(c.Sections) > 0 {
			c.Settings.DefaultSectionID = c.Sections[0].ID
		} else {
			c.Settings.DefaultSectionID = ""
		}
	}
	if def, ok := c.FindSection(c.Settings.DefaultSectionID); ok {
		if _, ok := def.FindTab(c.Settings.DefaultTabID); !ok {
			c.Settings.DefaultTabID = def.DefaultTab()
		}
	} else {
		c.Settings.DefaultTabID = ""
	}
	if c.Settings.SidebarWidthExpanded <= 0 {
		c.Settings.SidebarWidthExpanded = defaultWidthExpanded
	}
	if c.Settings.SidebarWidthCollapsed <= 0 {
		c.Settings.SidebarWidthCollapsed = defaultWidthCollapsed
	}
}

// Default returns the embedded fallback tree used whenever the remote
// configuration cannot be loaded.
func Default() Config {
	cfg := Config{
		Sections: []Section{
			{
				ID:           "home",
				Label:        "Home",
				Icon:         "home",
				DefaultTabID: "welcome",
				Subnav: []SubnavItem{
					{ID: "welcome", Label: "Welcome", Icon: "star"},
					{ID: "updates", Label: "Updates", Icon: "bell"},
				},
			},
			{
				ID:           "people",
				Label:        "People",
				Icon:         "users",
				DefaultTabID: "teams",
				Subnav: []SubnavItem{
					{ID: "teams", Label: "Teams", Icon: "users"},
					{ID: "directory", Label: "Directory", Icon: "book"},
					{ID: "skills", Label: "Skills", Icon: "award"},
				},
			},
			{
				ID:           "projects",
				Label:        "Projects",
				Icon:         "folder",
				DefaultTabID: "active",
				Subnav: []SubnavItem{
					{ID: "active", Label: "Active", Icon: "play"},
					{ID: "archive", Label: "Archive", Icon: "box"},
				},
			},
			{
				ID:           "settings",
				Label:        "Settings",
				Icon:         "gear",
				DefaultTabID: "profile",
				Subnav: []SubnavItem{
					{ID: "profile", Label: "Profile", Icon: "user"},
					{ID: "appearance", Label: "Appearance", Icon: "brush"},
				},
			},
		},
		Settings: Settings{
			SidebarWidthExpanded:  defaultWidthExpanded,
			SidebarWidthCollapsed: defaultWidthCollapsed,
			DefaultSectionID:      "home",
			DefaultTabID:          "welcome",
		},
	}
	cfg.Normalize()
	return cfg
}
