package app

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/navkit/navshell/internal/logging"
	"github.com/navkit/navshell/internal/navigation"
	"github.com/navkit/navshell/internal/prefs"
	"github.com/navkit/navshell/internal/route"
	"github.com/navkit/navshell/internal/sidebar"
	"github.com/navkit/navshell/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Root        string
	DocPath     string
	PrefsFile   string
	IconMap     string
	InitialHash string
	Width       int
	Height      int
	ShowFooter  bool
	WatchConfig bool
}

const defaultColumns = 80

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &navigation.Provider{Root: cfg.Root, DocPath: cfg.DocPath}
	nav := provider.Load(ctx)

	preferences := prefs.NewPreferences(prefs.NewFileStore(cfg.PrefsFile))

	cols := cfg.Width
	if cols <= 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			cols = w
		} else {
			cols = defaultColumns
		}
	}
	machine := sidebar.New(ui.RegimeForColumns(cols), preferences)
	router := route.New(nav, cfg.InitialHash)

	var updates <-chan navigation.Config
	if cfg.WatchConfig {
		ch, err := provider.Watch(ctx)
		if err != nil {
			logging.Warnf("config watch unavailable: %v", err)
		} else {
			updates = ch
		}
	}

	model := ui.NewModel(nav, machine, router, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.IconMap, updates)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
