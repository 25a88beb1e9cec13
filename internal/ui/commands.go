package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navkit/navshell/internal/icons"
	"github.com/navkit/navshell/internal/navigation"
)

type iconsLoadedMsg struct {
	set *icons.Set
}

type configReloadedMsg struct {
	cfg navigation.Config
}

const (
	iconPollInterval = 500 * time.Millisecond
	iconPollAttempts = 6
)

// loadIconsCmd resolves the optional icon map off the update loop. Poll is
// bounded, so the command always completes.
func loadIconsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return iconsLoadedMsg{set: icons.Poll(context.Background(), path, iconPollInterval, iconPollAttempts)}
	}
}

func waitForConfigUpdate(updates <-chan navigation.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}
