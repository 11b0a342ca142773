// Package cli provides the console controller for the file manager: the
// interactive menu loop, confirmation prompts on destructive operations,
// and the mapping from facade statuses to human-readable messages.
package cli

import (
	"fmt"

	"github.com/okozlov/fileman/internal/config"
	"github.com/okozlov/fileman/internal/fsops"
	"github.com/okozlov/fileman/internal/ui"
)

// AppContext holds all dependencies needed by the controller and the
// non-interactive subcommands.
type AppContext struct {
	Config *config.Config
	UI     *ui.UI
	Files  *fsops.Manager
}

// NewAppContext creates an AppContext with all dependencies initialized
func NewAppContext() (*AppContext, error) {
	return NewAppContextWithOptions(false)
}

// NewAppContextWithOptions creates an AppContext with custom options
func NewAppContextWithOptions(nonInteractive bool) (*AppContext, error) {
	cfg := config.New("")
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)
	uiInstance.EnableColor(cfg.GetBool(config.KeyColorOutput))

	return &AppContext{
		Config: cfg,
		UI:     uiInstance,
		Files:  fsops.NewManager(),
	}, nil
}
