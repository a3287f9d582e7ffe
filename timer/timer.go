// Package timer runs the interactive recipe browser and the guided cooking
// view on top of a cooking Controller
package timer

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/simmer/internal/config"
	"github.com/ayoisaiah/simmer/internal/cooking"
	"github.com/ayoisaiah/simmer/internal/recipe"
)

type view int

const (
	listView view = iota
	cookView
)

// Catalog is the recipe collection the browser works with.
type Catalog interface {
	cooking.Catalog
	List() ([]recipe.Recipe, error)
	ToggleFavorite(id string) (*recipe.Recipe, error)
	Delete(id string) error
}

// Options configures a Timer.
type Options struct {
	// Start is the ID of a recipe to open in the cooking view straight away
	Start      string
	StatusPath string
	Sort       recipe.SortOrder
	Debug      bool
}

// Timer is the bubbletea model for the browser and the cooking view.
type Timer struct {
	catalog       Catalog
	ctrl          *cooking.Controller
	relay         *Relay
	logger        *slog.Logger
	cfg           *config.Config
	flash         string
	current       string // recipe shown in the cooking view
	pendingDelete string
	statusAt      time.Time // last status file write
	opts          Options
	recipes       []recipe.Recipe
	help          help.Model
	style         Style
	progress      progress.Model
	listOpts      recipe.ListOptions
	cursor        int
	view          view
}

// New creates the model. Events published by ctrl must reach relay for the
// views to refresh.
func New(
	catalog Catalog,
	ctrl *cooking.Controller,
	relay *Relay,
	cfg *config.Config,
	logger *slog.Logger,
	opts Options,
) *Timer {
	style := newStyle(cfg.Display)

	t := &Timer{
		catalog: catalog,
		ctrl:    ctrl,
		relay:   relay,
		logger:  logger,
		cfg:     cfg,
		opts:    opts,
		style:   style,
		help:    help.New(),
		progress: progress.New(
			progress.WithSolidFill(string(style.Accent)),
			progress.WithoutPercentage(),
		),
		listOpts: recipe.ListOptions{Sort: opts.Sort},
	}

	t.progress.Width = maxWidth - padding*2 - 4

	return t
}

// cookMsg opens the cooking view for a recipe.
type cookMsg string

// reloadMsg refreshes the recipe list from the catalog.
type reloadMsg struct{}

func (t *Timer) Init() tea.Cmd {
	cmds := []tea.Cmd{
		func() tea.Msg { return reloadMsg{} },
	}

	if t.opts.Start != "" {
		id := t.opts.Start
		cmds = append(cmds, func() tea.Msg { return cookMsg(id) })
	}

	return tea.Sequence(cmds...)
}

// Run starts the program and blocks until the user quits.
func (t *Timer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(t, tea.WithContext(ctx))

	go t.relay.forward(ctx, p.Send)

	_, err := p.Run()

	t.ctrl.Close()

	_ = os.Remove(t.opts.StatusPath)

	return err
}
