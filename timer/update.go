package timer

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/simmer/internal/cooking"
	"github.com/ayoisaiah/simmer/internal/notify"
	"github.com/ayoisaiah/simmer/internal/recipe"
)

var sortCycle = []recipe.SortOrder{
	recipe.SortRecent,
	recipe.SortOldest,
	recipe.SortTitle,
	recipe.SortDuration,
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.opts.Debug {
		if _, ok := msg.(progress.FrameMsg); !ok {
			slog.Debug(spew.Sdump(msg))
		}
	}

	switch msg := msg.(type) {
	case reloadMsg:
		t.reload()

		return t, nil

	case cookMsg:
		t.cook(string(msg))

		return t, nil

	case eventMsg:
		return t, t.handleEvent(cooking.Event(msg))

	case tea.KeyMsg:
		if t.view == cookView {
			return t.handleCookKey(msg)
		}

		return t.handleListKey(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		t.help.Width = msg.Width

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}

// handleEvent refreshes derived state after a session transition.
func (t *Timer) handleEvent(evt cooking.Event) tea.Cmd {
	// readers count down from the step end time, so ticks only need an
	// occasional refresh
	if evt.Kind != cooking.Ticked || time.Since(t.statusAt) >= statusRefresh {
		if err := t.writeStatus(); err != nil {
			t.logger.Error("status update failed", "error", err)
		}
	}

	switch evt.Kind {
	case cooking.Ticked:
		return nil
	case cooking.SessionConflict:
		t.flash = "Another recipe is already cooking. Redirecting..."

		if active, ok := t.ctrl.Active(); ok {
			t.current = active.RecipeID
			t.view = cookView
		}

		return nil
	}

	if title, body, ok := notify.Message(evt); ok {
		t.flash = title
		if body != "" && evt.Kind != cooking.StepStarted {
			t.flash += ": " + body
		}
	}

	return nil
}

func (t *Timer) reload() {
	all, err := t.catalog.List()
	if err != nil {
		t.flash = err.Error()
		return
	}

	t.recipes = recipe.Filter(all, t.listOpts)
	t.cursor = max(min(t.cursor, len(t.recipes)-1), 0)
}

func (t *Timer) selected() (*recipe.Recipe, bool) {
	if t.cursor < 0 || t.cursor >= len(t.recipes) {
		return nil, false
	}

	return &t.recipes[t.cursor], true
}

// cook opens the cooking view for a recipe, starting a session if needed.
// When another recipe is cooking the view is redirected to it instead.
func (t *Timer) cook(id string) {
	_, err := t.ctrl.Initiate(id)
	if err != nil {
		if errors.Is(err, cooking.ErrConflict) {
			// the conflict event switches the view
			return
		}

		t.flash = err.Error()

		return
	}

	t.current = id
	t.view = cookView
	t.flash = ""
}

func (t *Timer) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, defaultKeymap.del) {
		t.pendingDelete = ""
	}

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Quit

	case key.Matches(msg, defaultKeymap.up):
		if t.cursor > 0 {
			t.cursor--
		}

	case key.Matches(msg, defaultKeymap.down):
		if t.cursor < len(t.recipes)-1 {
			t.cursor++
		}

	case key.Matches(msg, defaultKeymap.enter):
		if r, ok := t.selected(); ok {
			t.cook(r.ID)
		}

	case key.Matches(msg, defaultKeymap.togglePlay):
		if active, ok := t.ctrl.Active(); ok {
			t.report(t.ctrl.TogglePlay(active.RecipeID))
		}

	case key.Matches(msg, defaultKeymap.favorite):
		if r, ok := t.selected(); ok {
			if _, err := t.catalog.ToggleFavorite(r.ID); err != nil {
				t.flash = err.Error()
			}

			t.reload()
		}

	case key.Matches(msg, defaultKeymap.favorites):
		t.listOpts.Favorites = !t.listOpts.Favorites
		t.reload()

	case key.Matches(msg, defaultKeymap.sort):
		i := slices.Index(sortCycle, t.listOpts.Sort)
		t.listOpts.Sort = sortCycle[(i+1)%len(sortCycle)]
		t.reload()

	case key.Matches(msg, defaultKeymap.del):
		t.deleteSelected()
	}

	return t, nil
}

// deleteSelected removes the selected recipe once the delete key has been
// pressed twice in a row.
func (t *Timer) deleteSelected() {
	r, ok := t.selected()
	if !ok {
		return
	}

	if active, ok := t.ctrl.Active(); ok && active.RecipeID == r.ID {
		t.flash = errCookingDelete.Fmt(r.Title).Error()
		t.pendingDelete = ""

		return
	}

	if t.pendingDelete != r.ID {
		t.pendingDelete = r.ID
		t.flash = "Press x again to delete " + r.Title

		return
	}

	t.pendingDelete = ""

	if err := t.catalog.Delete(r.ID); err != nil {
		t.flash = err.Error()
		return
	}

	t.flash = "Recipe deleted"
	t.reload()
}

func (t *Timer) handleCookKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := t.current

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		t.report(t.ctrl.TogglePlay(id))

	case key.Matches(msg, defaultKeymap.skip):
		sess, err := t.ctrl.Skip(id)
		if errors.Is(err, cooking.ErrNoMoreSteps) {
			t.flash = "This is the last step: press s to finish it"
			return t, nil
		}

		t.report(sess, err)

	case key.Matches(msg, defaultKeymap.stop):
		t.report(t.ctrl.StopStep(id))

	case key.Matches(msg, defaultKeymap.restart):
		sess, err := t.ctrl.Session(id)
		if err == nil && sess.Complete {
			t.report(t.ctrl.Restart(id))
		}

	case key.Matches(msg, defaultKeymap.end):
		if err := t.ctrl.End(id); err != nil {
			t.flash = err.Error()
		}

		t.current = ""
		t.view = listView
		t.reload()

	case key.Matches(msg, defaultKeymap.minimize):
		sess, err := t.ctrl.Session(id)
		if err == nil && !sess.Complete {
			_, _ = t.ctrl.Exit(id)
			t.flash = "Cooking paused: resume anytime from the recipe list"
		}

		t.view = listView
		t.reload()
	}

	return t, nil
}

// report shows errors from controller calls in the flash line.
func (t *Timer) report(_ cooking.Session, err error) {
	if err != nil {
		t.flash = err.Error()
	}
}
