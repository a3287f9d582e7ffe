package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/simmer/internal/cooking"
	"github.com/ayoisaiah/simmer/internal/recipe"
	"github.com/ayoisaiah/simmer/internal/timeutil"
)

func (t *Timer) View() string {
	var view string

	if t.view == cookView {
		view = t.cookView()
	} else {
		view = t.listView()
	}

	if t.flash != "" {
		view += "\n\n" + t.style.Warning.Render(t.flash)
	}

	return t.style.Base.Render(view)
}

func difficultyLabel(d recipe.Difficulty) string {
	if d == "" {
		return string(recipe.Easy)
	}

	return string(d)
}

func (t *Timer) listView() string {
	var s strings.Builder

	title := "Recipes"
	if t.listOpts.Favorites {
		title = "Favourite recipes"
	}

	sort := t.listOpts.Sort
	if sort == "" {
		sort = recipe.SortRecent
	}

	s.WriteString(t.style.Title.Render(title))
	s.WriteString(t.style.Hint.Render(fmt.Sprintf("  sorted by %s", sort)))
	s.WriteString("\n\n")

	if len(t.recipes) == 0 {
		s.WriteString(t.style.Hint.Render("No recipes yet. Add one with 'simmer new' or 'simmer add --file'"))
	}

	for i := range t.recipes {
		r := &t.recipes[i]

		star := " "
		if r.Favorite {
			star = "★"
		}

		line := fmt.Sprintf(
			"%2d. %s %-32s %-6s %s",
			i+1,
			star,
			r.Title,
			difficultyLabel(r.Difficulty),
			timeutil.HumanMinutes(r.TotalMinutes()),
		)

		if i == t.cursor {
			s.WriteString(t.style.Selected.Render("› " + line))
		} else {
			s.WriteString(t.style.Secondary.Render("  " + line))
		}

		s.WriteString("\n")
	}

	if mini := t.miniPlayerView(); mini != "" {
		s.WriteString("\n" + mini + "\n")
	}

	s.WriteString("\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.togglePlay,
		defaultKeymap.favorite,
		defaultKeymap.favorites,
		defaultKeymap.sort,
		defaultKeymap.del,
		defaultKeymap.quit,
	}))

	return s.String()
}

// miniPlayerView summarises the active session while browsing.
func (t *Timer) miniPlayerView() string {
	sess, ok := t.ctrl.Active()
	if !ok {
		return ""
	}

	r, ok := t.ctrl.Recipe(sess.RecipeID)
	if !ok {
		return ""
	}

	var state string

	switch {
	case sess.Complete:
		state = "Ready to serve"
	case sess.Running:
		state = fmt.Sprintf(
			"▶ Step %d/%d  %s",
			sess.StepIndex+1,
			sess.StepCount,
			timeutil.Clock(sess.StepRemaining),
		)
	default:
		state = fmt.Sprintf(
			"⏸ Step %d/%d  %s",
			sess.StepIndex+1,
			sess.StepCount,
			timeutil.Clock(sess.StepRemaining),
		)
	}

	return t.style.Mini.Render(
		t.style.Main.Render(r.Title) + "  " + t.style.Secondary.Render(state),
	)
}

func (t *Timer) stepDetails(r *recipe.Recipe, i int) string {
	step := r.Steps[i]

	if step.Kind == recipe.Cooking && step.Settings != nil {
		return fmt.Sprintf(
			"%d°C · speed %d",
			step.Settings.Temperature,
			step.Settings.Speed,
		)
	}

	if names := r.StepIngredients(i); len(names) > 0 {
		return "Ingredients: " + strings.Join(names, ", ")
	}

	return ""
}

func (t *Timer) cookView() string {
	sess, err := t.ctrl.Session(t.current)
	if err != nil {
		return t.style.Hint.Render("No cooking session. Press esc to return to the recipes.")
	}

	r, ok := t.ctrl.Recipe(t.current)
	if !ok {
		return ""
	}

	var s strings.Builder

	s.WriteString(t.style.Title.Render(r.Title))
	s.WriteString("\n\n")

	if sess.Complete {
		s.WriteString(t.completeView())
		return s.String()
	}

	s.WriteString(t.style.Hint.Render(
		fmt.Sprintf("Step %d of %d", sess.StepIndex+1, sess.StepCount),
	))

	if !sess.Running {
		s.WriteString(t.style.Warning.Render("  [Paused]"))
	}

	s.WriteString("\n")
	s.WriteString(t.style.Secondary.Render(r.Steps[sess.StepIndex].Description))

	if details := t.stepDetails(r, sess.StepIndex); details != "" {
		s.WriteString("\n" + t.style.Hint.Render(details))
	}

	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(timeutil.Clock(sess.StepRemaining)))
	s.WriteString(t.style.Hint.Render(
		fmt.Sprintf(
			"  %s left overall · %d%% done",
			timeutil.Clock(sess.OverallRemaining),
			int(sess.Progress()*100),
		),
	))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(sess.Progress()))
	s.WriteString("\n\n" + t.timelineView(r, sess))
	s.WriteString("\n\n" + t.help.ShortHelpView(t.cookKeys(sess)))

	return s.String()
}

// timelineView lists every step of the recipe, marking the ones already done
// and the one in progress.
func (t *Timer) timelineView(r *recipe.Recipe, sess cooking.Session) string {
	lines := make([]string, len(r.Steps))

	for i := range r.Steps {
		line := fmt.Sprintf(
			"%d. %s · %s",
			i+1,
			r.Steps[i].Description,
			timeutil.HumanMinutes(r.Steps[i].DurationMinutes),
		)

		if details := t.stepDetails(r, i); details != "" {
			line += " · " + details
		}

		switch {
		case i < sess.StepIndex:
			lines[i] = t.style.Hint.Render("✓ " + line)
		case i == sess.StepIndex:
			lines[i] = t.style.Selected.Render("● " + line)
		default:
			lines[i] = t.style.Secondary.Render("○ " + line)
		}
	}

	return strings.Join(lines, "\n")
}

func (t *Timer) cookKeys(sess cooking.Session) []key.Binding {
	keys := []key.Binding{defaultKeymap.togglePlay}

	if !sess.IsLastStep() {
		keys = append(keys, defaultKeymap.skip)
	}

	return append(keys,
		defaultKeymap.stop,
		defaultKeymap.end,
		defaultKeymap.minimize,
		defaultKeymap.quit,
	)
}

func (t *Timer) completeView() string {
	var s strings.Builder

	s.WriteString(t.style.Main.Render("All steps completed!"))
	s.WriteString("\n" + t.style.Secondary.Render("Your dish is ready to serve."))
	s.WriteString("\n\n" + t.progress.ViewAs(1))
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.restart,
		defaultKeymap.end,
		defaultKeymap.minimize,
		defaultKeymap.quit,
	}))

	return s.String()
}
