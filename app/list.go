package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ayoisaiah/simmer/internal/config"
	"github.com/ayoisaiah/simmer/internal/recipe"
	"github.com/ayoisaiah/simmer/internal/timeutil"
	"github.com/ayoisaiah/simmer/internal/ui"
	"github.com/ayoisaiah/simmer/report"
)

const (
	noRecipesMsg = "No recipes found. Add one with 'simmer new' or 'simmer add --file'"
	favoriteMark = "★"
)

// positions maps each recipe ID to its 1-based number in the full listing,
// which is what numeric references resolve against.
func positions(all []recipe.Recipe, order recipe.SortOrder) map[string]int {
	sorted := slices.Clone(all)
	recipe.Sort(sorted, order)

	pos := make(map[string]int, len(sorted))
	for i := range sorted {
		pos[sorted[i].ID] = i + 1
	}

	return pos
}

// printRecipesTable prints a recipe table to the command-line.
func printRecipesTable(
	w io.Writer,
	recipes []recipe.Recipe,
	pos map[string]int,
	cfg *config.Config,
) error {
	tableBody := make([][]string, len(recipes))

	for i := range recipes {
		r := &recipes[i]

		title := r.Title
		if r.Favorite {
			title += " " + ui.Yellow(favoriteMark)
		}

		tableBody[i] = []string{
			strconv.Itoa(pos[r.ID]),
			ui.Cyan(report.ShortID(r.ID)),
			title,
			ui.Difficulty(r.Difficulty),
			timeutil.HumanMinutes(r.TotalMinutes()),
			strconv.Itoa(len(r.Steps)),
			r.CreatedAt.Local().Format("Jan 02, 2006 " + cfg.TimeFormat()),
		}
	}

	tableBody = append([][]string{
		{"#", "ID", "TITLE", "DIFFICULTY", "TIME", "STEPS", "ADDED"},
	}, tableBody...)

	return ui.PrintTable(tableBody, w)
}

// listRecipes prints out a table of the recipes matching opts.
func listRecipes(
	w io.Writer,
	all []recipe.Recipe,
	opts recipe.ListOptions,
	cfg *config.Config,
) error {
	recipes := recipe.Filter(all, opts)
	if len(recipes) == 0 {
		report.Info(noRecipesMsg)
		return nil
	}

	return printRecipesTable(w, recipes, positions(all, opts.Sort), cfg)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// printRecipe prints the ingredients and steps of a recipe.
func printRecipe(w io.Writer, r *recipe.Recipe) error {
	var b strings.Builder

	b.WriteString(ui.Highlight(r.Title))

	if r.Favorite {
		b.WriteString(" " + ui.Yellow(favoriteMark))
	}

	b.WriteString("\n")

	meta := []string{
		ui.Difficulty(r.Difficulty),
		timeutil.HumanMinutes(r.TotalMinutes()),
		ui.Cyan(report.ShortID(r.ID)),
	}

	if r.Cuisine != "" {
		meta = append([]string{r.Cuisine}, meta...)
	}

	b.WriteString(strings.Join(meta, " · ") + "\n\n")
	b.WriteString(ui.Magenta("Ingredients") + "\n")

	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "  • %s %s %s\n", formatQuantity(ing.Quantity), ing.Unit, ing.Name)
	}

	b.WriteString("\n" + ui.Magenta("Steps") + "\n")

	for i, step := range r.Steps {
		fmt.Fprintf(
			&b,
			"%3d. %s (%s)\n",
			i+1,
			step.Description,
			timeutil.HumanMinutes(step.DurationMinutes),
		)

		switch {
		case step.Kind == recipe.Cooking && step.Settings != nil:
			fmt.Fprintf(
				&b,
				"     %d°C · speed %d\n",
				step.Settings.Temperature,
				step.Settings.Speed,
			)
		case len(step.IngredientIDs) > 0:
			fmt.Fprintf(&b, "     with %s\n", strings.Join(r.StepIngredients(i), ", "))
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// exportable never returns nil so that an empty catalog exports as [].
func exportable(recipes []recipe.Recipe) []recipe.Recipe {
	if recipes == nil {
		return []recipe.Recipe{}
	}

	return recipes
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
