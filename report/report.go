// Package report prints user-facing outcomes of simmer commands
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/simmer/internal/recipe"
)

const shortIDLen = 8

// ShortID trims a recipe ID to the prefix shown in listings. Any unique
// prefix can be used to refer to a recipe.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}

	return id[:shortIDLen]
}

func RecipeAdded(r *recipe.Recipe) {
	pterm.Success.Printfln("Added '%s' (%s)", r.Title, ShortID(r.ID))
}

func RecipeUpdated(r *recipe.Recipe) {
	pterm.Success.Printfln("Updated '%s'", r.Title)
}

func RecipeDeleted(r *recipe.Recipe) {
	pterm.Success.Printfln("Deleted '%s'", r.Title)
}

func Favorite(r *recipe.Recipe) {
	if r.Favorite {
		pterm.Info.Printfln("'%s' added to favourites", r.Title)
		return
	}

	pterm.Info.Printfln("'%s' removed from favourites", r.Title)
}

func Info(msg string) {
	pterm.Info.Println(msg)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
