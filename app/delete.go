package app

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/simmer/internal/recipe"
	"github.com/ayoisaiah/simmer/report"
	"github.com/ayoisaiah/simmer/store"
)

// confirmDelete asks before a recipe is removed for good.
var confirmDelete = func(r *recipe.Recipe) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete '%s'?", r.Title)).
		Description("The recipe will be deleted permanently").
		Affirmative("Delete").
		Negative("Keep").
		Value(&ok).
		Run()

	return ok, err
}

// delRecipe deletes the specified recipe. It requests for confirmation
// before proceeding unless skipConfirm is set.
func delRecipe(db store.DB, r *recipe.Recipe, skipConfirm bool) error {
	if !skipConfirm {
		ok, err := confirmDelete(r)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}
	}

	if err := db.Delete(r.ID); err != nil {
		return err
	}

	report.RecipeDeleted(r)

	return nil
}
