package app

import (
	"github.com/ayoisaiah/simmer/internal/recipe"
	"github.com/ayoisaiah/simmer/store"
)

// editRecipe replaces existing with the single recipe read from path. The
// replacement keeps the ID of the recipe it overwrites.
func editRecipe(
	db store.DB,
	existing *recipe.Recipe,
	recipes []*recipe.Recipe,
	path string,
) (*recipe.Recipe, error) {
	if len(recipes) != 1 {
		return nil, errEditSingle.Fmt(path, existing.Title)
	}

	r := recipes[0]
	r.ID = existing.ID

	if err := db.Update(r); err != nil {
		return nil, err
	}

	return r, nil
}
