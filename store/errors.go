package store

import "github.com/ayoisaiah/simmer/internal/apperr"

var (
	ErrRecipeNotFound = &apperr.Error{
		Message: "recipe not found: %s",
	}

	errSimmerRunning = &apperr.Error{
		Message: "is Simmer already running? Only one instance can be active at a time",
	}

	errAmbiguousRef = &apperr.Error{
		Message: "'%s' matches more than one recipe: use a longer ID prefix",
	}

	errEmptyRef = &apperr.Error{
		Message: "a recipe number or ID is required",
	}

	errDecodeRecipe = &apperr.Error{
		Message: "unable to decode stored recipe %s",
	}
)
