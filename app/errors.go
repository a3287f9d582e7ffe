package app

import "github.com/ayoisaiah/simmer/internal/apperr"

var (
	errRecipeRefRequired = &apperr.Error{
		Message: "specify a recipe by its number in 'simmer list' or an ID prefix",
	}

	errReadRecipeFile = &apperr.Error{
		Message: "unable to read recipe file %s",
	}

	errDecodeRecipeFile = &apperr.Error{
		Message: "unable to decode recipe file %s",
	}

	errUnsupportedFormat = &apperr.Error{
		Message: "unsupported recipe file format '%s': use .yml, .yaml, or .json",
	}

	errNoRecipesInFile = &apperr.Error{
		Message: "no recipes found in %s",
	}

	errAddRecipe = &apperr.Error{
		Message: "unable to add '%s'",
	}

	errEditSingle = &apperr.Error{
		Message: "%s must contain exactly one recipe to edit '%s'",
	}

	errFieldRequired = &apperr.Error{
		Message: "this field is required",
	}

	errParseIngredient = &apperr.Error{
		Message: "ingredient line %d: use 'quantity unit name' (e.g. 250 g rice)",
	}

	errParseStep = &apperr.Error{
		Message: "step line %d: use 'minutes | description | ingredients' or 'minutes | description | temperature/speed'",
	}
)
