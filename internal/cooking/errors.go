package cooking

import "github.com/ayoisaiah/simmer/internal/apperr"

var (
	ErrNotFound = &apperr.Error{
		Message: "no cooking session for recipe %s",
	}

	ErrConflict = &apperr.Error{
		Message: "another recipe is cooking: finish or end '%s' first",
	}

	ErrNoMoreSteps = &apperr.Error{
		Message: "no more steps in recipe",
	}

	ErrStepOutOfRange = &apperr.Error{
		Message: "step %d is out of range: the recipe has %d steps",
	}
)
