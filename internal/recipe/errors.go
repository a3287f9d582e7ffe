package recipe

import (
	"strings"

	"github.com/ayoisaiah/simmer/internal/apperr"
)

var (
	ErrInvalidRecipe = &apperr.Error{
		Message: "invalid recipe",
	}

	errUnknownSort = &apperr.Error{
		Message: "unknown sort order '%s': use recent, oldest, title, or duration",
	}

	errUnknownDifficulty = &apperr.Error{
		Message: "unknown difficulty '%s': use Easy, Medium, or Hard",
	}
)

// ValidationError collects every problem found in a recipe.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidRecipe.Message + ":\n  - " + strings.Join(e.Problems, "\n  - ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRecipe
}
