package store

import (
	"github.com/ayoisaiah/simmer/internal/recipe"
)

// DB is the recipe catalog storage interface.
type DB interface {
	// List returns every saved recipe in the order it was added
	List() ([]recipe.Recipe, error)
	// Get returns the recipe with the given ID
	Get(id string) (*recipe.Recipe, error)
	// Resolve finds a recipe by its 1-based position in a listing sorted by
	// order, or by a unique ID prefix
	Resolve(ref string, order recipe.SortOrder) (*recipe.Recipe, error)
	// Add validates and saves a new recipe, assigning its ID and timestamps
	Add(r *recipe.Recipe) error
	// Update validates and overwrites an existing recipe
	Update(r *recipe.Recipe) error
	// ToggleFavorite flips the favourite flag of a recipe
	ToggleFavorite(id string) (*recipe.Recipe, error)
	// Delete removes a recipe
	Delete(id string) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
