// Package recipe defines recipes, their ingredients and steps, and the rules
// a recipe must satisfy before it can be cooked.
package recipe

import (
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/simmer/internal/timeutil"
)

// Difficulty is how demanding a recipe is to prepare.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists every valid difficulty in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// StepKind distinguishes timed appliance steps from manual instructions.
type StepKind string

const (
	Cooking     StepKind = "cooking"
	Instruction StepKind = "instruction"
)

type Ingredient struct {
	ID       string  `json:"id"       yaml:"id,omitempty"`
	Name     string  `json:"name"     yaml:"name"`
	Unit     string  `json:"unit"     yaml:"unit"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// CookSettings are descriptive appliance settings for a cooking step.
type CookSettings struct {
	Temperature int `json:"temperature" yaml:"temperature"` // °C
	Speed       int `json:"speed"       yaml:"speed"`
}

// Step is one ordered unit of a recipe. Cooking steps carry Settings and no
// ingredients; instruction steps reference at least one ingredient and carry
// no Settings.
type Step struct {
	Settings        *CookSettings `json:"cooking_settings,omitempty" yaml:"cooking_settings,omitempty"`
	ID              string        `json:"id"                         yaml:"id,omitempty"`
	Description     string        `json:"description"                yaml:"description"`
	Kind            StepKind      `json:"type"                       yaml:"type"`
	IngredientIDs   []string      `json:"ingredient_ids,omitempty"   yaml:"ingredients,omitempty"`
	DurationMinutes int           `json:"duration_minutes"           yaml:"duration"`
}

// DurationSecs returns the step duration in seconds.
func (s Step) DurationSecs() int {
	return timeutil.MinsToSecs(s.DurationMinutes)
}

type Recipe struct {
	CreatedAt   time.Time    `json:"created_at"  yaml:"-"`
	UpdatedAt   time.Time    `json:"updated_at"  yaml:"-"`
	ID          string       `json:"id"          yaml:"-"`
	Title       string       `json:"title"       yaml:"title"`
	Cuisine     string       `json:"cuisine"     yaml:"cuisine,omitempty"`
	Difficulty  Difficulty   `json:"difficulty"  yaml:"difficulty"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
	Steps       []Step       `json:"steps"       yaml:"steps"`
	Favorite    bool         `json:"is_favorite" yaml:"favorite,omitempty"`
}

// TotalMinutes returns the sum of every step duration in minutes.
func (r *Recipe) TotalMinutes() int {
	var total int
	for i := range r.Steps {
		total += r.Steps[i].DurationMinutes
	}

	return total
}

// TotalSecs returns the sum of every step duration in seconds.
func (r *Recipe) TotalSecs() int {
	return timeutil.MinsToSecs(r.TotalMinutes())
}

// SecsAfter returns the summed duration of all steps strictly after index i.
func (r *Recipe) SecsAfter(i int) int {
	var total int
	for j := i + 1; j < len(r.Steps); j++ {
		total += r.Steps[j].DurationSecs()
	}

	return total
}

// Ingredient returns the ingredient with the given ID.
func (r *Recipe) Ingredient(id string) (Ingredient, bool) {
	i := slices.IndexFunc(r.Ingredients, func(ing Ingredient) bool {
		return ing.ID == id
	})
	if i < 0 {
		return Ingredient{}, false
	}

	return r.Ingredients[i], true
}

// StepIngredients returns the names of the ingredients referenced by step i.
func (r *Recipe) StepIngredients(i int) []string {
	if i < 0 || i >= len(r.Steps) {
		return nil
	}

	names := make([]string, 0, len(r.Steps[i].IngredientIDs))

	for _, id := range r.Steps[i].IngredientIDs {
		if ing, ok := r.Ingredient(id); ok {
			names = append(names, ing.Name)
		}
	}

	return names
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Steps = make([]Step, len(r.Steps))

	for i, s := range r.Steps {
		if s.Settings != nil {
			settings := *s.Settings
			s.Settings = &settings
		}

		s.IngredientIDs = slices.Clone(s.IngredientIDs)
		c.Steps[i] = s
	}

	return &c
}

// Normalize fills in missing ingredient and step IDs using newID and resolves
// instruction ingredient references given by name rather than ID. It is
// applied to recipes authored by hand before they are validated.
func (r *Recipe) Normalize(newID func() string) {
	r.Title = strings.TrimSpace(r.Title)

	if r.Difficulty == "" {
		r.Difficulty = Easy
	}

	byName := make(map[string]string, len(r.Ingredients))

	for i := range r.Ingredients {
		ing := &r.Ingredients[i]
		if ing.ID == "" {
			ing.ID = newID()
		}

		byName[strings.ToLower(strings.TrimSpace(ing.Name))] = ing.ID
	}

	for i := range r.Steps {
		s := &r.Steps[i]
		if s.ID == "" {
			s.ID = newID()
		}

		s.Kind = StepKind(strings.ToLower(string(s.Kind)))

		for j, ref := range s.IngredientIDs {
			if _, ok := r.Ingredient(ref); ok {
				continue
			}

			if id, ok := byName[strings.ToLower(strings.TrimSpace(ref))]; ok {
				s.IngredientIDs[j] = id
			}
		}
	}
}
