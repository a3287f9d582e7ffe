package recipe

import (
	"fmt"
	"slices"
	"strings"
)

const (
	minTemperature = 40
	maxTemperature = 200
	minSpeed       = 1
	maxSpeed       = 5
)

// Validate checks the recipe against the authoring rules and returns a
// *ValidationError listing every problem, or nil.
func (r *Recipe) Validate() error {
	var problems []string

	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(r.Title) == "" {
		add("Recipe title is required")
	}

	if !slices.Contains(Difficulties, r.Difficulty) {
		add("Difficulty must be one of Easy, Medium, or Hard")
	}

	if len(r.Ingredients) == 0 {
		add("At least one ingredient is required")
	}

	for i, ing := range r.Ingredients {
		n := i + 1

		if strings.TrimSpace(ing.Name) == "" {
			add("Ingredient %d: Name is required", n)
		}

		if ing.Quantity <= 0 {
			add("Ingredient %d: Quantity must be greater than 0", n)
		}

		if strings.TrimSpace(ing.Unit) == "" {
			add("Ingredient %d: Unit is required", n)
		}
	}

	if len(r.Steps) == 0 {
		add("At least one step is required")
	}

	for i := range r.Steps {
		problems = append(problems, r.validateStep(i)...)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}

func (r *Recipe) validateStep(i int) []string {
	var problems []string

	s := r.Steps[i]
	n := i + 1

	add := func(format string, args ...any) {
		problems = append(
			problems,
			fmt.Sprintf("Step %d: ", n)+fmt.Sprintf(format, args...),
		)
	}

	if strings.TrimSpace(s.Description) == "" {
		add("Description is required")
	}

	if s.DurationMinutes <= 0 {
		add("Duration must be a positive integer")
	}

	switch s.Kind {
	case Cooking:
		if s.Settings == nil {
			add("Cooking settings are required for cooking steps")
		} else {
			if s.Settings.Temperature < minTemperature ||
				s.Settings.Temperature > maxTemperature {
				add("Temperature must be between %d-%d°C", minTemperature, maxTemperature)
			}

			if s.Settings.Speed < minSpeed || s.Settings.Speed > maxSpeed {
				add("Speed must be between %d-%d", minSpeed, maxSpeed)
			}
		}

		if len(s.IngredientIDs) > 0 {
			add("Cooking steps cannot reference ingredients")
		}
	case Instruction:
		if len(s.IngredientIDs) == 0 {
			add("Instruction steps must have at least one ingredient")
		}

		for _, id := range s.IngredientIDs {
			if _, ok := r.Ingredient(id); !ok {
				add("Unknown ingredient '%s'", id)
			}
		}

		if s.Settings != nil {
			add("Instruction steps cannot have cooking settings")
		}
	default:
		add("Type must be 'cooking' or 'instruction'")
	}

	return problems
}
