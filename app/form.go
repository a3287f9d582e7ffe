package app

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/simmer/internal/recipe"
)

const (
	ingredientsHelp = `One per line as quantity, unit, and name:
250 g arborio rice
1 l vegetable stock`

	stepsHelp = `One per line as minutes | description | details.
Details are the ingredients used, or temperature/speed for a cooking step:
5 | Rinse the rice | arborio rice
20 | Simmer until creamy | 90/3`
)

// settingsPattern matches the temperature/speed of a cooking step, such as
// "90/3" or "90°C / 3".
var settingsPattern = regexp.MustCompile(`^(\d+)\s*(?:°?[cC])?\s*/\s*(\d+)$`)

func nonEmptyLines(s string) []string {
	var lines []string

	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// parseIngredients reads one ingredient per line.
func parseIngredients(s string) ([]recipe.Ingredient, error) {
	lines := nonEmptyLines(s)
	ingredients := make([]recipe.Ingredient, 0, len(lines))

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, errParseIngredient.Fmt(i + 1)
		}

		qty, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errParseIngredient.Fmt(i + 1)
		}

		ingredients = append(ingredients, recipe.Ingredient{
			Quantity: qty,
			Unit:     fields[1],
			Name:     strings.Join(fields[2:], " "),
		})
	}

	return ingredients, nil
}

// parseSteps reads one step per line. Ingredients are referenced by name and
// resolved when the recipe is saved.
func parseSteps(s string) ([]recipe.Step, error) {
	lines := nonEmptyLines(s)
	steps := make([]recipe.Step, 0, len(lines))

	for i, line := range lines {
		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			return nil, errParseStep.Fmt(i + 1)
		}

		mins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errParseStep.Fmt(i + 1)
		}

		step := recipe.Step{
			Description:     strings.TrimSpace(parts[1]),
			DurationMinutes: mins,
		}

		details := strings.TrimSpace(parts[2])

		if m := settingsPattern.FindStringSubmatch(details); m != nil {
			temp, _ := strconv.Atoi(m[1])
			speed, _ := strconv.Atoi(m[2])

			step.Kind = recipe.Cooking
			step.Settings = &recipe.CookSettings{
				Temperature: temp,
				Speed:       speed,
			}
		} else {
			step.Kind = recipe.Instruction

			for _, name := range strings.Split(details, ",") {
				if name = strings.TrimSpace(name); name != "" {
					step.IngredientIDs = append(step.IngredientIDs, name)
				}
			}
		}

		steps = append(steps, step)
	}

	return steps, nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errFieldRequired
	}

	return nil
}

// recipeForm asks for a new recipe. Each field is checked as it is filled in
// and the whole recipe is validated again when it is saved.
func recipeForm() (*recipe.Recipe, error) {
	var (
		r                  recipe.Recipe
		ingredients, steps string
	)

	r.Difficulty = recipe.Easy

	difficulties := make([]huh.Option[recipe.Difficulty], 0, len(recipe.Difficulties))
	for _, d := range recipe.Difficulties {
		difficulties = append(difficulties, huh.NewOption(string(d), d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(required).
				Value(&r.Title),
			huh.NewInput().
				Title("Cuisine").
				Placeholder("optional").
				Value(&r.Cuisine),
			huh.NewSelect[recipe.Difficulty]().
				Title("Difficulty").
				Options(difficulties...).
				Value(&r.Difficulty),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Ingredients").
				Description(ingredientsHelp).
				Validate(func(s string) error {
					_, err := parseIngredients(s)
					return err
				}).
				Value(&ingredients),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Steps").
				Description(stepsHelp).
				Validate(func(s string) error {
					_, err := parseSteps(s)
					return err
				}).
				Value(&steps),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	var err error

	r.Ingredients, err = parseIngredients(ingredients)
	if err != nil {
		return nil, err
	}

	r.Steps, err = parseSteps(steps)
	if err != nil {
		return nil, err
	}

	return &r, nil
}
