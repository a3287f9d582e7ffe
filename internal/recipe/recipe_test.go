package recipe

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validRecipe() *Recipe {
	return &Recipe{
		Title:      "Tomato soup",
		Difficulty: Easy,
		Ingredients: []Ingredient{
			{ID: "i1", Name: "Tomato", Quantity: 4, Unit: "pcs"},
			{ID: "i2", Name: "Salt", Quantity: 1, Unit: "tsp"},
		},
		Steps: []Step{
			{
				ID:              "s1",
				Description:     "Chop the tomatoes",
				Kind:            Instruction,
				DurationMinutes: 5,
				IngredientIDs:   []string{"i1"},
			},
			{
				ID:              "s2",
				Description:     "Simmer",
				Kind:            Cooking,
				DurationMinutes: 3,
				Settings:        &CookSettings{Temperature: 90, Speed: 2},
			},
			{
				ID:              "s3",
				Description:     "Season",
				Kind:            Instruction,
				DurationMinutes: 2,
				IngredientIDs:   []string{"i2"},
			},
		},
	}
}

func TestDurations(t *testing.T) {
	r := validRecipe()

	if got := r.TotalMinutes(); got != 10 {
		t.Errorf("TotalMinutes: expected 10, but got %d", got)
	}

	if got := r.TotalSecs(); got != 600 {
		t.Errorf("TotalSecs: expected 600, but got %d", got)
	}

	cases := map[int]int{0: 300, 1: 120, 2: 0}

	for i, want := range cases {
		if got := r.SecsAfter(i); got != want {
			t.Errorf("SecsAfter(%d): expected %d, but got %d", i, want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		mutate func(r *Recipe)
		name   string
		want   []string
	}{
		{
			name:   "valid recipe",
			mutate: func(_ *Recipe) {},
		},
		{
			name: "missing title and ingredients",
			mutate: func(r *Recipe) {
				r.Title = "  "
				r.Ingredients = nil
				r.Steps = r.Steps[1:2]
			},
			want: []string{
				"Recipe title is required",
				"At least one ingredient is required",
			},
		},
		{
			name: "bad ingredient",
			mutate: func(r *Recipe) {
				r.Ingredients[1] = Ingredient{ID: "i2"}
			},
			want: []string{
				"Ingredient 2: Name is required",
				"Ingredient 2: Quantity must be greater than 0",
				"Ingredient 2: Unit is required",
			},
		},
		{
			name: "cooking step out of range with ingredients",
			mutate: func(r *Recipe) {
				r.Steps[1].Settings = &CookSettings{Temperature: 250, Speed: 0}
				r.Steps[1].IngredientIDs = []string{"i1"}
			},
			want: []string{
				"Step 2: Temperature must be between 40-200°C",
				"Step 2: Speed must be between 1-5",
				"Step 2: Cooking steps cannot reference ingredients",
			},
		},
		{
			name: "cooking step without settings",
			mutate: func(r *Recipe) {
				r.Steps[1].Settings = nil
			},
			want: []string{
				"Step 2: Cooking settings are required for cooking steps",
			},
		},
		{
			name: "instruction step with settings and no ingredients",
			mutate: func(r *Recipe) {
				r.Steps[0].IngredientIDs = nil
				r.Steps[0].Settings = &CookSettings{Temperature: 50, Speed: 1}
				r.Steps[0].DurationMinutes = 0
			},
			want: []string{
				"Step 1: Duration must be a positive integer",
				"Step 1: Instruction steps must have at least one ingredient",
				"Step 1: Instruction steps cannot have cooking settings",
			},
		},
		{
			name: "dangling ingredient reference",
			mutate: func(r *Recipe) {
				r.Steps[2].IngredientIDs = []string{"nope"}
			},
			want: []string{"Step 3: Unknown ingredient 'nope'"},
		},
		{
			name: "no steps and unknown difficulty",
			mutate: func(r *Recipe) {
				r.Steps = nil
				r.Difficulty = "Impossible"
			},
			want: []string{
				"Difficulty must be one of Easy, Medium, or Hard",
				"At least one step is required",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecipe()
			tc.mutate(r)

			err := r.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected no error, but got: %v", err)
				}

				return
			}

			if !errors.Is(err, ErrInvalidRecipe) {
				t.Fatalf("expected ErrInvalidRecipe, but got: %v", err)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, but got %T", err)
			}

			if diff := cmp.Diff(tc.want, verr.Problems); diff != "" {
				t.Errorf("problems mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	r := &Recipe{
		Title: "  Pancakes ",
		Ingredients: []Ingredient{
			{Name: "Flour", Quantity: 200, Unit: "g"},
			{ID: "milk", Name: "Milk", Quantity: 300, Unit: "ml"},
		},
		Steps: []Step{
			{
				Description:     "Whisk",
				Kind:            "Instruction",
				DurationMinutes: 2,
				IngredientIDs:   []string{"flour", "milk"},
			},
		},
	}

	var n int

	r.Normalize(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})

	if r.Title != "Pancakes" || r.Difficulty != Easy {
		t.Errorf("unexpected title or difficulty: %q %q", r.Title, r.Difficulty)
	}

	if r.Ingredients[0].ID != "id-1" || r.Steps[0].ID != "id-2" {
		t.Errorf("missing IDs were not assigned: %+v", r)
	}

	want := []string{"id-1", "milk"}
	if diff := cmp.Diff(want, r.Steps[0].IngredientIDs); diff != "" {
		t.Errorf("ingredient refs mismatch (-want +got):\n%s", diff)
	}

	if r.Steps[0].Kind != Instruction {
		t.Errorf("expected kind to be lower-cased, got %q", r.Steps[0].Kind)
	}

	if err := r.Validate(); err != nil {
		t.Errorf("normalized recipe should be valid: %v", err)
	}
}

func TestClone(t *testing.T) {
	r := validRecipe()
	c := r.Clone()

	c.Steps[1].Settings.Temperature = 180
	c.Steps[0].IngredientIDs[0] = "changed"
	c.Steps = append(c.Steps, Step{ID: "s4"})

	if r.Steps[1].Settings.Temperature != 90 ||
		r.Steps[0].IngredientIDs[0] != "i1" ||
		len(r.Steps) != 3 {
		t.Error("changes to the clone leaked into the original")
	}

	if !slices.Equal(r.StepIngredients(0), []string{"Tomato"}) {
		t.Errorf("unexpected step ingredients: %v", r.StepIngredients(0))
	}
}
