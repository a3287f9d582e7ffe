package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/simmer/internal/recipe"
	"github.com/ayoisaiah/simmer/internal/testutil"
	"github.com/ayoisaiah/simmer/store"
)

func TestMain(m *testing.M) {
	disableStyling()
	pterm.SetDefaultOutput(&bytes.Buffer{})

	os.Exit(m.Run())
}

func tomatoSoup() recipe.Recipe {
	created := time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC)

	return recipe.Recipe{
		CreatedAt:  created,
		UpdatedAt:  created,
		ID:         "0190c3a4-7f1e-7b2a-9c1d-5e6f7a8b9c0d",
		Title:      "Tomato Soup",
		Cuisine:    "Italian",
		Difficulty: recipe.Easy,
		Ingredients: []recipe.Ingredient{
			{ID: "i1", Name: "Tomatoes", Unit: "g", Quantity: 500},
			{ID: "i2", Name: "Olive oil", Unit: "tbsp", Quantity: 1.5},
		},
		Steps: []recipe.Step{
			{
				ID:              "s1",
				Description:     "Chop the tomatoes",
				Kind:            recipe.Instruction,
				IngredientIDs:   []string{"i1"},
				DurationMinutes: 5,
			},
			{
				Settings:        &recipe.CookSettings{Temperature: 100, Speed: 2},
				ID:              "s2",
				Description:     "Simmer",
				Kind:            recipe.Cooking,
				DurationMinutes: 25,
			},
		},
		Favorite: true,
	}
}

type exportTest struct {
	name    string
	recipes []recipe.Recipe
}

func (e exportTest) Output() ([]byte, string) {
	var buf bytes.Buffer

	if err := writeJSON(&buf, exportable(e.recipes)); err != nil {
		return []byte(err.Error()), e.name
	}

	return buf.Bytes(), e.name
}

func TestExport(t *testing.T) {
	cases := []exportTest{
		{name: "export_empty"},
		{name: "export_recipes", recipes: []recipe.Recipe{tomatoSoup()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.CompareGoldenFile(t, tc)
		})
	}
}

func TestExportCanBeImported(t *testing.T) {
	path := filepath.Join("testdata", "export_recipes.golden")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	got, err := decodeRecipes(b, ".json")
	if err != nil {
		t.Fatal(err)
	}

	want := tomatoSoup()

	if len(got) != 1 {
		t.Fatalf("decoded %d recipes, want 1", len(got))
	}

	if diff := cmp.Diff(&want, got[0]); diff != "" {
		t.Errorf("decodeRecipes() mismatch (-want +got):\n%s", diff)
	}
}

const pancakesYAML = `
title: Pancakes
difficulty: Easy
ingredients:
  - name: Flour
    unit: g
    quantity: 200
steps:
  - description: Whisk the batter
    type: instruction
    duration: 5
    ingredients: [Flour]
  - description: Cook on the griddle
    type: cooking
    duration: 10
    cooking_settings:
      temperature: 180
      speed: 1
`

func TestDecodeRecipes(t *testing.T) {
	list := "- title: Toast\n- title: Tea\n"

	cases := []struct {
		name   string
		ext    string
		input  string
		titles []string
	}{
		{name: "yaml document", ext: ".yml", input: pancakesYAML, titles: []string{"Pancakes"}},
		{name: "yaml list", ext: ".YAML", input: list, titles: []string{"Toast", "Tea"}},
		{name: "json object", ext: ".json", input: `{"title": "Toast"}`, titles: []string{"Toast"}},
		{name: "json list", ext: ".json", input: ` [{"title": "Toast"}, {"title": "Tea"}]`, titles: []string{"Toast", "Tea"}},
		{name: "empty yaml", ext: ".yaml", input: "", titles: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeRecipes([]byte(tc.input), tc.ext)
			if err != nil {
				t.Fatal(err)
			}

			var titles []string
			for _, r := range got {
				titles = append(titles, r.Title)
			}

			if diff := cmp.Diff(tc.titles, titles); diff != "" {
				t.Errorf("titles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRecipeFields(t *testing.T) {
	got, err := decodeRecipes([]byte(pancakesYAML), ".yaml")
	if err != nil {
		t.Fatal(err)
	}

	want := []recipe.Step{
		{
			Description:     "Whisk the batter",
			Kind:            recipe.Instruction,
			IngredientIDs:   []string{"Flour"},
			DurationMinutes: 5,
		},
		{
			Settings:        &recipe.CookSettings{Temperature: 180, Speed: 1},
			Description:     "Cook on the griddle",
			Kind:            recipe.Cooking,
			DurationMinutes: 10,
		},
	}

	if diff := cmp.Diff(want, got[0].Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRecipesErrors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		return p
	}

	cases := []struct {
		want error
		name string
		path string
	}{
		{name: "missing", path: filepath.Join(dir, "nope.yml"), want: errReadRecipeFile},
		{name: "empty list", path: write("empty.json", "[]"), want: errNoRecipesInFile},
		{name: "format", path: write("soup.toml", "title = 'Soup'"), want: errUnsupportedFormat},
		{name: "syntax", path: write("bad.json", "{"), want: errDecodeRecipeFile},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := readRecipes(tc.path)
			if !errors.Is(err, tc.want) {
				t.Errorf("readRecipes() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseIngredients(t *testing.T) {
	got, err := parseIngredients("250 g arborio rice\n\n  1.5 l vegetable stock  \n")
	if err != nil {
		t.Fatal(err)
	}

	want := []recipe.Ingredient{
		{Name: "arborio rice", Unit: "g", Quantity: 250},
		{Name: "vegetable stock", Unit: "l", Quantity: 1.5},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseIngredients() mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"rice", "some g rice"} {
		if _, err := parseIngredients(bad); !errors.Is(err, errParseIngredient) {
			t.Errorf("parseIngredients(%q) error = %v", bad, err)
		}
	}
}

func TestParseSteps(t *testing.T) {
	input := `5 | Rinse the rice | arborio rice, water
20 | Simmer until creamy | 90°C / 3
2 | Rest | 100/1`

	got, err := parseSteps(input)
	if err != nil {
		t.Fatal(err)
	}

	want := []recipe.Step{
		{
			Description:     "Rinse the rice",
			Kind:            recipe.Instruction,
			IngredientIDs:   []string{"arborio rice", "water"},
			DurationMinutes: 5,
		},
		{
			Settings:        &recipe.CookSettings{Temperature: 90, Speed: 3},
			Description:     "Simmer until creamy",
			Kind:            recipe.Cooking,
			DurationMinutes: 20,
		},
		{
			Settings:        &recipe.CookSettings{Temperature: 100, Speed: 1},
			Description:     "Rest",
			Kind:            recipe.Cooking,
			DurationMinutes: 2,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseSteps() mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"5 | Rinse", "five | Rinse | rice"} {
		if _, err := parseSteps(bad); !errors.Is(err, errParseStep) {
			t.Errorf("parseSteps(%q) error = %v", bad, err)
		}
	}
}

func TestPrintRecipe(t *testing.T) {
	r := tomatoSoup()

	var buf bytes.Buffer
	if err := printRecipe(&buf, &r); err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	for _, want := range []string{
		"Tomato Soup",
		"Italian",
		"30m",
		"0190c3a4",
		"500 g Tomatoes",
		"1.5 tbsp Olive oil",
		"1. Chop the tomatoes (5m)",
		"with Tomatoes",
		"2. Simmer (25m)",
		"100°C · speed 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("printRecipe() output is missing %q:\n%s", want, out)
		}
	}
}

func TestPositions(t *testing.T) {
	all := []recipe.Recipe{
		{ID: "a", Title: "Zucchini bread", CreatedAt: time.Unix(1, 0)},
		{ID: "b", Title: "Apple pie", CreatedAt: time.Unix(2, 0)},
		{ID: "c", Title: "Miso soup", CreatedAt: time.Unix(3, 0)},
	}

	got := positions(all, recipe.SortTitle)
	want := map[string]int{"b": 1, "c": 2, "a": 3}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions() mismatch (-want +got):\n%s", diff)
	}

	if all[0].ID != "a" {
		t.Error("positions() reordered its input")
	}
}

func newTestStore(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "simmer.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func addSoup(t *testing.T, db store.DB) *recipe.Recipe {
	t.Helper()

	r := tomatoSoup()
	if err := db.Add(&r); err != nil {
		t.Fatal(err)
	}

	return &r
}

func TestDelRecipe(t *testing.T) {
	db := newTestStore(t)
	r := addSoup(t, db)

	answer := false
	orig := confirmDelete
	confirmDelete = func(*recipe.Recipe) (bool, error) {
		return answer, nil
	}

	t.Cleanup(func() {
		confirmDelete = orig
	})

	if err := delRecipe(db, r, false); err != nil {
		t.Fatal(err)
	}

	if _, err := db.Get(r.ID); err != nil {
		t.Fatalf("declined delete removed the recipe: %v", err)
	}

	answer = true

	if err := delRecipe(db, r, false); err != nil {
		t.Fatal(err)
	}

	if _, err := db.Get(r.ID); !errors.Is(err, store.ErrRecipeNotFound) {
		t.Errorf("Get() after delete error = %v", err)
	}

	r = addSoup(t, db)

	confirmDelete = func(*recipe.Recipe) (bool, error) {
		t.Fatal("confirmation requested with --yes")
		return false, nil
	}

	if err := delRecipe(db, r, true); err != nil {
		t.Fatal(err)
	}
}

func TestEditRecipe(t *testing.T) {
	db := newTestStore(t)
	existing := addSoup(t, db)

	toast := &recipe.Recipe{Title: "Toast"}

	_, err := editRecipe(db, existing, []*recipe.Recipe{toast, toast}, "two.yml")
	if !errors.Is(err, errEditSingle) {
		t.Fatalf("editRecipe() error = %v, want errEditSingle", err)
	}

	replacement := tomatoSoup()
	replacement.ID = ""
	replacement.Title = "Roasted Tomato Soup"
	replacement.Favorite = false

	got, err := editRecipe(db, existing, []*recipe.Recipe{&replacement}, "soup.yml")
	if err != nil {
		t.Fatal(err)
	}

	if got.ID != existing.ID {
		t.Errorf("edited recipe ID = %s, want %s", got.ID, existing.ID)
	}

	saved, err := db.Get(existing.ID)
	if err != nil {
		t.Fatal(err)
	}

	if saved.Title != "Roasted Tomato Soup" {
		t.Errorf("saved title = %q", saved.Title)
	}
}
