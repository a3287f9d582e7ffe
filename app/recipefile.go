package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/simmer/internal/recipe"
)

// readRecipes reads one recipe, or a list of recipes, from a YAML or JSON
// file. The format is picked from the file extension.
func readRecipes(path string) ([]*recipe.Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadRecipeFile.Fmt(path).Wrap(err)
	}

	recipes, err := decodeRecipes(b, filepath.Ext(path))
	if err != nil {
		return nil, errDecodeRecipeFile.Fmt(path).Wrap(err)
	}

	if len(recipes) == 0 {
		return nil, errNoRecipesInFile.Fmt(path)
	}

	return recipes, nil
}

func decodeRecipes(b []byte, ext string) ([]*recipe.Recipe, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return decodeJSON(b)
	case ".yml", ".yaml":
		return decodeYAML(b)
	default:
		return nil, errUnsupportedFormat.Fmt(ext)
	}
}

func decodeJSON(b []byte) ([]*recipe.Recipe, error) {
	b = bytes.TrimSpace(b)

	if len(b) > 0 && b[0] == '[' {
		var recipes []*recipe.Recipe

		err := json.Unmarshal(b, &recipes)

		return recipes, err
	}

	var r recipe.Recipe
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}

	return []*recipe.Recipe{&r}, nil
}

func decodeYAML(b []byte) ([]*recipe.Recipe, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}

	// empty document
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]

	if root.Kind == yaml.SequenceNode {
		var recipes []*recipe.Recipe

		err := root.Decode(&recipes)

		return recipes, err
	}

	var r recipe.Recipe
	if err := root.Decode(&r); err != nil {
		return nil, err
	}

	return []*recipe.Recipe{&r}, nil
}
