// Package ui holds the colour and table helpers used for command output
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/simmer/internal/recipe"
)

// DarkTheme selects the light variant of each colour.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Difficulty colours a difficulty label by how demanding it is.
func Difficulty(d recipe.Difficulty) string {
	switch d {
	case recipe.Hard:
		return Red(d)
	case recipe.Medium:
		return Yellow(d)
	default:
		return Green(recipe.Easy)
	}
}
