package recipe

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
)

// SortOrder determines how a list of recipes is ordered.
type SortOrder string

const (
	SortRecent   SortOrder = "recent"
	SortOldest   SortOrder = "oldest"
	SortTitle    SortOrder = "title"
	SortDuration SortOrder = "duration"
)

var sortOrders = []SortOrder{SortRecent, SortOldest, SortTitle, SortDuration}

// ListOptions narrows and orders a recipe listing.
type ListOptions struct {
	Since      time.Time
	Difficulty Difficulty
	Sort       SortOrder
	Favorites  bool
}

// ParseSort validates a user supplied sort order. An empty string selects
// the most recent recipes first.
func ParseSort(s string) (SortOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortRecent, nil
	}

	if !slices.Contains(sortOrders, SortOrder(s)) {
		return "", errUnknownSort.Fmt(s)
	}

	return SortOrder(s), nil
}

// ParseDifficulty validates a user supplied difficulty case-insensitively.
// An empty string or "all" disables the difficulty filter.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}

	for _, d := range Difficulties {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}

	return "", errUnknownDifficulty.Fmt(s)
}

// Filter returns the recipes matching opts in the requested order. The input
// slice is not modified.
func Filter(recipes []Recipe, opts ListOptions) []Recipe {
	out := make([]Recipe, 0, len(recipes))

	for i := range recipes {
		r := recipes[i]

		if opts.Favorites && !r.Favorite {
			continue
		}

		if opts.Difficulty != "" && r.Difficulty != opts.Difficulty {
			continue
		}

		if !opts.Since.IsZero() && r.CreatedAt.Before(opts.Since) {
			continue
		}

		out = append(out, r)
	}

	Sort(out, opts.Sort)

	return out
}

// Sort orders recipes in place. Ties keep their catalog order.
func Sort(recipes []Recipe, order SortOrder) {
	var fn func(a, b Recipe) int

	switch order {
	case SortOldest:
		fn = func(a, b Recipe) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case SortTitle:
		fn = func(a, b Recipe) int {
			x, y := strings.ToLower(a.Title), strings.ToLower(b.Title)

			switch {
			case x == y:
				return 0
			case natural.Less(x, y):
				return -1
			default:
				return 1
			}
		}
	case SortDuration:
		fn = func(a, b Recipe) int {
			return cmp.Compare(a.TotalMinutes(), b.TotalMinutes())
		}
	default:
		fn = func(a, b Recipe) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	}

	slices.SortStableFunc(recipes, fn)
}
