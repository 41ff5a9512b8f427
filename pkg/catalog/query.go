package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Apply filters and sorts products. It never modifies its input and always
// returns a new, non-nil slice.
//
// Filters run in order: search over title, description and developer
// (case-insensitive substring), genre, platform, then the inclusive price
// range. The result is stable sorted by c.Sort; an unknown key keeps the
// filtered order.
func Apply(products []Product, c Criteria) []Product {
	match := searchMatcher(c.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !match(p) {
			continue
		}
		if c.GenreID != nil && p.GenreID != *c.GenreID {
			continue
		}
		if c.PlatformID != nil && p.PlatformID != *c.PlatformID {
			continue
		}
		if p.Price < c.MinPrice || p.Price > c.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	if less := comparator(c.Sort); less != nil {
		slices.SortStableFunc(out, less)
	}
	return out
}

func searchMatcher(query string) func(Product) bool {
	if query == "" {
		return func(Product) bool { return true }
	}
	fold := cases.Fold()
	needle := fold.String(query)
	return func(p Product) bool {
		for _, field := range [...]string{p.Title, p.Description, p.Developer} {
			if strings.Contains(fold.String(field), needle) {
				return true
			}
		}
		return false
	}
}

func comparator(key SortKey) func(a, b Product) int {
	switch key {
	case SortNewest:
		return func(a, b Product) int { return b.ReleaseDate.Compare(a.ReleaseDate.Time) }
	case SortOldest:
		return func(a, b Product) int { return a.ReleaseDate.Compare(b.ReleaseDate.Time) }
	case SortPriceAsc:
		return func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b Product) int { return cmp.Compare(b.Price, a.Price) }
	case SortRating:
		return func(a, b Product) int { return cmp.Compare(b.Rating, a.Rating) }
	}
	return nil
}
