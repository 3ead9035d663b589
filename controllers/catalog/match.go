package catalogControllers

import (
	"strings"

	"github.com/raushkum4590/foodify/models"
)

// Slugs with hand-tuned matching rules. Anything else falls through to the
// generic bidirectional substring match.
var specialSlugs = map[string]bool{
	"burger": true,
	"pizza":  true,
	"ramen":  true,
	"sushi":  true,
}

// MatchesCategory reports whether a restaurant belongs to categorySlug under
// the client-side fallback rules. Rules run in priority order and the first
// hit wins. Restaurants with no category data never match.
func MatchesCategory(r models.Restaurant, categorySlug string) bool {
	if r.Category == nil {
		return false
	}

	categoryName := strings.ToLower(r.Category.Name)
	categorySlugFromData := strings.ToLower(r.Category.Slug)
	restaurantName := strings.ToLower(r.Name)
	searchSlug := strings.ToLower(categorySlug)

	// Priority 1: exact category slug match
	if categorySlugFromData == searchSlug {
		return true
	}
	// Priority 2: exact category name match
	if categoryName == searchSlug {
		return true
	}

	switch searchSlug {
	case "burger":
		// Strict: a name containing "burger" is excluded if it also names a
		// competing cuisine, to avoid cross-category false positives.
		if categorySlugFromData == "burger" ||
			categoryName == "burgers" ||
			strings.Contains(categoryName, "burger") {
			return true
		}
		return strings.Contains(restaurantName, "burger") &&
			!strings.Contains(restaurantName, "pizza") &&
			!strings.Contains(restaurantName, "ramen") &&
			!strings.Contains(restaurantName, "sushi")
	case "pizza":
		return categorySlugFromData == "pizza" ||
			strings.Contains(categoryName, "pizza") ||
			strings.Contains(restaurantName, "pizza")
	case "ramen":
		return categorySlugFromData == "ramen" ||
			strings.Contains(categoryName, "ramen") ||
			strings.Contains(categoryName, "noodle") ||
			strings.Contains(restaurantName, "ramen")
	case "sushi":
		return categorySlugFromData == "sushi" ||
			strings.Contains(categoryName, "sushi") ||
			strings.Contains(restaurantName, "sushi")
	}

	// Generic rule for slugs without special cases.
	return strings.Contains(categoryName, searchSlug) ||
		strings.Contains(searchSlug, categoryName) ||
		strings.Contains(restaurantName, searchSlug)
}

// FilterByCategory applies MatchesCategory over a restaurant list,
// preserving order.
func FilterByCategory(restaurants []models.Restaurant, categorySlug string) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if MatchesCategory(r, categorySlug) {
			out = append(out, r)
		}
	}
	return out
}
