package catalogControllers

import (
	"context"
	"log"

	"github.com/raushkum4590/foodify/models"
)

// RestaurantSource is the slice of the content API the resolver needs.
type RestaurantSource interface {
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
	RestaurantsByCategory(ctx context.Context, categorySlug string) ([]models.Restaurant, error)
}

// ResolveByCategory returns the restaurants for a category slug.
// Empty or "all" means the full unfiltered list. Otherwise the server-side
// filtered query runs first; if it fails, the full list is fetched and the
// local matching heuristic applied. If that fetch fails too, the result is
// an empty list — this path must never surface an error.
func ResolveByCategory(ctx context.Context, src RestaurantSource, categorySlug string) []models.Restaurant {
	if categorySlug == "" || categorySlug == "all" {
		all, err := src.Restaurants(ctx)
		if err != nil {
			log.Println("resolve category: unfiltered fetch failed:", err)
			return []models.Restaurant{}
		}
		return all
	}

	filtered, err := src.RestaurantsByCategory(ctx, categorySlug)
	if err == nil {
		return filtered
	}
	log.Println("resolve category: filtered query failed, falling back to local matching:", err)

	all, err := src.Restaurants(ctx)
	if err != nil {
		log.Println("resolve category: fallback fetch failed:", err)
		return []models.Restaurant{}
	}
	return FilterByCategory(all, categorySlug)
}
