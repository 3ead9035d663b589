package hygraph

import (
	"context"

	"github.com/raushkum4590/foodify/models"
)

// Raw response shapes. Assets come back as {url}; the mapping step flattens
// them so the rest of the service never sees upstream schema details.

type rawAsset struct {
	URL string `json:"url"`
}

type rawCategory struct {
	ID   string    `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
	Icon *rawAsset `json:"icon"`
}

type rawMenuItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	ProductImage *rawAsset `json:"productImage"`
	Description  string    `json:"description"`
}

type rawMenuSection struct {
	ID       string        `json:"id"`
	Category string        `json:"category"`
	MenuItem []rawMenuItem `json:"menuItem"`
}

type rawRestaurant struct {
	ID          string                     `json:"id"`
	Slug        string                     `json:"slug"`
	Name        string                     `json:"name"`
	About       string                     `json:"about"`
	Address     string                     `json:"address"`
	RestroType  string                     `json:"restroType"`
	WorkingHour string                     `json:"workingHour"`
	Banner      *rawAsset                  `json:"banner"`
	Category    *models.RestaurantCategory `json:"category"`
	Menu        []rawMenuSection           `json:"menu"`
}

func assetURL(a *rawAsset) string {
	if a == nil {
		return ""
	}
	return a.URL
}

func mapCategory(rc rawCategory) models.Category {
	return models.Category{ID: rc.ID, Slug: rc.Slug, Name: rc.Name, Icon: assetURL(rc.Icon)}
}

func mapRestaurant(rr rawRestaurant) models.Restaurant {
	r := models.Restaurant{
		ID:          rr.ID,
		Slug:        rr.Slug,
		Name:        rr.Name,
		About:       rr.About,
		Address:     rr.Address,
		RestroType:  rr.RestroType,
		WorkingHour: rr.WorkingHour,
		Banner:      assetURL(rr.Banner),
		Category:    rr.Category,
	}
	for _, ms := range rr.Menu {
		sec := models.MenuSection{ID: ms.ID, Category: ms.Category}
		for _, mi := range ms.MenuItem {
			sec.MenuItem = append(sec.MenuItem, models.MenuItem{
				ID:           mi.ID,
				Name:         mi.Name,
				Price:        mi.Price,
				ProductImage: assetURL(mi.ProductImage),
				Description:  mi.Description,
			})
		}
		r.Menu = append(r.Menu, sec)
	}
	return r
}

const categoriesQuery = `
query Categories {
  categories(first: 20) {
    slug
    name
    id
    icon { url }
  }
}`

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var data struct {
		Categories []rawCategory `json:"categories"`
	}
	if err := c.do(ctx, "categories", categoriesQuery, nil, &data); err != nil {
		return nil, err
	}
	out := make([]models.Category, 0, len(data.Categories))
	for _, rc := range data.Categories {
		out = append(out, mapCategory(rc))
	}
	return out, nil
}

const restaurantFields = `
    about
    address
    banner { url }
    category { name slug }
    id
    name
    restroType
    slug
    workingHour`

const restaurantsQuery = `
query Restaurants {
  restaurants {` + restaurantFields + `
  }
}`

const restaurantsBasicQuery = `
query Restaurants {
  restaurants {
    id
    name
    slug
  }
}`

// Restaurants fetches the full unfiltered list. If the full query fails
// (the hosted schema occasionally rejects optional fields under
// misconfiguration), it retries with a basic id/name/slug query and pads
// the missing fields so callers always get a uniform shape.
func (c *Client) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	var data struct {
		Restaurants []rawRestaurant `json:"restaurants"`
	}
	err := c.do(ctx, "restaurants", restaurantsQuery, nil, &data)
	if err == nil {
		return mapRestaurants(data.Restaurants), nil
	}

	data.Restaurants = nil
	if basicErr := c.do(ctx, "restaurants", restaurantsBasicQuery, nil, &data); basicErr != nil {
		return nil, err // report the original failure
	}
	out := make([]models.Restaurant, 0, len(data.Restaurants))
	for _, rr := range data.Restaurants {
		out = append(out, models.Restaurant{ID: rr.ID, Name: rr.Name, Slug: rr.Slug})
	}
	return out, nil
}

func mapRestaurants(raw []rawRestaurant) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(raw))
	for _, rr := range raw {
		out = append(out, mapRestaurant(rr))
	}
	return out
}

const restaurantDetailQuery = `
query RestaurantDetails($slug: String!) {
  restaurant(where: { slug: $slug }) {` + restaurantFields + `
    menu {
      ... on Menu {
        id
        category
        menuItem {
          ... on MenuItem {
            id
            name
            price
            description
            productImage { url }
          }
        }
      }
    }
  }
}`

// RestaurantBySlug returns the restaurant with its menu sections, or nil
// when the slug is unknown upstream.
func (c *Client) RestaurantBySlug(ctx context.Context, slug string) (*models.Restaurant, error) {
	var data struct {
		Restaurant *rawRestaurant `json:"restaurant"`
	}
	if err := c.do(ctx, "restaurant", restaurantDetailQuery, map[string]any{"slug": slug}, &data); err != nil {
		return nil, err
	}
	if data.Restaurant == nil {
		return nil, nil
	}
	r := mapRestaurant(*data.Restaurant)
	return &r, nil
}

const searchRestaurantsQuery = `
query SearchRestaurants($searchTerm: String!) {
  restaurants(where: {
    OR: [
      { name_contains: $searchTerm },
      { category: { name_contains: $searchTerm } }
    ]
  }) {` + restaurantFields + `
  }
}`

func (c *Client) SearchRestaurants(ctx context.Context, term string) ([]models.Restaurant, error) {
	var data struct {
		Restaurants []rawRestaurant `json:"restaurants"`
	}
	if err := c.do(ctx, "searchRestaurants", searchRestaurantsQuery, map[string]any{"searchTerm": term}, &data); err != nil {
		return nil, err
	}
	return mapRestaurants(data.Restaurants), nil
}

const restaurantsByCategoryQuery = `
query RestaurantsByCategory($categorySlug: String!) {
  restaurants(where: { category: { slug: $categorySlug } }) {` + restaurantFields + `
  }
}`

// RestaurantsByCategory is the primary, server-side filtered path. The
// resolver in controllers/catalog owns the client-side fallback heuristic.
func (c *Client) RestaurantsByCategory(ctx context.Context, categorySlug string) ([]models.Restaurant, error) {
	var data struct {
		Restaurants []rawRestaurant `json:"restaurants"`
	}
	if err := c.do(ctx, "restaurantsByCategory", restaurantsByCategoryQuery, map[string]any{"categorySlug": categorySlug}, &data); err != nil {
		return nil, err
	}
	return mapRestaurants(data.Restaurants), nil
}
