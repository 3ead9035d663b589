package models

// Catalog records are read-only projections of the hosted content API
// (Hygraph). They are mapped from the raw GraphQL response shapes in the
// hygraph package and never mutated locally.

type Category struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"` // flattened icon.url
}

type RestaurantCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Restaurant struct {
	ID          string              `json:"id"`
	Slug        string              `json:"slug"`
	Name        string              `json:"name"`
	Category    *RestaurantCategory `json:"category,omitempty"`
	Banner      string              `json:"banner,omitempty"` // flattened banner.url
	About       string              `json:"about,omitempty"`
	Address     string              `json:"address,omitempty"`
	RestroType  string              `json:"restroType,omitempty"`
	WorkingHour string              `json:"workingHour,omitempty"`
	Menu        []MenuSection       `json:"menu,omitempty"`
}

type MenuSection struct {
	ID       string     `json:"id"`
	Category string     `json:"category"`
	MenuItem []MenuItem `json:"menuItem"`
}

type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ProductImage string  `json:"productImage,omitempty"`
	Description  string  `json:"description,omitempty"`
}
