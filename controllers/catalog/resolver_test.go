package catalogControllers

import (
	"context"
	"errors"
	"testing"

	"github.com/raushkum4590/foodify/models"
)

type fakeSource struct {
	all         []models.Restaurant
	allErr      error
	filtered    []models.Restaurant
	filteredErr error

	allCalls      int
	filteredCalls int
}

func (f *fakeSource) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	f.allCalls++
	return f.all, f.allErr
}

func (f *fakeSource) RestaurantsByCategory(ctx context.Context, slug string) ([]models.Restaurant, error) {
	f.filteredCalls++
	return f.filtered, f.filteredErr
}

func TestResolveAllSlugSkipsFilteredQuery(t *testing.T) {
	src := &fakeSource{all: []models.Restaurant{{Name: "A"}, {Name: "B"}}}

	for _, slug := range []string{"", "all"} {
		got := ResolveByCategory(context.Background(), src, slug)
		if len(got) != 2 {
			t.Fatalf("slug %q: expected full list, got %d items", slug, len(got))
		}
	}
	if src.filteredCalls != 0 {
		t.Fatalf("filtered query should not run for the all slug")
	}
}

func TestResolvePrefersServerSideFilter(t *testing.T) {
	src := &fakeSource{
		all:      []models.Restaurant{{Name: "A"}, {Name: "B"}},
		filtered: []models.Restaurant{{Name: "A"}},
	}

	got := ResolveByCategory(context.Background(), src, "burger")
	if len(got) != 1 || got[0].Name != "A" {
		t.Fatalf("expected server-filtered result, got %+v", got)
	}
	if src.allCalls != 0 {
		t.Fatalf("unfiltered fetch should not run when the filtered query succeeds")
	}
}

func TestResolveFallsBackToLocalMatching(t *testing.T) {
	src := &fakeSource{
		filteredErr: errors.New("field category not defined"),
		all: []models.Restaurant{
			{Name: "Burger King", Category: &models.RestaurantCategory{Name: "Fast Food", Slug: "fast-food"}},
			{Name: "Pizza Palace", Category: &models.RestaurantCategory{Name: "Italian", Slug: "italian"}},
			{Name: "Ramen House"},
		},
	}

	got := ResolveByCategory(context.Background(), src, "burger")
	if len(got) != 1 || got[0].Name != "Burger King" {
		t.Fatalf("expected local heuristic to pick Burger King only, got %+v", got)
	}
	if src.filteredCalls != 1 || src.allCalls != 1 {
		t.Fatalf("expected one filtered attempt then one fallback fetch, got %d/%d",
			src.filteredCalls, src.allCalls)
	}
}

func TestResolveFallbackFetchFailureYieldsEmptyList(t *testing.T) {
	src := &fakeSource{
		filteredErr: errors.New("boom"),
		allErr:      errors.New("also boom"),
	}

	got := ResolveByCategory(context.Background(), src, "burger")
	if got == nil {
		t.Fatalf("result must be an empty list, not nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d items", len(got))
	}
}
