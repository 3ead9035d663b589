package hygraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{Endpoint: srv.URL, Token: "test-token", HTTP: srv.Client()}
}

func TestDoMissingEndpointIsConfigError(t *testing.T) {
	c := &Client{HTTP: http.DefaultClient}
	err := c.do(context.Background(), "categories", categoriesQuery, nil, nil)
	if !IsConfig(err) {
		t.Fatalf("missing endpoint should classify as config, got %v", err)
	}
}

func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	c := testClient(srv)
	if err := c.do(context.Background(), "categories", categoriesQuery, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("auth header = %q", gotAuth)
	}
}

func TestCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"categories":[
			{"id":"c1","slug":"burger","name":"Burger","icon":{"url":"https://cdn/x.png"}},
			{"id":"c2","slug":"pizza","name":"Pizza"}
		]}}`))
	}))
	defer srv.Close()

	cats, err := testClient(srv).Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if cats[0].Icon != "https://cdn/x.png" {
		t.Fatalf("icon asset not flattened: %q", cats[0].Icon)
	}
	if cats[1].Icon != "" {
		t.Fatalf("missing icon should flatten to empty string")
	}
}

func TestRestaurantsDegradesToBasicQuery(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		json.NewDecoder(r.Body).Decode(&req)
		queries = append(queries, req.Query)

		if len(queries) == 1 {
			w.Write([]byte(`{"errors":[{"message":"field workingHour not defined","extensions":{"code":"GRAPHQL_VALIDATION_FAILED"}}]}`))
			return
		}
		w.Write([]byte(`{"data":{"restaurants":[{"id":"r1","name":"Burger King","slug":"burger-king"}]}}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Restaurants(context.Background())
	if err != nil {
		t.Fatalf("basic retry should have succeeded: %v", err)
	}
	if len(queries) != 2 {
		t.Fatalf("expected full then basic query, got %d calls", len(queries))
	}
	if len(got) != 1 || got[0].Name != "Burger King" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got[0].Category != nil {
		t.Fatalf("padded restaurant should have no category data")
	}
}

func TestRestaurantsBothQueriesFailReportsOriginal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`upstream down`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Restaurants(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if IsConfig(err) {
		t.Fatalf("500 should classify as transient, got config")
	}
}

func TestRestaurantBySlugNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"restaurant":null}}`))
	}))
	defer srv.Close()

	r, err := testClient(srv).RestaurantBySlug(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Fatalf("unknown slug should return nil, got %+v", r)
	}
}

func TestRestaurantBySlugMapsMenu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"restaurant":{
			"id":"r1","slug":"burger-king","name":"Burger King",
			"banner":{"url":"https://cdn/banner.png"},
			"category":{"name":"Fast Food","slug":"fast-food"},
			"menu":[{"id":"s1","category":"Mains","menuItem":[
				{"id":"m1","name":"Whopper","price":10,"productImage":{"url":"https://cdn/w.png"},"description":"big"}
			]}]
		}}}`))
	}))
	defer srv.Close()

	r, err := testClient(srv).RestaurantBySlug(context.Background(), "burger-king")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil {
		t.Fatalf("expected a restaurant")
	}
	if r.Banner != "https://cdn/banner.png" {
		t.Fatalf("banner not flattened: %q", r.Banner)
	}
	if len(r.Menu) != 1 || len(r.Menu[0].MenuItem) != 1 {
		t.Fatalf("menu not mapped: %+v", r.Menu)
	}
	if r.Menu[0].MenuItem[0].ProductImage != "https://cdn/w.png" {
		t.Fatalf("menu item image not flattened")
	}
}

func TestStubsReturnSyntheticSuccess(t *testing.T) {
	c := &Client{} // stubs never touch the network

	fav, err := c.AddFavorite(context.Background(), FavoriteInput{RestaurantID: "r1", RestaurantName: "Burger King"})
	if err != nil || fav.ID == "" || fav.RestaurantID != "r1" {
		t.Fatalf("AddFavorite stub: %+v, %v", fav, err)
	}

	favs, err := c.UserFavorites(context.Background(), "a@b.com")
	if err != nil || favs == nil || len(favs) != 0 {
		t.Fatalf("UserFavorites stub: %#v, %v", favs, err)
	}

	rev, err := c.AddReview(context.Background(), ReviewInput{Rating: 5, Comment: "great"})
	if err != nil || rev.ID == "" || rev.Rating != 5 {
		t.Fatalf("AddReview stub: %+v, %v", rev, err)
	}

	revs, err := c.RestaurantReviews(context.Background(), "r1")
	if err != nil || revs == nil || len(revs) != 0 {
		t.Fatalf("RestaurantReviews stub: %#v, %v", revs, err)
	}
}
