package checkoutControllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestCreateSessionMissingKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	g := NewStripeGateway()
	_, err := g.CreateSession(context.Background(), SessionParams{Amount: 100})
	if err == nil || !strings.Contains(err.Error(), "stripe configuration missing") {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCreateSessionSendsFormFields(t *testing.T) {
	var gotForm url.Values
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("bad form: %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_abc","url":"https://checkout.stripe.com/pay/cs_test_abc"}`))
	}))
	defer srv.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_URL", srv.URL)
	t.Setenv("STRIPE_SUCCESS_URL", "https://shop.example/success")
	t.Setenv("STRIPE_CANCEL_URL", "https://shop.example/cancel")

	g := NewStripeGateway()
	sess, err := g.CreateSession(context.Background(), SessionParams{
		Amount:         2360.5, // rounds to 236050 paise
		Currency:       "inr",
		RestaurantName: "Burger King",
		CustomerEmail:  "jane@example.com",
		Reference:      "ref-1",
		ItemsJSON:      `[{"id":"m1"}]`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID != "cs_test_abc" || sess.URL == "" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if gotAuth != "Bearer sk_test_123" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	checks := map[string]string{
		"mode":                                 "payment",
		"payment_method_types[0]":              "card",
		"line_items[0][price_data][currency]":  "inr",
		"line_items[0][price_data][unit_amount]": "236050",
		"line_items[0][quantity]":              "1",
		"customer_email":                       "jane@example.com",
		"metadata[orderId]":                    "ref-1",
		"metadata[restaurantName]":             "Burger King",
		"metadata[items]":                      `[{"id":"m1"}]`,
		"success_url":                          "https://shop.example/success",
		"cancel_url":                           "https://shop.example/cancel",
	}
	for key, want := range checks {
		if got := gotForm.Get(key); got != want {
			t.Errorf("form[%s] = %q, want %q", key, got, want)
		}
	}
	if !strings.Contains(gotForm.Get("line_items[0][price_data][product_data][name]"), "Burger King") {
		t.Errorf("product name missing restaurant: %q", gotForm.Get("line_items[0][price_data][product_data][name]"))
	}
}

func TestCreateSessionStripeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid API Key"}}`))
	}))
	defer srv.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_bad")
	t.Setenv("STRIPE_API_URL", srv.URL)

	g := NewStripeGateway()
	_, err := g.CreateSession(context.Background(), SessionParams{Amount: 100, Currency: "inr"})
	if err == nil || !strings.Contains(err.Error(), "Invalid API Key") {
		t.Fatalf("expected stripe error to surface, got %v", err)
	}
}

func TestCreateSessionEmptyURLRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"cs_test_abc","url":""}`))
	}))
	defer srv.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_URL", srv.URL)

	g := NewStripeGateway()
	_, err := g.CreateSession(context.Background(), SessionParams{Amount: 100, Currency: "inr"})
	if err == nil || !strings.Contains(err.Error(), "empty payment URL") {
		t.Fatalf("expected empty URL error, got %v", err)
	}
}
