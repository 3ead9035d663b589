package hygraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/raushkum4590/foodify/models"
)

func TestCreateOrderPublishedSendsVariables(t *testing.T) {
	var req gqlRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&req)
		w.Write([]byte(`{"data":{"createOrder":{"id":"ord-1","email":"a@b.com","total":29.5}}}`))
	}))
	defer srv.Close()

	in := models.OrderInput{
		Email:          "a@b.com",
		Items:          `[{"id":"m1"}]`,
		Total:          29.5,
		RestaurantName: "Burger King",
		DeliveryInfo:   `{"city":"Springfield"}`,
		PaymentMethod:  models.PaymentMethodCash,
	}
	order, err := testClient(srv).CreateOrderPublished(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "ord-1" {
		t.Fatalf("unexpected order: %+v", order)
	}

	if !strings.Contains(req.Query, "publishOrder") {
		t.Fatalf("published mutation should include the publish step")
	}
	if req.Variables["email"] != "a@b.com" || req.Variables["restaurantName"] != "Burger King" {
		t.Fatalf("variables not forwarded: %v", req.Variables)
	}
}

func TestCreateOrderDraftSkipsPublish(t *testing.T) {
	var req gqlRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&req)
		w.Write([]byte(`{"data":{"createOrder":{"id":"ord-2"}}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).CreateOrderDraft(context.Background(), models.OrderInput{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(req.Query, "publishOrder") {
		t.Fatalf("draft mutation must not publish")
	}
}

func TestUserOrdersEmptyIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"orders":null}}`))
	}))
	defer srv.Close()

	orders, err := testClient(srv).UserOrders(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty slice, got %#v", orders)
	}
}
