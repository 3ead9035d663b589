package orderControllers

import (
	"context"
	"log"

	"github.com/raushkum4590/foodify/models"
)

// ContentAPI is the slice of the content API the assembler needs.
type ContentAPI interface {
	CreateOrderPublished(ctx context.Context, in models.OrderInput) (models.Order, error)
	CreateOrderDraft(ctx context.Context, in models.OrderInput) (models.Order, error)
	UserOrders(ctx context.Context, email string) ([]models.Order, error)
}

// Assembler submits orders to the content API, which is the system of
// record, and reads them back.
type Assembler struct {
	API ContentAPI
}

func NewAssembler(api ContentAPI) *Assembler {
	return &Assembler{API: api}
}

// CreateOrder attempts the combined create-and-publish mutation. On failure
// it retries once as a draft-only create before surfacing the error, so an
// upstream publish misconfiguration degrades to draft orders instead of
// losing the order. No idempotency key: a caller retry after a transient
// failure can create a duplicate (known gap, guarded at the checkout layer).
func (a *Assembler) CreateOrder(ctx context.Context, in models.OrderInput) (models.Order, error) {
	order, err := a.API.CreateOrderPublished(ctx, in)
	if err == nil {
		return order, nil
	}
	log.Println("create+publish order failed, retrying as draft:", err)

	order, draftErr := a.API.CreateOrderDraft(ctx, in)
	if draftErr == nil {
		log.Println("order saved as draft (autopublish not enabled upstream)")
		return order, nil
	}
	return models.Order{}, draftErr
}

// ListOrders returns the user's orders, drafts included, newest first.
// No orders is an empty slice, not an error.
func (a *Assembler) ListOrders(ctx context.Context, email string) ([]models.Order, error) {
	orders, err := a.API.UserOrders(ctx, email)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
