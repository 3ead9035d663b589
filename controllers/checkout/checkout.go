package checkoutControllers

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raushkum4590/foodify/models"
)

// Checkout states. One attempt walks
// Idle -> Validating -> Submitting(card|cash) -> {RedirectedToGateway | Confirmed | Failed};
// validation failures return to Idle with a field-specific message.
type State string

const (
	StateIdle           State = "idle"
	StateValidating     State = "validating"
	StateSubmittingCard State = "submitting_card"
	StateSubmittingCash State = "submitting_cash"
	StateRedirected     State = "redirected_to_gateway"
	StateConfirmed      State = "confirmed"
	StateFailed         State = "failed"
)

// Request is one checkout attempt.
type Request struct {
	Email          string
	RestaurantName string
	Items          []models.CartLineItem
	Delivery       models.DeliveryInfo
	PaymentMethod  string
	SuccessURL     string
	CancelURL      string
}

// Result is the terminal outcome of an attempt.
type Result struct {
	State       State
	Field       string // set when validation bounced back to Idle
	Message     string
	RedirectURL string
	SessionID   string
	Reference   string
	Order       models.Order
}

// OrderCreator persists the order record (content API behind it).
type OrderCreator interface {
	CreateOrder(ctx context.Context, in models.OrderInput) (models.Order, error)
}

// SessionCreator opens a hosted payment session.
type SessionCreator interface {
	CreateSession(ctx context.Context, p SessionParams) (Session, error)
}

// Clearer empties the cart after a confirmed cash order.
type Clearer interface {
	Clear()
}

// Orchestrator drives the checkout state machine. It is independent of any
// HTTP binding so the flow is testable without a server.
type Orchestrator struct {
	Orders  OrderCreator
	Gateway SessionCreator
	OnOrder func(models.Order) // optional, e.g. websocket broadcast

	guard submitGuard
}

func NewOrchestrator(orders OrderCreator, gateway SessionCreator) *Orchestrator {
	return &Orchestrator{Orders: orders, Gateway: gateway}
}

// Run executes one checkout attempt to a terminal state. cart may be nil
// when the caller has no live cart store (it is only used on the cash path).
func (o *Orchestrator) Run(ctx context.Context, req Request, cart Clearer) Result {
	// Validating
	if len(req.Items) == 0 {
		return Result{State: StateIdle, Field: "items", Message: "Your cart is empty"}
	}
	for _, it := range req.Items {
		if it.ID == "" || it.Name == "" || it.Price == 0 || it.Quantity == 0 {
			return Result{State: StateIdle, Field: "items", Message: "There are invalid items in your cart"}
		}
	}
	if ferr := ValidateDelivery(req.Delivery); ferr != nil {
		return Result{State: StateIdle, Field: ferr.Field, Message: ferr.Message}
	}

	// Double-submit guard. A second attempt for the same subject inside the
	// window is rejected before any network call (checkout retries without
	// an idempotency key can duplicate orders upstream).
	if !o.guard.begin(req.Email) {
		return Result{State: StateIdle, Field: "", Message: "An order is already being submitted. Please wait a moment."}
	}

	reference := uuid.NewString()
	gatewayTotal := GatewayTotal(Subtotal(req.Items))

	switch req.PaymentMethod {
	case models.PaymentMethodStripe:
		return o.submitCard(ctx, req, reference, gatewayTotal)
	default:
		return o.submitCash(ctx, req, reference, gatewayTotal, cart)
	}
}

// submitCard opens the hosted session first, then persists the order before
// handing back the redirect. A failed order write does not block the
// redirect: payment proceeds and the gap is an accepted inconsistency
// window, logged only.
func (o *Orchestrator) submitCard(ctx context.Context, req Request, reference string, gatewayTotal float64) Result {
	itemsJSON, _ := json.Marshal(req.Items)

	sess, err := o.Gateway.CreateSession(ctx, SessionParams{
		Amount:         gatewayTotal,
		Currency:       Currency,
		RestaurantName: req.RestaurantName,
		CustomerEmail:  req.Email,
		Reference:      reference,
		ItemsJSON:      string(itemsJSON),
		SuccessURL:     req.SuccessURL,
		CancelURL:      req.CancelURL,
	})
	if err != nil {
		return Result{State: StateFailed, Message: failureMessage(err)}
	}

	order, err := o.Orders.CreateOrder(ctx, o.orderInput(req, gatewayTotal, models.PaymentMethodStripe))
	if err != nil {
		log.Println("order save failed, continuing to gateway:", err)
	}

	return Result{
		State:       StateRedirected,
		RedirectURL: sess.URL,
		SessionID:   sess.ID,
		Reference:   reference,
		Order:       order,
	}
}

// submitCash persists the order and confirms. The user sees Confirmed even
// if the write failed (logged, not surfaced) and the cart is cleared either
// way.
func (o *Orchestrator) submitCash(ctx context.Context, req Request, reference string, gatewayTotal float64, cart Clearer) Result {
	order, err := o.Orders.CreateOrder(ctx, o.orderInput(req, gatewayTotal, models.PaymentMethodCash))
	if err != nil {
		log.Println("cash order save failed, confirming anyway:", err)
	} else if o.OnOrder != nil {
		o.OnOrder(order)
	}

	if cart != nil {
		cart.Clear()
	}

	return Result{
		State:     StateConfirmed,
		Reference: reference,
		Order:     order,
		Message:   "Order placed successfully",
	}
}

func (o *Orchestrator) orderInput(req Request, gatewayTotal float64, method string) models.OrderInput {
	itemsJSON, _ := json.Marshal(req.Items)
	deliveryJSON, _ := json.Marshal(req.Delivery)
	return models.OrderInput{
		Email:          req.Email,
		Items:          string(itemsJSON),
		Total:          StorageTotal(gatewayTotal),
		RestaurantName: req.RestaurantName,
		DeliveryInfo:   string(deliveryJSON),
		PaymentMethod:  method,
	}
}

// failureMessage picks the user-facing message by error classification.
func failureMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "network"):
		return "Network error. Please check your internet connection and try again."
	case strings.Contains(msg, "payment"), strings.Contains(msg, "stripe"):
		return "Payment processing failed. Please try again or use a different payment method."
	case strings.Contains(msg, "validation"):
		return "Please check all required fields and try again."
	default:
		return "Failed to place order. Please try again."
	}
}

// submitGuard rejects a second submission for the same key inside the
// window. In-process only: it guards the rapid double-click case, not
// cross-instance duplicates.
type submitGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

const guardWindow = 5 * time.Second

func (g *submitGuard) begin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seen == nil {
		g.seen = make(map[string]time.Time)
	}
	now := time.Now()
	if t, ok := g.seen[key]; ok && now.Sub(t) < guardWindow {
		return false
	}
	g.seen[key] = now
	return true
}
