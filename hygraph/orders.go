package hygraph

import (
	"context"

	"github.com/raushkum4590/foodify/models"
)

const orderFields = `
    id
    email
    total
    restaurantName
    createdAt
    items
    deliveryInfo
    paymentMethod`

const createOrderPublishedMutation = `
mutation CreateOrder($email: String!, $items: String!, $total: Float!, $restaurantName: String!, $deliveryInfo: String!, $paymentMethod: String!) {
  createOrder(
    data: {
      email: $email,
      items: $items,
      total: $total,
      restaurantName: $restaurantName,
      deliveryInfo: $deliveryInfo,
      paymentMethod: $paymentMethod
    }
  ) {` + orderFields + `
  }
  publishOrder(where: { email: $email }, to: PUBLISHED) {
    id
  }
}`

const createOrderDraftMutation = `
mutation CreateOrderSimple($email: String!, $items: String!, $total: Float!, $restaurantName: String!, $deliveryInfo: String!, $paymentMethod: String!) {
  createOrder(
    data: {
      email: $email,
      items: $items,
      total: $total,
      restaurantName: $restaurantName,
      deliveryInfo: $deliveryInfo,
      paymentMethod: $paymentMethod
    }
  ) {` + orderFields + `
  }
}`

func orderVariables(in models.OrderInput) map[string]any {
	return map[string]any{
		"email":          in.Email,
		"items":          in.Items,
		"total":          in.Total,
		"restaurantName": in.RestaurantName,
		"deliveryInfo":   in.DeliveryInfo,
		"paymentMethod":  in.PaymentMethod,
	}
}

// CreateOrderPublished creates the order and publishes it in one mutation.
func (c *Client) CreateOrderPublished(ctx context.Context, in models.OrderInput) (models.Order, error) {
	var data struct {
		CreateOrder models.Order `json:"createOrder"`
	}
	err := c.do(ctx, "createOrder", createOrderPublishedMutation, orderVariables(in), &data)
	return data.CreateOrder, err
}

// CreateOrderDraft creates the order without the publish step. Used as the
// degraded path when the combined mutation fails (autopublish not enabled
// or publish permission missing upstream).
func (c *Client) CreateOrderDraft(ctx context.Context, in models.OrderInput) (models.Order, error) {
	var data struct {
		CreateOrder models.Order `json:"createOrder"`
	}
	err := c.do(ctx, "createOrder", createOrderDraftMutation, orderVariables(in), &data)
	return data.CreateOrder, err
}

const userOrdersQuery = `
query GetUserOrders($email: String!) {
  orders(where: { email: $email }, orderBy: createdAt_DESC, stage: DRAFT) {` + orderFields + `
  }
}`

// UserOrders returns all orders for an email, drafts included since upstream
// may never auto-publish, newest first. No orders is an empty slice.
func (c *Client) UserOrders(ctx context.Context, email string) ([]models.Order, error) {
	var data struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, "orders", userOrdersQuery, map[string]any{"email": email}, &data); err != nil {
		return nil, err
	}
	if data.Orders == nil {
		return []models.Order{}, nil
	}
	return data.Orders, nil
}

// CartHistoryInput records an add-to-cart event upstream.
type CartHistoryInput struct {
	Email       string  `json:"email"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Name        string  `json:"name"`
}

const createUserCartMutation = `
mutation AddToCart($email: String!, $price: Float!, $description: String!, $image: String!, $name: String!) {
  createUserCart(
    data: {
      email: $email,
      price: $price,
      productDescription: $description,
      productImage: $image,
      productName: $name
    }
  ) {
    id
  }
  publishManyUserCarts(to: PUBLISHED) {
    count
  }
}`

// CreateUserCart writes an add-to-cart history record. Best effort: callers
// log and continue on failure, the cart itself lives in the snapshot store.
func (c *Client) CreateUserCart(ctx context.Context, in CartHistoryInput) (string, error) {
	var data struct {
		CreateUserCart struct {
			ID string `json:"id"`
		} `json:"createUserCart"`
	}
	vars := map[string]any{
		"email":       in.Email,
		"price":       in.Price,
		"description": in.Description,
		"image":       in.Image,
		"name":        in.Name,
	}
	err := c.do(ctx, "createUserCart", createUserCartMutation, vars, &data)
	return data.CreateUserCart.ID, err
}
