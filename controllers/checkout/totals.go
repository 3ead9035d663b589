package checkoutControllers

import "github.com/raushkum4590/foodify/models"

// Pricing constants. Item prices are in the base currency; the gateway is
// charged in INR at a fixed conversion, with a flat delivery fee and GST.
const (
	DeliveryFee = 5.0
	INRRate     = 80.0
	TaxRate     = 0.18
	Currency    = "inr"
)

// Subtotal is price*quantity summed over the cart, in the base currency.
func Subtotal(items []models.CartLineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// GatewayTotal is the amount sent to the payment gateway, in INR.
func GatewayTotal(subtotal float64) float64 {
	return (subtotal + DeliveryFee) * INRRate * (1 + TaxRate)
}

// StorageTotal converts the gateway amount back to the base currency for
// the order record.
func StorageTotal(gatewayTotal float64) float64 {
	return gatewayTotal / INRRate
}
