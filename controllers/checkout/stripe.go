package checkoutControllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const defaultStripeAPIURL = "https://api.stripe.com/v1/checkout/sessions"

// SessionParams describes one hosted checkout session request.
type SessionParams struct {
	Amount         float64 // gateway currency units (INR)
	Currency       string
	RestaurantName string
	CustomerEmail  string
	Reference      string
	ItemsJSON      string
	SuccessURL     string
	CancelURL      string
}

// Session is the gateway's answer: where to send the browser.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// StripeGateway creates hosted checkout sessions against the Stripe API.
// Configuration is read from the environment at call time so a missing key
// surfaces as a request-time error instead of a boot failure.
type StripeGateway struct {
	HTTP *http.Client
}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{HTTP: &http.Client{}}
}

func stripeConfig() (secretKey, apiURL string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	apiURL = os.Getenv("STRIPE_API_URL")
	if apiURL == "" {
		apiURL = defaultStripeAPIURL
	}
	if secretKey == "" {
		return "", "", fmt.Errorf("stripe configuration missing")
	}
	return secretKey, apiURL, nil
}

type stripeSessionResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateSession opens a hosted payment page for the order amount.
// Stripe charges in the currency's smallest unit, so the amount is rounded
// to paise before sending.
func (g *StripeGateway) CreateSession(ctx context.Context, p SessionParams) (Session, error) {
	secretKey, apiURL, err := stripeConfig()
	if err != nil {
		return Session{}, err
	}

	amountInPaise := int64(math.Round(p.Amount * 100))

	successURL := p.SuccessURL
	if successURL == "" {
		successURL = os.Getenv("STRIPE_SUCCESS_URL")
	}
	cancelURL := p.CancelURL
	if cancelURL == "" {
		cancelURL = os.Getenv("STRIPE_CANCEL_URL")
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("locale", "en")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][product_data][name]", "Food Order - "+p.RestaurantName)
	form.Set("line_items[0][price_data][product_data][description]", "Order for "+p.CustomerEmail)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(amountInPaise, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("customer_email", p.CustomerEmail)
	form.Set("metadata[orderId]", p.Reference)
	form.Set("metadata[email]", p.CustomerEmail)
	form.Set("metadata[restaurantName]", p.RestaurantName)
	form.Set("metadata[items]", p.ItemsJSON)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("failed to reach stripe: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var sr stripeSessionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return Session{}, fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}
	if sr.Error != nil {
		return Session{}, fmt.Errorf("stripe error: %s", sr.Error.Message)
	}
	if sr.URL == "" {
		return Session{}, fmt.Errorf("stripe returned empty payment URL")
	}

	return Session{ID: sr.ID, URL: sr.URL}, nil
}
