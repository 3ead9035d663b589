package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func signPayload(secret, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "." + body))
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookRouter(t *testing.T, secret, mode string) *gin.Engine {
	t.Setenv("STRIPE_WEBHOOK_SECRET", secret)
	t.Setenv("STRIPE_MODE", mode)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payment/webhook", StripeWebhookAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"received": true})
	})
	return r
}

func TestWebhookValidSignature(t *testing.T) {
	r := webhookRouter(t, "whsec_test", "")
	body := `{"type":"checkout.session.completed"}`
	sig := signPayload("whsec_test", "1700000000", body)

	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1700000000,v1="+sig)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestWebhookInvalidSignatureRejected(t *testing.T) {
	r := webhookRouter(t, "whsec_test", "")
	body := `{"type":"checkout.session.completed"}`

	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1700000000,v1="+strings.Repeat("ab", 32))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("forged signature accepted, status = %d", w.Code)
	}
}

func TestWebhookMissingHeaderRejected(t *testing.T) {
	r := webhookRouter(t, "whsec_test", "")

	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("missing header accepted, status = %d", w.Code)
	}
}

func TestWebhookSandboxModeSkipsVerification(t *testing.T) {
	r := webhookRouter(t, "whsec_test", "sandbox")

	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("sandbox mode should skip verification, status = %d", w.Code)
	}
}

func TestParseSignatureHeader(t *testing.T) {
	ts, sigs := parseSignatureHeader("t=1700000000,v1=aaa,v1=bbb,v0=ignored")
	if ts != "1700000000" {
		t.Fatalf("timestamp = %q", ts)
	}
	if len(sigs) != 2 || sigs[0] != "aaa" || sigs[1] != "bbb" {
		t.Fatalf("signatures = %v", sigs)
	}

	ts, sigs = parseSignatureHeader("garbage")
	if ts != "" || len(sigs) != 0 {
		t.Fatalf("malformed header should parse to nothing, got %q %v", ts, sigs)
	}
}
