package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"gramseva/config"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/internal/service"

	"github.com/gin-gonic/gin"
)

// TaxWebhookHandler receives Cashfree's server-to-server payment
// notifications. The payload shape has varied across gateway API versions,
// so the order id is located by trying a fixed list of extraction
// strategies in priority order.
type TaxWebhookHandler struct {
	svc       *service.TaxService
	auditRepo *repository.AuditLogRepository
	cfg       *config.Config
}

func NewTaxWebhookHandler(svc *service.TaxService, auditRepo *repository.AuditLogRepository, cfg *config.Config) *TaxWebhookHandler {
	return &TaxWebhookHandler{svc: svc, auditRepo: auditRepo, cfg: cfg}
}

// orderIDExtractor is one named strategy for digging the order id out of a
// webhook payload.
type orderIDExtractor struct {
	name string
	fn   func(map[string]interface{}) (string, bool)
}

func digString(m map[string]interface{}, keys ...string) (string, bool) {
	cur := m
	for i, k := range keys {
		v, ok := cur[k]
		if !ok {
			return "", false
		}
		if i == len(keys)-1 {
			s, ok := v.(string)
			return s, ok && s != ""
		}
		cur, ok = v.(map[string]interface{})
		if !ok {
			return "", false
		}
	}
	return "", false
}

// Strategies in priority order; the first hit wins.
var orderIDExtractors = []orderIDExtractor{
	{"data.order.order_id", func(m map[string]interface{}) (string, bool) { return digString(m, "data", "order", "order_id") }},
	{"order.order_id", func(m map[string]interface{}) (string, bool) { return digString(m, "order", "order_id") }},
	{"data.orderId", func(m map[string]interface{}) (string, bool) { return digString(m, "data", "orderId") }},
	{"orderId", func(m map[string]interface{}) (string, bool) { return digString(m, "orderId") }},
	{"order_id", func(m map[string]interface{}) (string, bool) { return digString(m, "order_id") }},
}

func extractOrderID(payload map[string]interface{}) (string, bool) {
	for _, e := range orderIDExtractors {
		if id, ok := e.fn(payload); ok {
			return id, true
		}
	}
	return "", false
}

// Handle verifies the webhook signature, locates the order id and runs the
// shared reconciliation. An unauthenticated webhook must never be able to
// mark a payment successful, so a configured secret makes the signature
// mandatory.
func (h *TaxWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if secret := h.cfg.Cashfree.WebhookSecret; secret != "" {
		sig := c.GetHeader("x-webhook-signature")
		if !verifySignature(secret, body, sig) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	orderID, ok := extractOrderID(payload)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order id not found in payload"})
		return
	}
	record, err := h.svc.Verify(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(statusForTaxError(err), gin.H{"error": err.Error()})
		return
	}
	if h.auditRepo != nil {
		_ = h.auditRepo.Create(&models.AuditLog{
			Action:     "tax_webhook_reconciled",
			Resource:   "tax_payment",
			ResourceID: orderID,
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"received": true, "payment_status": record.PaymentStatus})
}

func verifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
