package handler

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gramseva/config"
	"gramseva/internal/domain"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/internal/service"
	"gramseva/pkg/payment"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type paidGateway struct{}

func (paidGateway) CreateOrder(ctx context.Context, req payment.OrderRequest) (*payment.OrderResponse, error) {
	return &payment.OrderResponse{PaymentSessionID: "s"}, nil
}

func (paidGateway) GetOrder(ctx context.Context, orderID string) (*payment.OrderStatus, error) {
	return &payment.OrderStatus{OrderID: orderID, OrderStatus: payment.OrderStatusPaid, CFOrderID: "42"}, nil
}

func newWebhookFixture(t *testing.T, secret string) (*gin.Engine, *repository.TaxPaymentRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TaxPayment{}, &models.AuditLog{}))

	repo := repository.NewTaxPaymentRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	cfg := &config.Config{Cashfree: config.CashfreeConfig{WebhookSecret: secret}}
	svc := service.NewTaxService(&cfg.Cashfree, repo, paidGateway{})
	h := NewTaxWebhookHandler(svc, auditRepo, cfg)

	r := gin.New()
	r.POST("/api/v1/webhooks/tax-payment", h.Handle)
	return r, repo
}

func seedPending(t *testing.T, repo *repository.TaxPaymentRepository, orderID string) {
	t.Helper()
	require.NoError(t, repo.Create(&models.TaxPayment{
		OrderID:       orderID,
		TaxType:       "water",
		Amount:        300,
		PayerName:     "Sita Jadhav",
		PayerMobile:   "9000000000",
		PaymentStatus: domain.PaymentStatusPending,
	}))
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/tax-payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("x-webhook-signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookValidSignatureReconciles(t *testing.T) {
	r, repo := newWebhookFixture(t, "whsec_test")
	seedPending(t, repo, "TAX_1_abc")

	body := []byte(`{"data":{"order":{"order_id":"TAX_1_abc"}}}`)
	w := postWebhook(r, body, sign("whsec_test", body))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["received"])
	assert.Equal(t, domain.PaymentStatusSuccess, resp["payment_status"])

	record, err := repo.GetByOrderID("TAX_1_abc")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccess, record.PaymentStatus)
}

func TestWebhookMissingSignatureRejected(t *testing.T) {
	r, repo := newWebhookFixture(t, "whsec_test")
	seedPending(t, repo, "TAX_2_abc")

	body := []byte(`{"data":{"order":{"order_id":"TAX_2_abc"}}}`)
	w := postWebhook(r, body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Record must be untouched.
	record, err := repo.GetByOrderID("TAX_2_abc")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, record.PaymentStatus)
}

func TestWebhookBadSignatureRejected(t *testing.T) {
	r, repo := newWebhookFixture(t, "whsec_test")
	seedPending(t, repo, "TAX_3_abc")

	body := []byte(`{"data":{"order":{"order_id":"TAX_3_abc"}}}`)
	w := postWebhook(r, body, sign("wrong_secret", body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	record, err := repo.GetByOrderID("TAX_3_abc")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, record.PaymentStatus)
}

func TestWebhookNoSecretConfiguredSkipsCheck(t *testing.T) {
	r, repo := newWebhookFixture(t, "")
	seedPending(t, repo, "TAX_4_abc")

	body := []byte(`{"order_id":"TAX_4_abc"}`)
	w := postWebhook(r, body, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookUnknownOrder(t *testing.T) {
	r, _ := newWebhookFixture(t, "whsec_test")
	body := []byte(`{"orderId":"TAX_missing"}`)
	w := postWebhook(r, body, sign("whsec_test", body))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebhookOrderIDMissing(t *testing.T) {
	r, _ := newWebhookFixture(t, "whsec_test")
	body := []byte(`{"event":"PAYMENT_SUCCESS"}`)
	w := postWebhook(r, body, sign("whsec_test", body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractOrderID(t *testing.T) {
	tests := []struct {
		payload string
		want    string
		found   bool
	}{
		{`{"data":{"order":{"order_id":"A"}}}`, "A", true},
		{`{"order":{"order_id":"B"}}`, "B", true},
		{`{"data":{"orderId":"C"}}`, "C", true},
		{`{"orderId":"D"}`, "D", true},
		{`{"order_id":"E"}`, "E", true},
		// Nested form wins over flat keys.
		{`{"orderId":"flat","data":{"order":{"order_id":"nested"}}}`, "nested", true},
		{`{"order_id":""}`, "", false},
		{`{"order_id":7}`, "", false},
		{`{}`, "", false},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			var payload map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &payload))
			got, ok := extractOrderID(payload)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
