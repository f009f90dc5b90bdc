package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderSendsAuthHeadersAndPayload(t *testing.T) {
	var gotReq *http.Request
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"cf_order_id": 220450123,
			"order_id": "TAX_1_abc",
			"order_status": "ACTIVE",
			"payment_session_id": "session_xyz",
			"payment_link": "https://payments.cashfree.com/order/session_xyz"
		}`))
	}))
	defer srv.Close()

	c := NewCashfreeClient(srv.URL, "app123", "secret456", "2023-08-01")
	resp, err := c.CreateOrder(context.Background(), OrderRequest{
		OrderID:       "TAX_1_abc",
		Amount:        500,
		CustomerID:    "9876543210",
		CustomerName:  "Ramesh Patil",
		CustomerPhone: "9876543210",
		ReturnURL:     "https://village.example/receipt",
		NotifyURL:     "https://api.village.example/webhook",
	})
	require.NoError(t, err)

	assert.Equal(t, "/orders", gotReq.URL.Path)
	assert.Equal(t, "app123", gotReq.Header.Get("x-client-id"))
	assert.Equal(t, "secret456", gotReq.Header.Get("x-client-secret"))
	assert.Equal(t, "2023-08-01", gotReq.Header.Get("x-api-version"))

	assert.Equal(t, "TAX_1_abc", gotBody["order_id"])
	assert.Equal(t, 500.0, gotBody["order_amount"])
	assert.Equal(t, "INR", gotBody["order_currency"])
	customer := gotBody["customer_details"].(map[string]interface{})
	// Email is required by the gateway; a placeholder is derived from the phone.
	assert.Equal(t, "9876543210@example.com", customer["customer_email"])
	meta := gotBody["order_meta"].(map[string]interface{})
	assert.Equal(t, "https://village.example/receipt", meta["return_url"])
	assert.Equal(t, "https://api.village.example/webhook", meta["notify_url"])

	assert.Equal(t, "220450123", resp.CFOrderID)
	assert.Equal(t, "session_xyz", resp.PaymentSessionID)
	assert.Equal(t, "https://payments.cashfree.com/order/session_xyz", resp.PaymentLink)
}

func TestCreateOrderAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "authentication failed"}`))
	}))
	defer srv.Close()

	c := NewCashfreeClient(srv.URL, "bad", "creds", "")
	_, err := c.CreateOrder(context.Background(), OrderRequest{OrderID: "TAX_1", Amount: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/TAX_9_xyz", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cf_order_id": "220450999",
			"order_id": "TAX_9_xyz",
			"order_status": "PAID",
			"order_amount": 750.5
		}`))
	}))
	defer srv.Close()

	c := NewCashfreeClient(srv.URL, "app", "secret", "")
	status, err := c.GetOrder(context.Background(), "TAX_9_xyz")
	require.NoError(t, err)
	assert.Equal(t, "PAID", status.OrderStatus)
	assert.Equal(t, "220450999", status.CFOrderID)
	assert.Equal(t, 750.5, status.OrderAmount)
}

func TestGetOrderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "order not found"}`))
	}))
	defer srv.Close()

	c := NewCashfreeClient(srv.URL, "app", "secret", "")
	_, err := c.GetOrder(context.Background(), "TAX_missing")
	require.Error(t, err)
}

func TestNewCashfreeClientDefaults(t *testing.T) {
	c := NewCashfreeClient("", "app", "secret", "")
	assert.Equal(t, "https://sandbox.cashfree.com/pg", c.BaseURL)
	assert.Equal(t, "2023-08-01", c.APIVersion)
}
