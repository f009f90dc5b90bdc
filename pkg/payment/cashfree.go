package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// CashfreeClient talks to the Cashfree PG orders API.
type CashfreeClient struct {
	BaseURL    string
	AppID      string
	SecretKey  string
	APIVersion string
	client     *http.Client
}

func NewCashfreeClient(baseURL, appID, secretKey, apiVersion string) *CashfreeClient {
	if baseURL == "" {
		baseURL = "https://sandbox.cashfree.com/pg"
	}
	if apiVersion == "" {
		apiVersion = "2023-08-01"
	}
	return &CashfreeClient{
		BaseURL:    baseURL,
		AppID:      appID,
		SecretKey:  secretKey,
		APIVersion: apiVersion,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

type cashfreeOrderReq struct {
	OrderID         string            `json:"order_id"`
	OrderAmount     float64           `json:"order_amount"`
	OrderCurrency   string            `json:"order_currency"`
	CustomerDetails cashfreeCustomer  `json:"customer_details"`
	OrderMeta       cashfreeOrderMeta `json:"order_meta"`
}

type cashfreeCustomer struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type cashfreeOrderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url"`
}

type cashfreeOrderResp struct {
	CFOrderID        json.Number `json:"cf_order_id"`
	OrderID          string      `json:"order_id"`
	OrderStatus      string      `json:"order_status"`
	OrderAmount      float64     `json:"order_amount"`
	PaymentSessionID string      `json:"payment_session_id"`
	PaymentLink      string      `json:"payment_link"`
	Message          string      `json:"message"`
}

// CreateOrder registers the order with Cashfree and returns the hosted
// checkout session. The caller must have persisted its own record first.
func (c *CashfreeClient) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	email := req.CustomerEmail
	if email == "" {
		// Cashfree requires an email on customer_details.
		email = req.CustomerPhone + "@example.com"
	}
	payload := cashfreeOrderReq{
		OrderID:       req.OrderID,
		OrderAmount:   req.Amount,
		OrderCurrency: currency,
		CustomerDetails: cashfreeCustomer{
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			CustomerEmail: email,
			CustomerPhone: req.CustomerPhone,
		},
		OrderMeta: cashfreeOrderMeta{
			ReturnURL: req.ReturnURL,
			NotifyURL: req.NotifyURL,
		},
	}
	body, _ := json.Marshal(payload)
	apiReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(apiReq)
	log.Printf("[CASHFREE] POST /orders order_id=%s amount=%.2f", req.OrderID, req.Amount)
	resp, err := c.client.Do(apiReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[CASHFREE] create order failed status=%d body=%s", resp.StatusCode, string(respBody))
		var apiErr cashfreeOrderResp
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("cashfree: %s", apiErr.Message)
		}
		return nil, fmt.Errorf("cashfree: create order: %d", resp.StatusCode)
	}
	var out cashfreeOrderResp
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("cashfree: decode order response: %w", err)
	}
	return &OrderResponse{
		CFOrderID:        out.CFOrderID.String(),
		PaymentSessionID: out.PaymentSessionID,
		PaymentLink:      out.PaymentLink,
		OrderStatus:      out.OrderStatus,
	}, nil
}

// GetOrder queries the authoritative order status.
func (c *CashfreeClient) GetOrder(ctx context.Context, orderID string) (*OrderStatus, error) {
	apiReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(apiReq)
	resp, err := c.client.Do(apiReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[CASHFREE] get order failed order_id=%s status=%d body=%s", orderID, resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("cashfree: get order: %d", resp.StatusCode)
	}
	var out cashfreeOrderResp
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("cashfree: decode status response: %w", err)
	}
	return &OrderStatus{
		CFOrderID:   out.CFOrderID.String(),
		OrderID:     out.OrderID,
		OrderStatus: out.OrderStatus,
		OrderAmount: out.OrderAmount,
	}, nil
}

func (c *CashfreeClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.AppID)
	req.Header.Set("x-client-secret", c.SecretKey)
	req.Header.Set("x-api-version", c.APIVersion)
}
