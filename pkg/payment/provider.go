package payment

import "context"

// Gateway statuses as reported by Cashfree's order query. Anything other
// than PAID is treated as not-paid by the reconciliation step.
const (
	OrderStatusPaid    = "PAID"
	OrderStatusActive  = "ACTIVE"
	OrderStatusExpired = "EXPIRED"
)

// OrderRequest creates a hosted checkout session for one order.
type OrderRequest struct {
	OrderID       string
	Amount        float64
	Currency      string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ReturnURL     string
	NotifyURL     string
}

// OrderResponse is the gateway's answer to order creation.
type OrderResponse struct {
	CFOrderID        string
	PaymentSessionID string
	PaymentLink      string
	OrderStatus      string
}

// OrderStatus is the authoritative state of an order as the gateway sees it.
type OrderStatus struct {
	CFOrderID   string
	OrderID     string
	OrderStatus string
	OrderAmount float64
}

// Gateway abstracts the payment processor so the reconciliation service can
// be tested against a fake.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*OrderStatus, error)
}
