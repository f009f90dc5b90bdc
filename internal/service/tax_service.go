package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"gramseva/config"
	"gramseva/internal/domain"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/pkg/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrorKind classifies tax-payment failures so handlers can map them to
// HTTP statuses without string matching.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindPersistence
	KindUpstream
	KindSignature
)

// TaxError carries the failure class alongside the underlying cause.
type TaxError struct {
	Kind ErrorKind
	Err  error
}

func (e *TaxError) Error() string { return e.Err.Error() }
func (e *TaxError) Unwrap() error { return e.Err }

func taxErr(kind ErrorKind, format string, args ...interface{}) *TaxError {
	return &TaxError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the error kind; unknown errors default to KindUpstream.
func KindOf(err error) ErrorKind {
	var te *TaxError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUpstream
}

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

type InitiateTaxRequest struct {
	TaxType        string
	Amount         float64
	PayerName      string
	PayerMobile    string
	PayerEmail     string
	VillageAccount string
	VillageID      *uint
}

type InitiateTaxResult struct {
	OrderID          string
	PaymentSessionID string
	PaymentURL       string
}

// TaxService owns the tax-payment lifecycle: order initiation against the
// gateway and reconciliation of the stored record. All configuration is
// injected so the service is testable without ambient state.
type TaxService struct {
	cfg     *config.CashfreeConfig
	repo    *repository.TaxPaymentRepository
	gateway payment.Gateway
}

func NewTaxService(cfg *config.CashfreeConfig, repo *repository.TaxPaymentRepository, gateway payment.Gateway) *TaxService {
	return &TaxService{cfg: cfg, repo: repo, gateway: gateway}
}

// newOrderID builds TAX_<unix-millis>_<random suffix>. Uniqueness is
// advisory here; the unique index on tax_payments.order_id is the backstop
// and a collision surfaces as a creation failure.
func newOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("TAX_%d_%s", now.UnixMilli(), suffix)
}

// Initiate validates the request, persists a pending record and asks the
// gateway for a checkout session. The record is written before the gateway
// is contacted so every gateway order is traceable in storage, even when
// the outbound call fails.
func (s *TaxService) Initiate(ctx context.Context, req InitiateTaxRequest) (*InitiateTaxResult, error) {
	if strings.TrimSpace(req.PayerName) == "" {
		return nil, taxErr(KindValidation, "payer name is required")
	}
	if !mobilePattern.MatchString(req.PayerMobile) {
		return nil, taxErr(KindValidation, "payer mobile must be exactly 10 digits")
	}
	if strings.TrimSpace(req.TaxType) == "" {
		return nil, taxErr(KindValidation, "tax type is required")
	}
	if req.Amount <= 0 {
		return nil, taxErr(KindValidation, "amount must be greater than zero")
	}

	orderID := newOrderID(time.Now())
	record := &models.TaxPayment{
		OrderID:        orderID,
		TaxType:        req.TaxType,
		Amount:         req.Amount,
		PayerName:      req.PayerName,
		PayerMobile:    req.PayerMobile,
		PayerEmail:     req.PayerEmail,
		VillageAccount: req.VillageAccount,
		VillageID:      req.VillageID,
		PaymentStatus:  domain.PaymentStatusPending,
	}
	if err := s.repo.Create(record); err != nil {
		return nil, taxErr(KindPersistence, "create payment record: %w", err)
	}

	resp, err := s.gateway.CreateOrder(ctx, payment.OrderRequest{
		OrderID:       orderID,
		Amount:        req.Amount,
		Currency:      "INR",
		CustomerID:    req.PayerMobile,
		CustomerName:  req.PayerName,
		CustomerEmail: req.PayerEmail,
		CustomerPhone: req.PayerMobile,
		ReturnURL:     fmt.Sprintf("%s/tax-payment/receipt?order_id=%s", s.cfg.ReturnBaseURL, orderID),
		NotifyURL:     s.cfg.NotifyBaseURL + "/api/v1/webhooks/tax-payment",
	})
	if err != nil {
		// The pending record stays behind for manual reconciliation; no
		// money moved because the gateway never issued a session.
		log.Printf("[TAX] gateway order creation failed order_id=%s: %v", orderID, err)
		return nil, taxErr(KindUpstream, "gateway order creation: %w", err)
	}
	log.Printf("[TAX] initiated order_id=%s type=%s amount=%.2f", orderID, req.TaxType, req.Amount)
	return &InitiateTaxResult{
		OrderID:          orderID,
		PaymentSessionID: resp.PaymentSessionID,
		PaymentURL:       resp.PaymentLink,
	}, nil
}

// Verify reconciles one order against the gateway's authoritative status.
// Both the webhook and the citizen's post-redirect poll land here, so the
// two paths cannot diverge. An already-successful record is returned as-is;
// a failed record is re-evaluated, which deliberately lets a late
// settlement flip it to success on a later check.
func (s *TaxService) Verify(ctx context.Context, orderID string) (*models.TaxPayment, error) {
	if orderID == "" {
		return nil, taxErr(KindValidation, "order id is required")
	}
	record, err := s.repo.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taxErr(KindNotFound, "no payment record for order %s", orderID)
		}
		return nil, taxErr(KindPersistence, "load payment record: %w", err)
	}
	if record.PaymentStatus == domain.PaymentStatusSuccess {
		return record, nil
	}

	status, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, taxErr(KindUpstream, "gateway status query: %w", err)
	}

	newStatus := domain.PaymentStatusFailed
	var paymentDate *time.Time
	if status.OrderStatus == payment.OrderStatusPaid {
		newStatus = domain.PaymentStatusSuccess
		now := time.Now()
		paymentDate = &now
	}
	if err := s.repo.Reconcile(orderID, status.CFOrderID, newStatus, paymentDate); err != nil {
		return nil, taxErr(KindPersistence, "update payment record: %w", err)
	}
	log.Printf("[TAX] reconciled order_id=%s gateway_status=%s -> %s", orderID, status.OrderStatus, newStatus)

	record, err = s.repo.GetByOrderID(orderID)
	if err != nil {
		return nil, taxErr(KindPersistence, "reload payment record: %w", err)
	}
	return record, nil
}
