package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"gramseva/config"
	"gramseva/internal/domain"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/pkg/payment"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TaxPayment{}, &models.AuditLog{}))
	return db
}

// fakeGateway records calls and returns scripted responses.
type fakeGateway struct {
	createErr   error
	getErr      error
	orderStatus string
	cfOrderID   string
	createCalls int
	getCalls    int
	lastCreate  payment.OrderRequest
}

func (f *fakeGateway) CreateOrder(ctx context.Context, req payment.OrderRequest) (*payment.OrderResponse, error) {
	f.createCalls++
	f.lastCreate = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &payment.OrderResponse{
		CFOrderID:        f.cfOrderID,
		PaymentSessionID: "session_abc",
		PaymentLink:      "https://payments.example/checkout/session_abc",
		OrderStatus:      payment.OrderStatusActive,
	}, nil
}

func (f *fakeGateway) GetOrder(ctx context.Context, orderID string) (*payment.OrderStatus, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &payment.OrderStatus{
		CFOrderID:   f.cfOrderID,
		OrderID:     orderID,
		OrderStatus: f.orderStatus,
	}, nil
}

func newTaxService(t *testing.T, gw *fakeGateway) (*TaxService, *repository.TaxPaymentRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewTaxPaymentRepository(db)
	cfg := &config.CashfreeConfig{
		ReturnBaseURL: "https://village.example",
		NotifyBaseURL: "https://api.village.example",
	}
	return NewTaxService(cfg, repo, gw), repo
}

var orderIDPattern = regexp.MustCompile(`^TAX_[0-9]+_[0-9a-f]{9}$`)

func validInitiateRequest() InitiateTaxRequest {
	return InitiateTaxRequest{
		TaxType:     "property",
		Amount:      500,
		PayerName:   "Ramesh Patil",
		PayerMobile: "9876543210",
		PayerEmail:  "ramesh@example.com",
	}
}

func TestInitiatePersistsPendingRecordBeforeGatewayCall(t *testing.T) {
	gw := &fakeGateway{cfOrderID: "220450123"}
	svc, repo := newTaxService(t, gw)

	result, err := svc.Initiate(context.Background(), validInitiateRequest())
	require.NoError(t, err)
	assert.Regexp(t, orderIDPattern, result.OrderID)
	assert.Equal(t, "session_abc", result.PaymentSessionID)
	assert.Equal(t, "https://payments.example/checkout/session_abc", result.PaymentURL)

	record, err := repo.GetByOrderID(result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, record.PaymentStatus)
	assert.Equal(t, 500.0, record.Amount)
	assert.Equal(t, "property", record.TaxType)
	assert.Nil(t, record.PaymentDate)
	assert.Nil(t, record.PaymentID)

	assert.Equal(t, 1, gw.createCalls)
	assert.Equal(t, "INR", gw.lastCreate.Currency)
	assert.Equal(t, "https://village.example/tax-payment/receipt?order_id="+result.OrderID, gw.lastCreate.ReturnURL)
	assert.Equal(t, "https://api.village.example/api/v1/webhooks/tax-payment", gw.lastCreate.NotifyURL)
}

func TestInitiateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InitiateTaxRequest)
	}{
		{"empty payer name", func(r *InitiateTaxRequest) { r.PayerName = "  " }},
		{"mobile too short", func(r *InitiateTaxRequest) { r.PayerMobile = "12345" }},
		{"mobile too long", func(r *InitiateTaxRequest) { r.PayerMobile = "12345678901" }},
		{"mobile not numeric", func(r *InitiateTaxRequest) { r.PayerMobile = "98765abc10" }},
		{"empty tax type", func(r *InitiateTaxRequest) { r.TaxType = "" }},
		{"zero amount", func(r *InitiateTaxRequest) { r.Amount = 0 }},
		{"negative amount", func(r *InitiateTaxRequest) { r.Amount = -10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			svc, _ := newTaxService(t, gw)
			req := validInitiateRequest()
			tt.mutate(&req)
			_, err := svc.Initiate(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Zero(t, gw.createCalls, "gateway must not be contacted on validation failure")
		})
	}
}

func TestInitiateGatewayFailureKeepsPendingRecord(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("connection refused")}
	svc, repo := newTaxService(t, gw)

	_, err := svc.Initiate(context.Background(), validInitiateRequest())
	require.Error(t, err)
	assert.Equal(t, KindUpstream, KindOf(err))

	// The pending row survives for manual reconciliation.
	list, err := repo.List(10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.PaymentStatusPending, list[0].PaymentStatus)
}

func TestVerifyPaidOrderBecomesSuccess(t *testing.T) {
	gw := &fakeGateway{orderStatus: payment.OrderStatusPaid, cfOrderID: "220450123"}
	svc, repo := newTaxService(t, gw)

	result, err := svc.Initiate(context.Background(), validInitiateRequest())
	require.NoError(t, err)

	record, err := svc.Verify(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccess, record.PaymentStatus)
	require.NotNil(t, record.PaymentDate)
	require.NotNil(t, record.PaymentID)
	assert.Equal(t, "220450123", *record.PaymentID)

	// The stored row matches what Verify returned.
	stored, err := repo.GetByOrderID(result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccess, stored.PaymentStatus)
}

func TestVerifyUnpaidOrderBecomesFailed(t *testing.T) {
	gw := &fakeGateway{orderStatus: payment.OrderStatusExpired}
	svc, _ := newTaxService(t, gw)

	result, err := svc.Initiate(context.Background(), validInitiateRequest())
	require.NoError(t, err)

	record, err := svc.Verify(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, record.PaymentStatus)
	assert.Nil(t, record.PaymentDate)
}

func TestVerifySuccessIsTerminal(t *testing.T) {
	gw := &fakeGateway{orderStatus: payment.OrderStatusPaid, cfOrderID: "1"}
	svc, _ := newTaxService(t, gw)

	result, err := svc.Initiate(context.Background(), validInitiateRequest())
	require.NoError(t, err)
	first, err := svc.Verify(context.Background(), result.OrderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusSuccess, first.PaymentStatus)

	// A later verification must not touch the gateway or the record, even
	// if the gateway would now report something else.
	gw.orderStatus = payment.OrderStatusExpired
	callsBefore := gw.getCalls
	second, err := svc.Verify(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccess, second.PaymentStatus)
	assert.Equal(t, first.PaymentDate.Unix(), second.PaymentDate.Unix())
	assert.Equal(t, callsBefore, gw.getCalls)
}

func TestVerifyFailedOrderIsReEvaluated(t *testing.T) {
	gw := &fakeGateway{orderStatus: payment.OrderStatusActive}
	svc, _ := newTaxService(t, gw)

	result, err := svc.Initiate(context.Background(), validInitiateRequest())
	require.NoError(t, err)
	record, err := svc.Verify(context.Background(), result.OrderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusFailed, record.PaymentStatus)

	// Late settlement: the gateway reports PAID on a later check.
	gw.orderStatus = payment.OrderStatusPaid
	gw.cfOrderID = "220450999"
	record, err = svc.Verify(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccess, record.PaymentStatus)
	assert.NotNil(t, record.PaymentDate)
}

func TestVerifyUnknownOrder(t *testing.T) {
	svc, _ := newTaxService(t, &fakeGateway{})
	_, err := svc.Verify(context.Background(), "TAX_000_missing")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestVerifyEmptyOrderID(t *testing.T) {
	svc, _ := newTaxService(t, &fakeGateway{})
	_, err := svc.Verify(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestVerifyGatewayErrorLeavesRecordUntouched(t *testing.T) {
	gw := &fakeGateway{}
	svc, repo := newTaxService(t, gw)
	result, err := svc.Initiate(context.Background(), validInitiateRequest())
	require.NoError(t, err)

	gw.getErr = errors.New("timeout")
	_, err = svc.Verify(context.Background(), result.OrderID)
	require.Error(t, err)
	assert.Equal(t, KindUpstream, KindOf(err))

	record, err := repo.GetByOrderID(result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, record.PaymentStatus)
}

func TestNewOrderIDsDistinct(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTaxService(t, gw)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		result, err := svc.Initiate(context.Background(), validInitiateRequest())
		require.NoError(t, err)
		assert.False(t, seen[result.OrderID], "duplicate order id %s", result.OrderID)
		seen[result.OrderID] = true
	}
}
