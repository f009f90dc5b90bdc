package handler

import (
	"net/http"
	"strconv"

	"gramseva/internal/repository"
	"gramseva/internal/service"

	"github.com/gin-gonic/gin"
)

type TaxPaymentHandler struct {
	svc  *service.TaxService
	repo *repository.TaxPaymentRepository
}

func NewTaxPaymentHandler(svc *service.TaxService, repo *repository.TaxPaymentRepository) *TaxPaymentHandler {
	return &TaxPaymentHandler{svc: svc, repo: repo}
}

// statusForTaxError maps the service's error kinds onto HTTP statuses.
func statusForTaxError(err error) int {
	switch service.KindOf(err) {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindSignature:
		return http.StatusUnauthorized
	case service.KindPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

// Create initiates a tax payment and returns the gateway checkout URL.
// Amount arrives as a string - the web form sends the fixed tax price as
// text - and is parsed here before it crosses into the service.
func (h *TaxPaymentHandler) Create(c *gin.Context) {
	var req struct {
		TaxType        string `json:"taxType" binding:"required"`
		Amount         string `json:"amount" binding:"required"`
		PayerName      string `json:"payerName" binding:"required"`
		PayerMobile    string `json:"payerMobile" binding:"required"`
		PayerEmail     string `json:"payerEmail"`
		VillageAccount string `json:"villageAccount"`
		VillageID      *uint  `json:"villageId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number"})
		return
	}
	result, err := h.svc.Initiate(c.Request.Context(), service.InitiateTaxRequest{
		TaxType:        req.TaxType,
		Amount:         amount,
		PayerName:      req.PayerName,
		PayerMobile:    req.PayerMobile,
		PayerEmail:     req.PayerEmail,
		VillageAccount: req.VillageAccount,
		VillageID:      req.VillageID,
	})
	if err != nil {
		c.JSON(statusForTaxError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"orderId":          result.OrderID,
		"paymentSessionId": result.PaymentSessionID,
		"paymentUrl":       result.PaymentURL,
	})
}

// Verify is the citizen-facing reconciliation endpoint, called after the
// gateway redirects back to the receipt page. No signature is needed: the
// service re-queries the gateway rather than trusting the caller's status.
func (h *TaxPaymentHandler) Verify(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId required"})
		return
	}
	record, err := h.svc.Verify(c.Request.Context(), req.OrderID)
	if err != nil {
		c.JSON(statusForTaxError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": record})
}

// List is the admin view of the payment ledger.
func (h *TaxPaymentHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": list})
}
