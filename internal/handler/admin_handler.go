package handler

import (
	"net/http"
	"strconv"

	"gramseva/internal/middleware"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the office-side operations that do not belong to a
// single feature: citizen approvals and the audit trail.
type AdminHandler struct {
	authSvc   *service.AuthService
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditLogRepository
}

func NewAdminHandler(authSvc *service.AuthService, userRepo *repository.UserRepository, auditRepo *repository.AuditLogRepository) *AdminHandler {
	return &AdminHandler{authSvc: authSvc, userRepo: userRepo, auditRepo: auditRepo}
}

// ListUsers defaults to the pending-approval queue; ?status= widens it.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.userRepo.ListByStatus(c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}

// SetApproval approves or rejects a citizen registration and notifies them.
func (h *AdminHandler) SetApproval(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.authSvc.SetApproval(uint(id), *req.Approved); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	action := "user_rejected"
	if *req.Approved {
		action = "user_approved"
	}
	adminID := middleware.GetUserID(c)
	_ = h.auditRepo.Create(&models.AuditLog{
		UserID:     &adminID,
		Action:     action,
		Resource:   "user",
		ResourceID: c.Param("id"),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListAuditLogs shows recent security-relevant events, newest first.
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.auditRepo.List(c.Query("action"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": list})
}
