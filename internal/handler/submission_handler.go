package handler

import (
	"net/http"
	"strconv"

	"gramseva/internal/domain"
	"gramseva/internal/middleware"
	"gramseva/internal/models"
	"gramseva/internal/repository"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves the three public citizen forms and the admin
// desk that works through them.
type SubmissionHandler struct {
	repo *repository.SubmissionRepository
}

func NewSubmissionHandler(repo *repository.SubmissionRepository) *SubmissionHandler {
	return &SubmissionHandler{repo: repo}
}

func validSubmissionStatus(s string) bool {
	switch s {
	case domain.SubmissionStatusNew, domain.SubmissionStatusInProgress, domain.SubmissionStatusResolved:
		return true
	}
	return false
}

func (h *SubmissionHandler) CreateContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required,max=128"`
		Mobile  string `json:"mobile" binding:"required,len=10,numeric"`
		Email   string `json:"email" binding:"omitempty,email"`
		Subject string `json:"subject" binding:"max=255"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := &models.ContactMessage{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.SubmissionStatusNew,
	}
	if err := h.repo.CreateContact(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submission failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": m.ID})
}

func (h *SubmissionHandler) CreateFeedback(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required,max=128"`
		Mobile  string `json:"mobile" binding:"required,len=10,numeric"`
		Type    string `json:"type" binding:"required,oneof=feedback suggestion complaint"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f := &models.Feedback{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Type:    req.Type,
		Message: req.Message,
		Status:  domain.SubmissionStatusNew,
	}
	if err := h.repo.CreateFeedback(f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submission failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": f.ID})
}

// CreateQuickService files an application for an office service (birth
// certificate, 7/12 extract, NOC). Works without login; a logged-in
// citizen's application is linked to their account.
func (h *SubmissionHandler) CreateQuickService(c *gin.Context) {
	var req struct {
		ServiceType   string `json:"service_type" binding:"required,max=64"`
		ApplicantName string `json:"applicant_name" binding:"required,max=128"`
		Mobile        string `json:"mobile" binding:"required,len=10,numeric"`
		Details       string `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q := &models.QuickServiceRequest{
		ServiceType:   req.ServiceType,
		ApplicantName: req.ApplicantName,
		Mobile:        req.Mobile,
		Details:       req.Details,
		Status:        domain.SubmissionStatusNew,
	}
	if userID := middleware.GetUserID(c); userID != 0 {
		q.UserID = &userID
	}
	if err := h.repo.CreateQuickService(q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submission failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": q.ID})
}

// MyQuickServices lists the authenticated citizen's own applications.
func (h *SubmissionHandler) MyQuickServices(c *gin.Context) {
	list, err := h.repo.ListQuickServicesByUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": list})
}

func (h *SubmissionHandler) ListContacts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListContacts(c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": list})
}

func (h *SubmissionHandler) ListFeedback(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListFeedback(c.Query("type"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": list})
}

func (h *SubmissionHandler) ListQuickServices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListQuickServices(c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": list})
}

type submissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *SubmissionHandler) updateStatus(c *gin.Context, update func(id uint, status string) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req submissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validSubmissionStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	if err := update(uint(id), req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SubmissionHandler) UpdateContactStatus(c *gin.Context) {
	h.updateStatus(c, h.repo.UpdateContactStatus)
}

func (h *SubmissionHandler) UpdateFeedbackStatus(c *gin.Context) {
	h.updateStatus(c, h.repo.UpdateFeedbackStatus)
}

func (h *SubmissionHandler) UpdateQuickServiceStatus(c *gin.Context) {
	h.updateStatus(c, h.repo.UpdateQuickServiceStatus)
}
