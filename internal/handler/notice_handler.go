package handler

import (
	"net/http"
	"strconv"
	"time"

	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/internal/ws"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	repo   *repository.NoticeRepository
	ticker *ws.TickerHub
}

func NewNoticeHandler(repo *repository.NoticeRepository, ticker *ws.TickerHub) *NoticeHandler {
	return &NoticeHandler{repo: repo, ticker: ticker}
}

// List is the public notice board, optionally filtered by category
// (tender, meeting, order).
func (h *NoticeHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListActive(c.Query("category"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": list})
}

func (h *NoticeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	n, err := h.repo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": n})
}

type noticeRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	TitleMr       string `json:"title_mr" binding:"max=255"`
	Description   string `json:"description"`
	DescriptionMr string `json:"description_mr"`
	Category      string `json:"category" binding:"max=64"`
	NoticeDate    string `json:"notice_date"` // YYYY-MM-DD
	AttachmentURL string `json:"attachment_url" binding:"max=512"`
	IsActive      *bool  `json:"is_active"`
}

func (h *NoticeHandler) Create(c *gin.Context) {
	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n := &models.Notice{
		Title:         req.Title,
		TitleMr:       req.TitleMr,
		Description:   req.Description,
		DescriptionMr: req.DescriptionMr,
		Category:      req.Category,
		AttachmentURL: req.AttachmentURL,
		IsActive:      true,
	}
	if req.NoticeDate != "" {
		d, err := time.Parse("2006-01-02", req.NoticeDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notice_date format (use YYYY-MM-DD)"})
			return
		}
		n.NoticeDate = &d
	}
	if req.IsActive != nil {
		n.IsActive = *req.IsActive
	}
	if err := h.repo.Create(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if h.ticker != nil && n.IsActive {
		h.ticker.Publish(ws.TickerItem{
			Kind:     "notice",
			ID:       n.ID,
			Title:    n.Title,
			TitleMr:  n.TitleMr,
			Category: n.Category,
		})
	}
	c.JSON(http.StatusCreated, gin.H{"notice": n})
}

func (h *NoticeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	n, err := h.repo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
		return
	}
	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n.Title = req.Title
	n.TitleMr = req.TitleMr
	n.Description = req.Description
	n.DescriptionMr = req.DescriptionMr
	n.Category = req.Category
	n.AttachmentURL = req.AttachmentURL
	if req.NoticeDate != "" {
		d, err := time.Parse("2006-01-02", req.NoticeDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notice_date format (use YYYY-MM-DD)"})
			return
		}
		n.NoticeDate = &d
	}
	if req.IsActive != nil {
		n.IsActive = *req.IsActive
	}
	if err := h.repo.Update(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": n})
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *NoticeHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": list})
}
