package handler

import (
	"net/http"
	"strconv"

	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/internal/ws"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	repo   *repository.AnnouncementRepository
	ticker *ws.TickerHub
}

func NewAnnouncementHandler(repo *repository.AnnouncementRepository, ticker *ws.TickerHub) *AnnouncementHandler {
	return &AnnouncementHandler{repo: repo, ticker: ticker}
}

// List is the public feed of active announcements.
func (h *AnnouncementHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListActive(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": list})
}

func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	a, err := h.repo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcement": a})
}

type announcementRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	TitleMr  string `json:"title_mr" binding:"max=255"`
	Body     string `json:"body"`
	BodyMr   string `json:"body_mr"`
	Category string `json:"category" binding:"max=64"`
	IsActive *bool  `json:"is_active"`
}

// Create publishes an announcement and pushes it onto the live ticker.
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a := &models.Announcement{
		Title:    req.Title,
		TitleMr:  req.TitleMr,
		Body:     req.Body,
		BodyMr:   req.BodyMr,
		Category: req.Category,
		IsActive: true,
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if err := h.repo.Create(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if h.ticker != nil && a.IsActive {
		h.ticker.Publish(ws.TickerItem{
			Kind:     "announcement",
			ID:       a.ID,
			Title:    a.Title,
			TitleMr:  a.TitleMr,
			Category: a.Category,
		})
	}
	c.JSON(http.StatusCreated, gin.H{"announcement": a})
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	a, err := h.repo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
		return
	}
	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.Title = req.Title
	a.TitleMr = req.TitleMr
	a.Body = req.Body
	a.BodyMr = req.BodyMr
	a.Category = req.Category
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if err := h.repo.Update(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcement": a})
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
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

// ListAll is the admin view including inactive announcements.
func (h *AnnouncementHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": list})
}
