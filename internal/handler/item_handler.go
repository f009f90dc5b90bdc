package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"gramseva/internal/domain"
	"gramseva/internal/middleware"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/internal/service"
	"gramseva/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

const maxItemImageBytes = 5 << 20

// ItemHandler serves the village marketplace. Approved citizens post
// listings; listings wait in PENDING until an admin moderates them.
type ItemHandler struct {
	repo     *repository.ItemRepository
	cloud    cloudinary.Client
	notifSvc *service.NotificationService
}

func NewItemHandler(repo *repository.ItemRepository, cloud cloudinary.Client, notifSvc *service.NotificationService) *ItemHandler {
	return &ItemHandler{repo: repo, cloud: cloud, notifSvc: notifSvc}
}

// List is the public marketplace feed of approved listings.
func (h *ItemHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListApproved(c.Query("category"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	item, err := h.repo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Create accepts a multipart form: listing fields plus an optional image.
func (h *ItemHandler) Create(c *gin.Context) {
	var req struct {
		Title       string  `form:"title" binding:"required,max=255"`
		Description string  `form:"description"`
		Category    string  `form:"category" binding:"max=64"`
		PriceRupees float64 `form:"price_rupees" binding:"required,gt=0"`
		Mobile      string  `form:"mobile" binding:"required,min=10,max=16"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sellerID := middleware.GetUserID(c)
	item := &models.Item{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		PriceRupees: req.PriceRupees,
		Mobile:      req.Mobile,
		Status:      domain.ItemStatusPending,
	}
	if file, err := c.FormFile("image"); err == nil {
		if h.cloud == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image upload not configured"})
			return
		}
		if file.Size > maxItemImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image too large (max 5MB)"})
			return
		}
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read image"})
			return
		}
		defer f.Close()
		publicID := fmt.Sprintf("item_%d_%d", sellerID, time.Now().UnixMilli())
		url, thumb, err := h.cloud.UploadImage(c.Request.Context(), f, "marketplace", publicID)
		if err != nil {
			log.Printf("[items] image upload failed: seller=%d err=%v", sellerID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
			return
		}
		item.ImageURL = url
		item.ThumbnailURL = thumb
	}
	if err := h.repo.Create(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// Mine lists the seller's own items in every moderation state.
func (h *ItemHandler) Mine(c *gin.Context) {
	list, err := h.repo.ListBySeller(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

// Delete removes the seller's own listing.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	item, err := h.repo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	userID := middleware.GetUserID(c)
	if item.SellerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		return
	}
	if err := h.repo.Delete(item.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Remove is the admin takedown of any listing, regardless of seller.
func (h *ItemHandler) Remove(c *gin.Context) {
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

// ListForModeration is the admin queue, defaulting to pending listings.
func (h *ItemHandler) ListForModeration(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	status := c.DefaultQuery("status", domain.ItemStatusPending)
	list, err := h.repo.ListByStatus(status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

// Moderate approves or rejects a pending listing and notifies the seller.
func (h *ItemHandler) Moderate(c *gin.Context) {
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
	item, err := h.repo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	status := domain.ItemStatusRejected
	if *req.Approved {
		status = domain.ItemStatusApproved
	}
	if err := h.repo.UpdateStatus(item.ID, status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if h.notifSvc != nil {
		_ = h.notifSvc.NotifyItemModerated(item.SellerID, item.ID, *req.Approved)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}
