package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

// InfoHandler serves the static village-information pages: development
// works, panchayat members, emergency contacts, the photo gallery and the
// farmers' market price board. Public reads, admin writes.
type InfoHandler struct {
	repo  *repository.InfoRepository
	cloud cloudinary.Client
}

func NewInfoHandler(repo *repository.InfoRepository, cloud cloudinary.Client) *InfoHandler {
	return &InfoHandler{repo: repo, cloud: cloud}
}

func (h *InfoHandler) ListDevWorks(c *gin.Context) {
	list, err := h.repo.ListDevWorks(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"works": list})
}

type devWorkRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	TitleMr     string  `json:"title_mr" binding:"max=255"`
	Description string  `json:"description"`
	Status      string  `json:"status" binding:"required,oneof=planned ongoing completed"`
	BudgetINR   float64 `json:"budget_inr"`
}

func (h *InfoHandler) CreateDevWork(c *gin.Context) {
	var req devWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w := &models.DevWork{
		Title:       req.Title,
		TitleMr:     req.TitleMr,
		Description: req.Description,
		Status:      req.Status,
		BudgetINR:   req.BudgetINR,
	}
	if err := h.repo.CreateDevWork(w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"work": w})
}

func (h *InfoHandler) UpdateDevWork(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	w, err := h.repo.GetDevWork(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "work not found"})
		return
	}
	var req devWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w.Title = req.Title
	w.TitleMr = req.TitleMr
	w.Description = req.Description
	w.Status = req.Status
	w.BudgetINR = req.BudgetINR
	if err := h.repo.UpdateDevWork(w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"work": w})
}

func (h *InfoHandler) DeleteDevWork(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteDevWork(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *InfoHandler) ListMembers(c *gin.Context) {
	list, err := h.repo.ListMembers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": list})
}

type memberRequest struct {
	Name      string `json:"name" binding:"required,max=128"`
	NameMr    string `json:"name_mr" binding:"max=128"`
	Position  string `json:"position" binding:"required,max=128"`
	Mobile    string `json:"mobile" binding:"max=16"`
	PhotoURL  string `json:"photo_url" binding:"max=512"`
	Ward      string `json:"ward" binding:"max=32"`
	SortOrder int    `json:"sort_order"`
}

func (h *InfoHandler) CreateMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := &models.PanchayatMember{
		Name:      req.Name,
		NameMr:    req.NameMr,
		Position:  req.Position,
		Mobile:    req.Mobile,
		PhotoURL:  req.PhotoURL,
		Ward:      req.Ward,
		SortOrder: req.SortOrder,
	}
	if err := h.repo.CreateMember(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": m})
}

func (h *InfoHandler) UpdateMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	m, err := h.repo.GetMember(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.Name = req.Name
	m.NameMr = req.NameMr
	m.Position = req.Position
	m.Mobile = req.Mobile
	m.PhotoURL = req.PhotoURL
	m.Ward = req.Ward
	m.SortOrder = req.SortOrder
	if err := h.repo.UpdateMember(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": m})
}

func (h *InfoHandler) DeleteMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteMember(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *InfoHandler) ListEmergencyContacts(c *gin.Context) {
	list, err := h.repo.ListEmergencyContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": list})
}

func (h *InfoHandler) CreateEmergencyContact(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,max=128"`
		NameMr   string `json:"name_mr" binding:"max=128"`
		Phone    string `json:"phone" binding:"required,max=32"`
		Category string `json:"category" binding:"max=64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ec := &models.EmergencyContact{
		Name:     req.Name,
		NameMr:   req.NameMr,
		Phone:    req.Phone,
		Category: req.Category,
	}
	if err := h.repo.CreateEmergencyContact(ec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contact": ec})
}

func (h *InfoHandler) DeleteEmergencyContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteEmergencyContact(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *InfoHandler) ListGallery(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListGallery(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": list})
}

// UploadGalleryImage takes a multipart photo, stores it on Cloudinary and
// records the gallery entry.
func (h *InfoHandler) UploadGalleryImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image upload not configured"})
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
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
	publicID := fmt.Sprintf("gallery_%d", time.Now().UnixMilli())
	url, thumb, err := h.cloud.UploadImage(c.Request.Context(), f, "gallery", publicID)
	if err != nil {
		log.Printf("[gallery] upload failed: err=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
		return
	}
	sortOrder, _ := strconv.Atoi(c.PostForm("sort_order"))
	g := &models.GalleryImage{
		Caption:      c.PostForm("caption"),
		CaptionMr:    c.PostForm("caption_mr"),
		ImageURL:     url,
		ThumbnailURL: thumb,
		SortOrder:    sortOrder,
	}
	if err := h.repo.CreateGalleryImage(g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": g})
}

func (h *InfoHandler) DeleteGalleryImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteGalleryImage(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *InfoHandler) ListMarketPrices(c *gin.Context) {
	list, err := h.repo.ListMarketPrices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prices": list})
}

type marketPriceRequest struct {
	Commodity   string  `json:"commodity" binding:"required,max=128"`
	CommodityMr string  `json:"commodity_mr" binding:"max=128"`
	Unit        string  `json:"unit" binding:"max=32"`
	PriceMinINR float64 `json:"price_min_inr" binding:"gte=0"`
	PriceMaxINR float64 `json:"price_max_inr" binding:"gte=0"`
	MarketName  string  `json:"market_name" binding:"max=128"`
	EffectiveOn string  `json:"effective_on"` // YYYY-MM-DD, defaults to today
}

func (h *InfoHandler) CreateMarketPrice(c *gin.Context) {
	var req marketPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	effective := time.Now()
	if req.EffectiveOn != "" {
		d, err := time.Parse("2006-01-02", req.EffectiveOn)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid effective_on format (use YYYY-MM-DD)"})
			return
		}
		effective = d
	}
	unit := req.Unit
	if unit == "" {
		unit = "quintal"
	}
	p := &models.MarketPrice{
		Commodity:   req.Commodity,
		CommodityMr: req.CommodityMr,
		Unit:        unit,
		PriceMinINR: req.PriceMinINR,
		PriceMaxINR: req.PriceMaxINR,
		MarketName:  req.MarketName,
		EffectiveOn: effective,
	}
	if err := h.repo.CreateMarketPrice(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"price": p})
}

func (h *InfoHandler) UpdateMarketPrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.repo.GetMarketPrice(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "price not found"})
		return
	}
	var req marketPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.Commodity = req.Commodity
	p.CommodityMr = req.CommodityMr
	if req.Unit != "" {
		p.Unit = req.Unit
	}
	p.PriceMinINR = req.PriceMinINR
	p.PriceMaxINR = req.PriceMaxINR
	p.MarketName = req.MarketName
	if req.EffectiveOn != "" {
		d, err := time.Parse("2006-01-02", req.EffectiveOn)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid effective_on format (use YYYY-MM-DD)"})
			return
		}
		p.EffectiveOn = d
	}
	if err := h.repo.UpdateMarketPrice(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"price": p})
}

func (h *InfoHandler) DeleteMarketPrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteMarketPrice(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
