package handler

import (
	"net/http"
	"strconv"

	"gramseva/internal/models"
	"gramseva/internal/repository"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the village services directory and the government
// schemes board.
type ServiceHandler struct {
	repo *repository.ServiceRepository
}

func NewServiceHandler(repo *repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	list, err := h.repo.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": list})
}

func (h *ServiceHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required,max=128"`
		NameMr    string `json:"name_mr" binding:"max=128"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat := &models.ServiceCategory{Name: req.Name, NameMr: req.NameMr, SortOrder: req.SortOrder}
	if err := h.repo.CreateCategory(cat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

func (h *ServiceHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteCategory(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListServices filters by ?category_id= when given.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)
	list, err := h.repo.ListServices(uint(categoryID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list})
}

type villageServiceRequest struct {
	CategoryID    *uint  `json:"category_id"`
	Name          string `json:"name" binding:"required,max=128"`
	NameMr        string `json:"name_mr" binding:"max=128"`
	Description   string `json:"description"`
	DescriptionMr string `json:"description_mr"`
	Contact       string `json:"contact" binding:"max=32"`
	IsActive      *bool  `json:"is_active"`
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req villageServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := &models.VillageService{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		NameMr:        req.NameMr,
		Description:   req.Description,
		DescriptionMr: req.DescriptionMr,
		Contact:       req.Contact,
		IsActive:      true,
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if err := h.repo.CreateService(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": s})
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s, err := h.repo.GetService(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	var req villageServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.CategoryID = req.CategoryID
	s.Name = req.Name
	s.NameMr = req.NameMr
	s.Description = req.Description
	s.DescriptionMr = req.DescriptionMr
	s.Contact = req.Contact
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if err := h.repo.UpdateService(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": s})
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteService(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ServiceHandler) ListSchemes(c *gin.Context) {
	list, err := h.repo.ListSchemes(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schemes": list})
}

type schemeRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	NameMr        string `json:"name_mr" binding:"max=255"`
	Description   string `json:"description"`
	DescriptionMr string `json:"description_mr"`
	Eligibility   string `json:"eligibility"`
	LinkURL       string `json:"link_url" binding:"max=512"`
	IsActive      *bool  `json:"is_active"`
}

func (h *ServiceHandler) CreateScheme(c *gin.Context) {
	var req schemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := &models.Scheme{
		Name:          req.Name,
		NameMr:        req.NameMr,
		Description:   req.Description,
		DescriptionMr: req.DescriptionMr,
		Eligibility:   req.Eligibility,
		LinkURL:       req.LinkURL,
		IsActive:      true,
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if err := h.repo.CreateScheme(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"scheme": s})
}

func (h *ServiceHandler) UpdateScheme(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s, err := h.repo.GetScheme(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "scheme not found"})
		return
	}
	var req schemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.Name = req.Name
	s.NameMr = req.NameMr
	s.Description = req.Description
	s.DescriptionMr = req.DescriptionMr
	s.Eligibility = req.Eligibility
	s.LinkURL = req.LinkURL
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if err := h.repo.UpdateScheme(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheme": s})
}

func (h *ServiceHandler) DeleteScheme(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteScheme(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
