package handler

import (
	"net/http"

	"gramseva/internal/repository"

	"github.com/gin-gonic/gin"
)

// VillageHandler serves the single village profile this deployment hosts.
type VillageHandler struct {
	repo *repository.VillageRepository
}

func NewVillageHandler(repo *repository.VillageRepository) *VillageHandler {
	return &VillageHandler{repo: repo}
}

func (h *VillageHandler) Get(c *gin.Context) {
	v, err := h.repo.Get()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "village not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"village": v})
}

func (h *VillageHandler) Update(c *gin.Context) {
	v, err := h.repo.Get()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "village not configured"})
		return
	}
	var req struct {
		Name       string  `json:"name" binding:"required,max=128"`
		NameMr     string  `json:"name_mr" binding:"max=128"`
		Taluka     string  `json:"taluka" binding:"max=128"`
		District   string  `json:"district" binding:"max=128"`
		State      string  `json:"state" binding:"max=128"`
		Pincode    string  `json:"pincode" binding:"max=10"`
		Population int     `json:"population" binding:"gte=0"`
		AreaHect   float64 `json:"area_hectares" binding:"gte=0"`
		About      string  `json:"about"`
		AboutMr    string  `json:"about_mr"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v.Name = req.Name
	v.NameMr = req.NameMr
	v.Taluka = req.Taluka
	v.District = req.District
	if req.State != "" {
		v.State = req.State
	}
	v.Pincode = req.Pincode
	v.Population = req.Population
	v.AreaHect = req.AreaHect
	v.About = req.About
	v.AboutMr = req.AboutMr
	if err := h.repo.Update(v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"village": v})
}
