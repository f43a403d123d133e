package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/cache"
	"github.com/jlbeauty/salon-booking-api/internal/httpresp"
	"github.com/jlbeauty/salon-booking-api/internal/models"
)

// PublicHandler serves the unauthenticated catalog reads backing the
// landing page and the wizard's first two steps.
type PublicHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

func NewPublicHandler(db *gorm.DB, catalog *cache.Catalog) *PublicHandler {
	return &PublicHandler{db: db, catalog: catalog}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if h.catalog.Get(c.Request.Context(), cache.KeyServices, &services) {
		httpresp.List(c, services)
		return
	}

	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	h.catalog.Set(c.Request.Context(), cache.KeyServices, services)
	httpresp.List(c, services)
}

func (h *PublicHandler) ListTeam(c *gin.Context) {
	var team []models.TeamMember
	if h.catalog.Get(c.Request.Context(), cache.KeyTeam, &team) {
		httpresp.List(c, team)
		return
	}

	if err := h.db.Order("id ASC").Find(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_team"})
		return
	}

	h.catalog.Set(c.Request.Context(), cache.KeyTeam, team)
	httpresp.List(c, team)
}

func (h *PublicHandler) ListReviews(c *gin.Context) {
	var reviews []models.Review
	if h.catalog.Get(c.Request.Context(), cache.KeyReviews, &reviews) {
		httpresp.List(c, reviews)
		return
	}

	if err := h.db.
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_reviews"})
		return
	}

	h.catalog.Set(c.Request.Context(), cache.KeyReviews, reviews)
	httpresp.List(c, reviews)
}
