package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	"github.com/jlbeauty/salon-booking-api/internal/cache"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/httpresp"
	"github.com/jlbeauty/salon-booking-api/internal/models"
	"github.com/jlbeauty/salon-booking-api/internal/seed"
)

// ======================================================
// HANDLER
// ======================================================

// ReviewHandler is the moderation side: admins see every review,
// including hidden ones, and can toggle visibility.
type ReviewHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
	seeder  *seed.Seeder
	audit   *audit.Dispatcher
}

func NewReviewHandler(db *gorm.DB, catalog *cache.Catalog, seeder *seed.Seeder, dispatcher *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{db: db, catalog: catalog, seeder: seeder, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Service string `json:"service"`
	Image   string `json:"image"`
	Active  *bool  `json:"active"`
}

type UpdateReviewRequest struct {
	Name    *string `json:"name"`
	Text    *string `json:"text"`
	Rating  *int    `json:"rating"`
	Service *string `json:"service"`
	Image   *string `json:"image"`
	Active  *bool   `json:"active"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ReviewHandler) List(c *gin.Context) {
	var reviews []models.Review
	if err := h.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Une erreur est survenue.")
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	review := models.Review{
		Name:    req.Name,
		Text:    req.Text,
		Rating:  req.Rating,
		Service: req.Service,
		Image:   req.Image,
		Active:  active,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Une erreur est survenue.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyReviews)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "review_created",
		Entity:   "review",
		EntityID: review.ID,
		Metadata: review,
	})

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var review models.Review
	if err := h.db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "review_not_found", "Avis introuvable.")
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_rating"})
			return
		}
		updates["rating"] = *req.Rating
	}
	if req.Service != nil {
		updates["service"] = *req.Service
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := h.db.Model(&review).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_review", "Une erreur est survenue.")
			return
		}
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyReviews)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "review_updated",
		Entity:   "review",
		EntityID: review.ID,
		Metadata: updates,
	})

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	result := h.db.Delete(&models.Review{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_review", "Une erreur est survenue.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "review_not_found", "Avis introuvable.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyReviews)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: c.Param("id"),
	})

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *ReviewHandler) Seed(c *gin.Context) {
	inserted, err := h.seeder.SeedReviews(c.Request.Context())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyReviews)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "reviews_seeded",
		Entity:   "review",
		Metadata: gin.H{"inserted": inserted},
	})

	c.JSON(http.StatusCreated, gin.H{"inserted": inserted})
}
