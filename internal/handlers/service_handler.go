package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	"github.com/jlbeauty/salon-booking-api/internal/cache"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/httpresp"
	"github.com/jlbeauty/salon-booking-api/internal/middleware"
	"github.com/jlbeauty/salon-booking-api/internal/models"
	"github.com/jlbeauty/salon-booking-api/internal/seed"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
	seeder  *seed.Seeder
	audit   *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, catalog *cache.Catalog, seeder *seed.Seeder, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, catalog: catalog, seeder: seeder, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    *int   `json:"price" binding:"required,min=0"`
	Duration string `json:"duration" binding:"required"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

type UpdateServiceRequest struct {
	Name     *string `json:"name"`
	Price    *int    `json:"price"`
	Duration *string `json:"duration"`
	Icon     *string `json:"icon"`
	Category *string `json:"category"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Une erreur est survenue.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	service := models.Service{
		ID:       req.ID,
		Name:     req.Name,
		Price:    *req.Price,
		Duration: req.Duration,
		Icon:     req.Icon,
		Category: req.Category,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Une erreur est survenue.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyServices)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: service.ID,
		Metadata: service,
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeBusinessError(c, httperr.ErrBusiness("service_not_found"))
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	if len(updates) > 0 {
		if err := h.db.Model(&service).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_service", "Une erreur est survenue.")
			return
		}
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyServices)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: service.ID,
		Metadata: updates,
	})

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	result := h.db.Delete(&models.Service{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Une erreur est survenue.")
		return
	}
	if result.RowsAffected == 0 {
		writeBusinessError(c, httperr.ErrBusiness("service_not_found"))
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyServices)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: c.Param("id"),
	})

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *ServiceHandler) Seed(c *gin.Context) {
	inserted, err := h.seeder.SeedServices(c.Request.Context())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyServices)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "services_seeded",
		Entity:   "service",
		Metadata: gin.H{"inserted": inserted},
	})

	c.JSON(http.StatusCreated, gin.H{"inserted": inserted})
}

// auditActor pulls the acting admin out of the request context for the
// audit trail. Nil when the route is somehow unauthenticated.
func auditActor(c *gin.Context) *string {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		return nil
	}
	return &id
}
