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

type TeamHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
	seeder  *seed.Seeder
	audit   *audit.Dispatcher
}

func NewTeamHandler(db *gorm.DB, catalog *cache.Catalog, seeder *seed.Seeder, dispatcher *audit.Dispatcher) *TeamHandler {
	return &TeamHandler{db: db, catalog: catalog, seeder: seeder, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTeamMemberRequest struct {
	ID     string `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	RoleID string `json:"role_id" binding:"required"`
	Bio    string `json:"bio"`
	Image  string `json:"image"`
}

type UpdateTeamMemberRequest struct {
	Name   *string `json:"name"`
	RoleID *string `json:"role_id"`
	Bio    *string `json:"bio"`
	Image  *string `json:"image"`
}

// ======================================================
// CRUD
// ======================================================

func (h *TeamHandler) List(c *gin.Context) {
	var team []models.TeamMember
	if err := h.db.Order("id ASC").Find(&team).Error; err != nil {
		httperr.Internal(c, "failed_to_list_team", "Une erreur est survenue.")
		return
	}
	httpresp.List(c, team)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	member := models.TeamMember{
		ID:     req.ID,
		Name:   req.Name,
		RoleID: req.RoleID,
		Bio:    req.Bio,
		Image:  req.Image,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_team_member", "Une erreur est survenue.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyTeam)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "team_member_created",
		Entity:   "team_member",
		EntityID: member.ID,
		Metadata: member,
	})

	c.JSON(http.StatusCreated, member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var req UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var member models.TeamMember
	if err := h.db.First(&member, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeBusinessError(c, httperr.ErrBusiness("professional_not_found"))
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.RoleID != nil {
		updates["role_id"] = *req.RoleID
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) > 0 {
		if err := h.db.Model(&member).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_team_member", "Une erreur est survenue.")
			return
		}
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyTeam)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "team_member_updated",
		Entity:   "team_member",
		EntityID: member.ID,
		Metadata: updates,
	})

	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	result := h.db.Delete(&models.TeamMember{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_team_member", "Une erreur est survenue.")
		return
	}
	if result.RowsAffected == 0 {
		writeBusinessError(c, httperr.ErrBusiness("professional_not_found"))
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyTeam)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "team_member_deleted",
		Entity:   "team_member",
		EntityID: c.Param("id"),
	})

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *TeamHandler) Seed(c *gin.Context) {
	inserted, err := h.seeder.SeedTeam(c.Request.Context())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.catalog.Invalidate(c.Request.Context(), cache.KeyTeam)
	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "team_seeded",
		Entity:   "team_member",
		Metadata: gin.H{"inserted": inserted},
	})

	c.JSON(http.StatusCreated, gin.H{"inserted": inserted})
}
