package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/httpresp"
	"github.com/jlbeauty/salon-booking-api/internal/middleware"
	"github.com/jlbeauty/salon-booking-api/internal/models"
	"github.com/jlbeauty/salon-booking-api/internal/roles"
)

// ======================================================
// HANDLER
// ======================================================

type UserAdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserAdminHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *UserAdminHandler {
	return &UserAdminHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=client admin"`
}

// ======================================================
// OPERATIONS
// ======================================================

func (h *UserAdminHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Une erreur est survenue.")
		return
	}
	httpresp.List(c, users)
}

// Lookup finds a single user by exact email, used by the role panel's
// promote-by-email form.
func (h *UserAdminHandler) Lookup(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_required"})
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeBusinessError(c, httperr.ErrBusiness("user_not_found"))
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	httpresp.OK(c, user)
}

// UpdateRole flips a user between client and admin. Admins cannot touch
// their own role, so the panel can never lock out its last admin by
// accident.
func (h *UserAdminHandler) UpdateRole(c *gin.Context) {
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var target models.User
	if err := h.db.First(&target, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeBusinessError(c, httperr.ErrBusiness("user_not_found"))
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	actorID := c.GetString(middleware.ContextUserID)
	actorEmail := strings.ToLower(strings.TrimSpace(c.GetString(middleware.ContextUserEmail)))
	if target.ID == actorID || (actorEmail != "" && actorEmail == strings.ToLower(target.Email)) {
		writeBusinessError(c, httperr.ErrBusiness("self_role_change"))
		return
	}

	if req.Role != roles.RoleAdmin && req.Role != roles.RoleClient {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	previous := target.Role
	if err := h.db.Model(&target).Update("role", req.Role).Error; err != nil {
		httperr.Internal(c, "failed_to_update_role", "Une erreur est survenue.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "user_role_changed",
		Entity:   "user",
		EntityID: target.ID,
		Metadata: gin.H{"from": previous, "to": req.Role},
	})

	httpresp.OK(c, target)
}
