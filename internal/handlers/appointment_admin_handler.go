package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	bookingdomain "github.com/jlbeauty/salon-booking-api/internal/domain/booking"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/httpresp"
	"github.com/jlbeauty/salon-booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentAdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAppointmentAdminHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AppointmentAdminHandler {
	return &AppointmentAdminHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// OPERATIONS
// ======================================================

// List returns every appointment, newest bookings first. Supports
// ?status= filtering and a free-text ?query= over the denormalized
// customer and catalog columns, which is how the admin panel searches.
func (h *AppointmentAdminHandler) List(c *gin.Context) {
	query := h.db.Model(&models.Appointment{}).Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		if !bookingdomain.IsValidStatus(status) {
			writeBusinessError(c, httperr.ErrBusiness("invalid_status"))
			return
		}
		query = query.Where("status = ?", status)
	}

	if q := c.Query("query"); q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"user_name LIKE ? OR user_email LIKE ? OR service_name LIKE ? OR professional_name LIKE ? OR reference LIKE ?",
			like, like, like, like, like,
		)
	}

	var apps []models.Appointment
	if err := query.Find(&apps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Une erreur est survenue.")
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentAdminHandler) UpdateStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	if !bookingdomain.IsValidStatus(req.Status) {
		writeBusinessError(c, httperr.ErrBusiness("invalid_status"))
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeBusinessError(c, httperr.ErrBusiness("appointment_not_found"))
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	previous := ap.Status
	if err := h.db.Model(&ap).Update("status", req.Status).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Une erreur est survenue.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: gin.H{"from": previous, "to": req.Status},
	})

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentAdminHandler) Delete(c *gin.Context) {
	result := h.db.Delete(&models.Appointment{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Une erreur est survenue.")
		return
	}
	if result.RowsAffected == 0 {
		writeBusinessError(c, httperr.ErrBusiness("appointment_not_found"))
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   auditActor(c),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: c.Param("id"),
	})

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
