package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookingdomain "github.com/jlbeauty/salon-booking-api/internal/domain/booking"
	"github.com/jlbeauty/salon-booking-api/internal/httpresp"
	"github.com/jlbeauty/salon-booking-api/internal/middleware"
	"github.com/jlbeauty/salon-booking-api/internal/models"
	ucbooking "github.com/jlbeauty/salon-booking-api/internal/usecase/booking"
)

// ProfileHandler covers the customer's own dashboard: their bookings,
// rescheduling, cancellation, and their single self-service review.
type ProfileHandler struct {
	db           *gorm.DB
	repo         bookingdomain.Repository
	rescheduleUC *ucbooking.RescheduleBooking
	cancelUC     *ucbooking.CancelBooking
}

func NewProfileHandler(
	db *gorm.DB,
	repo bookingdomain.Repository,
	rescheduleUC *ucbooking.RescheduleBooking,
	cancelUC *ucbooking.CancelBooking,
) *ProfileHandler {
	return &ProfileHandler{
		db:           db,
		repo:         repo,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
	}
}

// --------- Requests ---------

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type CreateMyReviewRequest struct {
	Text    string `json:"text" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Service string `json:"service"`
	Image   string `json:"image"`
}

// --------- Handlers ---------

func (h *ProfileHandler) ListAppointments(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	apps, err := h.repo.ListAppointmentsForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_appointments"})
		return
	}

	httpresp.List(c, apps)
}

func (h *ProfileHandler) Reschedule(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	ap, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		userID,
		c.Param("id"),
		req.Date,
		req.Time,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *ProfileHandler) Cancel(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.cancelUC.Execute(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// CreateReview lets a customer leave one review. The one-per-user rule is
// a pre-insert check, not a uniqueness constraint, mirroring how the
// frontend enforced it.
func (h *ProfileHandler) CreateReview(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	userName := c.GetString(middleware.ContextUserName)
	if userName == "" {
		userName = "Client"
	}

	var req CreateMyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var count int64
	if err := h.db.Model(&models.Review{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "review_already_exists"})
		return
	}

	review := models.Review{
		Name:    userName,
		Text:    req.Text,
		Rating:  req.Rating,
		Service: req.Service,
		Image:   req.Image,
		UserID:  userID,
		Active:  true,
	}

	if err := h.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
