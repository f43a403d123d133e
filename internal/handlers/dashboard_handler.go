package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/config"
	bookingdomain "github.com/jlbeauty/salon-booking-api/internal/domain/booking"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/httpresp"
	"github.com/jlbeauty/salon-booking-api/internal/i18n"
	"github.com/jlbeauty/salon-booking-api/internal/models"
	"github.com/jlbeauty/salon-booking-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewDashboardHandler(db *gorm.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{db: db, config: cfg}
}

// ======================================================
// RESPONSES
// ======================================================

type DashboardOverview struct {
	TotalAppointments int64   `json:"total_appointments"`
	TodayAppointments int64   `json:"today_appointments"`
	Revenue           int64   `json:"revenue"`
	Currency          string  `json:"currency"`
	Satisfaction      float64 `json:"satisfaction"`

	Recent []RecentAppointment `json:"recent"`
}

type RecentAppointment struct {
	ID               string `json:"id"`
	UserName         string `json:"user_name"`
	ServiceName      string `json:"service_name"`
	ProfessionalName string `json:"professional_name"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Status           string `json:"status"`
	StatusLabel      string `json:"status_label"`
	Reference        string `json:"reference"`
}

// ======================================================
// OVERVIEW
// ======================================================

// Overview aggregates the admin landing numbers. Revenue counts every
// non-cancelled booking at its captured price; satisfaction is the
// displayed salon rating, which is editorial rather than computed.
func (h *DashboardHandler) Overview(c *gin.Context) {
	var overview DashboardOverview
	overview.Currency = bookingdomain.Currency
	overview.Satisfaction = 4.9

	if err := h.db.Model(&models.Appointment{}).
		Count(&overview.TotalAppointments).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Une erreur est survenue.")
		return
	}

	today := timezone.Today(h.config.Timezone)
	if err := h.db.Model(&models.Appointment{}).
		Where("date = ? AND status <> ?", today, string(bookingdomain.StatusCancelled)).
		Count(&overview.TodayAppointments).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Une erreur est survenue.")
		return
	}

	var revenue *int64
	if err := h.db.Model(&models.Appointment{}).
		Where("status <> ?", string(bookingdomain.StatusCancelled)).
		Select("SUM(service_price)").
		Scan(&revenue).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Une erreur est survenue.")
		return
	}
	if revenue != nil {
		overview.Revenue = *revenue
	}

	var recent []models.Appointment
	if err := h.db.Model(&models.Appointment{}).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Une erreur est survenue.")
		return
	}

	overview.Recent = make([]RecentAppointment, 0, len(recent))
	for _, ap := range recent {
		overview.Recent = append(overview.Recent, RecentAppointment{
			ID:               ap.ID,
			UserName:         ap.UserName,
			ServiceName:      i18n.ServiceName(ap.ServiceID, ap.ServiceName),
			ProfessionalName: ap.ProfessionalName,
			Date:             ap.Date,
			Time:             ap.Time,
			Status:           ap.Status,
			StatusLabel:      i18n.StatusLabel(ap.Status),
			Reference:        ap.Reference,
		})
	}

	httpresp.OK(c, overview)
}
