package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingdomain "github.com/jlbeauty/salon-booking-api/internal/domain/booking"
	wizarddomain "github.com/jlbeauty/salon-booking-api/internal/domain/wizard"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/i18n"
	"github.com/jlbeauty/salon-booking-api/internal/middleware"
	"github.com/jlbeauty/salon-booking-api/internal/timezone"
	ucbooking "github.com/jlbeauty/salon-booking-api/internal/usecase/booking"
	"github.com/jlbeauty/salon-booking-api/internal/wizard"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler drives the four-step wizard. Drafts are anonymous and
// server-held; only the confirm route sits behind authentication, so an
// unauthenticated confirm is a plain 401 and the SPA redirects to
// /connexion (the draft is not carried across).
type BookingHandler struct {
	store     wizard.Store
	repo      bookingdomain.Repository
	confirmUC *ucbooking.ConfirmBooking
}

func NewBookingHandler(
	store wizard.Store,
	repo bookingdomain.Repository,
	confirmUC *ucbooking.ConfirmBooking,
) *BookingHandler {
	return &BookingHandler{
		store:     store,
		repo:      repo,
		confirmUC: confirmUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SelectProfessionalRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
}

type SelectScheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// DRAFT LIFECYCLE
// ======================================================

func (h *BookingHandler) CreateDraft(c *gin.Context) {
	draft := wizarddomain.NewDraft(uuid.NewString(), timezone.Now())

	// A pre-selected service can ride along from the catalog page.
	if serviceID := c.Query("service"); serviceID != "" {
		if svc, err := h.repo.GetService(c.Request.Context(), serviceID); err == nil {
			draft.SelectService(svc.ID, i18n.ServiceName(svc.ID, svc.Name), svc.Price, svc.Duration)
		}
	}

	if err := h.store.Save(c.Request.Context(), draft); err != nil {
		httperr.Internal(c, "failed_to_save_draft", "Une erreur est survenue.")
		return
	}

	c.JSON(http.StatusCreated, draft)
}

func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ======================================================
// STEP SELECTIONS
// ======================================================

func (h *BookingHandler) SelectService(c *gin.Context) {
	var req SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	draft, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	svc, err := h.repo.GetService(c.Request.Context(), req.ServiceID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			writeBusinessError(c, httperr.ErrBusiness("service_not_found"))
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	draft.SelectService(svc.ID, i18n.ServiceName(svc.ID, svc.Name), svc.Price, svc.Duration)
	if draft.Step == wizarddomain.StepService {
		if err := draft.Advance(); err != nil {
			writeBusinessError(c, err)
			return
		}
	}

	h.saveAndRespond(c, draft)
}

func (h *BookingHandler) SelectProfessional(c *gin.Context) {
	var req SelectProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	draft, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	member, err := h.repo.GetTeamMember(c.Request.Context(), req.ProfessionalID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			writeBusinessError(c, httperr.ErrBusiness("professional_not_found"))
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	draft.SelectProfessional(member.ID, member.Name)
	if draft.Step == wizarddomain.StepProfessional {
		if err := draft.Advance(); err != nil {
			writeBusinessError(c, err)
			return
		}
	}

	h.saveAndRespond(c, draft)
}

func (h *BookingHandler) SelectSchedule(c *gin.Context) {
	var req SelectScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	draft, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if err := draft.SelectSchedule(req.Date, req.Time); err != nil {
		writeBusinessError(c, err)
		return
	}
	if draft.Step == wizarddomain.StepSchedule {
		if err := draft.Advance(); err != nil {
			writeBusinessError(c, err)
			return
		}
	}

	h.saveAndRespond(c, draft)
}

func (h *BookingHandler) Back(c *gin.Context) {
	draft, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	draft.Back()
	h.saveAndRespond(c, draft)
}

// ======================================================
// CONFIRM
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	draft, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	user := ucbooking.Identity{
		ID:    c.GetString(middleware.ContextUserID),
		Name:  c.GetString(middleware.ContextUserName),
		Email: c.GetString(middleware.ContextUserEmail),
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), draft, user)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	// The draft is spent; a fresh wizard run starts from scratch.
	_ = h.store.Delete(c.Request.Context(), draft.ID)

	c.JSON(http.StatusCreated, gin.H{
		"appointment": ap,
		"reference":   ap.Reference,
	})
}

// ======================================================
// SLOTS
// ======================================================

func (h *BookingHandler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": wizarddomain.Slots})
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) saveAndRespond(c *gin.Context, draft *wizarddomain.Draft) {
	if err := h.store.Save(c.Request.Context(), draft); err != nil {
		httperr.Internal(c, "failed_to_save_draft", "Une erreur est survenue.")
		return
	}
	c.JSON(http.StatusOK, draft)
}
