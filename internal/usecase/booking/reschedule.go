package booking

import (
	"context"
	"time"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	domain "github.com/jlbeauty/salon-booking-api/internal/domain/booking"
	wizarddomain "github.com/jlbeauty/salon-booking-api/internal/domain/wizard"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/models"
)

// RescheduleBooking moves an appointment the customer owns to a new date
// and time. Only those two fields change; no collision check runs here —
// editing keeps the original single-field-update behavior.
type RescheduleBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
	date string,
	timeSlot string,
) (*models.Appointment, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !wizarddomain.IsValidSlot(timeSlot) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap.Date = date
	ap.Time = timeSlot

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"date": date, "time": timeSlot},
	})

	return ap, nil
}
