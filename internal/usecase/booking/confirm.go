package booking

import (
	"context"
	"time"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	domain "github.com/jlbeauty/salon-booking-api/internal/domain/booking"
	wizarddomain "github.com/jlbeauty/salon-booking-api/internal/domain/wizard"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/models"
	"github.com/jlbeauty/salon-booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Identity is the signed-in customer confirming the booking. The wizard
// itself runs anonymously; only this final action requires one.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// ======================================================
// USE CASE
// ======================================================

type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	draft *wizarddomain.Draft,
	user Identity,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. All four selections present
	// --------------------------------------------------
	if !draft.Complete() {
		return nil, httperr.ErrBusiness("incomplete_booking")
	}

	// --------------------------------------------------
	// 2. Date parses and is today or later (salon-local)
	// --------------------------------------------------
	if _, err := time.Parse("2006-01-02", draft.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if draft.Date < timezone.Today(uc.tz) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// --------------------------------------------------
	// 3. Time is one of the fixed slots
	// --------------------------------------------------
	if !wizarddomain.IsValidSlot(draft.Time) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	// --------------------------------------------------
	// 4. Insert unless the slot is already held
	// --------------------------------------------------
	userName := user.Name
	if userName == "" {
		userName = "Client"
	}

	ap := &models.Appointment{
		UserID:    user.ID,
		UserName:  userName,
		UserEmail: user.Email,

		ServiceID:       draft.ServiceID,
		ServiceName:     draft.ServiceName,
		ServicePrice:    draft.ServicePrice,
		ServiceDuration: draft.ServiceDuration,

		ProfessionalID:   draft.ProfessionalID,
		ProfessionalName: draft.ProfessionalName,

		Date: draft.Date,
		Time: draft.Time,

		Status:    string(domain.InitialStatus()),
		Currency:  domain.Currency,
		Reference: domain.NewReference(),
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{
			"reference":    ap.Reference,
			"professional": ap.ProfessionalID,
			"date":         ap.Date,
			"time":         ap.Time,
		},
	})

	return ap, nil
}
