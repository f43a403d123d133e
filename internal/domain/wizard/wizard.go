package wizard

import (
	"time"

	"github.com/jlbeauty/salon-booking-api/internal/httperr"
)

// ===============================
// Steps
// ===============================

type Step int

const (
	StepService      Step = 1
	StepProfessional Step = 2
	StepSchedule     Step = 3
	StepConfirm      Step = 4
)

// ===============================
// Draft
// ===============================

// Selection accumulates what the client picked across the four steps.
// Fields stay zero until the matching step fills them; going back never
// clears them.
type Selection struct {
	ServiceID       string `json:"service_id"`
	ServiceName     string `json:"service_name"`
	ServicePrice    int    `json:"service_price"`
	ServiceDuration string `json:"service_duration"`

	ProfessionalID   string `json:"professional_id"`
	ProfessionalName string `json:"professional_name"`

	Date string `json:"date"`
	Time string `json:"time"`
}

// Draft is one in-progress run of the booking wizard.
type Draft struct {
	ID   string `json:"id"`
	Step Step   `json:"step"`

	Selection

	CreatedAt time.Time `json:"created_at"`
}

func NewDraft(id string, now time.Time) *Draft {
	return &Draft{
		ID:        id,
		Step:      StepService,
		CreatedAt: now,
	}
}

// ===============================
// Selections
// ===============================

func (d *Draft) SelectService(id, name string, price int, duration string) {
	d.ServiceID = id
	d.ServiceName = name
	d.ServicePrice = price
	d.ServiceDuration = duration
}

func (d *Draft) SelectProfessional(id, name string) {
	d.ProfessionalID = id
	d.ProfessionalName = name
}

func (d *Draft) SelectSchedule(date, slot string) error {
	if !IsValidSlot(slot) {
		return httperr.ErrBusiness("invalid_time_slot")
	}
	d.Date = date
	d.Time = slot
	return nil
}

// ===============================
// Transitions
// ===============================

// Advance moves to the next step, refusing when the current step's
// required selection is missing.
func (d *Draft) Advance() error {
	switch d.Step {
	case StepService:
		if d.ServiceID == "" {
			return httperr.ErrBusiness("service_required")
		}
	case StepProfessional:
		if d.ProfessionalID == "" {
			return httperr.ErrBusiness("professional_required")
		}
	case StepSchedule:
		if d.Date == "" || d.Time == "" {
			return httperr.ErrBusiness("schedule_required")
		}
	case StepConfirm:
		return httperr.ErrBusiness("already_final_step")
	}

	d.Step++
	return nil
}

// Back moves one step earlier. Later selections are kept so the client
// can change their mind without redoing everything.
func (d *Draft) Back() {
	if d.Step > StepService {
		d.Step--
	}
}

// Complete reports whether every selection needed by the confirm action
// is present.
func (d *Draft) Complete() bool {
	return d.ServiceID != "" &&
		d.ProfessionalID != "" &&
		d.Date != "" &&
		d.Time != ""
}
