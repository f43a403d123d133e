package reminder

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	bookingdomain "github.com/jlbeauty/salon-booking-api/internal/domain/booking"
	"github.com/jlbeauty/salon-booking-api/internal/models"
	"github.com/jlbeauty/salon-booking-api/internal/timezone"
)

// Service runs the daily reminder sweep: every morning it finds the
// confirmed appointments for the next salon day and records a reminder
// event per booking. Delivery (mail, SMS) hangs off the audit trail.
type Service struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   zerolog.Logger
	tz    string
	cron  *cron.Cron
}

func New(db *gorm.DB, dispatcher *audit.Dispatcher, log zerolog.Logger, tz string) *Service {
	return &Service{
		db:    db,
		audit: dispatcher,
		log:   log,
		tz:    tz,
		cron:  cron.New(cron.WithLocation(timezone.Location(tz))),
	}
}

// Start schedules the sweep at 08:00 salon time.
func (s *Service) Start() error {
	if _, err := s.cron.AddFunc("0 8 * * *", s.Run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Service) Stop() {
	s.cron.Stop()
}

// Run performs one sweep. Exported so an operator endpoint or a test can
// trigger it outside the schedule.
func (s *Service) Run() {
	tomorrow := timezone.Tomorrow(s.tz)

	var apps []models.Appointment
	if err := s.db.
		Where("date = ? AND status = ?", tomorrow, string(bookingdomain.StatusConfirmed)).
		Find(&apps).Error; err != nil {
		s.log.Error().Err(err).Str("date", tomorrow).Msg("reminder sweep failed")
		return
	}

	for _, ap := range apps {
		userID := ap.UserID
		s.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "appointment_reminder",
			Entity:   "appointment",
			EntityID: ap.ID,
			Metadata: map[string]string{
				"date":      ap.Date,
				"time":      ap.Time,
				"email":     ap.UserEmail,
				"reference": ap.Reference,
			},
		})
	}

	s.log.Info().
		Str("date", tomorrow).
		Int("appointments", len(apps)).
		Msg("reminder sweep completed")
}
