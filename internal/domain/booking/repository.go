package booking

import (
	"context"

	"github.com/jlbeauty/salon-booking-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	GetTeamMember(
		ctx context.Context,
		id string,
	) (*models.TeamMember, error)

	// -------- Appointment (create / conflict) --------

	// CreateIfSlotFree runs the slot-collision count and the insert in a
	// single transaction and fails with the "slot_taken" business error
	// when a non-cancelled appointment already holds the slot.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CountSlotConflicts(
		ctx context.Context,
		professionalID string,
		date string,
		timeSlot string,
	) (int64, error)

	// -------- Appointment (owner flows) --------
	GetAppointmentForUser(
		ctx context.Context,
		appointmentID string,
		userID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID string,
	) error

	ListAppointmentsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)
}
