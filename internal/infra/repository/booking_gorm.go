package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/jlbeauty/salon-booking-api/internal/domain/booking"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetTeamMember(
	ctx context.Context,
	id string,
) (*models.TeamMember, error) {

	var member models.TeamMember
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CountSlotConflicts(
	ctx context.Context,
	professionalID string,
	date string,
	timeSlot string,
) (int64, error) {
	return countSlotConflicts(r.db.WithContext(ctx), professionalID, date, timeSlot)
}

func countSlotConflicts(
	tx *gorm.DB,
	professionalID string,
	date string,
	timeSlot string,
) (int64, error) {

	var count int64
	err := tx.
		Model(&models.Appointment{}).
		Where(
			"professional_id = ? AND date = ? AND time = ? AND status <> ?",
			professionalID,
			date,
			timeSlot,
			string(domain.StatusCancelled),
		).
		Count(&count).Error

	return count, err
}

// CreateIfSlotFree checks and inserts on the same transaction, closing the
// window the old two-round-trip flow left open.
func (r *BookingGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countSlotConflicts(tx, ap.ProfessionalID, ap.Date, ap.Time)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (owner flows)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentForUser(
	ctx context.Context,
	appointmentID string,
	userID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", appointmentID).Error
}

func (r *BookingGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
