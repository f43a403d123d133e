package seed

import (
	"context"

	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/models"
)

// Seeder bulk-inserts the starter datasets. Each seed runs in a single
// transaction and refuses to run unless the collection is empty, so a
// partial insert can never survive a failure.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

func (s *Seeder) SeedServices(ctx context.Context) (int, error) {
	return seedInto(ctx, s.db, &models.Service{}, DefaultServices)
}

func (s *Seeder) SeedTeam(ctx context.Context) (int, error) {
	return seedInto(ctx, s.db, &models.TeamMember{}, DefaultTeam)
}

func (s *Seeder) SeedReviews(ctx context.Context) (int, error) {
	return seedInto(ctx, s.db, &models.Review{}, DefaultReviews)
}

func seedInto[T any](ctx context.Context, db *gorm.DB, model any, records []T) (int, error) {
	// Work on a copy so create hooks never write ids back into the
	// package-level datasets.
	batch := make([]T, len(records))
	copy(batch, records)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(model).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("collection_not_empty")
		}

		for i := range batch {
			if err := tx.Create(&batch[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
