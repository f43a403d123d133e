package wizard

import (
	"context"
	"time"

	domain "github.com/jlbeauty/salon-booking-api/internal/domain/wizard"
)

// Drafts expire after an hour of inactivity; an abandoned wizard run
// should not linger.
const DraftTTL = time.Hour

// Store holds in-progress wizard drafts between requests.
type Store interface {
	Save(ctx context.Context, d *domain.Draft) error
	Get(ctx context.Context, id string) (*domain.Draft, error)
	Delete(ctx context.Context, id string) error
}
