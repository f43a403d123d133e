package roles

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/models"
)

const RoleAdmin = "admin"
const RoleClient = "client"

// Resolver decides whether an identity is an administrator. Super-admin
// emails short-circuit without touching the store, so an outage there
// never locks the owners out. Everything else fails closed.
type Resolver struct {
	db          *gorm.DB
	superAdmins map[string]bool
	log         zerolog.Logger
}

func NewResolver(db *gorm.DB, superAdminEmails []string, log zerolog.Logger) *Resolver {
	allow := make(map[string]bool, len(superAdminEmails))
	for _, e := range superAdminEmails {
		allow[normalizeEmail(e)] = true
	}
	return &Resolver{
		db:          db,
		superAdmins: allow,
		log:         log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsAdmin resolves the admin flag for a signed-in identity. Missing user
// records, non-admin roles, and store errors all resolve to false; store
// errors are logged but never surfaced.
func (r *Resolver) IsAdmin(ctx context.Context, userID, email string) bool {
	if userID == "" {
		return false
	}

	if r.superAdmins[normalizeEmail(email)] {
		return true
	}

	var user models.User
	if err := r.db.WithContext(ctx).
		Select("role").
		Where("id = ?", userID).
		First(&user).Error; err != nil {

		if err != gorm.ErrRecordNotFound {
			r.log.Warn().Err(err).Str("user_id", userID).Msg("role lookup failed, treating as non-admin")
		}
		return false
	}

	return user.Role == RoleAdmin
}

// IsSuperAdmin reports the allow-list fast path on its own. Role editing
// uses it: an allow-listed admin stays admin no matter what the stored
// role says.
func (r *Resolver) IsSuperAdmin(email string) bool {
	return r.superAdmins[normalizeEmail(email)]
}
