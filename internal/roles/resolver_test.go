package roles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/db"
	"github.com/jlbeauty/salon-booking-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestIsAdminSuperAdminBypassesStore(t *testing.T) {
	gdb := newTestDB(t)
	resolver := NewResolver(gdb, []string{"Admin@JLBeauty.ma"}, zerolog.Nop())

	// No user record at all: the allow-list alone decides.
	if !resolver.IsAdmin(context.Background(), "some-id", "admin@jlbeauty.ma") {
		t.Fatal("allow-listed email should resolve as admin without a user record")
	}
}

func TestIsAdminReadsStoredRole(t *testing.T) {
	gdb := newTestDB(t)
	resolver := NewResolver(gdb, nil, zerolog.Nop())
	ctx := context.Background()

	admin := models.User{Name: "Admin", Email: "a@example.com", Role: RoleAdmin}
	client := models.User{Name: "Client", Email: "c@example.com", Role: RoleClient}
	if err := gdb.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if err := gdb.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}

	if !resolver.IsAdmin(ctx, admin.ID, admin.Email) {
		t.Fatal("stored admin role should resolve as admin")
	}
	if resolver.IsAdmin(ctx, client.ID, client.Email) {
		t.Fatal("client role must not resolve as admin")
	}
}

func TestIsAdminFailsClosed(t *testing.T) {
	gdb := newTestDB(t)
	resolver := NewResolver(gdb, []string{"owner@example.com"}, zerolog.Nop())
	ctx := context.Background()

	if resolver.IsAdmin(ctx, "", "owner@example.com") {
		t.Fatal("empty user id must never resolve as admin")
	}
	if resolver.IsAdmin(ctx, "ghost-id", "nobody@example.com") {
		t.Fatal("unknown user must not resolve as admin")
	}
}

func TestIsSuperAdminNormalizesEmail(t *testing.T) {
	resolver := NewResolver(nil, []string{" Owner@Example.com "}, zerolog.Nop())

	if !resolver.IsSuperAdmin("owner@example.com") {
		t.Fatal("allow-list comparison should be case and whitespace insensitive")
	}
	if resolver.IsSuperAdmin("other@example.com") {
		t.Fatal("unlisted email must not be super admin")
	}
}
