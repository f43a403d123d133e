package reminder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	"github.com/jlbeauty/salon-booking-api/internal/db"
	"github.com/jlbeauty/salon-booking-api/internal/models"
	"github.com/jlbeauty/salon-booking-api/internal/timezone"
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

func countReminderEvents(gdb *gorm.DB) int64 {
	var count int64
	gdb.Model(&models.AuditLog{}).Where("action = ?", "appointment_reminder").Count(&count)
	return count
}

// The dispatcher persists events off the request path, so the assertions
// poll briefly instead of expecting synchronous writes.
func waitForReminderEvents(t *testing.T, gdb *gorm.DB, want int64) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if countReminderEvents(gdb) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d reminder events, got %d", want, countReminderEvents(gdb))
}

func TestRunRecordsRemindersForTomorrow(t *testing.T) {
	gdb := newTestDB(t)
	dispatcher := audit.NewDispatcher(audit.New(gdb), zerolog.Nop())
	svc := New(gdb, dispatcher, zerolog.Nop(), timezone.DefaultTimezone)

	tomorrow := timezone.Tomorrow(timezone.DefaultTimezone)
	rows := []models.Appointment{
		{UserID: "u1", UserEmail: "amal@example.com", ProfessionalID: "kenza", Date: tomorrow, Time: "10:00", Status: "confirmed", Reference: "BC-AAA111"},
		{UserID: "u2", UserEmail: "rim@example.com", ProfessionalID: "sarah", Date: tomorrow, Time: "11:00", Status: "confirmed", Reference: "BC-BBB222"},
		// Out of scope: wrong day or not confirmed.
		{UserID: "u3", ProfessionalID: "kenza", Date: "2030-01-01", Time: "10:00", Status: "confirmed"},
		{UserID: "u4", ProfessionalID: "leila", Date: tomorrow, Time: "12:00", Status: "cancelled"},
	}
	for i := range rows {
		if err := gdb.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	svc.Run()

	waitForReminderEvents(t, gdb, 2)
}

func TestRunWithNothingToRemind(t *testing.T) {
	gdb := newTestDB(t)
	dispatcher := audit.NewDispatcher(audit.New(gdb), zerolog.Nop())
	svc := New(gdb, dispatcher, zerolog.Nop(), timezone.DefaultTimezone)

	svc.Run()

	// Give the dispatcher a beat, then confirm nothing was written.
	time.Sleep(50 * time.Millisecond)
	if got := countReminderEvents(gdb); got != 0 {
		t.Fatalf("expected no reminder events, got %d", got)
	}
}
