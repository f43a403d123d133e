package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	"github.com/jlbeauty/salon-booking-api/internal/db"
	wizarddomain "github.com/jlbeauty/salon-booking-api/internal/domain/wizard"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
	"github.com/jlbeauty/salon-booking-api/internal/infra/repository"
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

func newConfirmUC(t *testing.T, gdb *gorm.DB) *ConfirmBooking {
	t.Helper()

	repo := repository.NewBookingGormRepository(gdb)
	dispatcher := audit.NewDispatcher(audit.New(gdb), zerolog.Nop())
	return NewConfirmBooking(repo, dispatcher, timezone.DefaultTimezone)
}

func completeDraft(date, slot string) *wizarddomain.Draft {
	d := wizarddomain.NewDraft("d1", time.Now())
	d.SelectService("balayage", "Balayage", 800, "3h")
	d.SelectProfessional("kenza", "Kenza B.")
	_ = d.SelectSchedule(date, slot)
	return d
}

func TestConfirmCreatesAppointment(t *testing.T) {
	gdb := newTestDB(t)
	uc := newConfirmUC(t, gdb)

	draft := completeDraft(timezone.Tomorrow(timezone.DefaultTimezone), "10:00")
	user := Identity{ID: "u1", Name: "Amal", Email: "amal@example.com"}

	ap, err := uc.Execute(context.Background(), draft, user)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if ap.ID == "" {
		t.Fatal("appointment should get an id")
	}
	if !strings.HasPrefix(ap.Reference, "BC-") {
		t.Fatalf("reference %q should start with BC-", ap.Reference)
	}
	if ap.Status != "confirmed" {
		t.Fatalf("expected status confirmed, got %q", ap.Status)
	}
	if ap.Currency != "Dhs" {
		t.Fatalf("expected currency Dhs, got %q", ap.Currency)
	}
	if ap.ServicePrice != 800 || ap.ServiceID != "balayage" {
		t.Fatalf("service selection not captured: %+v", ap)
	}
	if ap.UserName != "Amal" || ap.UserEmail != "amal@example.com" {
		t.Fatalf("identity not captured: %+v", ap)
	}

	var stored models.Appointment
	if err := gdb.First(&stored, "id = ?", ap.ID).Error; err != nil {
		t.Fatalf("appointment not persisted: %v", err)
	}
}

func TestConfirmAnonymousNameFallsBack(t *testing.T) {
	gdb := newTestDB(t)
	uc := newConfirmUC(t, gdb)

	draft := completeDraft(timezone.Tomorrow(timezone.DefaultTimezone), "10:30")
	ap, err := uc.Execute(context.Background(), draft, Identity{ID: "u1"})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if ap.UserName != "Client" {
		t.Fatalf("expected fallback name Client, got %q", ap.UserName)
	}
}

func TestConfirmRejectsIncompleteDraft(t *testing.T) {
	gdb := newTestDB(t)
	uc := newConfirmUC(t, gdb)

	d := wizarddomain.NewDraft("d1", time.Now())
	d.SelectService("coupe", "Coupe & Brushing", 200, "40 min")

	_, err := uc.Execute(context.Background(), d, Identity{ID: "u1"})
	if httperr.BusinessCode(err) != "incomplete_booking" {
		t.Fatalf("expected incomplete_booking, got %v", err)
	}
}

func TestConfirmRejectsPastDate(t *testing.T) {
	gdb := newTestDB(t)
	uc := newConfirmUC(t, gdb)

	draft := completeDraft("2020-01-01", "10:00")
	_, err := uc.Execute(context.Background(), draft, Identity{ID: "u1"})
	if httperr.BusinessCode(err) != "date_in_past" {
		t.Fatalf("expected date_in_past, got %v", err)
	}
}

func TestConfirmRejectsMalformedDate(t *testing.T) {
	gdb := newTestDB(t)
	uc := newConfirmUC(t, gdb)

	draft := completeDraft(timezone.Tomorrow(timezone.DefaultTimezone), "10:00")
	draft.Date = "15/09/2026"

	_, err := uc.Execute(context.Background(), draft, Identity{ID: "u1"})
	if httperr.BusinessCode(err) != "invalid_date" {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestConfirmRejectsTakenSlot(t *testing.T) {
	gdb := newTestDB(t)
	uc := newConfirmUC(t, gdb)
	ctx := context.Background()

	date := timezone.Tomorrow(timezone.DefaultTimezone)

	first := completeDraft(date, "15:00")
	if _, err := uc.Execute(ctx, first, Identity{ID: "u1", Name: "Amal"}); err != nil {
		t.Fatalf("first confirm: %v", err)
	}

	second := completeDraft(date, "15:00")
	second.ID = "d2"
	_, err := uc.Execute(ctx, second, Identity{ID: "u2", Name: "Rim"})
	if httperr.BusinessCode(err) != "slot_taken" {
		t.Fatalf("expected slot_taken, got %v", err)
	}

	var count int64
	gdb.Model(&models.Appointment{}).Count(&count)
	if count != 1 {
		t.Fatalf("rejected confirm must not persist, got %d appointments", count)
	}
}

func TestConfirmIgnoresCancelledHold(t *testing.T) {
	gdb := newTestDB(t)
	uc := newConfirmUC(t, gdb)
	ctx := context.Background()

	date := timezone.Tomorrow(timezone.DefaultTimezone)

	cancelled := models.Appointment{
		UserID:         "u0",
		ProfessionalID: "kenza",
		Date:           date,
		Time:           "16:00",
		Status:         "cancelled",
	}
	if err := gdb.Create(&cancelled).Error; err != nil {
		t.Fatalf("create cancelled appointment: %v", err)
	}

	draft := completeDraft(date, "16:00")
	if _, err := uc.Execute(ctx, draft, Identity{ID: "u1", Name: "Amal"}); err != nil {
		t.Fatalf("cancelled booking must not block the slot: %v", err)
	}
}

func TestConfirmDifferentProfessionalSameSlot(t *testing.T) {
	gdb := newTestDB(t)
	uc := newConfirmUC(t, gdb)
	ctx := context.Background()

	date := timezone.Tomorrow(timezone.DefaultTimezone)

	first := completeDraft(date, "09:30")
	if _, err := uc.Execute(ctx, first, Identity{ID: "u1"}); err != nil {
		t.Fatalf("first confirm: %v", err)
	}

	second := completeDraft(date, "09:30")
	second.SelectProfessional("sarah", "Sarah L.")
	if _, err := uc.Execute(ctx, second, Identity{ID: "u2"}); err != nil {
		t.Fatalf("different professional should be free: %v", err)
	}
}
