package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/models"
	"github.com/jlbeauty/salon-booking-api/internal/timezone"
)

// The test config allow-lists admin@jlbeauty.ma, so this identity is an
// admin without any stored role.
func adminToken(t *testing.T, r *gin.Engine, gdb *gorm.DB) string {
	t.Helper()
	createUser(t, gdb, "Admin", "admin@jlbeauty.ma", "secret123", "client")
	return login(t, r, "admin@jlbeauty.ma", "secret123")
}

// ======================================================
// GUARD
// ======================================================

func TestAdminRoutesRejectClients(t *testing.T) {
	r, gdb := newTestAPI(t)
	createUser(t, gdb, "Amal", "amal@example.com", "secret123", "client")
	token := login(t, r, "amal@example.com", "secret123")

	w := doJSON(t, r, http.MethodGet, "/api/admin/services", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for client, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/services", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestStoredAdminRolePassesGuard(t *testing.T) {
	r, gdb := newTestAPI(t)
	createUser(t, gdb, "Mona", "mona@example.com", "secret123", "admin")
	token := login(t, r, "mona@example.com", "secret123")

	w := doJSON(t, r, http.MethodGet, "/api/admin/services", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for stored admin, got %d: %s", w.Code, w.Body.String())
	}
}

// ======================================================
// SERVICES
// ======================================================

func TestServiceCRUDRoundTrip(t *testing.T) {
	r, gdb := newTestAPI(t)
	token := adminToken(t, r, gdb)

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", token, gin.H{
		"id":       "soin_eclat",
		"name":     "Soin Éclat",
		"price":    350,
		"duration": "1h",
		"icon":     "✨",
		"category": "Soins",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	var created models.Service
	decode(t, w, &created)
	if created.ID != "soin_eclat" || created.Price != 350 {
		t.Fatalf("unexpected created service: %+v", created)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/admin/services/soin_eclat", token, gin.H{
		"price": 400,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}

	var stored models.Service
	if err := gdb.First(&stored, "id = ?", "soin_eclat").Error; err != nil {
		t.Fatalf("load service: %v", err)
	}
	if stored.Price != 400 {
		t.Fatalf("patch did not persist, price=%d", stored.Price)
	}
	if stored.Duration != "1h" {
		t.Fatal("patch must leave untouched fields alone")
	}

	w = doJSON(t, r, http.MethodDelete, "/api/admin/services/soin_eclat", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d: %s", w.Code, w.Body.String())
	}

	var count int64
	gdb.Model(&models.Service{}).Count(&count)
	if count != 0 {
		t.Fatalf("service still present after delete, count=%d", count)
	}
}

func TestServiceCreateRequiresPrice(t *testing.T) {
	r, gdb := newTestAPI(t)
	token := adminToken(t, r, gdb)

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", token, gin.H{
		"id":       "gratuit",
		"name":     "Gratuit",
		"duration": "10 min",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without price, got %d", w.Code)
	}
}

func TestServiceSeedOnceThenConflict(t *testing.T) {
	r, gdb := newTestAPI(t)
	token := adminToken(t, r, gdb)

	w := doJSON(t, r, http.MethodPost, "/api/admin/services/seed", token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Inserted int `json:"inserted"`
	}
	decode(t, w, &resp)
	if resp.Inserted != 26 {
		t.Fatalf("expected 26 seeded services, got %d", resp.Inserted)
	}

	w = doJSON(t, r, http.MethodPost, "/api/admin/services/seed", token, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second seed, got %d: %s", w.Code, w.Body.String())
	}
}

// ======================================================
// APPOINTMENTS
// ======================================================

func TestAdminAppointmentStatusUpdate(t *testing.T) {
	r, gdb := newTestAPI(t)
	token := adminToken(t, r, gdb)

	ap := models.Appointment{
		UserID: "u1", UserName: "Amal", ProfessionalID: "kenza",
		Date: "2026-09-15", Time: "10:00", Status: "confirmed",
	}
	if err := gdb.Create(&ap).Error; err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	w := doJSON(t, r, http.MethodPatch, "/api/admin/appointments/"+ap.ID+"/status", token, gin.H{
		"status": "completed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status update returned %d: %s", w.Code, w.Body.String())
	}

	var stored models.Appointment
	gdb.First(&stored, "id = ?", ap.ID)
	if stored.Status != "completed" {
		t.Fatalf("expected completed, got %q", stored.Status)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/admin/appointments/"+ap.ID+"/status", token, gin.H{
		"status": "no-show",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestAdminAppointmentSearch(t *testing.T) {
	r, gdb := newTestAPI(t)
	token := adminToken(t, r, gdb)

	rows := []models.Appointment{
		{UserID: "u1", UserName: "Amal", ServiceName: "Balayage", ProfessionalID: "kenza", Date: "2026-09-15", Time: "10:00", Status: "confirmed", Reference: "BC-AAA111"},
		{UserID: "u2", UserName: "Rim", ServiceName: "Coupe", ProfessionalID: "sarah", Date: "2026-09-15", Time: "11:00", Status: "completed", Reference: "BC-BBB222"},
	}
	for i := range rows {
		if err := gdb.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/admin/appointments?status=completed", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d", w.Code)
	}
	var byStatus struct {
		Total int                  `json:"total"`
		Data  []models.Appointment `json:"data"`
	}
	decode(t, w, &byStatus)
	if byStatus.Total != 1 || byStatus.Data[0].UserName != "Rim" {
		t.Fatalf("status filter wrong: %+v", byStatus)
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/appointments?query=BC-AAA", token, nil)
	var byRef struct {
		Total int                  `json:"total"`
		Data  []models.Appointment `json:"data"`
	}
	decode(t, w, &byRef)
	if byRef.Total != 1 || byRef.Data[0].Reference != "BC-AAA111" {
		t.Fatalf("reference search wrong: %+v", byRef)
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/appointments?status=archived", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status filter, got %d", w.Code)
	}
}

// ======================================================
// USERS & ROLES
// ======================================================

func TestAdminPromotesAndDemotesUsers(t *testing.T) {
	r, gdb := newTestAPI(t)
	token := adminToken(t, r, gdb)
	target := createUser(t, gdb, "Amal", "amal@example.com", "secret123", "client")

	w := doJSON(t, r, http.MethodPatch, "/api/admin/users/"+target.ID+"/role", token, gin.H{
		"role": "admin",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("promote returned %d: %s", w.Code, w.Body.String())
	}

	var stored models.User
	gdb.First(&stored, "id = ?", target.ID)
	if stored.Role != "admin" {
		t.Fatalf("expected admin role, got %q", stored.Role)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/admin/users/"+target.ID+"/role", token, gin.H{
		"role": "owner",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", w.Code)
	}
}

func TestAdminCannotChangeOwnRole(t *testing.T) {
	r, gdb := newTestAPI(t)
	createUser(t, gdb, "Mona", "mona@example.com", "secret123", "admin")
	token := login(t, r, "mona@example.com", "secret123")

	var self models.User
	gdb.First(&self, "email = ?", "mona@example.com")

	w := doJSON(t, r, http.MethodPatch, "/api/admin/users/"+self.ID+"/role", token, gin.H{
		"role": "client",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for self role change, got %d: %s", w.Code, w.Body.String())
	}

	gdb.First(&self, "id = ?", self.ID)
	if self.Role != "admin" {
		t.Fatal("own role must stay untouched")
	}
}

func TestAdminUserLookupByEmail(t *testing.T) {
	r, gdb := newTestAPI(t)
	token := adminToken(t, r, gdb)
	createUser(t, gdb, "Amal", "amal@example.com", "secret123", "client")

	w := doJSON(t, r, http.MethodGet, "/api/admin/users/lookup?email=Amal@Example.com", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("lookup returned %d: %s", w.Code, w.Body.String())
	}

	var found models.User
	decode(t, w, &found)
	if found.Email != "amal@example.com" {
		t.Fatalf("unexpected user: %+v", found)
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/users/lookup?email=ghost@example.com", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown email, got %d", w.Code)
	}
}

// ======================================================
// DASHBOARD
// ======================================================

func TestDashboardOverviewAggregates(t *testing.T) {
	r, gdb := newTestAPI(t)
	token := adminToken(t, r, gdb)

	today := timezone.Today(timezone.DefaultTimezone)
	rows := []models.Appointment{
		{UserID: "u1", UserName: "Amal", ServiceID: "balayage", ServicePrice: 800, ProfessionalID: "kenza", Date: today, Time: "10:00", Status: "confirmed"},
		{UserID: "u2", UserName: "Rim", ServiceID: "coupe", ServicePrice: 200, ProfessionalID: "sarah", Date: "2026-12-01", Time: "11:00", Status: "completed"},
		{UserID: "u3", UserName: "Lina", ServiceID: "pose_gel", ServicePrice: 350, ProfessionalID: "leila", Date: today, Time: "12:00", Status: "cancelled"},
	}
	for i := range rows {
		if err := gdb.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/admin/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		TotalAppointments int64   `json:"total_appointments"`
		TodayAppointments int64   `json:"today_appointments"`
		Revenue           int64   `json:"revenue"`
		Currency          string  `json:"currency"`
		Satisfaction      float64 `json:"satisfaction"`
		Recent            []struct {
			ServiceName string `json:"service_name"`
			StatusLabel string `json:"status_label"`
		} `json:"recent"`
	}
	decode(t, w, &resp)

	if resp.TotalAppointments != 3 {
		t.Fatalf("expected 3 total, got %d", resp.TotalAppointments)
	}
	if resp.TodayAppointments != 1 {
		t.Fatalf("expected 1 today (cancelled excluded), got %d", resp.TodayAppointments)
	}
	if resp.Revenue != 1000 {
		t.Fatalf("expected revenue 1000 without cancelled rows, got %d", resp.Revenue)
	}
	if resp.Currency != "Dhs" || resp.Satisfaction != 4.9 {
		t.Fatalf("unexpected dashboard header: %+v", resp)
	}
	if len(resp.Recent) != 3 {
		t.Fatalf("expected 3 recent rows, got %d", len(resp.Recent))
	}

	for _, rec := range resp.Recent {
		if rec.ServiceName == "balayage" {
			t.Fatal("recent rows should carry the display label, not the raw id")
		}
	}
}
