package booking

import (
	"strings"
	"testing"
)

func TestNewReferenceFormat(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		ref := NewReference()

		if !strings.HasPrefix(ref, "BC-") {
			t.Fatalf("reference %q should start with BC-", ref)
		}
		if len(ref) != len("BC-")+6 {
			t.Fatalf("reference %q should carry 6 characters after the prefix", ref)
		}
		if suffix := ref[3:]; suffix != strings.ToUpper(suffix) {
			t.Fatalf("reference %q suffix should be uppercase", ref)
		}

		if seen[ref] {
			t.Fatalf("reference %q generated twice in 50 draws", ref)
		}
		seen[ref] = true
	}
}

func TestStatusEnum(t *testing.T) {
	for _, s := range []string{"confirmed", "completed", "cancelled"} {
		if !IsValidStatus(s) {
			t.Fatalf("%q should be a valid status", s)
		}
	}
	for _, s := range []string{"", "pending", "CONFIRMED", "done"} {
		if IsValidStatus(s) {
			t.Fatalf("%q should not be a valid status", s)
		}
	}

	if InitialStatus() != StatusConfirmed {
		t.Fatalf("new bookings should start confirmed, got %q", InitialStatus())
	}
}

func TestBlocksSlot(t *testing.T) {
	if !BlocksSlot("confirmed") || !BlocksSlot("completed") {
		t.Fatal("confirmed and completed bookings hold their slot")
	}
	if BlocksSlot("cancelled") {
		t.Fatal("cancelled bookings must free their slot")
	}
}
