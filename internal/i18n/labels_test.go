package i18n

import "testing"

func TestServiceNameResolvesKnownIDs(t *testing.T) {
	if got := ServiceName("balayage", "stored"); got != "Balayage" {
		t.Fatalf("expected Balayage, got %q", got)
	}
	if got := ServiceName("soin_botox", "stored"); got != "Soin Botox Capillaire" {
		t.Fatalf("expected Soin Botox Capillaire, got %q", got)
	}
}

func TestServiceNameFallsBackToStoredName(t *testing.T) {
	if got := ServiceName("unknown_service", "Nom Conservé"); got != "Nom Conservé" {
		t.Fatalf("expected stored fallback, got %q", got)
	}
	if got := ServiceName("", "Nom Conservé"); got != "Nom Conservé" {
		t.Fatalf("expected stored fallback for empty id, got %q", got)
	}
}

func TestStatusLabels(t *testing.T) {
	cases := map[string]string{
		"confirmed": "Confirmé",
		"completed": "Terminé",
		"cancelled": "Annulé",
	}
	for status, want := range cases {
		if got := StatusLabel(status); got != want {
			t.Fatalf("StatusLabel(%q) = %q, want %q", status, got, want)
		}
	}
}
