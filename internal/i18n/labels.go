package i18n

// French display labels keyed the way the frontend keys its translation
// catalog. Stored records carry the key (e.g. a service id); Lookup turns
// it into a label without ever leaking a raw key to the caller.

var labels = map[string]string{
	// services
	"booking.services.brushing_simple":       "Brushing Simple",
	"booking.services.brushing_wavy":         "Brushing Wavy",
	"booking.services.coupe":                 "Coupe & Brushing",
	"booking.services.coupe_brushing":        "Coupe + Brushing",
	"booking.services.coloration_racines":    "Coloration Racines",
	"booking.services.coloration_complete":   "Coloration Complète",
	"booking.services.balayage":              "Balayage",
	"booking.services.ombre_hair":            "Ombré Hair",
	"booking.services.soin_botox":            "Soin Botox Capillaire",
	"booking.services.lissage_keratine":      "Lissage Kératine",
	"booking.services.lissage_proteine":      "Lissage Protéine",
	"booking.services.lissage_caviar":        "Lissage Caviar",
	"booking.services.hammam_beldi":          "Hammam Beldi",
	"booking.services.hammam_royal":          "Hammam Royal",
	"booking.services.hammam_vip":            "Hammam VIP",
	"booking.services.massage_relaxant":      "Massage Relaxant",
	"booking.services.manucure_simple":       "Manucure Simple",
	"booking.services.manucure_russe":        "Manucure Russe",
	"booking.services.pedicure_simple":       "Pédicure Simple",
	"booking.services.pedicure_spa":          "Pédicure Spa",
	"booking.services.pose_vernis_permanent": "Pose Vernis Permanent",
	"booking.services.pose_gel":              "Pose Gel",
	"booking.services.epilation_sourcils":    "Épilation Sourcils",
	"booking.services.epilation_visage":      "Épilation Visage",
	"booking.services.maquillage_soiree":     "Maquillage Soirée",
	"booking.services.maquillage_mariee":     "Maquillage Mariée",

	// appointment statuses
	"status.confirmed": "Confirmé",
	"status.completed": "Terminé",
	"status.cancelled": "Annulé",
}

// Lookup returns the label for key, or fallback when the key is unknown.
// A fallback that is itself a key (dotted path) falls through to its last
// segment rather than being shown verbatim.
func Lookup(key, fallback string) string {
	if v, ok := labels[key]; ok {
		return v
	}
	return fallback
}

// ServiceName resolves a service id to its display label, falling back to
// the stored denormalized name.
func ServiceName(serviceID, storedName string) string {
	if serviceID != "" {
		if v, ok := labels["booking.services."+serviceID]; ok {
			return v
		}
	}
	return storedName
}

// StatusLabel resolves an appointment status to its display label.
func StatusLabel(status string) string {
	return Lookup("status."+status, status)
}
