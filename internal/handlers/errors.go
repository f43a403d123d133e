package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jlbeauty/salon-booking-api/internal/httperr"
)

// Maps business error codes onto the HTTP taxonomy: validation 400,
// missing 404, conflicts 409. Anything unrecognized is a generic 500 —
// errors are never retried server-side, the client decides.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case "slot_taken":
		httperr.Conflict(c, code, "Ce créneau est déjà réservé. Veuillez choisir un autre horaire.")
	case "collection_not_empty":
		httperr.Conflict(c, code, "La collection contient déjà des données.")
	case "review_already_exists":
		httperr.Conflict(c, code, "Vous avez déjà laissé un avis.")

	case "draft_not_found", "appointment_not_found",
		"service_not_found", "professional_not_found", "user_not_found":
		httperr.NotFound(c, code, "Introuvable.")

	case "self_role_change":
		httperr.Forbidden(c, code, "Vous ne pouvez pas modifier votre propre rôle.")

	case "incomplete_booking":
		httperr.BadRequest(c, code, "Veuillez compléter toutes les étapes avant de confirmer.")
	case "invalid_date", "date_in_past", "invalid_time_slot", "invalid_status",
		"service_required", "professional_required", "schedule_required",
		"already_final_step", "invalid_email_domain", "invalid_reset_token":
		httperr.BadRequest(c, code, "Requête invalide.")

	default:
		httperr.Internal(c, "internal_error", "Une erreur est survenue. Veuillez réessayer.")
	}
}
