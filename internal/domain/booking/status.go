package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Currency tag written on every appointment. Prices are whole dirhams.
const Currency = "Dhs"

func InitialStatus() Status {
	return StatusConfirmed
}

// IsValidStatus guards the admin status editor: only the three-member
// enum is ever written.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BlocksSlot reports whether an appointment in this status keeps its
// (professional, date, time) slot occupied.
func BlocksSlot(s string) bool {
	return Status(s) != StatusCancelled
}
