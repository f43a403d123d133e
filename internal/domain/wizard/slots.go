package wizard

// Slots is the fixed half-hour grid clients can book into. It is not
// derived from working hours; the salon closes the midday gap by simply
// not listing it.
var Slots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

func IsValidSlot(t string) bool {
	for _, s := range Slots {
		if s == t {
			return true
		}
	}
	return false
}
