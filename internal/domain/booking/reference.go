package booking

import (
	"strings"

	"github.com/google/uuid"
)

const referencePrefix = "BC-"

// NewReference generates the short human-readable code shown on the
// confirmation screen, e.g. "BC-3FA8C1".
func NewReference() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return referencePrefix + strings.ToUpper(raw[:6])
}
