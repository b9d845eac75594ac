package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewControlCode gera o código curto entregue ao cliente,
// ex.: "DB20260829-3F0A". Distinto do id interno.
func NewControlCode(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("DB%s-%s", now.Format("20060102"), suffix)
}
