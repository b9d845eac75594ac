package scheduling

import "time"

// Slot é uma janela agendável. Efêmero: recalculado a cada requisição,
// nunca persistido nem cacheado.
type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Available bool      `json:"available"`
}

// Overlaps testa sobreposição de intervalos semiabertos [start, end).
// Extremos encostados não contam como conflito.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
