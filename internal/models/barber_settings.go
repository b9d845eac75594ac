package models

import (
	"strconv"
	"strings"
	"time"
)

// BarberSettings é linha única: o expediente do barbeiro.
// WorkingDays guarda dias ISO (1=segunda .. 7=domingo) separados por vírgula.
type BarberSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartHour   string `gorm:"size:5;not null" json:"start_hour"` // "09:00"
	EndHour     string `gorm:"size:5;not null" json:"end_hour"`   // "19:00"
	WorkingDays string `gorm:"size:30;not null" json:"working_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *BarberSettings) WorkingDaySet() map[int]bool {
	days := make(map[int]bool)
	for _, part := range strings.Split(s.WorkingDays, ",") {
		if d, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && d >= 1 && d <= 7 {
			days[d] = true
		}
	}
	return days
}
