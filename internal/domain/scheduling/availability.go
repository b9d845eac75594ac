package scheduling

type AvailabilityInput struct {
	Date      string // YYYY-MM-DD
	ServiceID uint
}

type ServiceSummary struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
}

type Availability struct {
	Date    string         `json:"date"`
	Service ServiceSummary `json:"service"`
	Slots   []Slot         `json:"slots"`
}

type AvailableDate struct {
	Date      string `json:"date"`      // YYYY-MM-DD
	Formatted string `json:"formatted"` // DD/MM/YYYY
	DayName   string `json:"day_name"`
	IsToday   bool   `json:"is_today"`
}
