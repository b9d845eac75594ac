package timezone

import "time"

// Zone é o fuso único da barbearia. Não é configurável.
const Zone = "America/Sao_Paulo"

var location = mustLoad()

func mustLoad() *time.Location {
	loc, err := time.LoadLocation(Zone)
	if err != nil {
		panic("timezone: " + err.Error())
	}
	return loc
}

func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}
