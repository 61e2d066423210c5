package domain

import "time"

type Urgency string

const (
	UrgenciaNormal  Urgency = "NORMAL"
	UrgenciaMedia   Urgency = "MEDIO"
	UrgenciaAlta    Urgency = "ALTO"
	UrgenciaCritica Urgency = "CRITICO"
)

// DaysOpen returns the calendar-day difference between now and the opening
// date, ignoring the time of day on both ends. Negative results are clamped
// to zero so a clock skew never produces a negative age.
func DaysOpen(openedAt, now time.Time) int {
	a := time.Date(openedAt.Year(), openedAt.Month(), openedAt.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := int(b.Sub(a).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// UrgencyFor maps an order age in days to its urgency tier:
// >90 CRITICO, >60 ALTO, >30 MEDIO, otherwise NORMAL.
func UrgencyFor(days int) Urgency {
	switch {
	case days > 90:
		return UrgenciaCritica
	case days > 60:
		return UrgenciaAlta
	case days > 30:
		return UrgenciaMedia
	default:
		return UrgenciaNormal
	}
}
