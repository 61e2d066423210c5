package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysOpen_NeverNegative(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysOpen(now, now))
	assert.Equal(t, 0, DaysOpen(now.Add(6*time.Hour), now))
	assert.GreaterOrEqual(t, DaysOpen(now.AddDate(0, 0, -1), now), 0)
}

func TestDaysOpen_TenDaysAgo(t *testing.T) {
	now := time.Now()
	d := DaysOpen(now.AddDate(0, 0, -10), now)
	assert.GreaterOrEqual(t, d, 9)
	assert.LessOrEqual(t, d, 11)
}

func TestDaysOpen_IgnoresTimeOfDay(t *testing.T) {
	opened := time.Date(2026, 8, 1, 23, 59, 0, 0, time.UTC)
	now := time.Date(2026, 8, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysOpen(opened, now))
}

func TestUrgencyFor_StepFunction(t *testing.T) {
	cases := []struct {
		days int
		want Urgency
	}{
		{0, UrgenciaNormal},
		{30, UrgenciaNormal},
		{31, UrgenciaMedia},
		{60, UrgenciaMedia},
		{61, UrgenciaAlta},
		{90, UrgenciaAlta},
		{91, UrgenciaCritica},
		{365, UrgenciaCritica},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, UrgencyFor(tc.days), "days=%d", tc.days)
	}
}
