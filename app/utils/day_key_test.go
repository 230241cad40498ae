package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDayKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accented lowercase", "miércoles", "miercoles"},
		{"accented uppercase", "MIÉRCOLES", "miercoles"},
		{"mixed case", "Sábado", "sabado"},
		{"plain", "viernes", "viernes"},
		{"whitespace kept", " lunes ", " lunes "},
		{"reserved key", "_default", "_default"},
		{"non weekday accepted", "Feriado-Ñandú", "feriado-nandu"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDayKey(tt.in))
		})
	}
}

func TestNormalizeDayKey_Idempotent(t *testing.T) {
	for _, name := range weekdayNames {
		key := NormalizeDayKey(name)
		assert.Equal(t, key, NormalizeDayKey(key), "normalizing %q twice", name)
	}
}

func TestDayKeyFromTime_UsesLocation(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	// Saturday 02:00 UTC is still Friday evening in Santiago (UTC-3 in January)
	instant := time.Date(2024, time.January, 6, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, "viernes", DayKeyFromTime(instant, santiago))
	assert.Equal(t, "sabado", DayKeyFromTime(instant, time.UTC))
}

func TestDayKeyFromTime_AllWeekdays(t *testing.T) {
	monday := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	want := []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

	for i, expected := range want {
		assert.Equal(t, expected, DayKeyFromTime(monday.AddDate(0, 0, i), time.UTC))
	}
}

func TestWeekdayName_KeepsAccents(t *testing.T) {
	wednesday := time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "miércoles", WeekdayName(wednesday, nil))
}
