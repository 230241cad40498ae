package utils

import (
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// weekdayNames are the Spanish weekday names indexed by time.Weekday
var weekdayNames = [7]string{
	"domingo",
	"lunes",
	"martes",
	"miércoles",
	"jueves",
	"viernes",
	"sábado",
}

var lowerSpanish = cases.Lower(language.Spanish)

// NormalizeDayKey lowercases s and strips combining diacritical marks
// (miércoles -> miercoles). Whitespace is left as the caller supplied it.
func NormalizeDayKey(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(stripMarks, lowerSpanish.String(s))
	if err != nil {
		return lowerSpanish.String(s)
	}
	return result
}

// WeekdayName returns the Spanish name of the weekday of t in loc
func WeekdayName(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return weekdayNames[t.Weekday()]
}

// DayKeyFromTime resolves the canonical day-key of t in loc
func DayKeyFromTime(t time.Time, loc *time.Location) string {
	return NormalizeDayKey(WeekdayName(t, loc))
}
