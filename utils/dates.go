package utils

import (
	"fmt"
	"time"
)

var monthNames = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate renders a date the way the note spells it out:
// "2 de enero del 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s del %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// ThirdFriday returns the third Friday of the month of the given date.
func ThirdFriday(t time.Time) time.Time {
	count := 0
	for day := 1; day <= 31; day++ {
		date := time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, t.Location())
		if date.Month() != t.Month() {
			break
		}
		if date.Weekday() == time.Friday {
			count++
			if count == 3 {
				return date
			}
		}
	}
	return t
}

// LastBusinessDay returns the last weekday of the month of the given date,
// walking back over Saturdays and Sundays.
func LastBusinessDay(t time.Time) time.Time {
	// Day zero of the next month is the last day of this one.
	date := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, -1)
	}
	return date
}
