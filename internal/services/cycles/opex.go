package cycles

import (
	"time"

	"SqueezeWatch/internal/domain/models"
	"SqueezeWatch/pkg/util"
)

// quarterMonths are the quarterly expiration months.
var quarterMonths = []time.Month{time.March, time.June, time.September, time.December}

// ThirdFriday returns the third Friday of the given month.
func ThirdFriday(year int, month time.Month) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	fridays := 0
	for {
		if d.Weekday() == time.Friday {
			fridays++
			if fridays == 3 {
				return d
			}
		}
		d = d.AddDate(0, 0, 1)
	}
}

// InExpirationWeek reports whether the date falls within 3 days of its
// month's third Friday, restricted to the quarterly expiration months.
func InExpirationWeek(date time.Time) bool {
	isQuarter := false
	for _, m := range quarterMonths {
		if date.Month() == m {
			isQuarter = true
			break
		}
	}
	if !isQuarter {
		return false
	}

	third := ThirdFriday(date.Year(), date.Month())
	diff := util.DaysBetween(third, date)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 3
}

// QuarterlyOccurrences projects quarterly expiration dates for this year and
// next, filtered to quartersAhead * 90 days forward of now.
func QuarterlyOccurrences(now time.Time, quartersAhead int) []models.CycleOccurrence {
	horizon := now.AddDate(0, 0, quartersAhead*90)
	var out []models.CycleOccurrence
	for yearOffset := 0; yearOffset < 2; yearOffset++ {
		for _, m := range quarterMonths {
			d := ThirdFriday(now.Year()+yearOffset, m)
			if d.After(now) && d.Before(horizon) {
				out = append(out, models.CycleOccurrence{
					Type:      models.CycleTypeOpex,
					Name:      "Quarterly OPEX",
					Date:      d,
					DaysUntil: util.DaysBetween(now, d),
				})
			}
		}
	}
	return out
}
