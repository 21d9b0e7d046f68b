package datemath

import "time"

// Step advances d by n units. Months use native AddDate rollover, so
// Jan 31 + 1 month lands in early March.
func Step(d time.Time, unit Unit, n int) time.Time {
	switch unit {
	case UnitDay:
		return d.AddDate(0, 0, n)
	case UnitWeek:
		return d.AddDate(0, 0, 7*n)
	case UnitMonth:
		return d.AddDate(0, n, 0)
	}
	return d
}

// WeekStart returns the Monday of the week containing d, at midnight.
func WeekStart(d time.Time) time.Time {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	y, m, day := d.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

// Yesterday returns the YYYY-MM-DD string of the day before date.
// An unparseable date yields "".
func Yesterday(date string) string {
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(DateFormat)
}
