package datemath

const (
	// DateFormat is the calendar date layout used for every stored date.
	DateFormat = "2006-01-02"
	// ClockFormat is the time-of-day layout used for start/end times.
	ClockFormat = "15:04"
)

// Unit is a calendar stepping unit.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)
