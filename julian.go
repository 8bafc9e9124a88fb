package chronos

// Julian is the proleptic Julian calendar system: a leap day every four
// years without the Gregorian century corrections. Day numbers still count
// from the Gregorian epoch instant, so Julian 1970-01-01 is day 13.
var Julian Calendar = julianCalendar{}

type julianCalendar struct{}

func (julianCalendar) ID() string     { return "Julian" }
func (julianCalendar) Ordinal() uint8 { return 1 }

func julianLeap(year int) bool { return year%4 == 0 }

func (julianCalendar) ValidateDate(year, month, day int) error {
	return validateYMD(year, month, day, julianLeap)
}

const (
	julianDaysPer4Years = 1461
	// Day number of Julian 1970-01-01 relative to Julian 0000-03-01,
	// calibrated so both shipped calendars agree on the same physical day
	// (e.g. Gregorian 1582-10-15 and Julian 1582-10-05 share a day number).
	julianEpochShift = 719470
)

func (julianCalendar) DaysSinceEpoch(year, month, day int) int {
	y := year
	if month <= 2 {
		y--
	}
	era := int(floorDiv(int64(y), 4))
	yoe := y - era*4 // [0, 3]
	mp := (month + 9) % 12
	doy := (153*mp+2)/5 + day - 1 // [0, 365]
	doe := yoe*365 + yoe/4 + doy  // [0, 1460]
	return era*julianDaysPer4Years + doe - julianEpochShift
}

func (julianCalendar) DateFromDaysSinceEpoch(days int) (int, int, int, error) {
	z := days + julianEpochShift
	era := int(floorDiv(int64(z), julianDaysPer4Years))
	doe := z - era*julianDaysPer4Years // [0, 1460]
	yoe := (doe - doe/1460) / 365
	y := yoe + era*4
	doy := doe - (365*yoe + yoe/4)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	if m <= 2 {
		y++
	}
	if y < MinYear || y > MaxYear {
		return 0, 0, 0, Issue{
			Code:    CodeRange,
			Message: "day number outside supported years",
			Params:  map[string]any{"days": days, "year": y},
		}
	}
	return y, m, d, nil
}

func (julianCalendar) DayOfYear(year, month, day int) int {
	return ordinalDayOfYear(year, month, day, julianLeap)
}
