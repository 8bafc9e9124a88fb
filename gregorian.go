package chronos

// Gregorian is the proleptic Gregorian (civil/ISO) calendar system.
var Gregorian Calendar = gregorianCalendar{}

type gregorianCalendar struct{}

func (gregorianCalendar) ID() string     { return "Gregorian" }
func (gregorianCalendar) Ordinal() uint8 { return 0 }

func gregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (gregorianCalendar) ValidateDate(year, month, day int) error {
	return validateYMD(year, month, day, gregorianLeap)
}

// The conversions below use the shifted-month trick shared with the Go
// standard library's absolute-date arithmetic: years start in March so the
// leap day lands at the end of the cycle and month lengths follow a single
// linear formula.
const (
	gregorianDaysPer400Years = 146097
	// Day number of 1970-01-01 relative to 0000-03-01.
	gregorianEpochShift = 719468
)

func (gregorianCalendar) DaysSinceEpoch(year, month, day int) int {
	y := year
	if month <= 2 {
		y--
	}
	era := int(floorDiv(int64(y), 400))
	yoe := y - era*400 // [0, 399]
	mp := (month + 9) % 12
	doy := (153*mp+2)/5 + day - 1          // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*gregorianDaysPer400Years + doe - gregorianEpochShift
}

func (gregorianCalendar) DateFromDaysSinceEpoch(days int) (int, int, int, error) {
	z := days + gregorianEpochShift
	era := int(floorDiv(int64(z), gregorianDaysPer400Years))
	doe := z - era*gregorianDaysPer400Years // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
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

func (gregorianCalendar) DayOfYear(year, month, day int) int {
	return ordinalDayOfYear(year, month, day, gregorianLeap)
}
