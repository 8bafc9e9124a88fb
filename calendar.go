package chronos

// Year range supported by the shipped calendar systems. Wide enough for any
// civil use while keeping day counts far away from packing limits.
const (
	MinYear = -9998
	MaxYear = 9999
)

// Calendar is the capability the value model needs from a calendar system:
// year/month/day validation and conversion to and from days since the epoch
// (1970-01-01 in that calendar). Implementations must be stateless and safe
// for concurrent use.
//
// A calendar is identified by a stable small ordinal plus a string id; two
// dates are only directly comparable when their calendars share an ordinal.
//
// Era rules are currently calendar-independent: both shipped calendars split
// years at 1 CE, so Date carries Era and YearOfEra itself. A calendar system
// with its own era scheme would move those two methods into this interface.
type Calendar interface {
	// ID returns the stable textual identifier ("Gregorian", "Julian").
	ID() string
	// Ordinal returns the stable small identifier used by value equality.
	Ordinal() uint8
	// ValidateDate fails with an invalid-date or range Issue when the
	// year/month/day combination does not exist in this calendar.
	ValidateDate(year, month, day int) error
	// DaysSinceEpoch converts a valid date to its day number, day 0 being
	// 1970-01-01 of this calendar.
	DaysSinceEpoch(year, month, day int) int
	// DateFromDaysSinceEpoch is the inverse of DaysSinceEpoch. It fails with
	// a range Issue when the day number falls outside the supported years.
	DateFromDaysSinceEpoch(days int) (year, month, day int, err error)
	// DayOfYear returns the 1-based ordinal of the date within its year.
	DayOfYear(year, month, day int) int
}

// daysBefore[m] counts the days in a non-leap year before month m+1 begins.
var daysBefore = [13]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	365,
}

func daysInMonth(month int, leap bool) int {
	if month == 2 && leap {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// validateYMD is the shared year/month/day check; leap-year rules are the
// only per-calendar variation.
func validateYMD(year, month, day int, leap func(int) bool) error {
	if year < MinYear || year > MaxYear {
		return Issue{
			Code:    CodeRange,
			Message: "year out of range",
			Params:  map[string]any{"min": MinYear, "max": MaxYear, "got": year},
		}
	}
	if month < 1 || month > 12 {
		return Issuef(CodeInvalidDate, "month %d out of range 1..12", month)
	}
	if max := daysInMonth(month, leap(year)); day < 1 || day > max {
		return Issuef(CodeInvalidDate, "day %d out of range 1..%d for month %d of year %d", day, max, month, year)
	}
	return nil
}

func ordinalDayOfYear(year, month, day int, leap func(int) bool) int {
	doy := daysBefore[month-1] + day
	if month > 2 && leap(year) {
		doy++
	}
	return doy
}
