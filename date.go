package chronos

import (
	"fmt"
	"time"
)

// Era identifiers shared by the shipped calendar systems.
const (
	EraCommon       = "CE"
	EraBeforeCommon = "BCE"
)

// Date is a year/month/day in a specific calendar system. The zero value is
// not usable; construct dates through NewDate or DateFromDaysSinceEpoch,
// which validate against the owning calendar.
type Date struct {
	cal   Calendar
	year  int
	month int
	day   int
}

// NewDate validates year/month/day through cal and returns the date.
func NewDate(cal Calendar, year, month, day int) (Date, error) {
	if cal == nil {
		return Date{}, NewIssue(CodeArgument, "calendar must not be nil")
	}
	if err := cal.ValidateDate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{cal: cal, year: year, month: month, day: day}, nil
}

// MustNewDate is NewDate for known-valid literals; it panics on failure.
func MustNewDate(cal Calendar, year, month, day int) Date {
	d, err := NewDate(cal, year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromDaysSinceEpoch maps a day number (day 0 = 1970-01-01) to a date in
// the given calendar.
func DateFromDaysSinceEpoch(cal Calendar, days int) (Date, error) {
	if cal == nil {
		return Date{}, NewIssue(CodeArgument, "calendar must not be nil")
	}
	y, m, d, err := cal.DateFromDaysSinceEpoch(days)
	if err != nil {
		return Date{}, err
	}
	return Date{cal: cal, year: y, month: m, day: d}, nil
}

// Year returns the (astronomical) year; year 0 exists and precedes year 1.
func (d Date) Year() int { return d.year }

// Month returns the month, 1..12.
func (d Date) Month() int { return d.month }

// Day returns the day of month, 1-based.
func (d Date) Day() int { return d.day }

// Calendar returns the owning calendar system.
func (d Date) Calendar() Calendar { return d.cal }

// DaysSinceEpoch returns the day number of this date, day 0 being 1970-01-01.
func (d Date) DaysSinceEpoch() int {
	return d.cal.DaysSinceEpoch(d.year, d.month, d.day)
}

// DayOfWeek derives the weekday from the day number; day 0 (1970-01-01) was
// a Thursday.
func (d Date) DayOfWeek() time.Weekday {
	return time.Weekday(floorMod(int64(d.DaysSinceEpoch())+4, 7))
}

// DayOfYear returns the 1-based ordinal of this date within its year.
func (d Date) DayOfYear() int {
	return d.cal.DayOfYear(d.year, d.month, d.day)
}

// Era returns the era of this date: EraCommon for years >= 1, EraBeforeCommon
// otherwise.
func (d Date) Era() string {
	if d.year >= 1 {
		return EraCommon
	}
	return EraBeforeCommon
}

// YearOfEra returns the 1-based year within Era: year 0 is 1 BCE, -1 is 2 BCE.
func (d Date) YearOfEra() int {
	if d.year >= 1 {
		return d.year
	}
	return 1 - d.year
}

// Equal reports whether both dates share a calendar ordinal and the same
// year/month/day fields.
func (d Date) Equal(other Date) bool {
	return d.cal != nil && other.cal != nil &&
		d.cal.Ordinal() == other.cal.Ordinal() &&
		d.year == other.year && d.month == other.month && d.day == other.day
}

// Compare orders two dates drawn from the same calendar system; it fails
// with an argument Issue when the calendars differ, since field-wise order
// is meaningless across systems.
func (d Date) Compare(other Date) (int, error) {
	if d.cal == nil || other.cal == nil {
		return 0, NewIssue(CodeArgument, "cannot compare the zero Date")
	}
	if d.cal.Ordinal() != other.cal.Ordinal() {
		return 0, Issuef(CodeArgument, "cannot compare dates in calendar %q with calendar %q", d.cal.ID(), other.cal.ID())
	}
	a, b := d.DaysSinceEpoch(), other.DaysSinceEpoch()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// WithCalendar reinterprets the same physical day in another calendar
// system; the field values generally change.
func (d Date) WithCalendar(cal Calendar) (Date, error) {
	if cal == nil {
		return Date{}, NewIssue(CodeArgument, "calendar must not be nil")
	}
	return DateFromDaysSinceEpoch(cal, d.DaysSinceEpoch())
}

// String renders "yyyy-MM-dd (CalendarID)" for diagnostics; the codec
// package owns user-facing formatting.
func (d Date) String() string {
	id := "?"
	if d.cal != nil {
		id = d.cal.ID()
	}
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d (%s)", -d.year, d.month, d.day, id)
	}
	return fmt.Sprintf("%04d-%02d-%02d (%s)", d.year, d.month, d.day, id)
}
