package chronos

import (
	"encoding/binary"
	"hash/fnv"
	"time"
)

// OffsetDateTime packs the time-of-day and the UTC offset into one int64:
// the nanosecond-of-day occupies the low 47 bits (86,400,000,000,000 < 2^47)
// and the signed offset seconds occupy the high 17 bits. The layout is a
// verified contract: pack/unpack are pure functions exercised directly by
// property tests, and the arithmetic right shift preserves the offset sign.
const (
	nanoOfDayBits = 47
	nanoOfDayMask = (int64(1) << nanoOfDayBits) - 1
)

func packTimeAndOffset(nanoOfDay int64, offsetSeconds int) int64 {
	return int64(offsetSeconds)<<nanoOfDayBits | nanoOfDay
}

func unpackNanoOfDay(packed int64) int64 { return packed & nanoOfDayMask }

func unpackOffsetSeconds(packed int64) int { return int(packed >> nanoOfDayBits) }

// OffsetDateTime is a local date and time in a specific calendar system
// combined with a fixed offset from UTC. It denotes an unambiguous point in
// time while retaining the local fields used to describe it.
//
// Values are immutable; every transformation returns a new value. Equality
// is stricter than "same instant": calendar, local fields and offset must
// all match (see Equal and the Comparer strategies).
type OffsetDateTime struct {
	date   Date
	packed int64
}

// NewOffsetDateTime combines a date, a time of day and an offset.
func NewOffsetDateTime(date Date, tod TimeOfDay, offset Offset) (OffsetDateTime, error) {
	if date.cal == nil {
		return OffsetDateTime{}, NewIssue(CodeArgument, "date must carry a calendar; use NewDate")
	}
	return OffsetDateTime{
		date:   date,
		packed: packTimeAndOffset(tod.NanosecondOfDay(), offset.Seconds()),
	}, nil
}

// MustNewOffsetDateTime is NewOffsetDateTime for known-valid literals; it
// panics on failure.
func MustNewOffsetDateTime(date Date, tod TimeOfDay, offset Offset) OffsetDateTime {
	v, err := NewOffsetDateTime(date, tod, offset)
	if err != nil {
		panic(err)
	}
	return v
}

// OffsetDateTimeFromInstant maps an absolute instant to the local date and
// time it reads as under the given offset, in the Gregorian calendar.
func OffsetDateTimeFromInstant(inst Instant, offset Offset) (OffsetDateTime, error) {
	return OffsetDateTimeFromInstantInCalendar(inst, offset, Gregorian)
}

// OffsetDateTimeFromInstantInCalendar maps an absolute instant to the local
// date and time it reads as under the given offset and calendar.
//
// |offset| is strictly under 24h, so shifting the nanosecond-of-day crosses
// at most one day boundary; a single conditional carry is exact.
func OffsetDateTimeFromInstantInCalendar(inst Instant, offset Offset, cal Calendar) (OffsetDateTime, error) {
	if cal == nil {
		return OffsetDateTime{}, NewIssue(CodeArgument, "calendar must not be nil")
	}
	days := inst.DaysSinceEpoch()
	nano := inst.NanosecondOfDay() + offset.Nanoseconds()
	if nano >= NanosecondsPerDay {
		days++
		nano -= NanosecondsPerDay
	} else if nano < 0 {
		days--
		nano += NanosecondsPerDay
	}
	date, err := DateFromDaysSinceEpoch(cal, days)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{
		date:   date,
		packed: packTimeAndOffset(nano, offset.Seconds()),
	}, nil
}

// Date returns the calendar date component.
func (v OffsetDateTime) Date() Date { return v.date }

// TimeOfDay returns the time-of-day component.
func (v OffsetDateTime) TimeOfDay() TimeOfDay {
	return TimeOfDay{nanos: unpackNanoOfDay(v.packed)}
}

// Offset returns the UTC offset component.
func (v OffsetDateTime) Offset() Offset {
	return Offset{seconds: int32(unpackOffsetSeconds(v.packed))}
}

// Calendar returns the calendar system of the date component.
func (v OffsetDateTime) Calendar() Calendar { return v.date.cal }

// Year returns the year of the date component.
func (v OffsetDateTime) Year() int { return v.date.Year() }

// Month returns the month of the date component, 1..12.
func (v OffsetDateTime) Month() int { return v.date.Month() }

// Day returns the day of month of the date component.
func (v OffsetDateTime) Day() int { return v.date.Day() }

// DayOfWeek returns the weekday of the date component.
func (v OffsetDateTime) DayOfWeek() time.Weekday { return v.date.DayOfWeek() }

// DayOfYear returns the 1-based ordinal of the date component within its year.
func (v OffsetDateTime) DayOfYear() int { return v.date.DayOfYear() }

// Era returns the era of the date component.
func (v OffsetDateTime) Era() string { return v.date.Era() }

// YearOfEra returns the 1-based year within the era of the date component.
func (v OffsetDateTime) YearOfEra() int { return v.date.YearOfEra() }

// Hour returns the hour of day, 0..23.
func (v OffsetDateTime) Hour() int { return int(unpackNanoOfDay(v.packed) / NanosecondsPerHour) }

// Minute returns the minute of hour, 0..59.
func (v OffsetDateTime) Minute() int {
	return int(unpackNanoOfDay(v.packed)/NanosecondsPerMinute) % 60
}

// Second returns the second of minute, 0..59.
func (v OffsetDateTime) Second() int {
	return int(unpackNanoOfDay(v.packed)/NanosecondsPerSecond) % 60
}

// Millisecond returns the millisecond of second, 0..999.
func (v OffsetDateTime) Millisecond() int {
	return int(unpackNanoOfDay(v.packed)/NanosecondsPerMillisecond) % 1000
}

// NanosecondOfSecond returns the nanosecond of second, 0..999,999,999.
func (v OffsetDateTime) NanosecondOfSecond() int {
	return int(unpackNanoOfDay(v.packed) % NanosecondsPerSecond)
}

// NanosecondOfDay returns the nanosecond-of-day.
func (v OffsetDateTime) NanosecondOfDay() int64 { return unpackNanoOfDay(v.packed) }

// TickOfDay returns the tick-of-day (100ns units), truncating sub-tick
// nanoseconds.
func (v OffsetDateTime) TickOfDay() int64 { return unpackNanoOfDay(v.packed) / NanosecondsPerTick }

// ToInstant returns the absolute instant this value denotes, independent of
// its calendar and offset.
func (v OffsetDateTime) ToInstant() Instant {
	days := v.date.DaysSinceEpoch()
	return instantOf(days, unpackNanoOfDay(v.packed)-v.Offset().Nanoseconds())
}

// WithOffset returns the value reading the same instant under a different
// offset; the local date and time are recomputed, the calendar is kept.
//
// Unlike the instant-construction path, the delta between the old and new
// offsets can reach 36 hours (the difference of two +/- 18h values), so the
// normalization here must tolerate up to two day-boundary crossings; a
// single carry is not enough.
func (v OffsetDateTime) WithOffset(offset Offset) (OffsetDateTime, error) {
	days := v.date.DaysSinceEpoch()
	nano := unpackNanoOfDay(v.packed) + offset.Nanoseconds() - v.Offset().Nanoseconds()
	for nano >= NanosecondsPerDay {
		days++
		nano -= NanosecondsPerDay
	}
	for nano < 0 {
		days--
		nano += NanosecondsPerDay
	}
	date, err := DateFromDaysSinceEpoch(v.date.cal, days)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{
		date:   date,
		packed: packTimeAndOffset(nano, offset.Seconds()),
	}, nil
}

// WithCalendar reinterprets the same physical local date in another calendar
// system; the time of day and offset are untouched.
func (v OffsetDateTime) WithCalendar(cal Calendar) (OffsetDateTime, error) {
	date, err := v.date.WithCalendar(cal)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{date: date, packed: v.packed}, nil
}

// WithDate applies adjuster to the date projection, keeping the time of day
// and offset. Validation failures from the adjuster propagate unchanged.
func (v OffsetDateTime) WithDate(adjuster func(Date) (Date, error)) (OffsetDateTime, error) {
	date, err := adjuster(v.date)
	if err != nil {
		return OffsetDateTime{}, err
	}
	if date.cal == nil {
		return OffsetDateTime{}, NewIssue(CodeArgument, "adjusted date must carry a calendar")
	}
	return OffsetDateTime{date: date, packed: v.packed}, nil
}

// WithTimeOfDay applies adjuster to the time-of-day projection, keeping the
// date and offset. Validation failures from the adjuster propagate unchanged.
func (v OffsetDateTime) WithTimeOfDay(adjuster func(TimeOfDay) (TimeOfDay, error)) (OffsetDateTime, error) {
	tod, err := adjuster(v.TimeOfDay())
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{
		date:   v.date,
		packed: packTimeAndOffset(tod.NanosecondOfDay(), v.Offset().Seconds()),
	}, nil
}

// Plus moves the denoted instant forward by d, keeping the calendar and
// offset; only the instant moves.
func (v OffsetDateTime) Plus(d time.Duration) (OffsetDateTime, error) {
	return OffsetDateTimeFromInstantInCalendar(v.ToInstant().Plus(d), v.Offset(), v.date.cal)
}

// Minus moves the denoted instant backward by d, keeping the calendar and
// offset.
func (v OffsetDateTime) Minus(d time.Duration) (OffsetDateTime, error) {
	return OffsetDateTimeFromInstantInCalendar(v.ToInstant().Minus(d), v.Offset(), v.date.cal)
}

// Sub returns the elapsed duration between the instants the two values
// denote. Calendars and offsets of both operands are deliberately ignored.
// Spans too wide for a time.Duration saturate to the minimum or maximum
// duration, as Instant.Sub does.
func (v OffsetDateTime) Sub(other OffsetDateTime) time.Duration {
	return v.ToInstant().Sub(other.ToInstant())
}

// Equal reports whether both values have the same calendar, the same local
// date and the same packed time/offset field. Two values denoting the same
// instant through different offsets or calendars are not Equal; use
// CompareByInstant for that notion.
func (v OffsetDateTime) Equal(other OffsetDateTime) bool {
	return v.date.Equal(other.date) && v.packed == other.packed
}

// Hash returns a hash consistent with Equal, covering the calendar ordinal,
// the date fields and the full packed field.
func (v OffsetDateTime) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	ord := uint8(0xff)
	if v.date.cal != nil {
		ord = v.date.cal.Ordinal()
	}
	h.Write([]byte{ord})
	for _, f := range [...]int64{int64(v.date.year), int64(v.date.month), int64(v.date.day), v.packed} {
		binary.LittleEndian.PutUint64(buf[:], uint64(f))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the local fields and offset for diagnostics; the codec
// package owns user-facing formatting.
func (v OffsetDateTime) String() string {
	return v.date.String() + " " + v.TimeOfDay().String() + " " + v.Offset().String()
}
