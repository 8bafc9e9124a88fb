package chronos

import "fmt"

// TimeOfDay is a time within a day with nanosecond precision, held as a
// nanosecond-of-day in [0, NanosecondsPerDay). The zero value is midnight.
type TimeOfDay struct {
	nanos int64
}

func checkNanoOfDay(nanos int64) (TimeOfDay, error) {
	if nanos < 0 || nanos >= NanosecondsPerDay {
		return TimeOfDay{}, Issue{
			Code:    CodeRange,
			Message: "nanosecond-of-day out of range",
			Params:  map[string]any{"min": 0, "max": NanosecondsPerDay - 1, "got": nanos},
		}
	}
	return TimeOfDay{nanos: nanos}, nil
}

// NewTimeOfDay returns the time of day for whole hours, minutes and seconds.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	return NewTimeOfDayWithNanos(hour, minute, second, 0)
}

// NewTimeOfDayWithNanos returns the time of day including a nanosecond-of-
// second component.
func NewTimeOfDayWithNanos(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, Issuef(CodeRange, "hour %d out of range 0..23", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, Issuef(CodeRange, "minute %d out of range 0..59", minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, Issuef(CodeRange, "second %d out of range 0..59", second)
	}
	if nanosecond < 0 || nanosecond >= NanosecondsPerSecond {
		return TimeOfDay{}, Issuef(CodeRange, "nanosecond %d out of range 0..%d", nanosecond, NanosecondsPerSecond-1)
	}
	nanos := int64(hour)*NanosecondsPerHour +
		int64(minute)*NanosecondsPerMinute +
		int64(second)*NanosecondsPerSecond +
		int64(nanosecond)
	return TimeOfDay{nanos: nanos}, nil
}

// TimeOfDayFromNanoseconds returns the time of day for a raw nanosecond-of-
// day value.
func TimeOfDayFromNanoseconds(nanoOfDay int64) (TimeOfDay, error) {
	return checkNanoOfDay(nanoOfDay)
}

// MustNewTimeOfDay is NewTimeOfDay for known-valid literals; it panics on
// failure.
func MustNewTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour, 0..23.
func (t TimeOfDay) Hour() int { return int(t.nanos / NanosecondsPerHour) }

// Minute returns the minute, 0..59.
func (t TimeOfDay) Minute() int { return int(t.nanos/NanosecondsPerMinute) % 60 }

// Second returns the second, 0..59.
func (t TimeOfDay) Second() int { return int(t.nanos/NanosecondsPerSecond) % 60 }

// Millisecond returns the millisecond-of-second, 0..999.
func (t TimeOfDay) Millisecond() int { return int(t.nanos/NanosecondsPerMillisecond) % 1000 }

// NanosecondOfSecond returns the nanosecond-of-second, 0..999,999,999.
func (t TimeOfDay) NanosecondOfSecond() int { return int(t.nanos % NanosecondsPerSecond) }

// NanosecondOfDay returns the raw nanosecond-of-day.
func (t TimeOfDay) NanosecondOfDay() int64 { return t.nanos }

// TickOfDay returns the tick-of-day (100ns units), truncating sub-tick
// nanoseconds.
func (t TimeOfDay) TickOfDay() int64 { return t.nanos / NanosecondsPerTick }

// Compare orders times of day numerically.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.nanos < other.nanos:
		return -1
	case t.nanos > other.nanos:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both values hold the same nanosecond-of-day.
func (t TimeOfDay) Equal(other TimeOfDay) bool { return t.nanos == other.nanos }

func (t TimeOfDay) String() string {
	if ns := t.NanosecondOfSecond(); ns != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), ns)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
