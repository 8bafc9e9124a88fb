package chronos

import (
	"math"
	"time"
)

// Instant is an absolute point on the time line: a day number since
// 1970-01-01 UTC plus a nanosecond-of-day, independent of any calendar or
// offset. The representation is always normalized so that
// 0 <= NanosecondOfDay < NanosecondsPerDay.
type Instant struct {
	days      int
	nanoOfDay int64
}

// UnixEpoch is the instant 1970-01-01T00:00:00Z.
var UnixEpoch = Instant{}

// instantOf normalizes a possibly out-of-range nanosecond-of-day into days.
func instantOf(days int, nanoOfDay int64) Instant {
	if nanoOfDay < 0 || nanoOfDay >= NanosecondsPerDay {
		days += int(floorDiv(nanoOfDay, NanosecondsPerDay))
		nanoOfDay = floorMod(nanoOfDay, NanosecondsPerDay)
	}
	return Instant{days: days, nanoOfDay: nanoOfDay}
}

// InstantFromUnixNano returns the instant n nanoseconds after the Unix epoch.
func InstantFromUnixNano(n int64) Instant {
	return instantOf(0, n)
}

// InstantFromTime converts a time.Time to the equivalent instant.
func InstantFromTime(t time.Time) Instant {
	secs := t.Unix()
	return instantOf(int(floorDiv(secs, SecondsPerDay)),
		floorMod(secs, SecondsPerDay)*NanosecondsPerSecond+int64(t.Nanosecond()))
}

// DaysSinceEpoch returns the day-number projection of this instant.
func (i Instant) DaysSinceEpoch() int { return i.days }

// NanosecondOfDay returns the nanosecond-of-day projection of this instant.
func (i Instant) NanosecondOfDay() int64 { return i.nanoOfDay }

// UnixNano returns the nanoseconds elapsed since the Unix epoch. The result
// overflows int64 for instants more than roughly 292 years from the epoch;
// use the day/nanosecond projections for wider ranges.
func (i Instant) UnixNano() int64 {
	return int64(i.days)*NanosecondsPerDay + i.nanoOfDay
}

// ToTime converts the instant to a time.Time in UTC.
func (i Instant) ToTime() time.Time {
	secs := int64(i.days)*SecondsPerDay + i.nanoOfDay/NanosecondsPerSecond
	return time.Unix(secs, i.nanoOfDay%NanosecondsPerSecond).UTC()
}

// Duration can hold a little over 292 years. Spans wider than that are
// expressible as day/nanosecond pairs but not as a single time.Duration.
const (
	maxDuration     = time.Duration(math.MaxInt64)
	minDuration     = time.Duration(math.MinInt64)
	maxDurationDays = math.MaxInt64 / NanosecondsPerDay
	maxDurationRem  = math.MaxInt64 % NanosecondsPerDay
	minDurationDays = math.MinInt64 / NanosecondsPerDay
	minDurationRem  = math.MinInt64 % NanosecondsPerDay
)

// Plus returns the instant moved forward by d (backward when d is negative).
func (i Instant) Plus(d time.Duration) Instant {
	n := d.Nanoseconds()
	return instantOf(i.days+int(n/NanosecondsPerDay), i.nanoOfDay+n%NanosecondsPerDay)
}

// Minus returns the instant moved backward by d.
func (i Instant) Minus(d time.Duration) Instant {
	n := d.Nanoseconds()
	return instantOf(i.days-int(n/NanosecondsPerDay), i.nanoOfDay-n%NanosecondsPerDay)
}

// Sub returns the elapsed duration i - other. When the span does not fit in
// a time.Duration the result saturates to the minimum or maximum duration,
// the same rule time.Time's Sub applies.
func (i Instant) Sub(other Instant) time.Duration {
	days := int64(i.days) - int64(other.days)
	nanos := i.nanoOfDay - other.nanoOfDay
	if days > maxDurationDays || (days == maxDurationDays && nanos > maxDurationRem) {
		return maxDuration
	}
	if days < minDurationDays || (days == minDurationDays && nanos < minDurationRem) {
		return minDuration
	}
	return time.Duration(days*NanosecondsPerDay + nanos)
}

// Compare orders instants on the time line: -1, 0, or +1.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.days != other.days:
		if i.days < other.days {
			return -1
		}
		return 1
	case i.nanoOfDay < other.nanoOfDay:
		return -1
	case i.nanoOfDay > other.nanoOfDay:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both instants denote the same point on the time line.
func (i Instant) Equal(other Instant) bool {
	return i.days == other.days && i.nanoOfDay == other.nanoOfDay
}
