package chronos

import (
	"fmt"
	"time"
)

// Offset domain: +/- 18 hours inclusive, in whole seconds.
const (
	MinOffsetSeconds = -18 * SecondsPerHour
	MaxOffsetSeconds = 18 * SecondsPerHour
)

// Offset is a signed offset from UTC with a granularity of one second.
//
// The zero value is the UTC offset (zero seconds). Offsets are immutable and
// have no identity beyond their seconds value: two Offsets with equal seconds
// are interchangeable.
type Offset struct {
	seconds int32
}

func checkOffsetSeconds(seconds int64) (Offset, error) {
	if seconds < MinOffsetSeconds || seconds > MaxOffsetSeconds {
		return Offset{}, Issue{
			Code:    CodeRange,
			Message: "offset seconds out of range",
			Params:  map[string]any{"min": MinOffsetSeconds, "max": MaxOffsetSeconds, "got": seconds},
		}
	}
	return Offset{seconds: int32(seconds)}, nil
}

// OffsetFromSeconds returns the offset for the given number of seconds.
func OffsetFromSeconds(seconds int) (Offset, error) {
	return checkOffsetSeconds(int64(seconds))
}

// OffsetFromMilliseconds truncates milliseconds toward zero to whole seconds.
func OffsetFromMilliseconds(milliseconds int64) (Offset, error) {
	return checkOffsetSeconds(milliseconds / MillisecondsPerSecond)
}

// OffsetFromTicks truncates ticks (100ns units) toward zero to whole seconds.
func OffsetFromTicks(ticks int64) (Offset, error) {
	return checkOffsetSeconds(ticks / TicksPerSecond)
}

// OffsetFromNanoseconds truncates nanoseconds toward zero to whole seconds.
func OffsetFromNanoseconds(nanoseconds int64) (Offset, error) {
	return checkOffsetSeconds(nanoseconds / NanosecondsPerSecond)
}

// OffsetFromHours returns the offset for the given number of whole hours.
func OffsetFromHours(hours int) (Offset, error) {
	return checkOffsetSeconds(int64(hours) * SecondsPerHour)
}

// OffsetFromHoursAndMinutes returns the offset for hours plus minutes. Both
// components carry their own sign: (-5, -30) is -05:30.
func OffsetFromHoursAndMinutes(hours, minutes int) (Offset, error) {
	return checkOffsetSeconds(int64(hours)*SecondsPerHour + int64(minutes)*SecondsPerMinute)
}

// OffsetFromDuration truncates d toward zero to whole seconds.
func OffsetFromDuration(d time.Duration) (Offset, error) {
	return checkOffsetSeconds(d.Nanoseconds() / NanosecondsPerSecond)
}

// MustOffsetFromSeconds is OffsetFromSeconds for known-valid literals; it
// panics on a range failure.
func MustOffsetFromSeconds(seconds int) Offset {
	o, err := OffsetFromSeconds(seconds)
	if err != nil {
		panic(err)
	}
	return o
}

// MustOffsetFromHours is OffsetFromHours for known-valid literals; it panics
// on a range failure.
func MustOffsetFromHours(hours int) Offset {
	o, err := OffsetFromHours(hours)
	if err != nil {
		panic(err)
	}
	return o
}

// Seconds returns the offset in seconds.
func (o Offset) Seconds() int { return int(o.seconds) }

// Milliseconds returns the offset in milliseconds.
func (o Offset) Milliseconds() int64 { return int64(o.seconds) * MillisecondsPerSecond }

// Ticks returns the offset in ticks (100ns units).
func (o Offset) Ticks() int64 { return int64(o.seconds) * TicksPerSecond }

// Nanoseconds returns the offset in nanoseconds.
func (o Offset) Nanoseconds() int64 { return int64(o.seconds) * NanosecondsPerSecond }

// ToDuration converts the offset to a time.Duration. Always exact: the
// domain is whole seconds.
func (o Offset) ToDuration() time.Duration {
	return time.Duration(o.seconds) * time.Second
}

// Plus adds the two offsets, failing with a range error when the sum leaves
// the +/- 18h domain.
func (o Offset) Plus(other Offset) (Offset, error) {
	return checkOffsetSeconds(int64(o.seconds) + int64(other.seconds))
}

// Minus subtracts other from o, failing with a range error when the result
// leaves the +/- 18h domain.
func (o Offset) Minus(other Offset) (Offset, error) {
	return checkOffsetSeconds(int64(o.seconds) - int64(other.seconds))
}

// Negated returns the offset with the opposite sign. The domain is symmetric,
// so negation never fails.
func (o Offset) Negated() Offset {
	return Offset{seconds: -o.seconds}
}

// MaxOffset returns the greater of a and b.
func MaxOffset(a, b Offset) Offset {
	if a.seconds >= b.seconds {
		return a
	}
	return b
}

// MinOffset returns the lesser of a and b.
func MinOffset(a, b Offset) Offset {
	if a.seconds <= b.seconds {
		return a
	}
	return b
}

// Compare orders offsets numerically by seconds: -1, 0, or +1.
func (o Offset) Compare(other Offset) int {
	switch {
	case o.seconds < other.seconds:
		return -1
	case o.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both offsets hold the same number of seconds.
func (o Offset) Equal(other Offset) bool { return o.seconds == other.seconds }

// String renders the canonical general form: "Z" for zero, otherwise a signed
// sexagesimal rendering trimmed of zero trailing components ("+05", "-03:30",
// "+05:30:15"). Richer patterns live in the codec package.
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	sign := "+"
	s := int(o.seconds)
	if s < 0 {
		sign = "-"
		s = -s
	}
	h := s / SecondsPerHour
	m := (s % SecondsPerHour) / SecondsPerMinute
	sec := s % SecondsPerMinute
	switch {
	case sec != 0:
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, sec)
	case m != 0:
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	default:
		return fmt.Sprintf("%s%02d", sign, h)
	}
}
