package chronos

// Per-unit nanosecond and tick counts used by all fixed-divisor arithmetic in
// this package. Everything is integer math; sub-second conversions truncate
// toward zero.
const (
	NanosecondsPerTick        = 100
	NanosecondsPerMicrosecond = 1_000
	NanosecondsPerMillisecond = 1_000_000
	NanosecondsPerSecond      = 1_000_000_000
	NanosecondsPerMinute      = 60 * NanosecondsPerSecond
	NanosecondsPerHour        = 60 * NanosecondsPerMinute
	NanosecondsPerDay         = 24 * NanosecondsPerHour

	TicksPerSecond = NanosecondsPerSecond / NanosecondsPerTick
	TicksPerDay    = NanosecondsPerDay / NanosecondsPerTick

	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour

	MillisecondsPerSecond = 1_000
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder matching floorDiv; the result has the sign
// of b (non-negative for positive divisors).
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
