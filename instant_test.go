package chronos

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstant_Normalization(t *testing.T) {
	i := InstantFromUnixNano(-1)
	assert.Equal(t, -1, i.DaysSinceEpoch())
	assert.Equal(t, int64(NanosecondsPerDay-1), i.NanosecondOfDay())

	i = InstantFromUnixNano(NanosecondsPerDay + 5)
	assert.Equal(t, 1, i.DaysSinceEpoch())
	assert.Equal(t, int64(5), i.NanosecondOfDay())
	assert.Equal(t, int64(NanosecondsPerDay+5), i.UnixNano())
}

func TestInstant_Arithmetic(t *testing.T) {
	i := UnixEpoch.Plus(36 * time.Hour)
	assert.Equal(t, 1, i.DaysSinceEpoch())
	assert.Equal(t, int64(12*NanosecondsPerHour), i.NanosecondOfDay())

	back := i.Minus(36 * time.Hour)
	assert.True(t, back.Equal(UnixEpoch))

	assert.Equal(t, 36*time.Hour, i.Sub(UnixEpoch))
	assert.Equal(t, -36*time.Hour, UnixEpoch.Sub(i))

	assert.Equal(t, -1, UnixEpoch.Compare(i))
	assert.Equal(t, 1, i.Compare(UnixEpoch))
	assert.Equal(t, 0, i.Compare(i))
}

func TestInstant_TimeConversions(t *testing.T) {
	at := time.Date(2013, 3, 4, 19, 21, 0, 500, time.UTC)
	i := InstantFromTime(at)
	assert.Equal(t, 15768, i.DaysSinceEpoch())
	assert.Equal(t, int64((19*3600+21*60))*NanosecondsPerSecond+500, i.NanosecondOfDay())
	require.True(t, i.ToTime().Equal(at))

	// Pre-epoch times normalize the same way.
	before := time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC)
	i = InstantFromTime(before)
	assert.Equal(t, -1, i.DaysSinceEpoch())
	assert.Equal(t, int64(23*NanosecondsPerHour), i.NanosecondOfDay())
}

func TestInstant_SubSaturatesAcrossCenturies(t *testing.T) {
	// A span of several centuries exceeds what time.Duration can express;
	// the difference must pin to the duration limits, never wrap negative.
	far := instantOf(Gregorian.DaysSinceEpoch(2400, 1, 1), 0)
	assert.Equal(t, time.Duration(math.MaxInt64), far.Sub(UnixEpoch))
	assert.Equal(t, time.Duration(math.MinInt64), UnixEpoch.Sub(far))
	assert.Positive(t, far.Sub(UnixEpoch))

	// The widest representable span comes out exact; one nanosecond more
	// saturates instead of wrapping.
	edge := UnixEpoch.Plus(time.Duration(math.MaxInt64))
	assert.Equal(t, time.Duration(math.MaxInt64), edge.Sub(UnixEpoch))
	assert.Equal(t, time.Duration(math.MaxInt64), edge.Plus(time.Nanosecond).Sub(UnixEpoch))
}

func TestInstant_ArithmeticWithExtremeDurations(t *testing.T) {
	far := UnixEpoch.Plus(time.Duration(math.MaxInt64))
	assert.Equal(t, int(math.MaxInt64/NanosecondsPerDay), far.DaysSinceEpoch())
	assert.Equal(t, int64(math.MaxInt64%NanosecondsPerDay), far.NanosecondOfDay())
	assert.True(t, far.Minus(time.Duration(math.MaxInt64)).Equal(UnixEpoch))

	past := UnixEpoch.Plus(time.Duration(math.MinInt64))
	assert.Equal(t, -1, past.Compare(UnixEpoch))
	assert.True(t, past.Minus(time.Duration(math.MinInt64)).Equal(UnixEpoch))
}
