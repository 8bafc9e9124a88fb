package chronos

import (
	"testing"
	"testing/quick"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGregorian_EpochAndKnownDays(t *testing.T) {
	cases := []struct {
		y, m, d int
		days    int
	}{
		{1970, 1, 1, 0},
		{1970, 1, 2, 1},
		{1969, 12, 31, -1},
		{2013, 1, 1, 15706},
		{2013, 3, 4, 15768},
		{2000, 2, 29, 11016},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.days, Gregorian.DaysSinceEpoch(tc.y, tc.m, tc.d), "%04d-%02d-%02d", tc.y, tc.m, tc.d)
		y, m, d, err := Gregorian.DateFromDaysSinceEpoch(tc.days)
		require.NoError(t, err)
		assert.Equal(t, [3]int{tc.y, tc.m, tc.d}, [3]int{y, m, d})
	}
}

func TestGregorian_RoundTripProperty(t *testing.T) {
	f := func(seed int32) bool {
		days := int(seed % 2_000_000) // roughly +/- 5500 years around the epoch
		y, m, d, err := Gregorian.DateFromDaysSinceEpoch(days)
		if err != nil {
			return false
		}
		return Gregorian.DaysSinceEpoch(y, m, d) == days
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestGregorian_LeapRules(t *testing.T) {
	require.NoError(t, Gregorian.ValidateDate(2000, 2, 29)) // divisible by 400
	require.NoError(t, Gregorian.ValidateDate(2012, 2, 29))
	require.Error(t, Gregorian.ValidateDate(1900, 2, 29)) // century, not by 400
	require.Error(t, Gregorian.ValidateDate(2013, 2, 29))
}

func TestJulian_LeapRules(t *testing.T) {
	require.NoError(t, Julian.ValidateDate(1900, 2, 29)) // every fourth year
	require.Error(t, Julian.ValidateDate(2013, 2, 29))
}

func TestCalendars_AgreeOnPhysicalDays(t *testing.T) {
	// The day the Gregorian reform skipped to: both calendars name the same
	// physical day differently.
	g := Gregorian.DaysSinceEpoch(1582, 10, 15)
	j := Julian.DaysSinceEpoch(1582, 10, 5)
	assert.Equal(t, g, j)

	// Modern 13-day lag.
	assert.Equal(t, 13, Julian.DaysSinceEpoch(1970, 1, 1))
}

func TestDate_Validation(t *testing.T) {
	_, err := NewDate(Gregorian, 2013, 4, 31)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidDate))

	_, err = NewDate(Gregorian, 2013, 13, 1)
	assert.True(t, IsCode(err, CodeInvalidDate))

	_, err = NewDate(Gregorian, 10_000, 1, 1)
	assert.True(t, IsCode(err, CodeRange))

	_, err = NewDate(nil, 2013, 1, 1)
	assert.True(t, IsCode(err, CodeArgument))
}

func TestDate_DerivedFields(t *testing.T) {
	d := MustNewDate(Gregorian, 2013, 3, 4)
	assert.Equal(t, time.Monday, d.DayOfWeek())
	assert.Equal(t, 63, d.DayOfYear())
	assert.Equal(t, EraCommon, d.Era())
	assert.Equal(t, 2013, d.YearOfEra())

	bce := MustNewDate(Gregorian, 0, 1, 1)
	assert.Equal(t, EraBeforeCommon, bce.Era())
	assert.Equal(t, 1, bce.YearOfEra())

	bce2 := MustNewDate(Gregorian, -1, 1, 1)
	assert.Equal(t, 2, bce2.YearOfEra())
}

func TestDate_CompareAcrossCalendarsFails(t *testing.T) {
	g := MustNewDate(Gregorian, 2013, 3, 4)
	j := MustNewDate(Julian, 2013, 2, 19)

	_, err := g.Compare(j)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeArgument))

	cmp, err := g.Compare(MustNewDate(Gregorian, 2013, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)
}

func TestDate_WithCalendar(t *testing.T) {
	g := MustNewDate(Gregorian, 2013, 3, 4)
	j, err := g.WithCalendar(Julian)
	require.NoError(t, err)
	assert.Equal(t, 2013, j.Year())
	assert.Equal(t, 2, j.Month())
	assert.Equal(t, 19, j.Day())
	assert.Equal(t, g.DaysSinceEpoch(), j.DaysSinceEpoch())
}
