package unixtime

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	est       = time.FixedZone("EST", -5*60*60)
	ist       = time.FixedZone("IST", 5*60*60+30*60)
	reference = time.Date(2009, time.February, 13, 23, 31, 30, 0, time.UTC)
)

func assertSameInstant(t *testing.T, want, got time.Time) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %s, got %s", want, got)
}

// =============================================================================
// FromUnixTime Tests
// =============================================================================

func TestFromUnixTime_ReferenceInstant(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		unit  Unit
		want  time.Time
	}{
		{"seconds", 1234567890, Seconds, reference},
		{"milliseconds", 1234567890123, Milliseconds, reference.Add(123 * time.Millisecond)},
		{"microseconds", 1234567890123456, Microseconds, reference.Add(123456 * time.Microsecond)},
		{"nanoseconds truncated to tick", 1234567890123456789, Nanoseconds, reference.Add(123456700 * time.Nanosecond)},
		{"epoch", 0, Seconds, Epoch},
		{"one tick before epoch", -100, Nanoseconds, Epoch.Add(-100 * time.Nanosecond)},
		{"negative milliseconds", -1500, Milliseconds, Epoch.Add(-1500 * time.Millisecond)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromUnixTime(tc.value, tc.unit)
			require.NoError(t, err)
			assertSameInstant(t, tc.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFromUnixTime_NegativeNanosecondsTruncateTowardZero(t *testing.T) {
	tests := []struct {
		value int64
		want  time.Duration
	}{
		{-50, 0},
		{-99, 0},
		{-100, -100 * time.Nanosecond},
		{-150, -100 * time.Nanosecond},
		{-199, -100 * time.Nanosecond},
		{50, 0},
		{199, 100 * time.Nanosecond},
	}

	for _, tc := range tests {
		got, err := FromUnixTime(tc.value, Nanoseconds)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Sub(Epoch), "value %d", tc.value)
	}
}

func TestFromUnixTime_RangeBoundaries(t *testing.T) {
	got, err := FromUnixTime(-62135596800, Seconds)
	require.NoError(t, err)
	assertSameInstant(t, MinTime, got)

	got, err = FromUnixTime(253402300799, Seconds)
	require.NoError(t, err)
	assertSameInstant(t, MaxTime.Truncate(time.Second), got)

	got, err = FromUnixTime(253402300799999999, Microseconds)
	require.NoError(t, err)
	assertSameInstant(t, MaxTime.Add(-900*time.Nanosecond), got)

	_, err = FromUnixTime(-62135596801, Seconds)
	assert.ErrorIs(t, err, ErrRange)

	_, err = FromUnixTime(253402300800, Seconds)
	assert.ErrorIs(t, err, ErrRange)
}

func TestFromUnixTime_Overflow(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		unit  Unit
	}{
		{"max seconds", math.MaxInt64, Seconds},
		{"min seconds", math.MinInt64, Seconds},
		{"max milliseconds", math.MaxInt64, Milliseconds},
		{"min milliseconds", math.MinInt64, Milliseconds},
		{"max microseconds", math.MaxInt64, Microseconds},
		{"min microseconds", math.MinInt64, Microseconds},
		{"microseconds just past int64 tick range", math.MaxInt64/TicksPerMicrosecond + 1, Microseconds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromUnixTime(tc.value, tc.unit)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRange)
			assert.NotErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestFromUnixTime_NanosecondExtremesAreRepresentable(t *testing.T) {
	for _, v := range []int64{math.MaxInt64, math.MinInt64} {
		got, err := FromUnixTime(v, Nanoseconds)
		require.NoError(t, err)
		assert.True(t, InRange(got))
	}
}

func TestFromUnixTime_InvalidUnit(t *testing.T) {
	for _, u := range []Unit{-1, 4, 42} {
		_, err := FromUnixTime(1, u)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestFromUnixTime_ErrorCarriesContext(t *testing.T) {
	_, err := FromUnixTime(math.MaxInt64, Milliseconds)
	require.Error(t, err)

	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, codeRange, oopsErr.Code())
	assert.Contains(t, err.Error(), "9223372036854775807")
	assert.Contains(t, err.Error(), "ms")
}

// =============================================================================
// ToUnixTime Tests
// =============================================================================

func TestToUnixTime_ReferenceInstant(t *testing.T) {
	ts := reference.Add(123456789 * time.Nanosecond)

	tests := []struct {
		unit Unit
		want int64
	}{
		{Seconds, 1234567890},
		{Milliseconds, 1234567890123},
		{Microseconds, 1234567890123456},
		{Nanoseconds, 1234567890123456700},
	}

	for _, tc := range tests {
		t.Run(tc.unit.String(), func(t *testing.T) {
			got, err := ToUnixTime(ts, tc.unit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToUnixTime_TruncatesTowardZeroBeforeEpoch(t *testing.T) {
	// 0.5s before the epoch
	ts := time.Unix(-1, 500_000_000)

	secs, err := ToUnixTime(ts, Seconds)
	require.NoError(t, err)
	assert.Equal(t, int64(0), secs)

	ms, err := ToUnixTime(ts, Milliseconds)
	require.NoError(t, err)
	assert.Equal(t, int64(-500), ms)

	// 1.25ms before the epoch
	ts = Epoch.Add(-1250 * time.Microsecond)
	ms, err = ToUnixTime(ts, Milliseconds)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), ms)
}

func TestToUnixTime_OffsetIndependent(t *testing.T) {
	instants := []time.Time{
		reference,
		reference.Add(987654300 * time.Nanosecond),
		Epoch.Add(-3 * time.Hour),
		MinTime,
		time.Date(2262, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, instant := range instants {
		for _, unit := range Units {
			utc, errUTC := ToUnixTime(instant, unit)
			east, errEast := ToUnixTime(instant.In(ist), unit)
			west, errWest := ToUnixTime(instant.In(est), unit)
			assert.Equal(t, errUTC == nil, errEast == nil)
			assert.Equal(t, errUTC == nil, errWest == nil)
			assert.Equal(t, utc, east, "instant %s unit %s", instant, unit)
			assert.Equal(t, utc, west, "instant %s unit %s", instant, unit)
		}
	}
}

func TestToUnixTime_Overflow(t *testing.T) {
	_, err := ToUnixTime(MaxTime, Nanoseconds)
	assert.ErrorIs(t, err, ErrRange)

	_, err = ToUnixTime(MinTime, Nanoseconds)
	assert.ErrorIs(t, err, ErrRange)

	// Beyond the int64 tick range every unit overflows.
	far := time.Date(50000, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, unit := range Units {
		_, err := ToUnixTime(far, unit)
		assert.ErrorIs(t, err, ErrRange, "unit %s", unit)
	}

	got, err := ToUnixTime(MaxTime, Microseconds)
	require.NoError(t, err)
	assert.Equal(t, int64(253402300799999999), got)
}

func TestToUnixTime_InvalidUnit(t *testing.T) {
	_, err := ToUnixTime(reference, Unit(7))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToUnixTime_FloorsSubTickNanoseconds(t *testing.T) {
	ns, err := ToUnixTime(reference.Add(199*time.Nanosecond), Nanoseconds)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890000000100), ns)
}

// =============================================================================
// Round-trip Tests
// =============================================================================

func TestRoundTrip_ExactUnits(t *testing.T) {
	bounds := map[Unit][2]int64{
		Seconds:      {-62135596800, 253402300799},
		Milliseconds: {-62135596800000, 253402300799999},
		Microseconds: {-62135596800000000, 253402300799999999},
	}

	rng := rand.New(rand.NewSource(1))
	for unit, b := range bounds {
		samples := []int64{b[0], b[1], 0, 1, -1, b[0] + 1, b[1] - 1}
		for i := 0; i < 500; i++ {
			samples = append(samples, b[0]+rng.Int63n(b[1]-b[0]))
		}
		for _, v := range samples {
			ts, err := FromUnixTime(v, unit)
			require.NoError(t, err, "value %d unit %s", v, unit)
			got, err := ToUnixTime(ts, unit)
			require.NoError(t, err)
			assert.Equal(t, v, got, "unit %s", unit)
		}
	}
}

func TestRoundTrip_NanosecondsTruncateToTick(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	samples := []int64{0, 1, 99, 100, 101, -1, -99, -100, -101, -150, math.MaxInt64, math.MinInt64}
	for i := 0; i < 500; i++ {
		samples = append(samples, rng.Int63()-rng.Int63())
	}

	for _, v := range samples {
		ts, err := FromUnixTime(v, Nanoseconds)
		require.NoError(t, err)
		got, err := ToUnixTime(ts, Nanoseconds)
		require.NoError(t, err)
		// Go's % keeps the sign of the dividend, so this truncates toward zero.
		assert.Equal(t, v-v%100, got, "value %d", v)
	}
}

// =============================================================================
// Ticks / Convert Tests
// =============================================================================

func TestTicks(t *testing.T) {
	ticks, err := Ticks(Epoch)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ticks)

	ticks, err = Ticks(MaxTime)
	require.NoError(t, err)
	assert.Equal(t, maxTicks, ticks)

	ticks, err = Ticks(MinTime.In(est))
	require.NoError(t, err)
	assert.Equal(t, minTicks, ticks)

	back, err := FromTicks(ticks)
	require.NoError(t, err)
	assertSameInstant(t, MinTime, back)

	_, err = FromTicks(maxTicks + 1)
	assert.ErrorIs(t, err, ErrRange)
	_, err = FromTicks(minTicks - 1)
	assert.ErrorIs(t, err, ErrRange)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		from, to Unit
		want     int64
	}{
		{"s to ms", 1234567890, Seconds, Milliseconds, 1234567890000},
		{"ms to s truncates", 1999, Milliseconds, Seconds, 1},
		{"negative ms to s truncates toward zero", -1999, Milliseconds, Seconds, -1},
		{"us to ns", 5, Microseconds, Nanoseconds, 5000},
		{"ns to us", 1234567, Nanoseconds, Microseconds, 1234},
		{"identity", 42, Seconds, Seconds, 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.value, tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Convert(math.MaxInt64, Seconds, Milliseconds)
	assert.ErrorIs(t, err, ErrRange)

	_, err = Convert(253402300799, Seconds, Nanoseconds)
	assert.ErrorIs(t, err, ErrRange)

	_, err = Convert(1, Seconds, Unit(9))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInRangeAndTruncate(t *testing.T) {
	assert.True(t, InRange(MinTime))
	assert.True(t, InRange(MaxTime))
	assert.False(t, InRange(MinTime.Add(-time.Nanosecond)))
	assert.False(t, InRange(MaxTime.Add(100*time.Nanosecond)))

	got := Truncate(reference.Add(123456789 * time.Nanosecond).In(est))
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 123456700, got.Nanosecond())
}

// =============================================================================
// checked arithmetic
// =============================================================================

func TestMulInt64(t *testing.T) {
	tests := []struct {
		a, b int64
		ok   bool
	}{
		{0, math.MaxInt64, true},
		{math.MaxInt64, 1, true},
		{math.MaxInt64, 2, false},
		{math.MinInt64, -1, false},
		{-1, math.MinInt64, false},
		{math.MinInt64, 1, true},
		{math.MaxInt64 / 10, 10, true},
		{math.MaxInt64/10 + 1, 10, false},
		{math.MinInt64 / 10, 10, true},
		{math.MinInt64/10 - 1, 10, false},
	}

	for _, tc := range tests {
		got, ok := mulInt64(tc.a, tc.b)
		assert.Equal(t, tc.ok, ok, "%d * %d", tc.a, tc.b)
		if ok {
			assert.Equal(t, tc.a*tc.b, got)
		}
	}
}

func TestAddInt64(t *testing.T) {
	_, ok := addInt64(math.MaxInt64, 1)
	assert.False(t, ok)
	_, ok = addInt64(math.MinInt64, -1)
	assert.False(t, ok)
	got, ok := addInt64(math.MaxInt64, math.MinInt64)
	assert.True(t, ok)
	assert.Equal(t, int64(-1), got)
}
