package simple

import (
	"testing"
	"time"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/temporal"

	"github.com/stretchr/testify/require"
)

func day(d int) *Instant {
	return NewInstant(time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC))
}

func period(t *testing.T, from, to int) *Period {
	t.Helper()
	p, err := NewPeriod(day(from), day(to))
	require.NoError(t, err)
	return p
}

func TestPeriod(t *testing.T) {
	p := period(t, 1, 3)
	require.Equal(t, 48*time.Hour, p.Length())
	require.Equal(t, "2024-01-01T00:00:00Z/2024-01-03T00:00:00Z", p.String())

	_, err := NewPeriod(day(3), day(1))
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)

	now, err := NewIndeterminateInstant(temporal.Now)
	require.NoError(t, err)
	p, err = NewPeriod(day(1), now)
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), p.Length())
	require.Equal(t, "NOW", now.String())
}

func TestRelate(t *testing.T) {
	cases := []struct {
		a, b temporal.TemporalPrimitive
		want temporal.RelativePosition
	}{
		{period(t, 1, 2), period(t, 3, 4), temporal.IsBefore},
		{period(t, 3, 4), period(t, 1, 2), temporal.IsAfter},
		{period(t, 1, 2), period(t, 2, 4), temporal.Meets},
		{period(t, 2, 4), period(t, 1, 2), temporal.MetBy},
		{period(t, 1, 3), period(t, 2, 4), temporal.Overlaps},
		{period(t, 2, 4), period(t, 1, 3), temporal.OverlappedBy},
		{period(t, 1, 2), period(t, 1, 4), temporal.Begins},
		{period(t, 1, 4), period(t, 1, 2), temporal.BegunBy},
		{period(t, 3, 4), period(t, 1, 4), temporal.Ends},
		{period(t, 1, 4), period(t, 3, 4), temporal.EndedBy},
		{period(t, 2, 3), period(t, 1, 4), temporal.During},
		{period(t, 1, 4), period(t, 2, 3), temporal.Contains},
		{period(t, 1, 4), period(t, 1, 4), temporal.Equals},
		{day(1), period(t, 1, 4), temporal.Begins},
		{day(4), period(t, 1, 4), temporal.Ends},
		{day(2), period(t, 1, 4), temporal.During},
		{period(t, 1, 4), day(1), temporal.BegunBy},
		{period(t, 1, 4), day(4), temporal.EndedBy},
		{period(t, 1, 4), day(2), temporal.Contains},
		{day(2), day(2), temporal.Equals},
		{day(1), day(2), temporal.IsBefore},
	}
	for i, c := range cases {
		rel, err := temporal.Relate(c.a, c.b)
		require.NoError(t, err, i)
		require.Equal(t, c.want, rel, "case %d: got %s", i, rel.Name())
	}
}

func TestRelateIndeterminate(t *testing.T) {
	now, err := NewIndeterminateInstant(temporal.Now)
	require.NoError(t, err)
	rel, err := temporal.Relate(day(1), now)
	require.NoError(t, err)
	require.Equal(t, temporal.IsBefore, rel)

	unknown, err := NewIndeterminateInstant(temporal.Unknown)
	require.NoError(t, err)
	_, err = temporal.Relate(day(1), unknown)
	require.ErrorIs(t, err, geoapi.ErrUnsupportedOperation)

	_, err = NewIndeterminateInstant(temporal.IndeterminateValue{})
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)
}
