package simple

import (
	"testing"

	"github.com/wgdzlh/geoapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectPosition(t *testing.T) {
	p, err := NewDirectPosition(CRS84, 120, 30)
	require.NoError(t, err)
	v, err := p.Ordinate(1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)
	assert.Equal(t, "POINT(120 30)", p.String())
	_, err = p.Ordinate(2)
	assert.ErrorIs(t, err, geoapi.ErrIndexOutOfBounds)

	_, err = NewDirectPosition(CRS84, 120)
	assert.ErrorIs(t, err, geoapi.ErrInvalidArgument)
}

func TestEnvelope(t *testing.T) {
	r := require.New(t)
	env, err := NewEnvelope([]float64{100, 20}, []float64{110, 25}, CRS84)
	r.NoError(err)
	span, err := env.Span(0)
	r.NoError(err)
	r.Equal(10.0, span)
	m, err := env.Median(1)
	r.NoError(err)
	r.Equal(22.5, m)
	r.True(env.Contains(105, 22))
	r.False(env.Contains(95, 22))
	r.Equal("BOX(100 20, 110 25)", env.String())

	_, err = NewEnvelope([]float64{0, 30}, []float64{10, 20}, CRS84)
	r.ErrorIs(err, geoapi.ErrInvalidArgument)
	_, err = NewEnvelope([]float64{0, 0}, []float64{10}, nil)
	r.ErrorIs(err, geoapi.ErrInvalidArgument)
}

func TestEnvelopeAntimeridian(t *testing.T) {
	r := require.New(t)
	env, err := NewEnvelope([]float64{170, -10}, []float64{-170, 10}, CRS84)
	r.NoError(err)

	lo, err := env.Minimum(0)
	r.NoError(err)
	r.Equal(-180.0, lo)
	hi, err := env.Maximum(0)
	r.NoError(err)
	r.Equal(180.0, hi)
	span, err := env.Span(0)
	r.NoError(err)
	r.Equal(20.0, span)
	m, err := env.Median(0)
	r.NoError(err)
	r.Equal(180.0, m)

	r.True(env.Contains(175, 0))
	r.True(env.Contains(-175, 0))
	r.False(env.Contains(0, 0))
}

func TestEnvelopeFromBoundingBox(t *testing.T) {
	box, err := NewGeographicBoundingBox(100, 110, 20, 25)
	require.NoError(t, err)

	env, err := EnvelopeFromBoundingBox(box, nil)
	require.NoError(t, err)
	assert.Equal(t, "BOX(100 20, 110 25)", env.String())
	assert.Same(t, CRS84, env.CRS())

	env, err = EnvelopeFromBoundingBox(box, WGS84)
	require.NoError(t, err)
	assert.Equal(t, "BOX(20 100, 25 110)", env.String())

	_, err = NewGeographicBoundingBox(100, 110, 30, 20)
	assert.ErrorIs(t, err, geoapi.ErrInvalidArgument)
}
