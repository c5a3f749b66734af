package simple

import (
	"testing"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/datum"

	"github.com/stretchr/testify/require"
)

// 10x5格网覆盖 [100,110]x[20,25] 的经纬度范围，行号自北向南
func testGridGeometry(t *testing.T) *GridGeometry {
	t.Helper()
	extent, err := NewGridEnvelope([]int64{0, 0}, []int64{9, 4})
	require.NoError(t, err)
	env, err := NewEnvelope([]float64{100, 20}, []float64{110, 25}, CRS84)
	require.NoError(t, err)
	g, err := NewGridGeometry(extent, env, datum.CellCenter)
	require.NoError(t, err)
	g, err = g.FlipAxis(1)
	require.NoError(t, err)
	return g
}

func TestGridGeometry(t *testing.T) {
	r := require.New(t)
	g := testGridGeometry(t)
	r.Equal([]float64{1, 1}, g.Resolution())

	p, err := g.GridToWorld(NewGridCoordinates(0, 0))
	r.NoError(err)
	r.Equal([]float64{100.5, 24.5}, p.Coordinates())
	r.Equal(CRS84, p.CRS())

	c, err := g.WorldToGrid(100.5, 24.5)
	r.NoError(err)
	r.Equal([]int64{0, 0}, c.Coordinates())
	c, err = g.WorldToGrid(110, 20)
	r.NoError(err)
	r.Equal([]int64{9, 4}, c.Coordinates())

	_, err = g.WorldToGrid(99.9, 22)
	r.ErrorIs(err, geoapi.ErrIndexOutOfBounds)
	_, err = g.WorldToGrid(100)
	r.ErrorIs(err, geoapi.ErrInvalidArgument)
}

func TestGridGeometryCorner(t *testing.T) {
	extent, err := NewGridEnvelope([]int64{10}, []int64{19})
	require.NoError(t, err)
	env, err := NewEnvelope([]float64{0}, []float64{100}, nil)
	require.NoError(t, err)
	g, err := NewGridGeometry(extent, env, datum.CellCorner)
	require.NoError(t, err)
	p, err := g.GridToWorld(NewGridCoordinates(12))
	require.NoError(t, err)
	require.Equal(t, []float64{20}, p.Coordinates())
}

func TestGridGeometrySubgrid(t *testing.T) {
	r := require.New(t)
	g := testGridGeometry(t)

	env, err := NewEnvelope([]float64{102.5, 21}, []float64{105, 23.5}, CRS84)
	r.NoError(err)
	sub, err := g.Subgrid(env)
	r.NoError(err)
	r.Equal("GridEnvelope[2..4, 1..3]", sub.String())

	env, err = NewEnvelope([]float64{90, 10}, []float64{200, 80}, nil)
	r.NoError(err)
	sub, err = g.Subgrid(env)
	r.NoError(err)
	r.True(sub.Equal(g.Extent()))

	env, err = NewEnvelope([]float64{120, 21}, []float64{130, 23}, CRS84)
	r.NoError(err)
	_, err = g.Subgrid(env)
	r.ErrorIs(err, geoapi.ErrInvalidArgument)

	env, err = NewEnvelope([]float64{21, 102}, []float64{23, 104}, WGS84)
	r.NoError(err)
	_, err = g.Subgrid(env)
	r.ErrorIs(err, geoapi.ErrInvalidArgument)
}

func TestGridGeometryInvalid(t *testing.T) {
	extent, err := NewGridEnvelope([]int64{0, 0}, []int64{9, 4})
	require.NoError(t, err)
	env, err := NewEnvelope([]float64{0}, []float64{1}, nil)
	require.NoError(t, err)
	_, err = NewGridGeometry(extent, env, datum.PixelInCell{})
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)
	_, err = NewGridGeometry(nil, env, datum.CellCenter)
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)
}
