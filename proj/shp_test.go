package proj

import (
	"path/filepath"
	"testing"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"

	"github.com/stretchr/testify/require"
)

func TestShapefile(t *testing.T) {
	r := require.New(t)
	f := NewFactory()
	defer f.Close()

	shp := filepath.Join(t.TempDir(), "zones.shp")
	r.NoError(f.WriteShapefile(shp, geoapi.UNIVERSAL_SRID,
		PointsToWkt(100, 105, 20, 22),
		PointsToWkt(104, 110, 21, 25),
		"POLYGON((",
	))

	c, err := f.CRSOfShapefile(shp)
	r.NoError(err)
	r.Equal(crs.Geographic, c.Kind())

	env, err := f.ShapefileEnvelope(shp)
	r.NoError(err)
	lo := env.LowerCorner().Coordinates()
	hi := env.UpperCorner().Coordinates()
	if latFirst(c) {
		r.Equal([]float64{20, 100}, lo)
		r.Equal([]float64{25, 110}, hi)
	} else {
		r.Equal([]float64{100, 20}, lo)
		r.Equal([]float64{110, 25}, hi)
	}

	_, err = f.CRSOfShapefile(filepath.Join(t.TempDir(), "missing.shp"))
	r.ErrorIs(err, geoapi.ErrGdalDriverOpen)
}
