package proj

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/simple"

	"github.com/stretchr/testify/require"
)

func TestFactoryWGS84(t *testing.T) {
	r := require.New(t)
	f := NewFactory()
	defer f.Close()

	c, err := f.CreateCoordinateReferenceSystem("EPSG:4326")
	r.NoError(err)
	r.Equal(crs.Geographic, c.Kind())
	g, ok := c.(*GeographicCRS)
	r.True(ok)
	r.Equal(4326, g.SRID())
	r.Contains(g.Proj4(), "+proj=longlat")

	lat, err := c.CoordinateSystem().Axis(0)
	r.NoError(err)
	r.Equal(cs.North, lat.Direction())
	r.Equal(cs.Exact, lat.RangeMeaning())
	r.Equal(90.0, lat.MaximumValue())
	lon, err := c.CoordinateSystem().Axis(1)
	r.NoError(err)
	r.Equal(cs.East, lon.Direction())
	r.Equal(cs.Wraparound, lon.RangeMeaning())

	e := g.GeodeticDatum().Ellipsoid()
	r.Equal(geoapi.WGS84_SEMI_MAJOR, e.SemiMajorAxis())
	r.InDelta(geoapi.WGS84_INVERSE_FLATTENING, e.InverseFlattening(), 1e-9)

	again, err := f.CreateCoordinateReferenceSystem("urn:ogc:def:crs:EPSG::4326")
	r.NoError(err)
	r.Same(c, again)

	codes, err := f.AuthorityCodes()
	r.NoError(err)
	r.Equal([]string{"EPSG:4326"}, codes)
}

func TestFactoryWebMercator(t *testing.T) {
	r := require.New(t)
	f := NewFactory()
	defer f.Close()

	c, err := f.CreateCoordinateReferenceSystem("3857")
	r.NoError(err)
	p, ok := c.(*ProjectedCRS)
	r.True(ok)
	r.Equal(crs.Projected, p.Kind())
	r.Equal("WGS 84", p.BaseCRS().Name().Code())
	r.NotEmpty(p.Projection())
	x, err := p.CoordinateSystem().Axis(0)
	r.NoError(err)
	r.Equal(cs.East, x.Direction())
	r.Equal(cs.Metre, x.Unit())

	wkt, err := p.ToWKT()
	r.NoError(err)
	r.Contains(wkt, `AUTHORITY["EPSG","3857"]`)

	desc, err := f.DescriptionText("EPSG:3857")
	r.NoError(err)
	r.Equal("WGS 84 / Pseudo-Mercator", desc.String())
}

func TestFactoryUnknownCode(t *testing.T) {
	f := NewFactory()
	defer f.Close()
	for _, code := range []string{"EPSG:999999", "OGC:CRS84", "EPSG:abc", ""} {
		_, err := f.CreateCoordinateReferenceSystem(code)
		require.ErrorIs(t, err, geoapi.ErrNoSuchAuthorityCode, code)
	}
}

func TestFromWKT(t *testing.T) {
	f := NewFactory()
	defer f.Close()

	c, err := f.FromWKT(webMercatorWKT)
	require.NoError(t, err)
	require.Equal(t, 3857, c.(*ProjectedCRS).SRID())

	_, err = f.FromWKT("GEOGCS[")
	require.ErrorIs(t, err, geoapi.ErrInvalidWKT)
}

func TestFromPrjFile(t *testing.T) {
	dir := t.TempDir()
	shp := filepath.Join(dir, "zone.shp")
	prj := `GEOGCS["China Geodetic Coordinate System 2000",DATUM["China_2000",SPHEROID["CGCS2000",6378137,298.257222101]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zone.prj"), []byte(prj), 0o644))

	f := NewFactory()
	defer f.Close()
	c, err := f.FromPrjFile(shp)
	require.NoError(t, err)
	g := c.(*GeographicCRS)
	require.Equal(t, geoapi.CGCS2000_SRID, g.SRID())
	require.InDelta(t, 298.257222101, g.GeodeticDatum().Ellipsoid().InverseFlattening(), 1e-9)

	_, err = f.FromPrjFile(filepath.Join(dir, "missing.shp"))
	require.Error(t, err)
}

func TestTransformWKT(t *testing.T) {
	f := NewFactory()
	defer f.Close()
	span := [4]float64{113.695688629, 115.075725846, 29.971802123, 31.360788281}
	wkt := SpanToWkt(span)
	ret, err := f.TransformWKT(wkt, geoapi.UNIVERSAL_SRID, geoapi.WEB_MERCATOR_SRID)
	require.NoError(t, err)
	span, err = f.WKTSpan(ret, geoapi.WEB_MERCATOR_SRID)
	require.NoError(t, err)
	x, y := simple.Convert4326To3857(113.695688629, 29.971802123)
	require.InDelta(t, x, span[0], 1e-2)
	require.InDelta(t, y, span[2], 1e-2)
	x, y = simple.Convert4326To3857(115.075725846, 31.360788281)
	require.InDelta(t, x, span[1], 1e-2)
	require.InDelta(t, y, span[3], 1e-2)

	same, err := f.TransformWKT(wkt, 4326, 4326)
	require.NoError(t, err)
	require.Equal(t, wkt, same)

	_, err = f.TransformWKT("POLYGON((", 4326, 3857)
	require.ErrorIs(t, err, geoapi.ErrInvalidWKT)
}
