package simple

import (
	"math"
	"testing"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWGS84(t *testing.T) {
	r := require.New(t)
	r.Equal(crs.Geographic, WGS84.Kind())
	r.Equal("WGS 84 (EPSG:4326)", WGS84.String())

	c := WGS84.CoordinateSystem()
	r.Equal(cs.Ellipsoidal, c.Type())
	r.Equal(2, c.Dimension())
	lat, err := c.Axis(0)
	r.NoError(err)
	r.Equal(cs.North, lat.Direction())
	r.Equal(cs.Exact, lat.RangeMeaning())
	r.Equal(-90.0, lat.MinimumValue())
	r.Equal(90.0, lat.MaximumValue())
	lon, err := c.Axis(1)
	r.NoError(err)
	r.Equal(cs.East, lon.Direction())
	r.Equal(cs.Wraparound, lon.RangeMeaning())
	r.Equal(cs.Degree, lon.Unit())
	_, err = c.Axis(2)
	r.ErrorIs(err, geoapi.ErrIndexOutOfBounds)

	e := WGS84.GeodeticDatum().Ellipsoid()
	r.Equal(6378137.0, e.SemiMajorAxis())
	r.InDelta(6356752.314245, e.SemiMinorAxis(), 1e-6)
	r.True(e.IsInverseFlatteningDefinitive())
	r.InDelta(0.00669437999014, WGS84Ellipsoid.EccentricitySquared(), 1e-12)
	r.Equal(0.0, WGS84.GeodeticDatum().PrimeMeridian().GreenwichLongitude())

	boxes := WGS84.DomainOfValidity().GeographicElements()
	r.Len(boxes, 1)
	r.Equal(-180.0, boxes[0].WestBoundLongitude())
}

func TestWellKnownWKT(t *testing.T) {
	wkt, err := WGS84.ToWKT()
	require.NoError(t, err)
	assert.Equal(t, `GEOGCS["WGS 84",`+
		`DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],AUTHORITY["EPSG","6326"]],`+
		`PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],`+
		`UNIT["degree",0.017453292519943295],`+
		`AXIS["Latitude",NORTH],AXIS["Longitude",EAST],`+
		`AUTHORITY["EPSG","4326"]]`, wkt)

	wkt, err = WebMercator.ToWKT()
	require.NoError(t, err)
	assert.Contains(t, wkt, `PROJCS["WGS 84 / Pseudo-Mercator",GEOGCS["WGS 84",`)
	assert.Contains(t, wkt, `PROJECTION["Popular Visualisation Pseudo Mercator"],PARAMETER["central_meridian",0],PARAMETER["scale_factor",1]`)
	assert.Contains(t, wkt, `UNIT["metre",1],AXIS["Easting",EAST],AXIS["Northing",NORTH],AUTHORITY["EPSG","3857"]]`)

	wkt, err = lonLatAxis(t).ToWKT()
	require.NoError(t, err)
	assert.Equal(t, `AXIS["Lon",EAST]`, wkt)
}

func lonLatAxis(t *testing.T) *Axis {
	t.Helper()
	a, err := NewAxis(Properties{Name: "Lon"}, "x", cs.East, cs.Degree)
	require.NoError(t, err)
	return a
}

func TestCoordinateSystemInvalid(t *testing.T) {
	east := lonLatAxis(t)
	west, err := NewAxis(Properties{Name: "W"}, "w", cs.West, cs.Degree)
	require.NoError(t, err)
	_, err = NewCoordinateSystem(Properties{Name: "bad"}, cs.Cartesian, east, west)
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)
	_, err = NewCoordinateSystem(Properties{Name: "empty"}, cs.Cartesian)
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)

	_, err = east.WithRange(10, -10, cs.Exact)
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)
	a, err := NewAxis(Properties{Name: "H"}, "h", cs.Up, cs.Metre)
	require.NoError(t, err)
	assert.True(t, math.IsInf(a.MaximumValue(), 1))
}

func TestEllipsoid(t *testing.T) {
	sphere, err := NewEllipsoid(Properties{Name: "sphere"}, 6371000, 6371000, cs.Metre)
	require.NoError(t, err)
	assert.True(t, sphere.IsSphere())
	assert.True(t, math.IsInf(sphere.InverseFlattening(), 1))
	wkt, err := sphere.ToWKT()
	require.NoError(t, err)
	assert.Equal(t, `SPHEROID["sphere",6371000,0]`, wkt)

	_, err = NewEllipsoid(Properties{Name: "bad"}, 1, 2, cs.Metre)
	assert.ErrorIs(t, err, geoapi.ErrInvalidArgument)
	_, err = NewEllipsoidFromInverseFlattening(Properties{Name: "bad"}, 6378137, 0.5, cs.Metre)
	assert.ErrorIs(t, err, geoapi.ErrInvalidArgument)
}

func TestProjectedCRSInvalid(t *testing.T) {
	_, err := NewProjectedCRS(Properties{Name: "bad"}, WGS84, PSEUDO_MERCATOR_METHOD, nil, WGS84.CoordinateSystem())
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)
	_, err = NewGeographicCRS(Properties{Name: "bad"}, WGS84Datum, WebMercator.CoordinateSystem())
	require.ErrorIs(t, err, geoapi.ErrInvalidArgument)
}

func TestFactory(t *testing.T) {
	r := require.New(t)
	f := NewFactory()
	r.Equal("EPSG", CitationCode(f.Authority()))

	codes, err := f.AuthorityCodes()
	r.NoError(err)
	r.Equal([]string{"CRS:84", "EPSG:3857", "EPSG:4326", "OGC:CRS84"}, codes)

	for code, want := range map[string]crs.CoordinateReferenceSystem{
		"4326":                          WGS84,
		"epsg:4326":                     WGS84,
		"EPSG:3857":                     WebMercator,
		"urn:ogc:def:crs:EPSG::4326":    WGS84,
		"CRS:84":                        CRS84,
		"urn:ogc:def:crs:OGC:1.3:CRS84": CRS84,
	} {
		c, err := f.CreateCoordinateReferenceSystem(code)
		r.NoError(err, code)
		r.Same(want, c, code)
	}

	_, err = f.CreateCoordinateReferenceSystem("EPSG:999999")
	r.ErrorIs(err, geoapi.ErrNoSuchAuthorityCode)
	_, err = f.DescriptionText("EPSG:999999")
	r.ErrorIs(err, geoapi.ErrNoSuchAuthorityCode)

	desc, err := f.DescriptionText("EPSG:3857")
	r.NoError(err)
	r.Equal("WGS 84 / Pseudo-Mercator", desc.String())
}

func TestWKTNumber(t *testing.T) {
	var w wktWriter
	w.open("N")
	for _, v := range []float64{6378137, 6356752.314245179, 0.017453292519943295, 1e21, -20037508.342789244, 0} {
		w.number(v)
	}
	w.close()
	assert.Equal(t, "N[6378137,6356752.314245179,0.017453292519943295,1000000000000000000000,-20037508.342789244,0]", w.b.String())
}
