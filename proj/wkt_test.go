package proj

import (
	"testing"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"

	"github.com/stretchr/testify/require"
)

const webMercatorWKT = `PROJCS["WGS 84 / Pseudo-Mercator",
    GEOGCS["WGS 84",
        DATUM["WGS_1984",
            SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],
            AUTHORITY["EPSG","6326"]],
        PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],
        UNIT["degree",0.0174532925199433,AUTHORITY["EPSG","9122"]],
        AUTHORITY["EPSG","4326"]],
    PROJECTION["Mercator_1SP"],
    PARAMETER["central_meridian",0],
    PARAMETER["scale_factor",1],
    PARAMETER["false_easting",0],
    PARAMETER["false_northing",0],
    UNIT["metre",1,AUTHORITY["EPSG","9001"]],
    AXIS["Easting",EAST],
    AXIS["Northing",NORTH],
    EXTENSION["PROJ4","+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +wktext +no_defs"],
    AUTHORITY["EPSG","3857"]]`

func TestParseWKT(t *testing.T) {
	r := require.New(t)
	n, err := parseWKT(webMercatorWKT)
	r.NoError(err)
	r.Equal("PROJCS", n.keyword)
	r.Equal("WGS 84 / Pseudo-Mercator", n.value(0))
	space, code := n.authority()
	r.Equal("EPSG", space)
	r.Equal("3857", code)

	g := n.child("GEOGCS")
	r.NotNil(g)
	sph := g.child("DATUM").child("SPHEROID")
	ivf, err := sph.number(2)
	r.NoError(err)
	r.Equal(298.257223563, ivf)
	r.Len(n.childrenOf("PARAMETER"), 4)
	r.Empty(g.childrenOf("AXIS"))
	r.Equal("+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +wktext +no_defs", n.child("EXTENSION").value(1))

	axes := n.childrenOf("AXIS")
	r.Len(axes, 2)
	r.Equal([]string{"Northing", "NORTH"}, axes[1].values)

	r.Equal(cs.Metre, unitOf(n, cs.Metre))
	r.Equal(cs.Degree, unitOf(g, cs.Degree))
}

func TestParseWKTQuotesAndParens(t *testing.T) {
	n, err := parseWKT(`LOCAL_CS("say ""hi""", UNIT("foot", 0.3048))`)
	require.NoError(t, err)
	require.Equal(t, `say "hi"`, n.value(0))
	f, err := n.child("UNIT").number(1)
	require.NoError(t, err)
	require.Equal(t, 0.3048, f)
}

func TestParseWKTInvalid(t *testing.T) {
	for _, s := range []string{
		``,
		`GEOGCS`,
		`GEOGCS["WGS 84"`,
		`GEOGCS["WGS 84]`,
		`GEOGCS["WGS 84"] trailing`,
		`GEOGCS["WGS 84";1]`,
	} {
		_, err := parseWKT(s)
		require.ErrorIs(t, err, geoapi.ErrInvalidWKT, s)
	}
}

func TestAxesOfDefaults(t *testing.T) {
	n, err := parseWKT(`GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`)
	require.NoError(t, err)
	axes, err := axesOf(n, true, unitOf(n, cs.Degree))
	require.NoError(t, err)
	require.Len(t, axes, 2)
	require.Equal(t, cs.East, axes[0].Direction())
	require.Equal(t, cs.Wraparound, axes[0].RangeMeaning())
	require.Equal(t, 180.0, axes[0].MaximumValue())
	require.Equal(t, cs.North, axes[1].Direction())
	require.Equal(t, -90.0, axes[1].MinimumValue())

	_, err = axesOf(&wktNode{children: []*wktNode{{keyword: "AXIS", values: []string{"X", "SIDEWAYS"}}}}, false, cs.Metre)
	require.ErrorIs(t, err, geoapi.ErrInvalidWKT)
}
