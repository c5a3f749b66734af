package simple

import (
	"fmt"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
)

const (
	PSEUDO_MERCATOR_METHOD = "Popular Visualisation Pseudo Mercator"
	// Web墨卡托的纬度上限，使投影范围为正方形
	MERCATOR_MAX_LATITUDE  = 85.06
	MERCATOR_MAX_EXTENT    = 20037508.34
)

var (
	Greenwich      *PrimeMeridian
	WGS84Ellipsoid *Ellipsoid
	WGS84Datum     *Datum

	// EPSG:4326，坐标顺序为(纬度,经度)
	WGS84       *GeographicCRS
	// OGC:CRS84，坐标顺序为(经度,纬度)
	CRS84       *GeographicCRS
	// EPSG:3857
	WebMercator *ProjectedCRS

	WorldExtent *Extent
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("simple: well-known object: %v", err))
	}
	return v
}

func epsg(name, code string) Properties {
	return Properties{Name: name, Authority: EPSG, Code: code}
}

func init() {
	WorldExtent = NewExtent("World", must(NewGeographicBoundingBox(-180, 180, -90, 90)))
	Greenwich = must(NewPrimeMeridian(epsg("Greenwich", "8901"), 0, cs.Degree))
	WGS84Ellipsoid = must(NewEllipsoidFromInverseFlattening(epsg("WGS 84", "7030"), geoapi.WGS84_SEMI_MAJOR, geoapi.WGS84_INVERSE_FLATTENING, cs.Metre))
	WGS84Datum = must(NewGeodeticDatum(Properties{
		Name:      "WGS_1984",
		Authority: EPSG,
		Code:      "6326",
		Aliases:   []string{"World Geodetic System 1984"},
	}, WGS84Ellipsoid, Greenwich))

	lat := must(must(NewAxis(Properties{Name: "Latitude"}, "φ", cs.North, cs.Degree)).WithRange(-90, 90, cs.Exact))
	lon := must(must(NewAxis(Properties{Name: "Longitude"}, "λ", cs.East, cs.Degree)).WithRange(-180, 180, cs.Wraparound))

	WGS84 = must(NewGeographicCRS(Properties{
		Name:      "WGS 84",
		Authority: EPSG,
		Code:      fmt.Sprint(geoapi.UNIVERSAL_SRID),
		Scope:     "Horizontal component of 3D system.",
		Domain:    WorldExtent,
	}, WGS84Datum, must(NewCoordinateSystem(epsg("ellipsoidal 2D CS. Axes: latitude, longitude.", "6422"), cs.Ellipsoidal, lat, lon))))

	CRS84 = must(NewGeographicCRS(Properties{
		Name:      "WGS 84 (CRS84)",
		Authority: OGC,
		Code:      "CRS84",
		Aliases:   []string{"CRS:84"},
		Domain:    WorldExtent,
	}, WGS84Datum, must(NewCoordinateSystem(epsg("ellipsoidal 2D CS. Axes: longitude, latitude.", "6424"), cs.Ellipsoidal, lon, lat))))

	easting := must(NewAxis(Properties{Name: "Easting"}, "X", cs.East, cs.Metre))
	northing := must(NewAxis(Properties{Name: "Northing"}, "Y", cs.North, cs.Metre))
	WebMercator = must(NewProjectedCRS(Properties{
		Name:      "WGS 84 / Pseudo-Mercator",
		Authority: EPSG,
		Code:      fmt.Sprint(geoapi.WEB_MERCATOR_SRID),
		Scope:     "Web mapping and visualisation.",
		Domain:    NewExtent("World between 85.06°S and 85.06°N.", must(NewGeographicBoundingBox(-180, 180, -MERCATOR_MAX_LATITUDE, MERCATOR_MAX_LATITUDE))),
	}, WGS84, PSEUDO_MERCATOR_METHOD, []Parameter{
		{Name: "central_meridian", Value: 0},
		{Name: "scale_factor", Value: 1},
		{Name: "false_easting", Value: 0},
		{Name: "false_northing", Value: 0},
	}, must(NewCoordinateSystem(epsg("Cartesian 2D CS. Axes: easting, northing (X,Y).", "4499"), cs.Cartesian, easting, northing))))
}
