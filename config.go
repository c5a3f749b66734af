package geoapi

const (
	AUTHORITY_EPSG = "EPSG"
	AUTHORITY_OGC  = "OGC"
	AUTHORITY_CRS  = "CRS"

	UNIVERSAL_SRID    = 4326
	WEB_MERCATOR_SRID = 3857
	CGCS2000_SRID     = 4490

	SHP_DRIVER_NAME = "ESRI Shapefile"

	WGS84_SEMI_MAJOR         = 6378137.0
	WGS84_INVERSE_FLATTENING = 298.257223563
)
