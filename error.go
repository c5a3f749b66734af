package geoapi

import "errors"

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrIndexOutOfBounds     = errors.New("index out of bounds")
	ErrNoSuchAuthorityCode  = errors.New("no such authority code")
	ErrVoidSrid             = errors.New("gdal spatial ref with void srid")
	ErrGdalDriverOpen       = errors.New("gdal driver open err")
	ErrInvalidWKT           = errors.New("invalid WKT")
	ErrTransform            = errors.New("coordinate transform failed")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrNotConformant        = errors.New("not conformant")
	ErrInvalidGeoJSON       = errors.New("invalid GeoJSON")
)
