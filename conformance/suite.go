package conformance

import (
	"errors"
	"math"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/opengis/referencing/datum"

	"github.com/stretchr/testify/assert"
)

const (
	UNKNOWN_CODE = "EPSG:99999999"
	EPSG_4326    = "EPSG:4326"
	EPSG_3857    = "EPSG:3857"
)

// AuthorityFactorySuite EPSG权威工厂的固定用例
type AuthorityFactorySuite struct {
	Factory crs.AuthorityFactory
	// 为true时要求工厂提供EPSG:3857，否则缺失时跳过
	Strict bool
}

// 固定用例列表，可逐个交给Report运行
func (s *AuthorityFactorySuite) Cases() []Case {
	return []Case{
		{Name: "authority", Run: s.TestAuthority},
		{Name: EPSG_4326, Run: s.TestWGS84},
		{Name: EPSG_3857, Run: s.TestWebMercator},
		{Name: "unknown code", Run: s.TestUnknownCode},
	}
}

// 在t上运行全部用例
func (s *AuthorityFactorySuite) Run(t assert.TestingT) bool {
	ok := true
	for _, c := range s.Cases() {
		ok = c.Run(t) && ok
	}
	return ok
}

func (s *AuthorityFactorySuite) TestAuthority(t assert.TestingT) bool {
	if !assert.NotNil(t, s.Factory, "factory") {
		return false
	}
	ok := assert.NotNil(t, s.Factory.Authority(), "authority citation")
	codes, err := s.Factory.AuthorityCodes()
	return assert.NoError(t, err, "authority codes") && assert.NotNil(t, codes) && ok
}

func (s *AuthorityFactorySuite) TestWGS84(t assert.TestingT) bool {
	c, err := s.Factory.CreateCoordinateReferenceSystem(EPSG_4326)
	if !assert.NoError(t, err, EPSG_4326) {
		return false
	}
	ok := ValidateCRS(t, c)
	ok = assert.Equal(t, crs.Geographic, c.Kind(), "kind") && ok
	c4326 := c.CoordinateSystem()
	if !assert.Equal(t, 2, c4326.Dimension(), "dimension") {
		return false
	}
	lat, _ := c4326.Axis(0)
	lon, _ := c4326.Axis(1)
	ok = axisIs(t, lat, cs.North, cs.Exact, -90, 90, cs.Degree) && ok
	ok = axisIs(t, lon, cs.East, cs.Wraparound, -180, 180, cs.Degree) && ok
	g, isGeodetic := c.(crs.GeodeticCRS)
	if !assert.True(t, isGeodetic, "geodetic crs") {
		return false
	}
	gd := g.GeodeticDatum()
	ok = wgs84Ellipsoid(t, gd.Ellipsoid()) && ok
	return greenwich(t, gd.PrimeMeridian()) && ok
}

func (s *AuthorityFactorySuite) TestWebMercator(t assert.TestingT) bool {
	c, err := s.Factory.CreateCoordinateReferenceSystem(EPSG_3857)
	if errors.Is(err, geoapi.ErrNoSuchAuthorityCode) && !s.Strict {
		return true
	}
	if !assert.NoError(t, err, EPSG_3857) {
		return false
	}
	ok := ValidateCRS(t, c)
	ok = assert.Equal(t, crs.Projected, c.Kind(), "kind") && ok
	c3857 := c.CoordinateSystem()
	if !assert.Equal(t, 2, c3857.Dimension(), "dimension") {
		return false
	}
	x, _ := c3857.Axis(0)
	y, _ := c3857.Axis(1)
	ok = assert.Equal(t, cs.East, x.Direction(), "first axis direction") && ok
	ok = assert.Equal(t, cs.North, y.Direction(), "second axis direction") && ok
	ok = assert.Equal(t, cs.Metre, x.Unit(), "first axis unit") && ok
	return assert.Equal(t, cs.Metre, y.Unit(), "second axis unit") && ok
}

func (s *AuthorityFactorySuite) TestUnknownCode(t assert.TestingT) bool {
	_, err := s.Factory.CreateCoordinateReferenceSystem(UNKNOWN_CODE)
	ok := assert.ErrorIs(t, err, geoapi.ErrNoSuchAuthorityCode, UNKNOWN_CODE)
	_, err = s.Factory.DescriptionText(UNKNOWN_CODE)
	return assert.ErrorIs(t, err, geoapi.ErrNoSuchAuthorityCode, "description of "+UNKNOWN_CODE) && ok
}

func axisIs(t assert.TestingT, a cs.CoordinateSystemAxis, dir cs.AxisDirection, rm cs.RangeMeaning, lo, hi float64, unit cs.Unit) bool {
	if !assert.NotNil(t, a, "axis") {
		return false
	}
	name := a.Name().Code()
	ok := assert.Equal(t, dir, a.Direction(), "%s direction", name)
	ok = assert.Equal(t, rm, a.RangeMeaning(), "%s range meaning", name) && ok
	ok = assert.InDelta(t, lo, a.MinimumValue(), 1e-9, "%s minimum", name) && ok
	ok = assert.InDelta(t, hi, a.MaximumValue(), 1e-9, "%s maximum", name) && ok
	return assert.InDelta(t, unit.Factor, a.Unit().Factor, 1e-15, "%s unit", name) && ok
}

func wgs84Ellipsoid(t assert.TestingT, e datum.Ellipsoid) bool {
	if !ValidateEllipsoid(t, e) {
		return false
	}
	ok := assert.InDelta(t, geoapi.WGS84_SEMI_MAJOR, e.AxisUnit().ToSI(e.SemiMajorAxis()), 1e-6, "semi-major axis")
	return assert.InDelta(t, geoapi.WGS84_INVERSE_FLATTENING, e.InverseFlattening(), 1e-9, "inverse flattening") && ok
}

func greenwich(t assert.TestingT, m datum.PrimeMeridian) bool {
	if !ValidatePrimeMeridian(t, m) {
		return false
	}
	return assert.True(t, math.Abs(m.GreenwichLongitude()) < 1e-12, "greenwich longitude %v", m.GreenwichLongitude())
}

// 校验code对应坐标系的用例，工厂无此代码时失败
func CRSCase(f crs.AuthorityFactory, code string) Case {
	return Case{
		Name: "crs " + code,
		Run: func(t assert.TestingT) bool {
			c, err := f.CreateCoordinateReferenceSystem(code)
			if !assert.NoError(t, err, code) {
				return false
			}
			return ValidateCRS(t, c)
		},
	}
}
