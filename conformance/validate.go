// Package conformance 校验各接口实现是否满足结构约束，校验结果通过 assert.TestingT 报告，
// 可在 go test 中使用，也可由 Report 收集后输出。
package conformance

import (
	"math"

	"github.com/wgdzlh/geoapi/opengis/coverage/grid"
	"github.com/wgdzlh/geoapi/opengis/geometry"
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/opengis/referencing/datum"
	"github.com/wgdzlh/geoapi/opengis/temporal"
	"github.com/wgdzlh/geoapi/opengis/util"

	"github.com/stretchr/testify/assert"
)

// 全部通过时返回true
func ValidateIdentifier(t assert.TestingT, id metadata.Identifier) bool {
	if !assert.NotNil(t, id, "identifier") {
		return false
	}
	return assert.NotEmpty(t, id.Code(), "identifier code")
}

func ValidateAxis(t assert.TestingT, a cs.CoordinateSystemAxis) bool {
	if !assert.NotNil(t, a, "axis") {
		return false
	}
	ok := ValidateIdentifier(t, a.Name())
	ok = assert.NotNil(t, a.Direction().Code, "axis %s direction", a.Name().Code()) && ok
	ok = assert.NotNil(t, a.RangeMeaning().Code, "axis %s range meaning", a.Name().Code()) && ok
	ok = assert.Less(t, a.MinimumValue(), a.MaximumValue(), "axis %s range", a.Name().Code()) && ok
	if a.RangeMeaning() == cs.Wraparound {
		ok = assert.False(t, math.IsInf(a.MaximumValue()-a.MinimumValue(), 0), "axis %s wraparound range must be finite", a.Name().Code()) && ok
	}
	return ok
}

// 坐标轴方向两两不共线，越界维度返回错误
func ValidateCoordinateSystem(t assert.TestingT, c cs.CoordinateSystem) bool {
	if !assert.NotNil(t, c, "coordinate system") {
		return false
	}
	dim := c.Dimension()
	ok := assert.Positive(t, dim, "coordinate system dimension")
	axes := make([]cs.CoordinateSystemAxis, 0, dim)
	for i := 0; i < dim; i++ {
		a, err := c.Axis(i)
		if !assert.NoError(t, err, "axis %d", i) {
			ok = false
			continue
		}
		ok = ValidateAxis(t, a) && ok
		for j, b := range axes {
			if d := a.Direction(); d != cs.Other {
				ok = assert.False(t, d.IsColinear(b.Direction()), "axes %d and %d are colinear", j, i) && ok
			}
		}
		axes = append(axes, a)
	}
	_, err := c.Axis(dim)
	ok = assert.Error(t, err, "axis beyond dimension") && ok
	_, err = c.Axis(-1)
	return assert.Error(t, err, "negative axis index") && ok
}

func ValidateEllipsoid(t assert.TestingT, e datum.Ellipsoid) bool {
	if !assert.NotNil(t, e, "ellipsoid") {
		return false
	}
	a, b := e.SemiMajorAxis(), e.SemiMinorAxis()
	ok := ValidateIdentifier(t, e.Name())
	ok = assert.Positive(t, b, "semi-minor axis") && ok
	ok = assert.GreaterOrEqual(t, a, b, "semi-major axis") && ok
	if e.IsSphere() {
		return assert.True(t, math.IsInf(e.InverseFlattening(), 1), "inverse flattening of sphere") && ok
	}
	ok = assert.Greater(t, e.InverseFlattening(), 1.0, "inverse flattening") && ok
	return assert.InEpsilon(t, a/(a-b), e.InverseFlattening(), 1e-9, "inverse flattening consistent with semi-axes") && ok
}

func ValidatePrimeMeridian(t assert.TestingT, m datum.PrimeMeridian) bool {
	if !assert.NotNil(t, m, "prime meridian") {
		return false
	}
	ok := ValidateIdentifier(t, m.Name())
	ok = assert.Equal(t, cs.Angle, m.AngularUnit().Kind, "prime meridian unit") && ok
	return assert.LessOrEqual(t, math.Abs(m.AngularUnit().ToSI(m.GreenwichLongitude())), math.Pi, "greenwich longitude") && ok
}

func ValidateDatum(t assert.TestingT, d datum.GeodeticDatum) bool {
	if !assert.NotNil(t, d, "datum") {
		return false
	}
	ok := ValidateIdentifier(t, d.Name())
	ok = ValidateEllipsoid(t, d.Ellipsoid()) && ok
	return ValidatePrimeMeridian(t, d.PrimeMeridian()) && ok
}

// 按坐标系类型校验坐标系、基准面与投影
func ValidateCRS(t assert.TestingT, c crs.CoordinateReferenceSystem) bool {
	if !assert.NotNil(t, c, "crs") {
		return false
	}
	ok := ValidateIdentifier(t, c.Name())
	ok = ValidateCoordinateSystem(t, c.CoordinateSystem()) && ok
	for _, id := range c.Identifiers() {
		ok = ValidateIdentifier(t, id) && ok
	}
	if d := c.DomainOfValidity(); d != nil {
		for _, box := range d.GeographicElements() {
			ok = ValidateGeographicBoundingBox(t, box) && ok
		}
	}
	wkt, err := c.ToWKT()
	ok = assert.NoError(t, err, "wkt") && assert.NotEmpty(t, wkt, "wkt") && ok
	switch c.Kind() {
	case crs.Geographic:
		g, isGeodetic := c.(crs.GeodeticCRS)
		if !assert.True(t, isGeodetic, "geographic crs %T implements GeodeticCRS", c) {
			return false
		}
		ok = assert.Equal(t, cs.Ellipsoidal, c.CoordinateSystem().Type(), "geographic coordinate system type") && ok
		ok = ValidateDatum(t, g.GeodeticDatum()) && ok
	case crs.Projected:
		p, isProjected := c.(crs.ProjectedCRS)
		if !assert.True(t, isProjected, "projected crs %T implements ProjectedCRS", c) {
			return false
		}
		ok = assert.Equal(t, cs.Cartesian, c.CoordinateSystem().Type(), "projected coordinate system type") && ok
		ok = assert.NotEmpty(t, p.Projection(), "projection") && ok
		ok = ValidateCRS(t, p.BaseCRS()) && ok
	}
	return ok
}

// 跨越经度±180°时west可大于east
func ValidateGeographicBoundingBox(t assert.TestingT, b metadata.GeographicBoundingBox) bool {
	if !assert.NotNil(t, b, "bounding box") {
		return false
	}
	ok := true
	for _, lon := range []float64{b.WestBoundLongitude(), b.EastBoundLongitude()} {
		ok = assert.True(t, lon >= -180 && lon <= 180, "longitude %v out of [-180, 180]", lon) && ok
	}
	for _, lat := range []float64{b.SouthBoundLatitude(), b.NorthBoundLatitude()} {
		ok = assert.True(t, lat >= -90 && lat <= 90, "latitude %v out of [-90, 90]", lat) && ok
	}
	return assert.LessOrEqual(t, b.SouthBoundLatitude(), b.NorthBoundLatitude(), "south bound") && ok
}

// low < high 且 span = high - low + 1
func ValidateGridEnvelope(t assert.TestingT, e grid.GridEnvelope) bool {
	if !assert.NotNil(t, e, "grid envelope") {
		return false
	}
	dim := e.Dimension()
	ok := assert.Equal(t, dim, e.LowCoordinates().Dimension(), "low coordinates dimension")
	ok = assert.Equal(t, dim, e.HighCoordinates().Dimension(), "high coordinates dimension") && ok
	for i := 0; i < dim; i++ {
		low, err1 := e.Low(i)
		high, err2 := e.High(i)
		span, err3 := e.Span(i)
		if !assert.NoError(t, err1) || !assert.NoError(t, err2) || !assert.NoError(t, err3) {
			ok = false
			continue
		}
		ok = assert.Less(t, low, high, "grid low at dimension %d", i) && ok
		ok = assert.Equal(t, high-low+1, span, "grid span at dimension %d", i) && ok
		c, _ := e.LowCoordinates().Coordinate(i)
		ok = assert.Equal(t, low, c, "low coordinate at dimension %d", i) && ok
		c, _ = e.HighCoordinates().Coordinate(i)
		ok = assert.Equal(t, high, c, "high coordinate at dimension %d", i) && ok
	}
	_, err := e.Low(dim)
	ok = assert.Error(t, err, "low beyond dimension") && ok
	_, err = e.Span(-1)
	return assert.Error(t, err, "span at negative dimension") && ok
}

// 最小值不大于最大值，中值在两者之间
func ValidateEnvelope(t assert.TestingT, e geometry.Envelope) bool {
	if !assert.NotNil(t, e, "envelope") {
		return false
	}
	dim := e.Dimension()
	ok := assert.Equal(t, dim, e.LowerCorner().Dimension(), "lower corner dimension")
	ok = assert.Equal(t, dim, e.UpperCorner().Dimension(), "upper corner dimension") && ok
	if c := e.CRS(); c != nil {
		ok = assert.Equal(t, c.CoordinateSystem().Dimension(), dim, "envelope dimension of crs") && ok
	}
	for i := 0; i < dim; i++ {
		lo, err1 := e.Minimum(i)
		hi, err2 := e.Maximum(i)
		span, err3 := e.Span(i)
		if !assert.NoError(t, err1) || !assert.NoError(t, err2) || !assert.NoError(t, err3) {
			ok = false
			continue
		}
		ok = assert.LessOrEqual(t, lo, hi, "envelope minimum at dimension %d", i) && ok
		ok = assert.GreaterOrEqual(t, span, 0.0, "envelope span at dimension %d", i) && ok
		if m, err := e.Median(i); assert.NoError(t, err) {
			ok = assert.True(t, m >= lo && m <= hi, "median %v out of [%v, %v]", m, lo, hi) && ok
		}
	}
	return ok
}

func ValidatePeriod(t assert.TestingT, p temporal.Period) bool {
	if !assert.NotNil(t, p, "period") {
		return false
	}
	ok := assert.NotNil(t, p.Beginning(), "period beginning") && assert.NotNil(t, p.Ending(), "period ending")
	if !ok {
		return false
	}
	_, bi := p.Beginning().IndeterminatePosition()
	_, ei := p.Ending().IndeterminatePosition()
	if bi || ei {
		return true
	}
	ok = assert.False(t, p.Ending().Position().Before(p.Beginning().Position()), "period ending before beginning")
	return assert.Equal(t, p.Ending().Position().Sub(p.Beginning().Position()), p.Length(), "period length") && ok
}

// 序号连续，名称唯一，按名称可查回同一个值
func ValidateCodeList[T util.ControlledVocabulary](t assert.TestingT, l *util.CodeList[T]) bool {
	if !assert.NotNil(t, l, "code list") {
		return false
	}
	values := l.Values()
	ok := assert.NotEmpty(t, values, "code list %s values", l.Name())
	names := map[string]bool{}
	for i, v := range values {
		ok = assert.Equal(t, i, v.Ordinal(), "%s ordinal", v.Name()) && ok
		ok = assert.Equal(t, l.Name(), v.List(), "%s list name", v.Name()) && ok
		ok = assert.False(t, names[v.Name()], "duplicated name %s", v.Name()) && ok
		names[v.Name()] = true
		if found, exists := l.ValueOf(v.Name()); assert.True(t, exists, "lookup %s", v.Name()) {
			ok = assert.Equal(t, v.Ordinal(), found.Ordinal(), "lookup %s", v.Name()) && ok
		} else {
			ok = false
		}
	}
	return ok
}
