package simple

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/geometry"
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
)

type DirectPosition struct {
	coords []float64
	crs    crs.CoordinateReferenceSystem
}

var _ geometry.DirectPosition = (*DirectPosition)(nil)

// c可为nil；非nil时坐标维数须与坐标系一致
func NewDirectPosition(c crs.CoordinateReferenceSystem, coords ...float64) (*DirectPosition, error) {
	if err := checkCRSDimension(c, len(coords)); err != nil {
		return nil, err
	}
	return &DirectPosition{coords: append([]float64(nil), coords...), crs: c}, nil
}

func checkCRSDimension(c crs.CoordinateReferenceSystem, dim int) error {
	if c == nil {
		return nil
	}
	if n := c.CoordinateSystem().Dimension(); n != dim {
		return fmt.Errorf("%d ordinates for %dD crs %s: %w", dim, n, c.Name().Code(), geoapi.ErrInvalidArgument)
	}
	return nil
}

func (p *DirectPosition) Dimension() int {
	return len(p.coords)
}

func (p *DirectPosition) Coordinates() []float64 {
	return append([]float64(nil), p.coords...)
}

func (p *DirectPosition) Ordinate(dim int) (v float64, err error) {
	if err = checkDimension(dim, len(p.coords)); err != nil {
		return
	}
	v = p.coords[dim]
	return
}

func (p *DirectPosition) CRS() crs.CoordinateReferenceSystem {
	return p.crs
}

func (p *DirectPosition) String() string {
	return "POINT(" + formatFloats(p.coords) + ")"
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// Envelope 坐标包络
// 在取值范围为WRAPAROUND的轴上允许lower > upper，表示跨越范围边界（如经度±180°）
type Envelope struct {
	lower, upper []float64
	crs          crs.CoordinateReferenceSystem
}

var _ geometry.Envelope = (*Envelope)(nil)

func NewEnvelope(lower, upper []float64, c crs.CoordinateReferenceSystem) (*Envelope, error) {
	if len(lower) != len(upper) {
		return nil, fmt.Errorf("lower dimension %d differs from upper dimension %d: %w", len(lower), len(upper), geoapi.ErrInvalidArgument)
	}
	if err := checkCRSDimension(c, len(lower)); err != nil {
		return nil, err
	}
	for i := range lower {
		if math.IsNaN(lower[i]) || math.IsNaN(upper[i]) {
			return nil, fmt.Errorf("NaN ordinate at dimension %d: %w", i, geoapi.ErrInvalidArgument)
		}
		if lower[i] > upper[i] && !isWraparound(c, i) {
			return nil, fmt.Errorf("lower %v greater than upper %v at dimension %d: %w", lower[i], upper[i], i, geoapi.ErrInvalidArgument)
		}
	}
	return &Envelope{
		lower: append([]float64(nil), lower...),
		upper: append([]float64(nil), upper...),
		crs:   c,
	}, nil
}

// 由经纬度包围盒生成包络，坐标按c的轴顺序排列，c为nil时取CRS84
func EnvelopeFromBoundingBox(box metadata.GeographicBoundingBox, c crs.CoordinateReferenceSystem) (*Envelope, error) {
	if c == nil {
		c = CRS84
	}
	lower := []float64{box.WestBoundLongitude(), box.SouthBoundLatitude()}
	upper := []float64{box.EastBoundLongitude(), box.NorthBoundLatitude()}
	if a := axisAt(c.CoordinateSystem(), 0); a != nil && a.Direction().IsColinear(cs.North) {
		lower[0], lower[1] = lower[1], lower[0]
		upper[0], upper[1] = upper[1], upper[0]
	}
	return NewEnvelope(lower, upper, c)
}

func isWraparound(c crs.CoordinateReferenceSystem, dim int) bool {
	if c == nil {
		return false
	}
	a := axisAt(c.CoordinateSystem(), dim)
	return a != nil && a.RangeMeaning() == cs.Wraparound && !math.IsInf(a.MaximumValue()-a.MinimumValue(), 0)
}

func (e *Envelope) Dimension() int {
	return len(e.lower)
}

func (e *Envelope) LowerCorner() geometry.DirectPosition {
	return &DirectPosition{coords: append([]float64(nil), e.lower...), crs: e.crs}
}

func (e *Envelope) UpperCorner() geometry.DirectPosition {
	return &DirectPosition{coords: append([]float64(nil), e.upper...), crs: e.crs}
}

func (e *Envelope) crossesBoundary(dim int) bool {
	return e.lower[dim] > e.upper[dim]
}

// 跨越边界时为轴的最小值
func (e *Envelope) Minimum(dim int) (v float64, err error) {
	if err = checkDimension(dim, len(e.lower)); err != nil {
		return
	}
	if e.crossesBoundary(dim) {
		v = axisAt(e.crs.CoordinateSystem(), dim).MinimumValue()
		return
	}
	v = e.lower[dim]
	return
}

// 跨越边界时为轴的最大值
func (e *Envelope) Maximum(dim int) (v float64, err error) {
	if err = checkDimension(dim, len(e.lower)); err != nil {
		return
	}
	if e.crossesBoundary(dim) {
		v = axisAt(e.crs.CoordinateSystem(), dim).MaximumValue()
		return
	}
	v = e.upper[dim]
	return
}

func (e *Envelope) Span(dim int) (v float64, err error) {
	if err = checkDimension(dim, len(e.lower)); err != nil {
		return
	}
	v = e.upper[dim] - e.lower[dim]
	if e.crossesBoundary(dim) {
		a := axisAt(e.crs.CoordinateSystem(), dim)
		v += a.MaximumValue() - a.MinimumValue()
	}
	return
}

func (e *Envelope) Median(dim int) (v float64, err error) {
	span, err := e.Span(dim)
	if err != nil {
		return
	}
	v = e.lower[dim] + span/2
	if e.crossesBoundary(dim) {
		a := axisAt(e.crs.CoordinateSystem(), dim)
		if hi := a.MaximumValue(); v > hi {
			v -= hi - a.MinimumValue()
		}
	}
	return
}

func (e *Envelope) CRS() crs.CoordinateReferenceSystem {
	return e.crs
}

// 是否包含坐标点，点维数不同时为false
func (e *Envelope) Contains(coords ...float64) bool {
	if len(coords) != len(e.lower) {
		return false
	}
	for i, v := range coords {
		if e.crossesBoundary(i) {
			if v < e.lower[i] && v > e.upper[i] {
				return false
			}
		} else if v < e.lower[i] || v > e.upper[i] {
			return false
		}
	}
	return true
}

func (e *Envelope) String() string {
	return "BOX(" + formatFloats(e.lower) + ", " + formatFloats(e.upper) + ")"
}
