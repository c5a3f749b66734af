package simple

import (
	"fmt"
	"math"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/operation"
)

const (
	degToRad = math.Pi / 180

	xr = MERCATOR_MAX_EXTENT / 180
	yr = xr / degToRad
	tr = degToRad / 2
)

// 经纬度(度) 转 Web墨卡托(米)，球面公式
func Convert4326To3857(lon, lat float64) (lonIn3857, latIn3857 float64) {
	lonIn3857 = lon * xr
	latIn3857 = math.Log(math.Tan((90+lat)*tr)) * yr
	return
}

// Web墨卡托(米) 转 经纬度(度)
func Convert3857To4326(lonIn3857, latIn3857 float64) (lon, lat float64) {
	lon = lonIn3857 / xr
	lat = math.Atan(math.Pow(math.E, latIn3857/yr))/tr - 90
	return
}

// PseudoMercator 经纬度与Web墨卡托之间的变换
// latFirst表示地理坐标为(纬度,经度)顺序（EPSG:4326）
type PseudoMercator struct {
	inverse  bool
	latFirst bool
}

var _ operation.MathTransform = PseudoMercator{}

func NewPseudoMercator(latFirst bool) PseudoMercator {
	return PseudoMercator{latFirst: latFirst}
}

func (m PseudoMercator) SourceDimensions() int { return 2 }
func (m PseudoMercator) TargetDimensions() int { return 2 }
func (m PseudoMercator) IsIdentity() bool      { return false }

func (m PseudoMercator) Inverse() (operation.MathTransform, error) {
	m.inverse = !m.inverse
	return m, nil
}

func (m PseudoMercator) Transform(coords []float64) error {
	if len(coords)%2 != 0 {
		return fmt.Errorf("%d ordinates for 2D transform: %w", len(coords), geoapi.ErrInvalidArgument)
	}
	for i := 0; i < len(coords); i += 2 {
		if m.inverse {
			lon, lat := Convert3857To4326(coords[i], coords[i+1])
			if m.latFirst {
				lon, lat = lat, lon
			}
			coords[i], coords[i+1] = lon, lat
			continue
		}
		lon, lat := coords[i], coords[i+1]
		if m.latFirst {
			lon, lat = lat, lon
		}
		if !(lat > -90 && lat < 90) || math.IsNaN(lon) {
			return fmt.Errorf("point (%v, %v) outside mercator domain: %w", lon, lat, geoapi.ErrTransform)
		}
		coords[i], coords[i+1] = Convert4326To3857(lon, lat)
	}
	return nil
}

// 恒等变换（同一坐标系）
type identityTransform int

func (t identityTransform) SourceDimensions() int                     { return int(t) }
func (t identityTransform) TargetDimensions() int                     { return int(t) }
func (t identityTransform) IsIdentity() bool                          { return true }
func (t identityTransform) Inverse() (operation.MathTransform, error) { return t, nil }

func (t identityTransform) Transform(coords []float64) error {
	if t > 0 && len(coords)%int(t) != 0 {
		return fmt.Errorf("%d ordinates for %dD transform: %w", len(coords), int(t), geoapi.ErrInvalidArgument)
	}
	return nil
}

// 二维轴交换
type swapTransform struct{}

func (swapTransform) SourceDimensions() int                     { return 2 }
func (swapTransform) TargetDimensions() int                     { return 2 }
func (swapTransform) IsIdentity() bool                          { return false }
func (swapTransform) Inverse() (operation.MathTransform, error) { return swapTransform{}, nil }

func (swapTransform) Transform(coords []float64) error {
	if len(coords)%2 != 0 {
		return fmt.Errorf("%d ordinates for 2D transform: %w", len(coords), geoapi.ErrInvalidArgument)
	}
	for i := 0; i < len(coords); i += 2 {
		coords[i], coords[i+1] = coords[i+1], coords[i]
	}
	return nil
}

type CoordinateOperation struct {
	object
	source, target crs.CoordinateReferenceSystem
	transform      operation.MathTransform
}

var _ operation.CoordinateOperation = (*CoordinateOperation)(nil)

func NewCoordinateOperation(p Properties, source, target crs.CoordinateReferenceSystem, transform operation.MathTransform) (*CoordinateOperation, error) {
	if source == nil || target == nil || transform == nil {
		return nil, fmt.Errorf("operation %q requires source, target and transform: %w", p.Name, geoapi.ErrInvalidArgument)
	}
	if transform.SourceDimensions() != source.CoordinateSystem().Dimension() || transform.TargetDimensions() != target.CoordinateSystem().Dimension() {
		return nil, fmt.Errorf("operation %q dimension mismatch: %w", p.Name, geoapi.ErrInvalidArgument)
	}
	return &CoordinateOperation{
		object:    newObject(p),
		source:    source,
		target:    target,
		transform: transform,
	}, nil
}

func (o *CoordinateOperation) SourceCRS() crs.CoordinateReferenceSystem { return o.source }
func (o *CoordinateOperation) TargetCRS() crs.CoordinateReferenceSystem { return o.target }
func (o *CoordinateOperation) MathTransform() operation.MathTransform   { return o.transform }

func (o *CoordinateOperation) ToWKT() (string, error) {
	return "", fmt.Errorf("WKT 1 of coordinate operation: %w", geoapi.ErrUnsupportedOperation)
}

// OperationFactory 支持WGS84、CRS84、Web墨卡托两两之间的转换
type OperationFactory struct{}

var _ operation.CoordinateOperationFactory = OperationFactory{}

func sameCRS(a, b crs.CoordinateReferenceSystem) bool {
	if a == b {
		return true
	}
	for _, x := range a.Identifiers() {
		for _, y := range b.Identifiers() {
			if SameIdentifier(x, y) {
				return true
			}
		}
	}
	return false
}

func firstIdentifier(c crs.CoordinateReferenceSystem) metadata.Identifier {
	if ids := c.Identifiers(); len(ids) > 0 {
		return ids[0]
	}
	return nil
}

func operationName(source, target crs.CoordinateReferenceSystem) string {
	return fmt.Sprintf("%s to %s", source.Name().Code(), target.Name().Code())
}

func (OperationFactory) CreateOperation(source, target crs.CoordinateReferenceSystem) (op operation.CoordinateOperation, err error) {
	if source == nil || target == nil {
		err = fmt.Errorf("nil crs: %w", geoapi.ErrInvalidArgument)
		return
	}
	var transform operation.MathTransform
	switch {
	case sameCRS(source, target):
		transform = identityTransform(source.CoordinateSystem().Dimension())
	case sameCRS(source, WGS84) && sameCRS(target, CRS84), sameCRS(source, CRS84) && sameCRS(target, WGS84):
		transform = swapTransform{}
	case sameCRS(target, WebMercator) && (sameCRS(source, WGS84) || sameCRS(source, CRS84)):
		transform = NewPseudoMercator(sameCRS(source, WGS84))
	case sameCRS(source, WebMercator) && (sameCRS(target, WGS84) || sameCRS(target, CRS84)):
		transform, err = NewPseudoMercator(sameCRS(target, WGS84)).Inverse()
	default:
		err = fmt.Errorf("operation from %v to %v: %w", firstIdentifier(source), firstIdentifier(target), geoapi.ErrUnsupportedOperation)
	}
	if err != nil {
		return
	}
	o, err := NewCoordinateOperation(Properties{Name: operationName(source, target)}, source, target, transform)
	if err != nil {
		return
	}
	op = o
	return
}
