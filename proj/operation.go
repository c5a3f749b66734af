package proj

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/log"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/operation"
	"github.com/wgdzlh/geoapi/simple"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 由GDAL库C语言创建的内存对象，需要手动调用Destroy回收
type destroyable interface {
	Destroy()
}

// 变换两端的坐标系信息
type endpoint struct {
	key      string // EPSG:srid 或 WKT
	srid     int
	wkt      string
	latFirst bool
	dim      int
}

// OperationFactory 基于GDAL坐标转换的坐标操作工厂，转换对象按坐标系对缓存
type OperationFactory struct {
	factory *Factory
	ctMap   map[string]gdal.CoordinateTransform
	cLock   sync.Mutex
	logTag  string
}

var _ operation.CoordinateOperationFactory = (*OperationFactory)(nil)

func NewOperationFactory(f *Factory) *OperationFactory {
	if f == nil {
		f = NewFactory()
	}
	return &OperationFactory{
		factory: f,
		ctMap:   map[string]gdal.CoordinateTransform{},
		logTag:  "OperationFactory:",
	}
}

func (o *OperationFactory) endpointOf(c crs.CoordinateReferenceSystem) (ep endpoint, err error) {
	ep.latFirst = latFirst(c)
	ep.dim = c.CoordinateSystem().Dimension()
	if s, ok := c.(sourced); ok {
		src := s.gdalSource()
		ep.srid, ep.wkt = src.srid, src.wkt
	}
	if ep.srid == 0 {
		// 其他实现的坐标系：优先取EPSG标识，否则取WKT
		for _, id := range c.Identifiers() {
			if strings.EqualFold(id.CodeSpace(), geoapi.AUTHORITY_EPSG) {
				if srid, e := o.factory.parseCode(id.Code()); e == nil {
					ep.srid = srid
					break
				}
			}
		}
	}
	if ep.srid > 0 {
		ep.key = fmt.Sprintf("%s:%d", geoapi.AUTHORITY_EPSG, ep.srid)
		return
	}
	if ep.wkt == "" {
		if ep.wkt, err = c.ToWKT(); err != nil {
			return
		}
	}
	ep.key = ep.wkt
	return
}

// 非EPSG坐标系的空间参考由调用方回收
func (o *OperationFactory) refOf(ep endpoint) (ref gdal.SpatialReference, owned bool, err error) {
	if ep.srid > 0 {
		ref, err = o.factory.getSridRef(ep.srid)
		return
	}
	ref = gdal.CreateSpatialReference("")
	if err = ref.FromWKT(ep.wkt); err != nil {
		ref.Destroy()
		err = fmt.Errorf("%v: %w", err, geoapi.ErrInvalidWKT)
		return
	}
	ref.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	owned = true
	return
}

// 获取src到dst的GDAL坐标转换（缓存复用）
func (o *OperationFactory) coordinateTransform(src, dst endpoint) (ct gdal.CoordinateTransform, err error) {
	key := src.key + "\x00" + dst.key
	o.cLock.Lock()
	defer o.cLock.Unlock()
	ct, ok := o.ctMap[key]
	if ok {
		return
	}
	var gc []destroyable
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	sRef, owned, err := o.refOf(src)
	if err != nil {
		return
	}
	if owned {
		gc = append(gc, sRef)
	}
	tRef, owned, err := o.refOf(dst)
	if err != nil {
		return
	}
	if owned {
		gc = append(gc, tRef)
	}
	ct = gdal.CreateCoordinateTransform(sRef, tRef)
	o.ctMap[key] = ct
	return
}

func (o *OperationFactory) CreateOperation(source, target crs.CoordinateReferenceSystem) (op operation.CoordinateOperation, err error) {
	if source == nil || target == nil {
		err = fmt.Errorf("nil crs: %w", geoapi.ErrInvalidArgument)
		return
	}
	src, err := o.endpointOf(source)
	if err != nil {
		return
	}
	dst, err := o.endpointOf(target)
	if err != nil {
		return
	}
	if src.dim != 2 || dst.dim != 2 {
		err = fmt.Errorf("%dD to %dD operation: %w", src.dim, dst.dim, geoapi.ErrUnsupportedOperation)
		return
	}
	t := &Transform{factory: o, src: src, dst: dst}
	if src.key != dst.key {
		if t.ct, err = o.coordinateTransform(src, dst); err != nil {
			log.Error(o.logTag+"create coordinate transform failed", zap.String("source", src.key), zap.String("target", dst.key), zap.Error(err))
			return
		}
	}
	name := source.Name().Code() + " to " + target.Name().Code()
	c, err := simple.NewCoordinateOperation(simple.Properties{Name: name}, source, target, t)
	if err != nil {
		return
	}
	op = c
	return
}

// 释放缓存的坐标转换
func (o *OperationFactory) Close() {
	o.cLock.Lock()
	defer o.cLock.Unlock()
	for k, ct := range o.ctMap {
		ct.Destroy()
		delete(o.ctMap, k)
	}
}

// Transform 基于GDAL坐标转换的二维坐标变换，坐标按两端坐标系的轴次序排列
type Transform struct {
	factory  *OperationFactory
	src, dst endpoint
	ct       gdal.CoordinateTransform
}

var _ operation.MathTransform = (*Transform)(nil)

func (t *Transform) SourceDimensions() int { return 2 }
func (t *Transform) TargetDimensions() int { return 2 }
func (t *Transform) IsIdentity() bool      { return t.src.key == t.dst.key }

func (t *Transform) Inverse() (operation.MathTransform, error) {
	inv := &Transform{factory: t.factory, src: t.dst, dst: t.src}
	if inv.IsIdentity() {
		return inv, nil
	}
	ct, err := t.factory.coordinateTransform(inv.src, inv.dst)
	if err != nil {
		return nil, err
	}
	inv.ct = ct
	return inv, nil
}

func (t *Transform) Transform(coords []float64) error {
	if len(coords)%2 != 0 {
		return fmt.Errorf("%d ordinates for 2D transform: %w", len(coords), geoapi.ErrInvalidArgument)
	}
	if t.IsIdentity() {
		return nil
	}
	n := len(coords) / 2
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = coords[2*i], coords[2*i+1]
		if t.src.latFirst {
			xs[i], ys[i] = ys[i], xs[i]
		}
	}
	if !t.ct.Transform(n, xs, ys, zs) {
		return fmt.Errorf("%s to %s: %w", t.src.key, t.dst.key, geoapi.ErrTransform)
	}
	for i := 0; i < n; i++ {
		if math.IsInf(xs[i], 0) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("point %d out of target domain: %w", i, geoapi.ErrTransform)
		}
		if t.dst.latFirst {
			xs[i], ys[i] = ys[i], xs[i]
		}
		coords[2*i], coords[2*i+1] = xs[i], ys[i]
	}
	return nil
}

// 包络各边加密采样后变换，取变换结果的外包络
func (o *OperationFactory) TransformEnvelope(env *simple.Envelope, target crs.CoordinateReferenceSystem) (ret *simple.Envelope, err error) {
	if env == nil || env.CRS() == nil {
		err = fmt.Errorf("envelope without crs: %w", geoapi.ErrInvalidArgument)
		return
	}
	op, err := o.CreateOperation(env.CRS(), target)
	if err != nil {
		return
	}
	const steps = 16
	var coords []float64
	lo := env.LowerCorner().Coordinates()
	hi := env.UpperCorner().Coordinates()
	if len(lo) != 2 {
		err = fmt.Errorf("%dD envelope: %w", len(lo), geoapi.ErrUnsupportedOperation)
		return
	}
	for i := 0; i <= steps; i++ {
		fx := lo[0] + (hi[0]-lo[0])*float64(i)/steps
		fy := lo[1] + (hi[1]-lo[1])*float64(i)/steps
		coords = append(coords, fx, lo[1], fx, hi[1], lo[0], fy, hi[0], fy)
	}
	if err = op.MathTransform().Transform(coords); err != nil {
		return
	}
	lower := []float64{math.Inf(1), math.Inf(1)}
	upper := []float64{math.Inf(-1), math.Inf(-1)}
	for i := 0; i < len(coords); i += 2 {
		for d := 0; d < 2; d++ {
			lower[d] = math.Min(lower[d], coords[i+d])
			upper[d] = math.Max(upper[d], coords[i+d])
		}
	}
	return simple.NewEnvelope(lower, upper, target)
}
