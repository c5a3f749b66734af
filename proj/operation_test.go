package proj

import (
	"testing"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/simple"

	"github.com/stretchr/testify/require"
)

func TestOperationFactory(t *testing.T) {
	r := require.New(t)
	f := NewFactory()
	defer f.Close()
	o := NewOperationFactory(f)
	defer o.Close()

	wgs84, err := f.CreateCoordinateReferenceSystem("EPSG:4326")
	r.NoError(err)
	merc, err := f.CreateCoordinateReferenceSystem("EPSG:3857")
	r.NoError(err)

	op, err := o.CreateOperation(wgs84, merc)
	r.NoError(err)
	mt := op.MathTransform()
	r.False(mt.IsIdentity())

	// EPSG:4326 坐标为(纬度,经度)
	coords := []float64{29.971802123, 113.695688629, 0, 180}
	r.NoError(mt.Transform(coords))
	x, y := simple.Convert4326To3857(113.695688629, 29.971802123)
	r.InDelta(x, coords[0], 1e-2)
	r.InDelta(y, coords[1], 1e-2)
	r.InDelta(simple.MERCATOR_MAX_EXTENT, coords[2], 1e-2)

	inv, err := mt.Inverse()
	r.NoError(err)
	r.NoError(inv.Transform(coords))
	r.InDelta(29.971802123, coords[0], 1e-7)
	r.InDelta(113.695688629, coords[1], 1e-7)

	r.ErrorIs(mt.Transform([]float64{1}), geoapi.ErrInvalidArgument)

	op, err = o.CreateOperation(wgs84, wgs84)
	r.NoError(err)
	r.True(op.MathTransform().IsIdentity())
}

func TestOperationWithSimpleCRS(t *testing.T) {
	r := require.New(t)
	o := NewOperationFactory(nil)
	defer o.Close()

	// CRS84 无EPSG代码，经由WKT创建空间参考
	op, err := o.CreateOperation(simple.CRS84, simple.WebMercator)
	r.NoError(err)
	coords := []float64{113.695688629, 29.971802123}
	r.NoError(op.MathTransform().Transform(coords))
	x, y := simple.Convert4326To3857(113.695688629, 29.971802123)
	r.InDelta(x, coords[0], 1e-2)
	r.InDelta(y, coords[1], 1e-2)

	env, err := simple.NewEnvelope([]float64{113, 29}, []float64{116, 32}, simple.CRS84)
	r.NoError(err)
	out, err := o.TransformEnvelope(env, simple.WebMercator)
	r.NoError(err)
	lo, _ := out.Minimum(0)
	x, _ = simple.Convert4326To3857(113, 29)
	r.InDelta(x, lo, 1e-2)
	hi, _ := out.Maximum(1)
	_, y = simple.Convert4326To3857(116, 32)
	r.InDelta(y, hi, 1e-2)

	_, err = o.CreateOperation(simple.CRS84, nil)
	r.ErrorIs(err, geoapi.ErrInvalidArgument)
}
