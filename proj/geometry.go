package proj

import (
	"fmt"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/log"
	"github.com/wgdzlh/geoapi/simple"
	"github.com/wgdzlh/geoapi/utils"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 几何坐标均为传统GIS次序(经度,纬度)

func (f *Factory) parseWKT(wkt string, ref gdal.SpatialReference) (ret gdal.Geometry, err error) {
	ret, err = gdal.CreateFromWKT(wkt, ref)
	if err != nil {
		log.Error(f.logTag+"parse wkt failed", zap.Error(err))
		err = fmt.Errorf("%v: %w", err, geoapi.ErrInvalidWKT)
	}
	return
}

func (f *Factory) parseWKB(wkb []byte, ref gdal.SpatialReference) (ret gdal.Geometry, err error) {
	ret, err = gdal.CreateFromWKB(wkb, ref, len(wkb))
	if err != nil {
		log.Error(f.logTag+"parse wkb failed", zap.Error(err))
		err = fmt.Errorf("wkb: %v: %w", err, geoapi.ErrInvalidArgument)
	}
	return
}

// 转换WKT几何的坐标系
func (f *Factory) TransformWKT(wkt string, srid, tSrid int) (ret string, err error) {
	if tSrid == srid {
		ret = wkt
		return
	}
	ref, err := f.getSridRef(srid)
	if err != nil {
		return
	}
	tRef, err := f.getSridRef(tSrid)
	if err != nil {
		return
	}
	geo, err := f.parseWKT(wkt, ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	if err = geo.TransformTo(tRef); err != nil {
		log.Error(f.logTag+"geo transform failed", zap.Error(err))
		err = fmt.Errorf("%v: %w", err, geoapi.ErrTransform)
		return
	}
	ret, err = geo.ToWKT()
	return
}

// 转换WKB几何的坐标系
func (f *Factory) TransformWKB(wkb []byte, srid, tSrid int) (ret []byte, err error) {
	if tSrid == srid {
		ret = wkb
		return
	}
	ref, err := f.getSridRef(srid)
	if err != nil {
		return
	}
	tRef, err := f.getSridRef(tSrid)
	if err != nil {
		return
	}
	geo, err := f.parseWKB(wkb, ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	if err = geo.TransformTo(tRef); err != nil {
		log.Error(f.logTag+"geo transform failed", zap.Error(err))
		err = fmt.Errorf("%v: %w", err, geoapi.ErrTransform)
		return
	}
	ret, err = geo.ToWKB()
	return
}

// 检查WKT有效性
func (f *Factory) CheckWKT(wkt string, srid int) (err error) {
	ref, err := f.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := f.parseWKT(wkt, ref)
	if err != nil {
		return
	}
	geo.Destroy()
	return
}

func (f *Factory) WKTToWKB(wkt string, srid int) (wkb []byte, err error) {
	ref, err := f.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := f.parseWKT(wkt, ref)
	if err != nil {
		return
	}
	wkb, err = geo.ToWKB()
	geo.Destroy()
	return
}

func (f *Factory) WKBToWKT(wkb []byte, srid int) (wkt string, err error) {
	ref, err := f.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := f.parseWKB(wkb, ref)
	if err != nil {
		return
	}
	wkt, err = geo.ToWKT()
	geo.Destroy()
	return
}

func (f *Factory) GeoJSONToWKB(geoJson []byte) (ret []byte, err error) {
	geo := gdal.CreateFromJson(utils.B2S(geoJson))
	defer geo.Destroy()
	if geo.WKBSize() == 0 {
		err = geoapi.ErrInvalidGeoJSON
		return
	}
	ret, err = geo.ToWKB()
	return
}

func (f *Factory) WKBToGeoJSON(wkb []byte, srid int) (ret []byte, err error) {
	ref, err := f.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := f.parseWKB(wkb, ref)
	if err != nil {
		return
	}
	ret = utils.S2B(geo.ToJSON())
	geo.Destroy()
	return
}

// 获取WKT几何的范围：[minX, maxX, minY, maxY]
func (f *Factory) WKTSpan(wkt string, srid int) (span [4]float64, err error) {
	ref, err := f.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := f.parseWKT(wkt, ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	envelop := geo.Envelope()
	span[0] = envelop.MinX()
	span[1] = envelop.MaxX()
	span[2] = envelop.MinY()
	span[3] = envelop.MaxY()
	return
}

// WKT几何在srid坐标系下的包络，坐标按该坐标系的轴次序排列
func (f *Factory) WKTEnvelope(wkt string, srid int) (env *simple.Envelope, err error) {
	span, err := f.WKTSpan(wkt, srid)
	if err != nil {
		return
	}
	c, err := f.BySrid(srid)
	if err != nil {
		return
	}
	lower := []float64{span[0], span[2]}
	upper := []float64{span[1], span[3]}
	if latFirst(c) {
		lower[0], lower[1] = lower[1], lower[0]
		upper[0], upper[1] = upper[1], upper[0]
	}
	return simple.NewEnvelope(lower, upper, c)
}

func PointsToWkt(lon1, lon2, lat1, lat2 float64) string {
	return fmt.Sprintf("POLYGON((%[1]f %[3]f, %[1]f %[4]f, %[2]f %[4]f, %[2]f %[3]f, %[1]f %[3]f))", lon1, lon2, lat1, lat2)
}

func SpanToWkt(span [4]float64) string {
	return PointsToWkt(span[0], span[1], span[2], span[3])
}
