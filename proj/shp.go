package proj

import (
	"fmt"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/log"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/simple"
	"github.com/wgdzlh/geoapi/utils"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 由shp旁的.prj文件生成坐标系，.cpg未声明UTF-8时按GBK解码
func (f *Factory) FromPrjFile(shp string) (c crs.SingleCRS, err error) {
	wkt, err := utils.ReadPrjFile(shp)
	if err != nil {
		log.Error(f.logTag+"read prj failed", zap.String("shp", shp), zap.Error(err))
		return
	}
	return f.FromWKT(wkt)
}

const ENCODING_OPTION = "ENCODING=UTF-8"

func openShapefile(shp string) (ds gdal.DataSource, err error) {
	driver := gdal.OGRDriverByName(geoapi.SHP_DRIVER_NAME)
	ds, ok := driver.Open(shp, 0)
	if !ok {
		err = fmt.Errorf("open %s: %w", shp, geoapi.ErrGdalDriverOpen)
	}
	return
}

// 获取shp的坐标系，图层未带空间参考时读取.prj
func (f *Factory) CRSOfShapefile(shp string) (c crs.SingleCRS, err error) {
	ds, err := openShapefile(shp)
	if err != nil {
		return
	}
	defer ds.Destroy()
	return f.layerCRS(shp, ds.LayerByIndex(0))
}

func (f *Factory) layerCRS(shp string, layer gdal.Layer) (c crs.SingleCRS, err error) {
	ref := layer.SpatialReference()
	if wkt, e := ref.ToWKT(); e != nil || wkt == "" {
		log.Info(f.logTag+"layer without spatial ref, try prj", zap.String("shp", shp))
		return f.FromPrjFile(shp)
	}
	return f.fromRef(ref)
}

// shp首个图层的范围，坐标按图层坐标系的轴次序排列
func (f *Factory) ShapefileEnvelope(shp string) (env *simple.Envelope, err error) {
	ds, err := openShapefile(shp)
	if err != nil {
		return
	}
	defer ds.Destroy()
	layer := ds.LayerByIndex(0)
	c, err := f.layerCRS(shp, layer)
	if err != nil {
		return
	}
	ext, err := layer.Extent(true)
	if err != nil {
		log.Error(f.logTag+"get layer extent failed", zap.String("shp", shp), zap.Error(err))
		return
	}
	lower := []float64{ext.MinX(), ext.MinY()}
	upper := []float64{ext.MaxX(), ext.MaxY()}
	if latFirst(c) {
		lower[0], lower[1] = lower[1], lower[0]
		upper[0], upper[1] = upper[1], upper[0]
	}
	return simple.NewEnvelope(lower, upper, c)
}

// 将WKT几何写入shp（含.prj），坐标为传统GIS次序，无效几何跳过
func (f *Factory) WriteShapefile(shp string, srid int, wkts ...string) (err error) {
	ref, err := f.getSridRef(srid)
	if err != nil {
		return
	}
	log.Info(f.logTag+"output shp files", zap.String("shp", shp), zap.Int("srid", srid))
	driver := gdal.OGRDriverByName(geoapi.SHP_DRIVER_NAME)
	ds, ok := driver.Create(shp, nil)
	if !ok {
		err = fmt.Errorf("create %s: %w", shp, geoapi.ErrGdalDriverOpen)
		return
	}
	defer ds.Destroy() // 生成shp文件 + 释放资源
	layer := ds.CreateLayer("", ref, gdal.GT_Unknown, []string{ENCODING_OPTION})
	var (
		def     = layer.Definition()
		feature gdal.Feature
		geo     gdal.Geometry
		valid   int
		e       error
		gc      = make([]destroyable, 0, len(wkts))
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for i, wkt := range wkts {
		feature = def.Create()
		gc = append(gc, feature)
		if e = feature.SetFID(int64(i)); e != nil {
			log.Error(f.logTag+"err in set feature fid", zap.Error(e))
			continue
		}
		if geo, e = f.parseWKT(wkt, ref); e != nil {
			continue
		}
		if e = feature.SetGeometryDirectly(geo); e != nil {
			log.Error(f.logTag+"err in set geom of feature", zap.Error(e))
			continue
		}
		if e = layer.Create(feature); e != nil {
			log.Error(f.logTag+"err in create feature of layer", zap.Error(e))
			continue
		}
		valid++
	}
	log.Info(f.logTag+"output geo to shapefile done", zap.String("shp", shp), zap.Int("total", len(wkts)), zap.Int("valid", valid))
	return
}
