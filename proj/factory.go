package proj

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/log"
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/util"
	"github.com/wgdzlh/geoapi/simple"
	"github.com/wgdzlh/geoapi/utils"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

const CGCS2000_NAME = "China Geodetic Coordinate System 2000"

// Factory 基于GDAL/OSR的EPSG坐标系工厂
type Factory struct {
	refMap map[int]gdal.SpatialReference
	crsMap map[int]crs.SingleCRS
	rLock  sync.Mutex
	logTag string
}

var _ crs.AuthorityFactory = (*Factory)(nil)

func NewFactory() *Factory {
	return &Factory{
		refMap: map[int]gdal.SpatialReference{},
		crsMap: map[int]crs.SingleCRS{},
		logTag: "CRSFactory:",
	}
}

// 获取srid对应的空间参考（缓存复用，由Close统一回收）
func (f *Factory) getSridRef(srid int) (ref gdal.SpatialReference, err error) {
	f.rLock.Lock()
	defer f.rLock.Unlock()
	return f.sridRef(srid)
}

func (f *Factory) sridRef(srid int) (ref gdal.SpatialReference, err error) {
	ref, ok := f.refMap[srid]
	if ok {
		return
	}
	ref = gdal.CreateSpatialReference("")
	if err = ref.FromEPSG(srid); err != nil { // 设定坐标系ID
		log.Error(f.logTag+"set ref srid failed", zap.Int("srid", srid), zap.Error(err))
		ref.Destroy()
		err = fmt.Errorf("EPSG:%d: %v: %w", srid, err, geoapi.ErrNoSuchAuthorityCode)
		return
	}
	// 数据轴次序固定为(经度,纬度)（传统GIS坐标序），坐标系的轴次序仍按权威定义报告
	ref.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	f.refMap[srid] = ref
	return
}

// 空间参考的srid：取根节点的EPSG代码，CGCS2000未带代码时取4490
func (f *Factory) SridOf(ref gdal.SpatialReference) (srid int, err error) {
	wkt, err := ref.ToWKT()
	if err != nil {
		err = fmt.Errorf("%v: %w", err, geoapi.ErrVoidSrid)
		return
	}
	log.Debug(f.logTag+"spatial ref attrs", zap.String("attr", wkt))
	root, err := parseWKT(wkt)
	if err != nil {
		return
	}
	space, rawId := root.authority()
	if rawId == "" || !strings.EqualFold(space, geoapi.AUTHORITY_EPSG) {
		if strings.Contains(wkt, "CGCS_2000") || strings.Contains(strings.ReplaceAll(wkt, "_", " "), CGCS2000_NAME) {
			rawId = strconv.Itoa(geoapi.CGCS2000_SRID)
		} else {
			err = geoapi.ErrVoidSrid
			return
		}
	}
	if srid, err = strconv.Atoi(rawId); err != nil {
		err = fmt.Errorf("authority code %q: %w", rawId, geoapi.ErrVoidSrid)
		return
	}
	log.Info(f.logTag+"got srid from sp", zap.String("id", rawId))
	return
}

func (f *Factory) Authority() metadata.Citation {
	return simple.EPSG
}

// 已加载的代码
func (f *Factory) AuthorityCodes() (codes []string, err error) {
	f.rLock.Lock()
	defer f.rLock.Unlock()
	srids := make([]int, 0, len(f.crsMap))
	for srid := range f.crsMap {
		srids = append(srids, srid)
	}
	sort.Ints(srids)
	log.Debug(f.logTag+"loaded srids", zap.String("srids", utils.IntsToStr(srids, ',')))
	for _, srid := range srids {
		codes = append(codes, geoapi.AUTHORITY_EPSG+":"+strconv.Itoa(srid))
	}
	return
}

func (f *Factory) parseCode(code string) (srid int, err error) {
	space, local := utils.ParseCRSCode(code, geoapi.AUTHORITY_EPSG)
	if space != geoapi.AUTHORITY_EPSG {
		err = fmt.Errorf("code %q: %w", code, geoapi.ErrNoSuchAuthorityCode)
		return
	}
	if srid, err = strconv.Atoi(local); err != nil || srid <= 0 {
		err = fmt.Errorf("code %q: %w", code, geoapi.ErrNoSuchAuthorityCode)
	}
	return
}

func (f *Factory) CreateCoordinateReferenceSystem(code string) (crs.CoordinateReferenceSystem, error) {
	srid, err := f.parseCode(code)
	if err != nil {
		return nil, err
	}
	return f.BySrid(srid)
}

// 获取srid对应的坐标系（缓存复用）
func (f *Factory) BySrid(srid int) (c crs.SingleCRS, err error) {
	f.rLock.Lock()
	defer f.rLock.Unlock()
	c, ok := f.crsMap[srid]
	if ok {
		return
	}
	ref, err := f.sridRef(srid)
	if err != nil {
		return
	}
	if c, err = newCRS(ref, srid); err != nil {
		log.Error(f.logTag+"convert spatial ref failed", zap.Int("srid", srid), zap.Error(err))
		return
	}
	f.crsMap[srid] = c
	return
}

func (f *Factory) DescriptionText(code string) (util.InternationalString, error) {
	c, err := f.CreateCoordinateReferenceSystem(code)
	if err != nil {
		return nil, err
	}
	return util.PlainString(c.Name().Code()), nil
}

// 由WKT 1生成坐标系，WKT中无权威代码时SRID为0
func (f *Factory) FromWKT(wkt string) (c crs.SingleCRS, err error) {
	ref := gdal.CreateSpatialReference("")
	defer ref.Destroy()
	if err = ref.FromWKT(wkt); err != nil {
		log.Error(f.logTag+"parse crs wkt failed", zap.Error(err))
		err = fmt.Errorf("%v: %w", err, geoapi.ErrInvalidWKT)
		return
	}
	return f.fromRef(ref)
}

func (f *Factory) fromRef(ref gdal.SpatialReference) (c crs.SingleCRS, err error) {
	srid, e := f.SridOf(ref)
	if e != nil {
		log.Warn(f.logTag+"spatial ref without srid", zap.Error(e))
	}
	return newCRS(ref, srid)
}

// 释放缓存的空间参考
func (f *Factory) Close() {
	f.rLock.Lock()
	defer f.rLock.Unlock()
	for srid, ref := range f.refMap {
		ref.Destroy()
		delete(f.refMap, srid)
	}
	f.crsMap = map[int]crs.SingleCRS{}
}
