package simple

import (
	"fmt"
	"sort"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/util"
	"github.com/wgdzlh/geoapi/utils"
)

// Factory 内存中的坐标系权威工厂，默认包含EPSG:4326、EPSG:3857与OGC:CRS84
type Factory struct {
	authority *Citation
	objects   map[string]crs.CoordinateReferenceSystem
}

var _ crs.AuthorityFactory = (*Factory)(nil)

func NewFactory() *Factory {
	f := &Factory{
		authority: EPSG,
		objects:   map[string]crs.CoordinateReferenceSystem{},
	}
	f.Register(WGS84)
	f.Register(WebMercator)
	f.Register(CRS84)
	f.objects[geoapi.AUTHORITY_CRS+":84"] = CRS84
	return f
}

func factoryKey(space, code string) string {
	return space + ":" + code
}

// 按坐标系的各个标识登记
func (f *Factory) Register(c crs.CoordinateReferenceSystem) {
	for _, id := range c.Identifiers() {
		space, code := utils.ParseCRSCode(factoryKey(id.CodeSpace(), id.Code()), geoapi.AUTHORITY_EPSG)
		f.objects[factoryKey(space, code)] = c
	}
}

func (f *Factory) Authority() metadata.Citation {
	return f.authority
}

func (f *Factory) AuthorityCodes() ([]string, error) {
	codes := make([]string, 0, len(f.objects))
	for k := range f.objects {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes, nil
}

func (f *Factory) CreateCoordinateReferenceSystem(code string) (crs.CoordinateReferenceSystem, error) {
	space, local := utils.ParseCRSCode(code, CitationCode(f.authority))
	c, ok := f.objects[factoryKey(space, local)]
	if !ok {
		return nil, fmt.Errorf("code %q: %w", code, geoapi.ErrNoSuchAuthorityCode)
	}
	return c, nil
}

func (f *Factory) DescriptionText(code string) (util.InternationalString, error) {
	c, err := f.CreateCoordinateReferenceSystem(code)
	if err != nil {
		return nil, err
	}
	return util.PlainString(c.Name().Code()), nil
}
