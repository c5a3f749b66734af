package proj

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/simple"

	"github.com/lukeroth/gdal"
)

// 坐标系在GDAL中的来源：EPSG代码（srid > 0）或WKT
type source struct {
	srid  int
	wkt   string
	proj4 string
}

// EPSG代码，未识别时为0
func (s source) SRID() int              { return s.srid }
func (s source) Proj4() string          { return s.proj4 }
func (s source) ToWKT() (string, error) { return s.wkt, nil }
func (s source) gdalSource() source     { return s }

type sourced interface {
	gdalSource() source
}

// 首轴为南北向（如EPSG:4326的纬度、经度次序）
func latFirst(c crs.CoordinateReferenceSystem) bool {
	if c == nil || c.CoordinateSystem().Dimension() < 2 {
		return false
	}
	a, err := c.CoordinateSystem().Axis(0)
	return err == nil && a.Direction().IsColinear(cs.North)
}

// GeographicCRS 由GDAL空间参考生成的地理坐标系
type GeographicCRS struct {
	*simple.GeographicCRS
	source
}

// ProjectedCRS 由GDAL空间参考生成的投影坐标系
type ProjectedCRS struct {
	*simple.ProjectedCRS
	source
}

var (
	_ crs.GeodeticCRS  = (*GeographicCRS)(nil)
	_ crs.ProjectedCRS = (*ProjectedCRS)(nil)
)

// WKT取自GDAL导出结果
func (g *GeographicCRS) ToWKT() (string, error) { return g.source.ToWKT() }
func (p *ProjectedCRS) ToWKT() (string, error)  { return p.source.ToWKT() }

// 由空间参考生成坐标系，ref由调用方回收
func newCRS(ref gdal.SpatialReference, srid int) (ret crs.SingleCRS, err error) {
	wkt, err := ref.ToWKT()
	if err != nil {
		err = fmt.Errorf("export wkt of srid %d: %v: %w", srid, err, geoapi.ErrInvalidWKT)
		return
	}
	root, err := parseWKT(wkt)
	if err != nil {
		return
	}
	src := source{srid: srid, wkt: wkt}
	src.proj4, _ = ref.ToProj4()

	switch root.keyword {
	case "GEOGCS":
		var g *simple.GeographicCRS
		if g, err = geographicFromWKT(root, ref); err != nil {
			return
		}
		ret = &GeographicCRS{GeographicCRS: g, source: src}
	case "PROJCS":
		var p *simple.ProjectedCRS
		if p, err = projectedFromWKT(root, ref); err != nil {
			return
		}
		ret = &ProjectedCRS{ProjectedCRS: p, source: src}
	default:
		err = fmt.Errorf("%s crs: %w", root.keyword, geoapi.ErrUnsupportedOperation)
	}
	return
}

func properties(n *wktNode) simple.Properties {
	p := simple.Properties{Name: n.value(0)}
	space, code := n.authority()
	if code == "" {
		return p
	}
	switch strings.ToUpper(space) {
	case geoapi.AUTHORITY_EPSG:
		p.Authority = simple.EPSG
	case geoapi.AUTHORITY_OGC:
		p.Authority = simple.OGC
	default:
		p.Authority = simple.NewCitation(space, space)
	}
	p.Code = code
	return p
}

// WKT中的单位节点，缺失时取def
func unitOf(n *wktNode, def cs.Unit) cs.Unit {
	u := n.child("UNIT")
	if u == nil {
		return def
	}
	name := u.value(0)
	factor, err := u.number(1)
	if err != nil {
		return def
	}
	switch {
	case def.Kind == cs.Angle && math.Abs(factor-cs.Degree.Factor) < 1e-15:
		return cs.Degree
	case def.Kind == cs.Length && factor == 1:
		return cs.Metre
	}
	return cs.Unit{Name: name, Factor: factor, Kind: def.Kind}
}

// 坐标轴取自AXIS节点，缺失时按OGC WKT 1的默认次序（经度、纬度或东、北）
func axesOf(n *wktNode, geographic bool, unit cs.Unit) (axes []cs.CoordinateSystemAxis, err error) {
	nodes := n.childrenOf("AXIS")
	if len(nodes) == 0 {
		if geographic {
			nodes = []*wktNode{
				{keyword: "AXIS", values: []string{"Longitude", "EAST"}},
				{keyword: "AXIS", values: []string{"Latitude", "NORTH"}},
			}
		} else {
			nodes = []*wktNode{
				{keyword: "AXIS", values: []string{"Easting", "EAST"}},
				{keyword: "AXIS", values: []string{"Northing", "NORTH"}},
			}
		}
	}
	for _, a := range nodes {
		dir, ok := cs.AxisDirections.ValueOf(a.value(1))
		if !ok {
			err = fmt.Errorf("axis %q direction %q: %w", a.value(0), a.value(1), geoapi.ErrInvalidWKT)
			return
		}
		var axis *simple.Axis
		if axis, err = simple.NewAxis(simple.Properties{Name: a.value(0)}, abbreviation(a.value(0), dir), dir, unit); err != nil {
			return
		}
		if geographic && unit.Kind == cs.Angle {
			lim := 90.0
			if unit != cs.Degree {
				lim, _ = cs.Degree.ConvertTo(unit, lim)
			}
			switch {
			case dir.IsColinear(cs.North):
				axis, err = axis.WithRange(-lim, lim, cs.Exact)
			case dir.IsColinear(cs.East):
				axis, err = axis.WithRange(-2*lim, 2*lim, cs.Wraparound)
			}
			if err != nil {
				return
			}
		}
		axes = append(axes, axis)
	}
	return
}

func abbreviation(name string, dir cs.AxisDirection) string {
	switch strings.ToLower(name) {
	case "latitude", "lat":
		return "φ"
	case "longitude", "lon", "long":
		return "λ"
	}
	if dir.IsColinear(cs.North) {
		return "Y"
	}
	if dir.IsColinear(cs.East) {
		return "X"
	}
	return strings.ToUpper(name[:min(1, len(name))])
}

// 椭球参数以GDAL的计算结果为准
func geographicFromWKT(n *wktNode, ref gdal.SpatialReference) (g *simple.GeographicCRS, err error) {
	d := n.child("DATUM")
	if d == nil {
		err = fmt.Errorf("GEOGCS %q without DATUM: %w", n.value(0), geoapi.ErrInvalidWKT)
		return
	}
	sph := d.child("SPHEROID")
	a, err := ref.SemiMajorAxis()
	if err != nil {
		if a, err = sph.number(1); err != nil {
			return
		}
	}
	ivf, err := ref.InverseFlattening()
	if err != nil {
		if ivf, err = sph.number(2); err != nil {
			return
		}
	}
	if ivf == 0 {
		ivf = math.Inf(1)
	}
	ellipsoid, err := simple.NewEllipsoidFromInverseFlattening(properties(sph), a, ivf, cs.Metre)
	if err != nil {
		return
	}
	unit := unitOf(n, cs.Degree)
	pm := n.child("PRIMEM")
	pmProps := simple.Properties{Name: "Greenwich"}
	pmLon := 0.0
	if pm != nil {
		if pmLon, err = pm.number(1); err != nil {
			return
		}
		pmProps = properties(pm)
	}
	meridian, err := simple.NewPrimeMeridian(pmProps, pmLon, unit)
	if err != nil {
		return
	}
	gd, err := simple.NewGeodeticDatum(properties(d), ellipsoid, meridian)
	if err != nil {
		return
	}
	axes, err := axesOf(n, true, unit)
	if err != nil {
		return
	}
	c, err := simple.NewCoordinateSystem(simple.Properties{Name: "ellipsoidal " + strconv.Itoa(len(axes)) + "D CS"}, cs.Ellipsoidal, axes...)
	if err != nil {
		return
	}
	return simple.NewGeographicCRS(properties(n), gd, c)
}

func projectedFromWKT(n *wktNode, ref gdal.SpatialReference) (p *simple.ProjectedCRS, err error) {
	gn := n.child("GEOGCS")
	if gn == nil {
		err = fmt.Errorf("PROJCS %q without GEOGCS: %w", n.value(0), geoapi.ErrInvalidWKT)
		return
	}
	base, err := geographicFromWKT(gn, ref)
	if err != nil {
		return
	}
	var params []simple.Parameter
	for _, pn := range n.childrenOf("PARAMETER") {
		var v float64
		if v, err = pn.number(1); err != nil {
			return
		}
		params = append(params, simple.Parameter{Name: pn.value(0), Value: v})
	}
	projection := n.child("PROJECTION").value(0)
	if projection == "" {
		// 如Web墨卡托在GDAL中以EXTENSION节点给出PROJ串
		projection, _ = ref.AttrValue("PROJECTION", 0)
	}
	if projection == "" {
		projection = n.child("EXTENSION").value(1)
	}
	axes, err := axesOf(n, false, unitOf(n, cs.Metre))
	if err != nil {
		return
	}
	c, err := simple.NewCoordinateSystem(simple.Properties{Name: "Cartesian 2D CS"}, cs.Cartesian, axes...)
	if err != nil {
		return
	}
	return simple.NewProjectedCRS(properties(n), base, projection, params, c)
}
