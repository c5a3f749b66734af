package simple

import (
	"fmt"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/opengis/referencing/datum"
)

// GeographicCRS 地理坐标系，坐标轴为经纬度（可含椭球高）
type GeographicCRS struct {
	object
	domain
	datum datum.GeodeticDatum
	cs    cs.CoordinateSystem
}

var _ crs.GeodeticCRS = (*GeographicCRS)(nil)

func NewGeographicCRS(p Properties, d datum.GeodeticDatum, c cs.CoordinateSystem) (*GeographicCRS, error) {
	if d == nil || c == nil {
		return nil, fmt.Errorf("geographic crs %q requires datum and coordinate system: %w", p.Name, geoapi.ErrInvalidArgument)
	}
	if c.Type() != cs.Ellipsoidal {
		return nil, fmt.Errorf("geographic crs %q with %s coordinate system: %w", p.Name, c.Type(), geoapi.ErrInvalidArgument)
	}
	if dim := c.Dimension(); dim != 2 && dim != 3 {
		return nil, fmt.Errorf("geographic crs %q with dimension %d: %w", p.Name, dim, geoapi.ErrInvalidArgument)
	}
	return &GeographicCRS{
		object: newObject(p),
		domain: newDomain(p),
		datum:  d,
		cs:     c,
	}, nil
}

func (g *GeographicCRS) Kind() crs.Kind                        { return crs.Geographic }
func (g *GeographicCRS) CoordinateSystem() cs.CoordinateSystem { return g.cs }
func (g *GeographicCRS) Datum() datum.Datum                    { return g.datum }
func (g *GeographicCRS) GeodeticDatum() datum.GeodeticDatum    { return g.datum }
func (g *GeographicCRS) ToWKT() (string, error)                { return toWKT(g) }
func (g *GeographicCRS) String() string                        { return identifiedString(&g.object) }

func (g *GeographicCRS) formatWKT(w *wktWriter) {
	w.open("GEOGCS")
	w.quoted(g.nameString())
	formatDatum(w, g.datum)
	formatPrimeMeridian(w, g.datum.PrimeMeridian())
	if a := axisAt(g.cs, 0); a != nil {
		w.unit(a.Unit())
	}
	formatCS(w, g.cs)
	w.authority(g.identifier())
	w.close()
}

// Parameter 投影参数
type Parameter struct {
	Name  string
	Value float64
}

type ProjectedCRS struct {
	object
	domain
	base       crs.GeodeticCRS
	projection string
	parameters []Parameter
	cs         cs.CoordinateSystem
}

var _ crs.ProjectedCRS = (*ProjectedCRS)(nil)

// 坐标系须为二维笛卡尔坐标系
func NewProjectedCRS(p Properties, base crs.GeodeticCRS, projection string, parameters []Parameter, c cs.CoordinateSystem) (*ProjectedCRS, error) {
	if base == nil || c == nil || projection == "" {
		return nil, fmt.Errorf("projected crs %q requires base crs, projection and coordinate system: %w", p.Name, geoapi.ErrInvalidArgument)
	}
	if c.Type() != cs.Cartesian || c.Dimension() != 2 {
		return nil, fmt.Errorf("projected crs %q with %dD %s coordinate system: %w", p.Name, c.Dimension(), c.Type(), geoapi.ErrInvalidArgument)
	}
	return &ProjectedCRS{
		object:     newObject(p),
		domain:     newDomain(p),
		base:       base,
		projection: projection,
		parameters: append([]Parameter(nil), parameters...),
		cs:         c,
	}, nil
}

func (pc *ProjectedCRS) Kind() crs.Kind                        { return crs.Projected }
func (pc *ProjectedCRS) CoordinateSystem() cs.CoordinateSystem { return pc.cs }
func (pc *ProjectedCRS) Datum() datum.Datum                    { return pc.base.GeodeticDatum() }
func (pc *ProjectedCRS) GeodeticDatum() datum.GeodeticDatum    { return pc.base.GeodeticDatum() }
func (pc *ProjectedCRS) BaseCRS() crs.GeodeticCRS              { return pc.base }
func (pc *ProjectedCRS) Projection() string                    { return pc.projection }
func (pc *ProjectedCRS) Parameters() []Parameter               { return append([]Parameter(nil), pc.parameters...) }
func (pc *ProjectedCRS) ToWKT() (string, error)                { return toWKT(pc) }
func (pc *ProjectedCRS) String() string                        { return identifiedString(&pc.object) }

func (pc *ProjectedCRS) formatWKT(w *wktWriter) {
	w.open("PROJCS")
	w.quoted(pc.nameString())
	if f, ok := pc.base.(wktFormattable); ok {
		w.element(f)
	}
	w.open("PROJECTION")
	w.quoted(pc.projection)
	w.close()
	for _, p := range pc.parameters {
		w.parameter(p.Name, p.Value)
	}
	if a := axisAt(pc.cs, 0); a != nil {
		w.unit(a.Unit())
	}
	formatCS(w, pc.cs)
	w.authority(pc.identifier())
	w.close()
}

func formatDatum(w *wktWriter, d datum.GeodeticDatum) {
	if f, ok := d.(wktFormattable); ok {
		w.element(f)
		return
	}
	w.open("DATUM")
	w.quoted(d.Name().Code())
	formatEllipsoid(w, d.Ellipsoid())
	w.close()
}

func formatCS(w *wktWriter, c cs.CoordinateSystem) {
	for i := 0; i < c.Dimension(); i++ {
		if a := axisAt(c, i); a != nil {
			formatAxis(w, a)
		}
	}
}

func identifiedString(o *object) string {
	if id := o.identifier(); id != nil {
		return fmt.Sprintf("%s (%s:%s)", o.nameString(), id.CodeSpace(), id.Code())
	}
	return o.nameString()
}
