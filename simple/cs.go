package simple

import (
	"fmt"
	"math"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
)

type Axis struct {
	object
	abbreviation string
	direction    cs.AxisDirection
	unit         cs.Unit
	min, max     float64
	rangeMeaning cs.RangeMeaning
}

var _ cs.CoordinateSystemAxis = (*Axis)(nil)

// 默认取值范围无限，含义为EXACT
func NewAxis(p Properties, abbreviation string, direction cs.AxisDirection, unit cs.Unit) (*Axis, error) {
	if direction.Code == nil {
		return nil, fmt.Errorf("axis %q without direction: %w", p.Name, geoapi.ErrInvalidArgument)
	}
	return &Axis{
		object:       newObject(p),
		abbreviation: abbreviation,
		direction:    direction,
		unit:         unit,
		min:          math.Inf(-1),
		max:          math.Inf(1),
		rangeMeaning: cs.Exact,
	}, nil
}

// 设定取值范围，须min < max
func (a *Axis) WithRange(min, max float64, meaning cs.RangeMeaning) (*Axis, error) {
	if !(min < max) {
		return nil, fmt.Errorf("axis %q range [%v, %v] is empty: %w", a.nameString(), min, max, geoapi.ErrInvalidArgument)
	}
	if meaning.Code == nil {
		meaning = cs.Exact
	}
	c := *a
	c.min, c.max, c.rangeMeaning = min, max, meaning
	return &c, nil
}

func (a *Axis) Abbreviation() string          { return a.abbreviation }
func (a *Axis) Direction() cs.AxisDirection   { return a.direction }
func (a *Axis) Unit() cs.Unit                 { return a.unit }
func (a *Axis) MinimumValue() float64         { return a.min }
func (a *Axis) MaximumValue() float64         { return a.max }
func (a *Axis) RangeMeaning() cs.RangeMeaning { return a.rangeMeaning }
func (a *Axis) ToWKT() (string, error)        { return toWKT(a) }
func (a *Axis) formatWKT(w *wktWriter)        { formatAxis(w, a) }
func (a *Axis) String() string                { return a.nameString() + " (" + a.direction.Name() + ")" }

func formatAxis(w *wktWriter, a cs.CoordinateSystemAxis) {
	w.open("AXIS")
	name := ""
	if n := a.Name(); n != nil {
		name = n.Code()
	}
	w.quoted(name)
	w.enum(a.Direction().Name())
	w.close()
}

type CoordinateSystem struct {
	object
	typ  cs.Type
	axes []cs.CoordinateSystemAxis
}

var _ cs.CoordinateSystem = (*CoordinateSystem)(nil)

// 坐标轴至少一个，且方向两两不共线
func NewCoordinateSystem(p Properties, typ cs.Type, axes ...cs.CoordinateSystemAxis) (*CoordinateSystem, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("coordinate system %q without axis: %w", p.Name, geoapi.ErrInvalidArgument)
	}
	for i, a := range axes {
		if a == nil {
			return nil, fmt.Errorf("coordinate system %q has nil axis %d: %w", p.Name, i, geoapi.ErrInvalidArgument)
		}
		for _, b := range axes[:i] {
			if d := a.Direction(); d != cs.Other && d.IsColinear(b.Direction()) {
				return nil, fmt.Errorf("coordinate system %q has colinear axes %s: %w", p.Name, d.Name(), geoapi.ErrInvalidArgument)
			}
		}
	}
	return &CoordinateSystem{
		object: newObject(p),
		typ:    typ,
		axes:   append([]cs.CoordinateSystemAxis(nil), axes...),
	}, nil
}

func (c *CoordinateSystem) Type() cs.Type {
	return c.typ
}

func (c *CoordinateSystem) Dimension() int {
	return len(c.axes)
}

func (c *CoordinateSystem) Axis(dim int) (a cs.CoordinateSystemAxis, err error) {
	if err = checkDimension(dim, len(c.axes)); err != nil {
		return
	}
	a = c.axes[dim]
	return
}

// WKT 1中坐标系不单独成节点，仅输出各轴
func (c *CoordinateSystem) formatWKT(w *wktWriter) {
	formatCS(w, c)
}

func (c *CoordinateSystem) ToWKT() (string, error) {
	return toWKT(c)
}

// 按维度取轴，越界时返回nil
func axisAt(c cs.CoordinateSystem, dim int) cs.CoordinateSystemAxis {
	if c == nil {
		return nil
	}
	a, err := c.Axis(dim)
	if err != nil {
		return nil
	}
	return a
}
