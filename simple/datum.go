package simple

import (
	"fmt"
	"math"
	"time"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/opengis/referencing/datum"
)

type Ellipsoid struct {
	object
	semiMajor         float64
	semiMinor         float64
	inverseFlattening float64
	ivfDefinitive     bool
	unit              cs.Unit
}

var _ datum.Ellipsoid = (*Ellipsoid)(nil)

// 由长半轴和扁率倒数定义，扁率倒数为+Inf时为圆球
func NewEllipsoidFromInverseFlattening(p Properties, semiMajor, inverseFlattening float64, unit cs.Unit) (*Ellipsoid, error) {
	if !(semiMajor > 0) || math.IsInf(semiMajor, 0) {
		return nil, fmt.Errorf("ellipsoid %q semi-major axis %v: %w", p.Name, semiMajor, geoapi.ErrInvalidArgument)
	}
	if !(inverseFlattening > 1) {
		return nil, fmt.Errorf("ellipsoid %q inverse flattening %v: %w", p.Name, inverseFlattening, geoapi.ErrInvalidArgument)
	}
	semiMinor := semiMajor
	if !math.IsInf(inverseFlattening, 1) {
		semiMinor = semiMajor * (1 - 1/inverseFlattening)
	}
	return &Ellipsoid{
		object:            newObject(p),
		semiMajor:         semiMajor,
		semiMinor:         semiMinor,
		inverseFlattening: inverseFlattening,
		ivfDefinitive:     true,
		unit:              unit,
	}, nil
}

// 由长短半轴定义，须 0 < semiMinor <= semiMajor
func NewEllipsoid(p Properties, semiMajor, semiMinor float64, unit cs.Unit) (*Ellipsoid, error) {
	if !(semiMajor > 0) || math.IsInf(semiMajor, 0) || !(semiMinor > 0) || semiMinor > semiMajor {
		return nil, fmt.Errorf("ellipsoid %q semi-axes %v, %v: %w", p.Name, semiMajor, semiMinor, geoapi.ErrInvalidArgument)
	}
	ivf := math.Inf(1)
	if semiMinor != semiMajor {
		ivf = semiMajor / (semiMajor - semiMinor)
	}
	return &Ellipsoid{
		object:            newObject(p),
		semiMajor:         semiMajor,
		semiMinor:         semiMinor,
		inverseFlattening: ivf,
		unit:              unit,
	}, nil
}

func (e *Ellipsoid) AxisUnit() cs.Unit                   { return e.unit }
func (e *Ellipsoid) SemiMajorAxis() float64              { return e.semiMajor }
func (e *Ellipsoid) SemiMinorAxis() float64              { return e.semiMinor }
func (e *Ellipsoid) InverseFlattening() float64          { return e.inverseFlattening }
func (e *Ellipsoid) IsInverseFlatteningDefinitive() bool { return e.ivfDefinitive }
func (e *Ellipsoid) IsSphere() bool                      { return e.semiMajor == e.semiMinor }
func (e *Ellipsoid) ToWKT() (string, error)              { return toWKT(e) }

// 第一偏心率的平方
func (e *Ellipsoid) EccentricitySquared() float64 {
	f := 1 - e.semiMinor/e.semiMajor
	return f * (2 - f)
}

func (e *Ellipsoid) formatWKT(w *wktWriter) {
	w.open("SPHEROID")
	w.quoted(e.nameString())
	w.number(e.semiMajor)
	if e.IsSphere() {
		w.number(0)
	} else {
		w.number(e.inverseFlattening)
	}
	w.authority(e.identifier())
	w.close()
}

type PrimeMeridian struct {
	object
	greenwichLongitude float64
	unit               cs.Unit
}

var _ datum.PrimeMeridian = (*PrimeMeridian)(nil)

func NewPrimeMeridian(p Properties, greenwichLongitude float64, unit cs.Unit) (*PrimeMeridian, error) {
	if unit.Kind != cs.Angle {
		return nil, fmt.Errorf("prime meridian %q unit %s is not angular: %w", p.Name, unit, geoapi.ErrInvalidArgument)
	}
	if math.IsNaN(greenwichLongitude) || math.Abs(unit.ToSI(greenwichLongitude)) > math.Pi {
		return nil, fmt.Errorf("prime meridian %q longitude %v: %w", p.Name, greenwichLongitude, geoapi.ErrInvalidArgument)
	}
	return &PrimeMeridian{
		object:             newObject(p),
		greenwichLongitude: greenwichLongitude,
		unit:               unit,
	}, nil
}

func (m *PrimeMeridian) GreenwichLongitude() float64 { return m.greenwichLongitude }
func (m *PrimeMeridian) AngularUnit() cs.Unit        { return m.unit }
func (m *PrimeMeridian) ToWKT() (string, error)      { return toWKT(m) }

func (m *PrimeMeridian) formatWKT(w *wktWriter) {
	w.open("PRIMEM")
	w.quoted(m.nameString())
	w.number(m.greenwichLongitude)
	w.authority(m.identifier())
	w.close()
}

// Datum 大地基准面
type Datum struct {
	object
	anchor        string
	epoch         time.Time
	ellipsoid     datum.Ellipsoid
	primeMeridian datum.PrimeMeridian
}

var _ datum.GeodeticDatum = (*Datum)(nil)

func NewGeodeticDatum(p Properties, ellipsoid datum.Ellipsoid, primeMeridian datum.PrimeMeridian) (*Datum, error) {
	if ellipsoid == nil || primeMeridian == nil {
		return nil, fmt.Errorf("datum %q requires ellipsoid and prime meridian: %w", p.Name, geoapi.ErrInvalidArgument)
	}
	return &Datum{
		object:        newObject(p),
		ellipsoid:     ellipsoid,
		primeMeridian: primeMeridian,
	}, nil
}

func (d *Datum) WithAnchor(anchor string, epoch time.Time) *Datum {
	c := *d
	c.anchor, c.epoch = anchor, epoch
	return &c
}

func (d *Datum) AnchorPoint() string                { return d.anchor }
func (d *Datum) RealizationEpoch() time.Time        { return d.epoch }
func (d *Datum) Ellipsoid() datum.Ellipsoid         { return d.ellipsoid }
func (d *Datum) PrimeMeridian() datum.PrimeMeridian { return d.primeMeridian }
func (d *Datum) ToWKT() (string, error)             { return toWKT(d) }

func (d *Datum) formatWKT(w *wktWriter) {
	w.open("DATUM")
	w.quoted(d.nameString())
	formatEllipsoid(w, d.ellipsoid)
	w.authority(d.identifier())
	w.close()
}

func formatEllipsoid(w *wktWriter, e datum.Ellipsoid) {
	if f, ok := e.(wktFormattable); ok {
		w.element(f)
		return
	}
	w.open("SPHEROID")
	w.quoted(e.Name().Code())
	w.number(e.SemiMajorAxis())
	if e.IsSphere() {
		w.number(0)
	} else {
		w.number(e.InverseFlattening())
	}
	w.close()
}

func formatPrimeMeridian(w *wktWriter, m datum.PrimeMeridian) {
	if f, ok := m.(wktFormattable); ok {
		w.element(f)
		return
	}
	w.open("PRIMEM")
	w.quoted(m.Name().Code())
	w.number(m.GreenwichLongitude())
	w.close()
}
