package cs

import "math"

// Unit 计量单位，Factor为换算到国际单位制基本单位（米、弧度、秒）的系数
type Unit struct {
	Name   string
	Symbol string
	Factor float64
	Kind   UnitKind
}

type UnitKind uint8

const (
	Dimensionless UnitKind = iota
	Length
	Angle
	Duration
)

var (
	Metre  = Unit{Name: "metre", Symbol: "m", Factor: 1, Kind: Length}
	Radian = Unit{Name: "radian", Symbol: "rad", Factor: 1, Kind: Angle}
	Degree = Unit{Name: "degree", Symbol: "°", Factor: math.Pi / 180, Kind: Angle}
	Second = Unit{Name: "second", Symbol: "s", Factor: 1, Kind: Duration}
	Unity  = Unit{Name: "unity", Symbol: "", Factor: 1, Kind: Dimensionless}
)

// 换算到国际单位制
func (u Unit) ToSI(v float64) float64 {
	return v * u.Factor
}

// 将v从u换算到目标单位，单位类型不同时ok为false
func (u Unit) ConvertTo(target Unit, v float64) (ret float64, ok bool) {
	if u.Kind != target.Kind || target.Factor == 0 {
		return
	}
	return v * u.Factor / target.Factor, true
}

func (u Unit) String() string {
	if u.Symbol != "" {
		return u.Symbol
	}
	return u.Name
}
