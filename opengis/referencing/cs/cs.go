// Package cs 坐标系与坐标轴
package cs

import (
	"github.com/wgdzlh/geoapi/opengis/referencing"
	"github.com/wgdzlh/geoapi/opengis/util"
)

type Type string

const (
	Ellipsoidal Type = "ellipsoidal"
	Cartesian   Type = "Cartesian"
	Spherical   Type = "spherical"
	Vertical    Type = "vertical"
	Time        Type = "temporal"
	Affine      Type = "affine"
)

// CoordinateSystemAxis 坐标轴
type CoordinateSystemAxis interface {
	referencing.IdentifiedObject
	Abbreviation() string
	Direction() AxisDirection
	Unit() Unit
	MinimumValue() float64
	MaximumValue() float64
	RangeMeaning() RangeMeaning
}

// CoordinateSystem 有序的坐标轴集合
type CoordinateSystem interface {
	referencing.IdentifiedObject
	Type() Type
	Dimension() int
	// dim超出[0, Dimension())时返回ErrIndexOutOfBounds
	Axis(dim int) (CoordinateSystemAxis, error)
}

type RangeMeaning struct{ *util.Code }

var RangeMeanings = util.NewCodeList("RangeMeaning", func(c *util.Code) RangeMeaning { return RangeMeaning{c} })

var (
	// 超出范围的值无意义
	Exact = RangeMeanings.Add("EXACT", "exact")
	// 超出范围的值回绕到范围内，如经度
	Wraparound = RangeMeanings.Add("WRAPAROUND", "wraparound")
)
