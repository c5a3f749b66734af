// Package datum 基准面、椭球体与本初子午线
package datum

import (
	"time"

	"github.com/wgdzlh/geoapi/opengis/referencing"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/opengis/util"
)

type Datum interface {
	referencing.IdentifiedObject
	AnchorPoint() string
	// 未知时为零值
	RealizationEpoch() time.Time
}

type Ellipsoid interface {
	referencing.IdentifiedObject
	AxisUnit() cs.Unit
	SemiMajorAxis() float64
	SemiMinorAxis() float64
	// 圆球时为+Inf
	InverseFlattening() float64
	IsInverseFlatteningDefinitive() bool
	IsSphere() bool
}

type PrimeMeridian interface {
	referencing.IdentifiedObject
	GreenwichLongitude() float64
	AngularUnit() cs.Unit
}

type GeodeticDatum interface {
	Datum
	Ellipsoid() Ellipsoid
	PrimeMeridian() PrimeMeridian
}

// PixelInCell 格网坐标对应像元中心还是像元角点
type PixelInCell struct{ *util.Code }

var PixelInCells = util.NewCodeList("PixelInCell", func(c *util.Code) PixelInCell { return PixelInCell{c} })

var (
	CellCenter = PixelInCells.Add("CELL_CENTER", "cellCenter")
	CellCorner = PixelInCells.Add("CELL_CORNER", "cellCorner")
)
