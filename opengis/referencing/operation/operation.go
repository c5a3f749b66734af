// Package operation 坐标转换
package operation

import (
	"github.com/wgdzlh/geoapi/opengis/referencing"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
)

// MathTransform 坐标变换函数
type MathTransform interface {
	SourceDimensions() int
	TargetDimensions() int
	// 原地变换交错排列的坐标（x0,y0,x1,y1...），长度须为维数的整数倍
	Transform(coords []float64) error
	Inverse() (MathTransform, error)
	IsIdentity() bool
}

// CoordinateOperation 两个坐标参照系统之间的转换
type CoordinateOperation interface {
	referencing.IdentifiedObject
	SourceCRS() crs.CoordinateReferenceSystem
	TargetCRS() crs.CoordinateReferenceSystem
	MathTransform() MathTransform
}

type CoordinateOperationFactory interface {
	CreateOperation(source, target crs.CoordinateReferenceSystem) (CoordinateOperation, error)
}
