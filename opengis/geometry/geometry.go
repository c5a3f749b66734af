// Package geometry 对应ISO 19107中坐标位置与包络的类型。
package geometry

import "github.com/wgdzlh/geoapi/opengis/referencing/crs"

// DirectPosition 某坐标系下的一个坐标点
type DirectPosition interface {
	Dimension() int
	// 全部坐标值的副本
	Coordinates() []float64
	Ordinate(dim int) (float64, error)
	// 未关联坐标系时返回nil
	CRS() crs.CoordinateReferenceSystem
}

// Envelope 坐标包络，最小值可大于最大值（跨越经度±180°的情况）
type Envelope interface {
	Dimension() int
	LowerCorner() DirectPosition
	UpperCorner() DirectPosition
	Minimum(dim int) (float64, error)
	Maximum(dim int) (float64, error)
	Median(dim int) (float64, error)
	Span(dim int) (float64, error)
	CRS() crs.CoordinateReferenceSystem
}
