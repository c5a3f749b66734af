// Package grid 对应ISO 19123中格网坐标的类型。
package grid

// GridCoordinates 格网单元的整数坐标
type GridCoordinates interface {
	Dimension() int
	Coordinate(dim int) (int64, error)
	// 全部坐标值的副本
	Coordinates() []int64
}

// GridEnvelope 格网坐标的闭区间范围，高值含在范围内
type GridEnvelope interface {
	Dimension() int
	Low(dim int) (int64, error)
	High(dim int) (int64, error)
	// High(dim) - Low(dim) + 1
	Span(dim int) (int64, error)
	LowCoordinates() GridCoordinates
	HighCoordinates() GridCoordinates
}
