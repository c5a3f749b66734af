// Package metadata 对应ISO 19115中被参照系统引用的元数据类型。
package metadata

import "github.com/wgdzlh/geoapi/opengis/util"

// Identifier 对象在某命名空间内的唯一标识，如 EPSG:4326
type Identifier interface {
	Code() string
	CodeSpace() string
	Version() string
	Authority() Citation
	Description() util.InternationalString
}

// Citation 资源引用，通常为权威机构
type Citation interface {
	Title() util.InternationalString
	AlternateTitles() []util.InternationalString
	Identifiers() []Identifier
}

// Extent 有效范围
type Extent interface {
	Description() util.InternationalString
	GeographicElements() []GeographicBoundingBox
}

// GeographicBoundingBox 经纬度包围盒，单位为度
type GeographicBoundingBox interface {
	WestBoundLongitude() float64
	EastBoundLongitude() float64
	SouthBoundLatitude() float64
	NorthBoundLatitude() float64
	// false表示该范围为排除区域
	InclusionIsTrue() bool
}

type Obligation struct{ *util.Code }

var Obligations = util.NewCodeList("Obligation", func(c *util.Code) Obligation { return Obligation{c} })

var (
	Mandatory   = Obligations.Add("MANDATORY", "mandatory")
	Optional    = Obligations.Add("OPTIONAL", "optional")
	Conditional = Obligations.Add("CONDITIONAL", "conditional")
)
