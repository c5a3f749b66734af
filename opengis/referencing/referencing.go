// Package referencing 对应ISO 19111中所有参照对象的公共接口。
package referencing

import (
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/util"
)

// IdentifiedObject 带名称与标识的参照对象
type IdentifiedObject interface {
	Name() metadata.Identifier
	Alias() []util.GenericName
	Identifiers() []metadata.Identifier
	// 无备注时返回nil
	Remarks() util.InternationalString
	// WKT 1格式
	ToWKT() (string, error)
}

// ReferenceSystem 参照系统
type ReferenceSystem interface {
	IdentifiedObject
	// 未知时返回nil
	DomainOfValidity() metadata.Extent
	Scope() util.InternationalString
}
