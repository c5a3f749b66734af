// Package feature 对应ISO 19109要素模型。
package feature

import (
	"reflect"

	"github.com/wgdzlh/geoapi/opengis/util"
)

type PropertyType interface {
	Name() util.GenericName
	Definition() util.InternationalString
}

type AttributeType interface {
	PropertyType
	ValueKind() reflect.Kind
	MinimumOccurs() int
	// 无上限时为-1
	MaximumOccurs() int
	DefaultValue() any
}

type FeatureType interface {
	Name() util.GenericName
	IsAbstract() bool
	SuperTypes() []FeatureType
	// includeSuperTypes为true时包含父类型继承的属性
	Properties(includeSuperTypes bool) []PropertyType
	// 不存在时返回ErrPropertyNotFound
	Property(name string) (PropertyType, error)
	IsAssignableFrom(other FeatureType) bool
}

type Feature interface {
	Type() FeatureType
	PropertyValue(name string) (any, error)
	SetPropertyValue(name string, value any) error
}
