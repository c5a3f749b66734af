// Package crs 坐标参照系统
package crs

import (
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/referencing"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/opengis/referencing/datum"
	"github.com/wgdzlh/geoapi/opengis/util"
)

type Kind string

const (
	Geographic  Kind = "geographic"
	Geocentric  Kind = "geocentric"
	Projected   Kind = "projected"
	VerticalCRS Kind = "vertical"
	Engineering Kind = "engineering"
	Compound    Kind = "compound"
)

type CoordinateReferenceSystem interface {
	referencing.ReferenceSystem
	Kind() Kind
	CoordinateSystem() cs.CoordinateSystem
}

// SingleCRS 单一基准的坐标参照系统
type SingleCRS interface {
	CoordinateReferenceSystem
	Datum() datum.Datum
}

type GeodeticCRS interface {
	SingleCRS
	GeodeticDatum() datum.GeodeticDatum
}

type ProjectedCRS interface {
	GeodeticCRS
	BaseCRS() GeodeticCRS
	// 投影方法名，如 "Popular Visualisation Pseudo Mercator"
	Projection() string
}

// AuthorityFactory 按权威代码创建坐标参照系统，如EPSG
type AuthorityFactory interface {
	Authority() metadata.Citation
	AuthorityCodes() ([]string, error)
	// code可带或不带命名空间（"EPSG:4326"或"4326"）
	// 未知代码返回ErrNoSuchAuthorityCode
	CreateCoordinateReferenceSystem(code string) (CoordinateReferenceSystem, error)
	DescriptionText(code string) (util.InternationalString, error)
}
