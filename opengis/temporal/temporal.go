// Package temporal 对应ISO 19108时间对象。
package temporal

import (
	"time"

	"github.com/wgdzlh/geoapi/opengis/util"
)

// TemporalPrimitive 时刻或时段
type TemporalPrimitive interface {
	// 时段的时长，时刻为0
	Length() time.Duration
}

type Instant interface {
	TemporalPrimitive
	// 不确定位置时为零值
	Position() time.Time
	IndeterminatePosition() (IndeterminateValue, bool)
}

type Period interface {
	TemporalPrimitive
	Beginning() Instant
	Ending() Instant
}

type IndeterminateValue struct{ *util.Code }

var IndeterminateValues = util.NewCodeList("IndeterminateValue", func(c *util.Code) IndeterminateValue { return IndeterminateValue{c} })

var (
	Unknown = IndeterminateValues.Add("UNKNOWN", "unknown")
	Now     = IndeterminateValues.Add("NOW", "now")
	Before  = IndeterminateValues.Add("BEFORE", "before")
	After   = IndeterminateValues.Add("AFTER", "after")
)

type RelativePosition struct{ *util.Code }

var RelativePositions = util.NewCodeList("RelativePosition", func(c *util.Code) RelativePosition { return RelativePosition{c} })

var (
	IsBefore     = RelativePositions.Add("BEFORE", "Before")
	IsAfter      = RelativePositions.Add("AFTER", "After")
	Begins       = RelativePositions.Add("BEGINS", "Begins")
	Ends         = RelativePositions.Add("ENDS", "Ends")
	During       = RelativePositions.Add("DURING", "During")
	Equals       = RelativePositions.Add("EQUALS", "Equals")
	Contains     = RelativePositions.Add("CONTAINS", "Contains")
	Overlaps     = RelativePositions.Add("OVERLAPS", "Overlaps")
	Meets        = RelativePositions.Add("MEETS", "Meets")
	OverlappedBy = RelativePositions.Add("OVERLAPPED_BY", "OverlappedBy")
	MetBy        = RelativePositions.Add("MET_BY", "MetBy")
	BegunBy      = RelativePositions.Add("BEGUN_BY", "BegunBy")
	EndedBy      = RelativePositions.Add("ENDED_BY", "EndedBy")
)
