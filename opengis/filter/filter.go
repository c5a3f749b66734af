// Package filter 对应ISO 19143过滤表达式。
package filter

import "github.com/wgdzlh/geoapi/opengis/util"

type Expression interface {
	FunctionName() string
	Evaluate(obj any) (any, error)
}

type Filter interface {
	Operator() util.ControlledVocabulary
	Test(obj any) (bool, error)
}

type ComparisonOperatorName struct{ *util.Code }

var ComparisonOperatorNames = util.NewCodeList("ComparisonOperatorName", func(c *util.Code) ComparisonOperatorName { return ComparisonOperatorName{c} })

var (
	PropertyIsEqualTo              = ComparisonOperatorNames.Add("PROPERTY_IS_EQUAL_TO", "PropertyIsEqualTo")
	PropertyIsNotEqualTo           = ComparisonOperatorNames.Add("PROPERTY_IS_NOT_EQUAL_TO", "PropertyIsNotEqualTo")
	PropertyIsLessThan             = ComparisonOperatorNames.Add("PROPERTY_IS_LESS_THAN", "PropertyIsLessThan")
	PropertyIsGreaterThan          = ComparisonOperatorNames.Add("PROPERTY_IS_GREATER_THAN", "PropertyIsGreaterThan")
	PropertyIsLessThanOrEqualTo    = ComparisonOperatorNames.Add("PROPERTY_IS_LESS_THAN_OR_EQUAL_TO", "PropertyIsLessThanOrEqualTo")
	PropertyIsGreaterThanOrEqualTo = ComparisonOperatorNames.Add("PROPERTY_IS_GREATER_THAN_OR_EQUAL_TO", "PropertyIsGreaterThanOrEqualTo")
)

type LogicalOperatorName struct{ *util.Code }

var LogicalOperatorNames = util.NewCodeList("LogicalOperatorName", func(c *util.Code) LogicalOperatorName { return LogicalOperatorName{c} })

var (
	And = LogicalOperatorNames.Add("AND", "And")
	Or  = LogicalOperatorNames.Add("OR", "Or")
	Not = LogicalOperatorNames.Add("NOT", "Not")
)

// 无条件过滤器的名称
var (
	Include = LogicalOperatorNames.Add("INCLUDE", "Include")
	Exclude = LogicalOperatorNames.Add("EXCLUDE", "Exclude")
)

// MatchAction 多值属性的比较方式
type MatchAction struct{ *util.Code }

var MatchActions = util.NewCodeList("MatchAction", func(c *util.Code) MatchAction { return MatchAction{c} })

var (
	All = MatchActions.Add("ALL", "All")
	Any = MatchActions.Add("ANY", "Any")
	One = MatchActions.Add("ONE", "One")
)
