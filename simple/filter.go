package simple

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/feature"
	"github.com/wgdzlh/geoapi/opengis/filter"
	"github.com/wgdzlh/geoapi/opengis/util"
)

type Literal struct {
	Value any
}

var _ filter.Expression = Literal{}

func (Literal) FunctionName() string        { return "Literal" }
func (l Literal) Evaluate(any) (any, error) { return l.Value, nil }

// ValueReference 按属性路径取值，路径以 "/" 分隔，逐级在Feature或map[string]any中查找
type ValueReference struct {
	XPath string
}

var _ filter.Expression = ValueReference{}

func (ValueReference) FunctionName() string { return "ValueReference" }

func (r ValueReference) Evaluate(obj any) (v any, err error) {
	v = obj
	for _, step := range strings.Split(r.XPath, "/") {
		if step == "" {
			continue
		}
		switch o := v.(type) {
		case feature.Feature:
			if v, err = o.PropertyValue(step); err != nil {
				return
			}
		case map[string]any:
			var ok bool
			if v, ok = o[step]; !ok {
				err = fmt.Errorf("property %q: %w", step, geoapi.ErrPropertyNotFound)
				return
			}
		default:
			err = fmt.Errorf("property %q of %T: %w", step, v, geoapi.ErrPropertyNotFound)
			return
		}
	}
	return
}

// Comparison 二元比较过滤器
type Comparison struct {
	op        filter.ComparisonOperatorName
	e1, e2    filter.Expression
	matchCase bool
	action    filter.MatchAction
}

var _ filter.Filter = (*Comparison)(nil)

// action为零值时取ANY
func NewComparison(op filter.ComparisonOperatorName, e1, e2 filter.Expression, matchCase bool, action filter.MatchAction) (*Comparison, error) {
	if op.Code == nil || e1 == nil || e2 == nil {
		return nil, fmt.Errorf("comparison requires operator and two expressions: %w", geoapi.ErrInvalidArgument)
	}
	if action.Code == nil {
		action = filter.Any
	}
	return &Comparison{op: op, e1: e1, e2: e2, matchCase: matchCase, action: action}, nil
}

func (c *Comparison) Operator() util.ControlledVocabulary {
	return c.op
}

// 属性不存在时为false；多值属性按MatchAction汇总各值的比较结果
func (c *Comparison) Test(obj any) (bool, error) {
	v1, err := c.e1.Evaluate(obj)
	if errors.Is(err, geoapi.ErrPropertyNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	v2, err := c.e2.Evaluate(obj)
	if errors.Is(err, geoapi.ErrPropertyNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	rv := reflect.ValueOf(v1)
	if v1 == nil || rv.Kind() != reflect.Slice {
		return c.test(v1, v2), nil
	}
	matched := 0
	for i := 0; i < rv.Len(); i++ {
		if c.test(rv.Index(i).Interface(), v2) {
			matched++
		}
	}
	switch c.action {
	case filter.All:
		return matched == rv.Len() && matched > 0, nil
	case filter.One:
		return matched == 1, nil
	default:
		return matched > 0, nil
	}
}

func (c *Comparison) test(a, b any) bool {
	r, ok := compareValues(a, b, c.matchCase)
	if !ok {
		return false
	}
	switch c.op {
	case filter.PropertyIsEqualTo:
		return r == 0
	case filter.PropertyIsNotEqualTo:
		return r != 0
	case filter.PropertyIsLessThan:
		return r < 0
	case filter.PropertyIsGreaterThan:
		return r > 0
	case filter.PropertyIsLessThanOrEqualTo:
		return r <= 0
	case filter.PropertyIsGreaterThanOrEqualTo:
		return r >= 0
	}
	return false
}

// 整数按原类型比较，避免超过2^53时转float64丢失精度
func compareInts(a, b any) (r int, ok bool) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	sa, ua := intKind(ra.Kind())
	sb, ub := intKind(rb.Kind())
	if !(sa || ua) || !(sb || ub) {
		return
	}
	switch {
	case sa && sb:
		return cmp.Compare(ra.Int(), rb.Int()), true
	case ua && ub:
		return cmp.Compare(ra.Uint(), rb.Uint()), true
	case sa && ra.Int() < 0:
		return -1, true
	case sb && rb.Int() < 0:
		return 1, true
	case sa:
		return cmp.Compare(uint64(ra.Int()), rb.Uint()), true
	}
	return cmp.Compare(ra.Uint(), uint64(rb.Int())), true
}

func intKind(k reflect.Kind) (signed, unsigned bool) {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		signed = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		unsigned = true
	}
	return
}

func toFloat(v any) (f float64, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return
}

func sign(d float64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// 比较两值，不可比较时ok为false；布尔值仅可判断相等
func compareValues(a, b any, matchCase bool) (r int, ok bool) {
	if a == nil || b == nil {
		return
	}
	if r, ok = compareInts(a, b); ok {
		return
	}
	if fa, okA := toFloat(a); okA {
		if fb, okB := toFloat(b); okB {
			return sign(fa - fb), true
		}
		return
	}
	switch x := a.(type) {
	case string:
		y, isStr := b.(string)
		if !isStr {
			return
		}
		if !matchCase {
			x, y = strings.ToLower(x), strings.ToLower(y)
		}
		return strings.Compare(x, y), true
	case time.Time:
		y, isTime := b.(time.Time)
		if !isTime {
			return
		}
		return x.Compare(y), true
	case bool:
		y, isBool := b.(bool)
		if !isBool {
			return
		}
		if x == y {
			return 0, true
		}
		return 1, true
	}
	return
}

type logical struct {
	op       filter.LogicalOperatorName
	operands []filter.Filter
}

// 操作数不可为nil
func newLogical(op filter.LogicalOperatorName, operands []filter.Filter) (filter.Filter, error) {
	for i, f := range operands {
		if f == nil {
			return nil, fmt.Errorf("%s operand %d is nil: %w", op.Name(), i, geoapi.ErrInvalidArgument)
		}
		if rv := reflect.ValueOf(f); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, fmt.Errorf("%s operand %d is nil %T: %w", op.Name(), i, f, geoapi.ErrInvalidArgument)
		}
	}
	return &logical{op: op, operands: append([]filter.Filter(nil), operands...)}, nil
}

func NewAnd(operands ...filter.Filter) (filter.Filter, error) {
	return newLogical(filter.And, operands)
}

func NewOr(operands ...filter.Filter) (filter.Filter, error) {
	return newLogical(filter.Or, operands)
}

func NewNot(operand filter.Filter) (filter.Filter, error) {
	return newLogical(filter.Not, []filter.Filter{operand})
}

func (l *logical) Operator() util.ControlledVocabulary {
	return l.op
}

// AND、OR短路求值
func (l *logical) Test(obj any) (bool, error) {
	switch l.op {
	case filter.Not:
		ok, err := l.operands[0].Test(obj)
		return !ok && err == nil, err
	case filter.Or:
		for _, f := range l.operands {
			if ok, err := f.Test(obj); err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	default:
		for _, f := range l.operands {
			if ok, err := f.Test(obj); err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

type constant bool

var (
	IncludeAll filter.Filter = constant(true)
	ExcludeAll filter.Filter = constant(false)
)

func (c constant) Operator() util.ControlledVocabulary {
	if c {
		return filter.Include
	}
	return filter.Exclude
}

func (c constant) Test(any) (bool, error) {
	return bool(c), nil
}
