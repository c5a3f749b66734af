package temporal

import (
	"fmt"
	"time"

	"github.com/wgdzlh/geoapi"
)

// 时刻的确定位置，NOW取当前时间，其余不确定值无法比较
func resolve(i Instant) (t time.Time, err error) {
	if i == nil {
		err = fmt.Errorf("nil instant: %w", geoapi.ErrInvalidArgument)
		return
	}
	v, ok := i.IndeterminatePosition()
	if !ok {
		t = i.Position()
		return
	}
	if v == Now {
		t = time.Now()
		return
	}
	err = fmt.Errorf("indeterminate position %s: %w", v.Name(), geoapi.ErrUnsupportedOperation)
	return
}

func bounds(p TemporalPrimitive) (begin, end time.Time, instant bool, err error) {
	switch v := p.(type) {
	case Instant:
		begin, err = resolve(v)
		end = begin
		instant = true
	case Period:
		if begin, err = resolve(v.Beginning()); err != nil {
			return
		}
		end, err = resolve(v.Ending())
	default:
		err = fmt.Errorf("temporal primitive %T: %w", p, geoapi.ErrUnsupportedOperation)
	}
	return
}

// a相对于b的位置关系（ISO 19108 relativePosition）
func Relate(a, b TemporalPrimitive) (rel RelativePosition, err error) {
	a1, a2, aInst, err := bounds(a)
	if err != nil {
		return
	}
	b1, b2, bInst, err := bounds(b)
	if err != nil {
		return
	}
	switch {
	case a2.Before(b1):
		return IsBefore, nil
	case a1.After(b2):
		return IsAfter, nil
	}
	switch {
	case aInst && bInst:
		rel = Equals
	case aInst:
		switch {
		case a1.Equal(b1):
			rel = Begins
		case a1.Equal(b2):
			rel = Ends
		default:
			rel = During
		}
	case bInst:
		switch {
		case b1.Equal(a1):
			rel = BegunBy
		case b1.Equal(a2):
			rel = EndedBy
		default:
			rel = Contains
		}
	case a2.Equal(b1):
		rel = Meets
	case a1.Equal(b2):
		rel = MetBy
	case a1.Equal(b1):
		switch {
		case a2.Equal(b2):
			rel = Equals
		case a2.Before(b2):
			rel = Begins
		default:
			rel = BegunBy
		}
	case a2.Equal(b2):
		if a1.After(b1) {
			rel = Ends
		} else {
			rel = EndedBy
		}
	case a1.After(b1) && a2.Before(b2):
		rel = During
	case a1.Before(b1) && a2.After(b2):
		rel = Contains
	case a1.Before(b1):
		rel = Overlaps
	default:
		rel = OverlappedBy
	}
	return
}
