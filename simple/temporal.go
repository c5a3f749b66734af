package simple

import (
	"fmt"
	"time"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/temporal"
)

type Instant struct {
	position      time.Time
	indeterminate temporal.IndeterminateValue
}

var _ temporal.Instant = (*Instant)(nil)

func NewInstant(t time.Time) *Instant {
	return &Instant{position: t}
}

func NewIndeterminateInstant(v temporal.IndeterminateValue) (*Instant, error) {
	if v.Code == nil {
		return nil, fmt.Errorf("empty indeterminate value: %w", geoapi.ErrInvalidArgument)
	}
	return &Instant{indeterminate: v}, nil
}

func (i *Instant) Position() time.Time {
	return i.position
}

func (i *Instant) IndeterminatePosition() (temporal.IndeterminateValue, bool) {
	return i.indeterminate, i.indeterminate.Code != nil
}

func (i *Instant) Length() time.Duration {
	return 0
}

func (i *Instant) String() string {
	if v, ok := i.IndeterminatePosition(); ok {
		return v.Name()
	}
	return i.position.Format(time.RFC3339Nano)
}

type Period struct {
	beginning, ending temporal.Instant
}

var _ temporal.Period = (*Period)(nil)

// 起止时刻均确定时，须beginning不晚于ending
func NewPeriod(beginning, ending temporal.Instant) (*Period, error) {
	if beginning == nil || ending == nil {
		return nil, fmt.Errorf("period requires both instants: %w", geoapi.ErrInvalidArgument)
	}
	_, bi := beginning.IndeterminatePosition()
	_, ei := ending.IndeterminatePosition()
	if !bi && !ei && ending.Position().Before(beginning.Position()) {
		return nil, fmt.Errorf("period ending %v before beginning %v: %w", ending.Position(), beginning.Position(), geoapi.ErrInvalidArgument)
	}
	return &Period{beginning: beginning, ending: ending}, nil
}

func (p *Period) Beginning() temporal.Instant { return p.beginning }
func (p *Period) Ending() temporal.Instant    { return p.ending }

// 起止时刻有不确定值时为0
func (p *Period) Length() time.Duration {
	_, bi := p.beginning.IndeterminatePosition()
	_, ei := p.ending.IndeterminatePosition()
	if bi || ei {
		return 0
	}
	return p.ending.Position().Sub(p.beginning.Position())
}

func (p *Period) String() string {
	return fmt.Sprintf("%v/%v", p.beginning, p.ending)
}
