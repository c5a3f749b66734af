package simple

import (
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/util"
)

// Properties 参照对象的公共属性
type Properties struct {
	Name      string
	Authority *Citation // 为空时不生成权威标识
	Code      string
	Aliases   []string
	Remarks   string
	Scope     string
	Domain    metadata.Extent
}

// 参照对象的公共部分，由各类型内嵌
type object struct {
	name        metadata.Identifier
	alias       []util.GenericName
	identifiers []metadata.Identifier
	remarks     util.InternationalString
}

// 空*Citation须转为nil接口，否则接口判空失效
func (p Properties) authority() metadata.Citation {
	if p.Authority == nil {
		return nil
	}
	return p.Authority
}

func newObject(p Properties) object {
	auth := p.authority()
	o := object{
		name: NewIdentifier(auth, "", p.Name),
	}
	if auth != nil && p.Code != "" {
		o.identifiers = []metadata.Identifier{NewIdentifier(auth, "", p.Code)}
	}
	for _, a := range p.Aliases {
		o.alias = append(o.alias, util.NewLocalName(nil, a))
	}
	if p.Remarks != "" {
		o.remarks = util.PlainString(p.Remarks)
	}
	return o
}

func (o *object) Name() metadata.Identifier {
	return o.name
}

func (o *object) Alias() []util.GenericName {
	return append([]util.GenericName(nil), o.alias...)
}

func (o *object) Identifiers() []metadata.Identifier {
	return append([]metadata.Identifier(nil), o.identifiers...)
}

func (o *object) Remarks() util.InternationalString {
	return o.remarks
}

// 首个权威标识，无则为nil
func (o *object) identifier() metadata.Identifier {
	if len(o.identifiers) == 0 {
		return nil
	}
	return o.identifiers[0]
}

func (o *object) nameString() string {
	if o.name == nil {
		return ""
	}
	return o.name.Code()
}

// 参照系统的适用范围
type domain struct {
	scope  util.InternationalString
	extent metadata.Extent
}

func newDomain(p Properties) domain {
	d := domain{extent: p.Domain}
	if e, ok := p.Domain.(*Extent); ok && e == nil {
		d.extent = nil
	}
	if p.Scope != "" {
		d.scope = util.PlainString(p.Scope)
	}
	return d
}

func (d *domain) DomainOfValidity() metadata.Extent {
	return d.extent
}

func (d *domain) Scope() util.InternationalString {
	return d.scope
}
