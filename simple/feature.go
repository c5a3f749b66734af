package simple

import (
	"fmt"
	"reflect"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/feature"
	"github.com/wgdzlh/geoapi/opengis/util"
)

type AttributeType struct {
	name         util.GenericName
	definition   util.InternationalString
	kind         reflect.Kind
	minOccurs    int
	maxOccurs    int
	defaultValue any
}

var _ feature.AttributeType = (*AttributeType)(nil)

// maxOccurs为-1表示无上限；defaultValue非nil时类型须为kind
func NewAttributeType(name string, kind reflect.Kind, minOccurs, maxOccurs int, defaultValue any) (*AttributeType, error) {
	if name == "" {
		return nil, fmt.Errorf("attribute without name: %w", geoapi.ErrInvalidArgument)
	}
	if minOccurs < 0 || maxOccurs == 0 || maxOccurs < -1 || (maxOccurs > 0 && maxOccurs < minOccurs) {
		return nil, fmt.Errorf("attribute %q occurs [%d, %d]: %w", name, minOccurs, maxOccurs, geoapi.ErrInvalidArgument)
	}
	if defaultValue != nil && reflect.TypeOf(defaultValue).Kind() != kind {
		return nil, fmt.Errorf("attribute %q default %v is not %s: %w", name, defaultValue, kind, geoapi.ErrInvalidArgument)
	}
	return &AttributeType{
		name:         util.NewLocalName(nil, name),
		kind:         kind,
		minOccurs:    minOccurs,
		maxOccurs:    maxOccurs,
		defaultValue: defaultValue,
	}, nil
}

func (a *AttributeType) WithDefinition(def string) *AttributeType {
	c := *a
	c.definition = util.PlainString(def)
	return &c
}

func (a *AttributeType) Name() util.GenericName               { return a.name }
func (a *AttributeType) Definition() util.InternationalString { return a.definition }
func (a *AttributeType) ValueKind() reflect.Kind              { return a.kind }
func (a *AttributeType) MinimumOccurs() int                   { return a.minOccurs }
func (a *AttributeType) MaximumOccurs() int                   { return a.maxOccurs }
func (a *AttributeType) DefaultValue() any                    { return a.defaultValue }

// 校验属性值的类型与个数，多值属性须为切片
func (a *AttributeType) check(value any) error {
	if value == nil {
		if a.minOccurs > 0 {
			return fmt.Errorf("attribute %s is mandatory: %w", a.name, geoapi.ErrInvalidArgument)
		}
		return nil
	}
	v := reflect.ValueOf(value)
	if v.Kind() == a.kind {
		return nil
	}
	if v.Kind() != reflect.Slice || a.maxOccurs == 1 {
		return fmt.Errorf("attribute %s value of %s, want %s: %w", a.name, v.Kind(), a.kind, geoapi.ErrInvalidArgument)
	}
	n := v.Len()
	if n < a.minOccurs || (a.maxOccurs > 0 && n > a.maxOccurs) {
		return fmt.Errorf("attribute %s has %d values, want [%d, %d]: %w", a.name, n, a.minOccurs, a.maxOccurs, geoapi.ErrInvalidArgument)
	}
	for i := 0; i < n; i++ {
		e := v.Index(i)
		if e.Kind() == reflect.Interface {
			e = e.Elem()
		}
		if e.Kind() != a.kind {
			return fmt.Errorf("attribute %s value %d of %s, want %s: %w", a.name, i, e.Kind(), a.kind, geoapi.ErrInvalidArgument)
		}
	}
	return nil
}

type FeatureType struct {
	name       util.GenericName
	abstract   bool
	superTypes []feature.FeatureType
	properties []feature.PropertyType
	index      map[string]feature.PropertyType
}

var _ feature.FeatureType = (*FeatureType)(nil)

// 属性名在本类型内不可重复，可覆盖父类型的同名属性
func NewFeatureType(name string, abstract bool, superTypes []feature.FeatureType, properties ...feature.PropertyType) (*FeatureType, error) {
	if name == "" {
		return nil, fmt.Errorf("feature type without name: %w", geoapi.ErrInvalidArgument)
	}
	ft := &FeatureType{
		name:       util.NewLocalName(nil, name),
		abstract:   abstract,
		superTypes: append([]feature.FeatureType(nil), superTypes...),
		properties: append([]feature.PropertyType(nil), properties...),
		index:      make(map[string]feature.PropertyType, len(properties)),
	}
	for _, p := range properties {
		if p == nil {
			return nil, fmt.Errorf("feature type %q has nil property: %w", name, geoapi.ErrInvalidArgument)
		}
		key := p.Name().String()
		if _, ok := ft.index[key]; ok {
			return nil, fmt.Errorf("feature type %q has duplicated property %q: %w", name, key, geoapi.ErrInvalidArgument)
		}
		ft.index[key] = p
	}
	return ft, nil
}

func (ft *FeatureType) Name() util.GenericName            { return ft.name }
func (ft *FeatureType) IsAbstract() bool                  { return ft.abstract }
func (ft *FeatureType) SuperTypes() []feature.FeatureType { return append([]feature.FeatureType(nil), ft.superTypes...) }

func (ft *FeatureType) Properties(includeSuperTypes bool) []feature.PropertyType {
	if !includeSuperTypes {
		return append([]feature.PropertyType(nil), ft.properties...)
	}
	var (
		ret  []feature.PropertyType
		seen = map[string]int{}
	)
	for _, st := range ft.superTypes {
		for _, p := range st.Properties(true) {
			key := p.Name().String()
			if _, ok := seen[key]; !ok {
				seen[key] = len(ret)
				ret = append(ret, p)
			}
		}
	}
	for _, p := range ft.properties {
		key := p.Name().String()
		if i, ok := seen[key]; ok {
			ret[i] = p
			continue
		}
		seen[key] = len(ret)
		ret = append(ret, p)
	}
	return ret
}

func (ft *FeatureType) Property(name string) (feature.PropertyType, error) {
	if p, ok := ft.index[name]; ok {
		return p, nil
	}
	for _, st := range ft.superTypes {
		if p, err := st.Property(name); err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("property %q in %s: %w", name, ft.name, geoapi.ErrPropertyNotFound)
}

// other为本类型或本类型的子类型
func (ft *FeatureType) IsAssignableFrom(other feature.FeatureType) bool {
	if other == nil {
		return false
	}
	if other.Name().String() == ft.name.String() {
		return true
	}
	for _, st := range other.SuperTypes() {
		if ft.IsAssignableFrom(st) {
			return true
		}
	}
	return false
}

// Feature 以属性名为键保存属性值
type Feature struct {
	typ    feature.FeatureType
	values map[string]any
}

var _ feature.Feature = (*Feature)(nil)

// 抽象类型不可实例化；属性初始为默认值
func NewFeature(ft feature.FeatureType) (*Feature, error) {
	if ft == nil || ft.IsAbstract() {
		return nil, fmt.Errorf("feature of abstract or nil type: %w", geoapi.ErrInvalidArgument)
	}
	f := &Feature{typ: ft, values: map[string]any{}}
	for _, p := range ft.Properties(true) {
		if at, ok := p.(feature.AttributeType); ok && at.DefaultValue() != nil {
			f.values[p.Name().String()] = at.DefaultValue()
		}
	}
	return f, nil
}

func (f *Feature) Type() feature.FeatureType {
	return f.typ
}

func (f *Feature) PropertyValue(name string) (any, error) {
	if _, err := f.typ.Property(name); err != nil {
		return nil, err
	}
	return f.values[name], nil
}

func (f *Feature) SetPropertyValue(name string, value any) error {
	p, err := f.typ.Property(name)
	if err != nil {
		return err
	}
	if at, ok := p.(*AttributeType); ok {
		if err = at.check(value); err != nil {
			return err
		}
	}
	if value == nil {
		delete(f.values, name)
		return nil
	}
	f.values[name] = value
	return nil
}
