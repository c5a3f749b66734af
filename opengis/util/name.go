package util

import (
	"fmt"
	"strings"
)

const DefaultNameSeparator = ":"

// GenericName 带命名空间的名称
type GenericName interface {
	// 名称所在的命名空间，全局名称返回nil
	Scope() GenericName
	Depth() int
	ParsedNames() []string
	Head() string
	Tip() string
	String() string
}

type genericName struct {
	scope     GenericName
	parts     []string
	separator string
}

// 无命名空间的单级名称
func NewLocalName(scope GenericName, name string) GenericName {
	return &genericName{scope: scope, parts: []string{name}, separator: DefaultNameSeparator}
}

// 按分隔符解析多级名称，如 "EPSG:4326"
func ParseGenericName(s, sep string) (GenericName, error) {
	if sep == "" {
		sep = DefaultNameSeparator
	}
	parts := strings.Split(s, sep)
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty part in name %q", s)
		}
	}
	return &genericName{parts: parts, separator: sep}, nil
}

func (n *genericName) Scope() GenericName { return n.scope }
func (n *genericName) Depth() int         { return len(n.parts) }

func (n *genericName) ParsedNames() []string {
	ret := make([]string, len(n.parts))
	copy(ret, n.parts)
	return ret
}

func (n *genericName) Head() string { return n.parts[0] }
func (n *genericName) Tip() string  { return n.parts[len(n.parts)-1] }

func (n *genericName) String() string {
	return strings.Join(n.parts, n.separator)
}
