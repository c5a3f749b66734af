// Package util 对应ISO 19103的基础类型：代码表、国际化字符串、泛型名称。
package util

import (
	"fmt"
	"sync"

	"github.com/wgdzlh/geoapi/utils"
)

// Code 代码表中的一个值，同一代码表内按指针比较
type Code struct {
	list       string
	name       string
	identifier string
	ordinal    int
}

func (c *Code) List() string       { return c.list }
func (c *Code) Name() string       { return c.name }
func (c *Code) Identifier() string { return c.identifier }
func (c *Code) Ordinal() int       { return c.ordinal }

func (c *Code) String() string {
	return fmt.Sprintf("%s[%s]", c.list, c.name)
}

// ControlledVocabulary 所有代码表值的公共方法
type ControlledVocabulary interface {
	List() string
	Name() string
	Identifier() string
	Ordinal() int
}

// CodeList 可扩展的代码表，T为具体的代码类型（通常内嵌*Code）
type CodeList[T ControlledVocabulary] struct {
	name   string
	wrap   func(*Code) T
	lock   sync.RWMutex
	values []T
	index  map[string]T
}

func NewCodeList[T ControlledVocabulary](name string, wrap func(*Code) T) *CodeList[T] {
	return &CodeList[T]{
		name:  name,
		wrap:  wrap,
		index: map[string]T{},
	}
}

func (l *CodeList[T]) Name() string {
	return l.name
}

// 添加新值；已存在同名值时返回原值
func (l *CodeList[T]) Add(name, identifier string) T {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.add(name, identifier)
}

func (l *CodeList[T]) add(name, identifier string) T {
	key := utils.NormalizeCodeName(name)
	if v, ok := l.index[key]; ok {
		return v
	}
	v := l.wrap(&Code{
		list:       l.name,
		name:       name,
		identifier: identifier,
		ordinal:    len(l.values),
	})
	l.values = append(l.values, v)
	l.index[key] = v
	if identifier != "" {
		if ik := utils.NormalizeCodeName(identifier); ik != key {
			if _, ok := l.index[ik]; !ok {
				l.index[ik] = v
			}
		}
	}
	return v
}

// 按名称或标识查找，忽略大小写及分隔符
func (l *CodeList[T]) ValueOf(name string) (v T, ok bool) {
	l.lock.RLock()
	v, ok = l.index[utils.NormalizeCodeName(name)]
	l.lock.RUnlock()
	return
}

// 按名称查找，不存在时新建
func (l *CodeList[T]) ValueOrCreate(name string) T {
	if v, ok := l.ValueOf(name); ok {
		return v
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.add(name, "")
}

// 按序号排列的全部值
func (l *CodeList[T]) Values() []T {
	l.lock.RLock()
	defer l.lock.RUnlock()
	ret := make([]T, len(l.values))
	copy(ret, l.values)
	return ret
}
