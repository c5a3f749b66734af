package util

import "golang.org/x/text/language"

// InternationalString 可按语言本地化的字符串
type InternationalString interface {
	// 默认语言的文本
	String() string
	// 指定语言的文本，无该语言时返回最接近语言的文本
	ToString(tag language.Tag) string
}

// 普通字符串当作不可本地化的InternationalString
type PlainString string

func (s PlainString) String() string                   { return string(s) }
func (s PlainString) ToString(tag language.Tag) string { return string(s) }
