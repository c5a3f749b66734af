package utils

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

var (
	nameDrops = strings.NewReplacer("_", "", "-", "", " ", "", ".", "")
)

func IntsToStr(ids []int, sep byte) string {
	var ret strings.Builder
	for i, id := range ids {
		if i > 0 {
			ret.WriteByte(sep)
		}
		ret.WriteString(strconv.Itoa(id))
	}
	return ret.String()
}

func B2S(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

func S2B(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func GetNowTimeTag() string {
	const tf = "20060102150405.000"
	t := time.Now().Format(tf)
	return t[:len(tf)-4] + t[len(tf)-3:]
}

// 代码表名称归一化：忽略大小写及下划线、连字符、空格、点号
// Caser非并发安全，故每次新建
// 如 "north_east"、"North-East"、"NORTHEAST" 均归一为 "NORTHEAST"
func NormalizeCodeName(s string) string {
	return cases.Upper(language.Und).String(nameDrops.Replace(strings.TrimSpace(s)))
}

// 拆分 "EPSG:4326" 形式的权威代码，无命名空间时 space 为空
func SplitAuthorityCode(code string, sep string) (space, local string) {
	code = strings.TrimSpace(code)
	if i := strings.LastIndex(code, sep); i >= 0 {
		space = strings.TrimSpace(code[:i])
		local = strings.TrimSpace(code[i+len(sep):])
		return
	}
	local = code
	return
}

// GBK 转 UTF-8
func GbkToUtf8(s []byte) (d []byte, e error) {
	reader := transform.NewReader(bytes.NewReader(s), simplifiedchinese.GBK.NewDecoder())
	d, e = io.ReadAll(reader)
	return
}

// UTF-8 转 GBK
func Utf8ToGbk(s []byte) (d []byte, e error) {
	reader := transform.NewReader(bytes.NewReader(s), simplifiedchinese.GBK.NewEncoder())
	d, e = io.ReadAll(reader)
	return
}

// 文本若已是合法UTF-8则原样返回，否则按GBK解码
func ToUtf8(s []byte) (d []byte, e error) {
	if utf8.Valid(s) {
		d = s
		return
	}
	return GbkToUtf8(s)
}

func PurifyForUtf8(s string) string {
	return strings.ToValidUTF8(strings.ReplaceAll(s, "\x00", ""), "")
}

// 解析坐标系代码，支持 "EPSG:4326"、"4326"、"urn:ogc:def:crs:EPSG::4326"、"CRS:84"
// 无命名空间时使用defaultSpace，命名空间统一为大写
func ParseCRSCode(code, defaultSpace string) (space, local string) {
	code = strings.TrimSpace(code)
	if fields := strings.Split(code, ":"); len(fields) >= 6 && strings.EqualFold(strings.Join(fields[:4], ":"), "urn:ogc:def:crs") {
		space = fields[4]
		local = fields[len(fields)-1]
	} else {
		space, local = SplitAuthorityCode(code, ":")
	}
	if space == "" {
		space = defaultSpace
	}
	space = strings.ToUpper(space)
	return
}
