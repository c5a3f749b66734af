package utils

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	FILE_EXT_SHP = ".shp"
	FILE_EXT_PRJ = ".prj"
	FILE_EXT_CPG = ".cpg"

	UTF8  = "UTF8"
	UTF_8 = "UTF-8"
)

// 同目录下同名、不同后缀的文件路径
func SiblingFile(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// 读取cpg文件中的编码声明，不存在时返回空串
func GetCpgEncoding(path string) (enc string) {
	b, err := os.ReadFile(SiblingFile(path, FILE_EXT_CPG))
	if err != nil || len(b) == 0 {
		return
	}
	enc = strings.ToUpper(strings.TrimSpace(string(b)))
	return
}

func IsUtf8Encoding(enc string) bool {
	return enc == UTF_8 || enc == UTF8
}

// 读取prj文件中的WKT
// cpg声明为UTF-8时直接返回，否则当作GBK处理（非法UTF-8才解码）
func ReadPrjFile(path string) (wkt string, err error) {
	prj := SiblingFile(path, FILE_EXT_PRJ)
	b, err := os.ReadFile(prj)
	if err != nil {
		return
	}
	if !IsUtf8Encoding(GetCpgEncoding(prj)) {
		if b, err = ToUtf8(b); err != nil {
			return
		}
	}
	wkt = strings.TrimSpace(PurifyForUtf8(string(b)))
	return
}
