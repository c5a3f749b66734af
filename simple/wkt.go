package simple

import (
	"strconv"
	"strings"

	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
)

// WKT 1 格式输出
type wktWriter struct {
	b     strings.Builder
	first []bool
}

type wktFormattable interface {
	formatWKT(w *wktWriter)
}

func (w *wktWriter) sep() {
	n := len(w.first)
	if n == 0 {
		return
	}
	if w.first[n-1] {
		w.first[n-1] = false
		return
	}
	w.b.WriteByte(',')
}

func (w *wktWriter) open(keyword string) {
	w.sep()
	w.b.WriteString(keyword)
	w.b.WriteByte('[')
	w.first = append(w.first, true)
}

func (w *wktWriter) close() {
	w.b.WriteByte(']')
	w.first = w.first[:len(w.first)-1]
}

func (w *wktWriter) quoted(s string) {
	w.sep()
	w.b.WriteByte('"')
	w.b.WriteString(strings.ReplaceAll(s, `"`, `""`))
	w.b.WriteByte('"')
}

func (w *wktWriter) number(v float64) {
	w.sep()
	w.b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

func (w *wktWriter) enum(s string) {
	w.sep()
	w.b.WriteString(s)
}

func (w *wktWriter) element(f wktFormattable) {
	f.formatWKT(w)
}

func (w *wktWriter) authority(id metadata.Identifier) {
	if id == nil {
		return
	}
	w.open("AUTHORITY")
	w.quoted(id.CodeSpace())
	w.quoted(id.Code())
	w.close()
}

func (w *wktWriter) unit(u cs.Unit) {
	w.open("UNIT")
	w.quoted(u.Name)
	w.number(u.Factor)
	w.close()
}

func (w *wktWriter) parameter(name string, v float64) {
	w.open("PARAMETER")
	w.quoted(name)
	w.number(v)
	w.close()
}

func (w *wktWriter) String() string {
	return w.b.String()
}

func toWKT(f wktFormattable) (string, error) {
	var w wktWriter
	f.formatWKT(&w)
	return w.String(), nil
}
