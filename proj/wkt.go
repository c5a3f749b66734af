package proj

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wgdzlh/geoapi"
)

// WKT 1 节点，如 AXIS["Latitude",NORTH]
// values依次为各个非节点参数（字符串已去引号）
type wktNode struct {
	keyword  string
	values   []string
	children []*wktNode
}

type wktParser struct {
	s   string
	pos int
}

func parseWKT(s string) (n *wktNode, err error) {
	p := &wktParser{s: s}
	if n, err = p.node(); err != nil {
		return
	}
	if p.skipSpace(); p.pos < len(p.s) {
		err = fmt.Errorf("trailing text at %d: %w", p.pos, geoapi.ErrInvalidWKT)
	}
	return
}

func (p *wktParser) skipSpace() {
	for p.pos < len(p.s) && strings.IndexByte(" \t\r\n", p.s[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *wktParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s at %d: %w", fmt.Sprintf(format, args...), p.pos, geoapi.ErrInvalidWKT)
}

func (p *wktParser) node() (n *wktNode, err error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && (isLetter(p.s[p.pos]) || p.s[p.pos] == '_' || (p.pos > start && isDigit(p.s[p.pos]))) {
		p.pos++
	}
	if p.pos == start {
		err = p.errorf("expect keyword")
		return
	}
	n = &wktNode{keyword: strings.ToUpper(p.s[start:p.pos])}
	p.skipSpace()
	if p.pos >= len(p.s) || (p.s[p.pos] != '[' && p.s[p.pos] != '(') {
		err = p.errorf("expect '[' after %s", n.keyword)
		return
	}
	closing := byte(']')
	if p.s[p.pos] == '(' {
		closing = ')'
	}
	p.pos++
	for {
		p.skipSpace()
		if p.pos >= len(p.s) {
			err = p.errorf("unclosed %s", n.keyword)
			return
		}
		switch c := p.s[p.pos]; {
		case c == '"':
			var v string
			if v, err = p.quoted(); err != nil {
				return
			}
			n.values = append(n.values, v)
		case isLetter(c):
			// 关键字后接括号为子节点，否则为枚举值（如NORTH）
			save := p.pos
			for p.pos < len(p.s) && (isLetter(p.s[p.pos]) || isDigit(p.s[p.pos]) || p.s[p.pos] == '_') {
				p.pos++
			}
			word := p.s[save:p.pos]
			if p.skipSpace(); p.pos < len(p.s) && (p.s[p.pos] == '[' || p.s[p.pos] == '(') {
				p.pos = save
				var child *wktNode
				if child, err = p.node(); err != nil {
					return
				}
				n.children = append(n.children, child)
			} else {
				n.values = append(n.values, word)
			}
		default:
			save := p.pos
			for p.pos < len(p.s) && (isDigit(p.s[p.pos]) || strings.IndexByte("+-.eE", p.s[p.pos]) >= 0) {
				p.pos++
			}
			if p.pos == save {
				err = p.errorf("unexpected %q", c)
				return
			}
			n.values = append(n.values, p.s[save:p.pos])
		}
		p.skipSpace()
		if p.pos >= len(p.s) {
			err = p.errorf("unclosed %s", n.keyword)
			return
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case closing:
			p.pos++
			return
		default:
			err = p.errorf("unexpected %q in %s", p.s[p.pos], n.keyword)
			return
		}
	}
}

// 双引号字符串，"" 表示一个引号
func (p *wktParser) quoted() (string, error) {
	var b strings.Builder
	p.pos++
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		p.pos++
		if c != '"' {
			b.WriteByte(c)
			continue
		}
		if p.pos < len(p.s) && p.s[p.pos] == '"' {
			b.WriteByte('"')
			p.pos++
			continue
		}
		return b.String(), nil
	}
	return "", p.errorf("unclosed quote")
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

func (n *wktNode) child(keyword string) *wktNode {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.keyword == keyword {
			return c
		}
	}
	return nil
}

func (n *wktNode) childrenOf(keyword string) (ret []*wktNode) {
	if n == nil {
		return
	}
	for _, c := range n.children {
		if c.keyword == keyword {
			ret = append(ret, c)
		}
	}
	return
}

func (n *wktNode) value(i int) string {
	if n == nil || i >= len(n.values) {
		return ""
	}
	return n.values[i]
}

func (n *wktNode) number(i int) (float64, error) {
	v, err := strconv.ParseFloat(n.value(i), 64)
	if err != nil {
		return 0, fmt.Errorf("%s value %d: %w", n.keyword, i, geoapi.ErrInvalidWKT)
	}
	return v, nil
}

// AUTHORITY子节点的命名空间与代码
func (n *wktNode) authority() (space, code string) {
	a := n.child("AUTHORITY")
	return a.value(0), a.value(1)
}
