package simple

import (
	"fmt"
	"sort"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/metadata"
	"github.com/wgdzlh/geoapi/opengis/util"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

const UUID_CODESPACE = "urn:uuid"

// InternationalString 多语言字符串，按语言匹配取值
type InternationalString struct {
	def     string
	tags    []language.Tag
	texts   []string
	matcher language.Matcher
}

// locales为空时等同于普通字符串
func NewInternationalString(def string, locales map[language.Tag]string) *InternationalString {
	s := &InternationalString{def: def}
	if len(locales) == 0 {
		return s
	}
	s.tags = make([]language.Tag, 0, len(locales))
	for tag := range locales {
		s.tags = append(s.tags, tag)
	}
	sort.Slice(s.tags, func(i, j int) bool { return s.tags[i].String() < s.tags[j].String() })
	s.texts = make([]string, len(s.tags))
	for i, tag := range s.tags {
		s.texts[i] = locales[tag]
	}
	s.matcher = language.NewMatcher(s.tags)
	return s
}

func (s *InternationalString) String() string {
	return s.def
}

func (s *InternationalString) ToString(tag language.Tag) string {
	if s.matcher == nil {
		return s.def
	}
	_, idx, conf := s.matcher.Match(tag)
	if conf == language.No {
		return s.def
	}
	return s.texts[idx]
}

func (s *InternationalString) Locales() []language.Tag {
	ret := make([]language.Tag, len(s.tags))
	copy(ret, s.tags)
	return ret
}

type Citation struct {
	title           util.InternationalString
	alternateTitles []util.InternationalString
	identifiers     []metadata.Identifier
}

var _ metadata.Citation = (*Citation)(nil)

func NewCitation(title string, alternateTitles ...string) *Citation {
	c := &Citation{title: util.PlainString(title)}
	for _, t := range alternateTitles {
		c.alternateTitles = append(c.alternateTitles, util.PlainString(t))
	}
	return c
}

var (
	EPSG = NewCitation("EPSG Geodetic Parameter Dataset", geoapi.AUTHORITY_EPSG)
	OGC  = NewCitation("Open Geospatial Consortium", geoapi.AUTHORITY_OGC, geoapi.AUTHORITY_CRS)
)

func (c *Citation) Title() util.InternationalString {
	return c.title
}

func (c *Citation) AlternateTitles() []util.InternationalString {
	return append([]util.InternationalString(nil), c.alternateTitles...)
}

func (c *Citation) Identifiers() []metadata.Identifier {
	return append([]metadata.Identifier(nil), c.identifiers...)
}

// 引用的简称：首个别名，无别名时为标题
func CitationCode(c metadata.Citation) string {
	if p, ok := c.(*Citation); c == nil || ok && p == nil {
		return ""
	}
	if alt := c.AlternateTitles(); len(alt) > 0 {
		return alt[0].String()
	}
	if t := c.Title(); t != nil {
		return t.String()
	}
	return ""
}

type Identifier struct {
	code        string
	codeSpace   string
	version     string
	authority   metadata.Citation
	description util.InternationalString
}

var _ metadata.Identifier = (*Identifier)(nil)

// codeSpace为空时取权威机构简称；code为空时生成uuid
func NewIdentifier(authority metadata.Citation, codeSpace, code string) *Identifier {
	if codeSpace == "" {
		codeSpace = CitationCode(authority)
	}
	if code == "" {
		code = uuid.NewString()
		codeSpace = UUID_CODESPACE
	}
	return &Identifier{
		code:      code,
		codeSpace: codeSpace,
		authority: authority,
	}
}

func (id *Identifier) WithVersion(version string) *Identifier {
	c := *id
	c.version = version
	return &c
}

func (id *Identifier) WithDescription(desc util.InternationalString) *Identifier {
	c := *id
	c.description = desc
	return &c
}

func (id *Identifier) Code() string                          { return id.code }
func (id *Identifier) CodeSpace() string                     { return id.codeSpace }
func (id *Identifier) Version() string                       { return id.version }
func (id *Identifier) Authority() metadata.Citation          { return id.authority }
func (id *Identifier) Description() util.InternationalString { return id.description }

func (id *Identifier) String() string {
	if id.codeSpace == "" {
		return id.code
	}
	return id.codeSpace + ":" + id.code
}

// 以 codeSpace:code 比较两个标识
func SameIdentifier(a, b metadata.Identifier) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Code() == b.Code() && a.CodeSpace() == b.CodeSpace()
}

type GeographicBoundingBox struct {
	west, east, south, north float64
	exclusion                bool
}

var _ metadata.GeographicBoundingBox = (*GeographicBoundingBox)(nil)

// west可大于east，表示跨越经度±180°
func NewGeographicBoundingBox(west, east, south, north float64) (*GeographicBoundingBox, error) {
	if !(west >= -180 && west <= 180 && east >= -180 && east <= 180) {
		return nil, fmt.Errorf("longitude range [%v, %v] out of [-180, 180]: %w", west, east, geoapi.ErrInvalidArgument)
	}
	if !(south >= -90 && north <= 90 && south <= north) {
		return nil, fmt.Errorf("latitude range [%v, %v] is invalid: %w", south, north, geoapi.ErrInvalidArgument)
	}
	return &GeographicBoundingBox{west: west, east: east, south: south, north: north}, nil
}

func (b *GeographicBoundingBox) WestBoundLongitude() float64 { return b.west }
func (b *GeographicBoundingBox) EastBoundLongitude() float64 { return b.east }
func (b *GeographicBoundingBox) SouthBoundLatitude() float64 { return b.south }
func (b *GeographicBoundingBox) NorthBoundLatitude() float64 { return b.north }
func (b *GeographicBoundingBox) InclusionIsTrue() bool       { return !b.exclusion }

func (b *GeographicBoundingBox) Exclusion() *GeographicBoundingBox {
	c := *b
	c.exclusion = true
	return &c
}

type Extent struct {
	description util.InternationalString
	boxes       []metadata.GeographicBoundingBox
}

var _ metadata.Extent = (*Extent)(nil)

func NewExtent(description string, boxes ...metadata.GeographicBoundingBox) *Extent {
	return &Extent{
		description: util.PlainString(description),
		boxes:       boxes,
	}
}

func (e *Extent) Description() util.InternationalString {
	return e.description
}

func (e *Extent) GeographicElements() []metadata.GeographicBoundingBox {
	return append([]metadata.GeographicBoundingBox(nil), e.boxes...)
}
