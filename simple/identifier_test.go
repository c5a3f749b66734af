package simple

import (
	"testing"

	"github.com/wgdzlh/geoapi/opengis/referencing/cs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestInternationalString(t *testing.T) {
	s := NewInternationalString("World", map[language.Tag]string{
		language.English:           "World",
		language.SimplifiedChinese: "全球",
	})
	assert.Equal(t, "World", s.String())
	assert.Equal(t, "全球", s.ToString(language.MustParse("zh-CN")))
	assert.Equal(t, "World", s.ToString(language.AmericanEnglish))
	assert.Len(t, s.Locales(), 2)

	plain := NewInternationalString("only", nil)
	assert.Equal(t, "only", plain.ToString(language.Chinese))
	assert.Empty(t, plain.Locales())
}

func TestIdentifier(t *testing.T) {
	id := NewIdentifier(EPSG, "", "4326").WithVersion("10.0")
	assert.Equal(t, "EPSG:4326", id.String())
	assert.Equal(t, "10.0", id.Version())
	assert.True(t, SameIdentifier(id, NewIdentifier(nil, "EPSG", "4326")))
	assert.False(t, SameIdentifier(id, NewIdentifier(OGC, "", "4326")))
	assert.False(t, SameIdentifier(id, nil))

	anon := NewIdentifier(nil, "", "")
	assert.Equal(t, UUID_CODESPACE, anon.CodeSpace())
	_, err := uuid.Parse(anon.Code())
	require.NoError(t, err)

	assert.Equal(t, "EPSG", CitationCode(EPSG))
	assert.Equal(t, "OGC", CitationCode(OGC))
	assert.Equal(t, "", CitationCode(nil))
}

func TestGeographicBoundingBox(t *testing.T) {
	box, err := NewGeographicBoundingBox(170, -170, -10, 10)
	require.NoError(t, err)
	assert.True(t, box.InclusionIsTrue())
	assert.False(t, box.Exclusion().InclusionIsTrue())

	ext := NewExtent("Pacific", box)
	assert.Equal(t, "Pacific", ext.Description().String())
	assert.Len(t, ext.GeographicElements(), 1)
}

func TestObjectWithoutAuthority(t *testing.T) {
	assert.Equal(t, "", CitationCode((*Citation)(nil)))

	a, err := NewAxis(Properties{Name: "Height"}, "h", cs.Up, cs.Metre)
	require.NoError(t, err)
	assert.Equal(t, "Height", a.Name().Code())
	assert.Equal(t, "", a.Name().CodeSpace())
	assert.Nil(t, a.Name().Authority())
	assert.Empty(t, a.Identifiers())

	// 有代码无权威时不生成标识
	a, err = NewAxis(Properties{Name: "Depth", Code: "9999"}, "d", cs.Down, cs.Metre)
	require.NoError(t, err)
	assert.Empty(t, a.Identifiers())

	a, err = NewAxis(Properties{Name: "Height", Authority: EPSG, Code: "6499"}, "h", cs.Up, cs.Metre)
	require.NoError(t, err)
	require.Len(t, a.Identifiers(), 1)
	assert.Equal(t, "EPSG:6499", a.Identifiers()[0].(*Identifier).String())

	d := newDomain(Properties{Domain: (*Extent)(nil)})
	assert.True(t, d.DomainOfValidity() == nil)
}
