package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type color struct{ *Code }

var colors = NewCodeList("Color", func(c *Code) color { return color{c} })

func TestCodeList(t *testing.T) {
	r := require.New(t)
	red := colors.Add("RED", "red")
	green := colors.Add("GREEN", "green")
	r.Equal(red, colors.Add("red", ""))
	r.Equal(0, red.Ordinal())
	r.Equal(1, green.Ordinal())
	r.Equal("Color[RED]", red.String())

	v, ok := colors.ValueOf("Red")
	r.True(ok)
	r.Equal(red, v)
	_, ok = colors.ValueOf("BLUE")
	r.False(ok)

	blue := colors.ValueOrCreate("blue")
	r.Equal("blue", blue.Name())
	r.Equal(2, blue.Ordinal())
	r.Equal([]color{red, green, blue}, colors.Values())
}

func TestCodeListConcurrentCreate(t *testing.T) {
	l := NewCodeList("Shade", func(c *Code) color { return color{c} })
	var wg sync.WaitGroup
	got := make([]color, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = l.ValueOrCreate("DARK")
		}(i)
	}
	wg.Wait()
	for _, c := range got {
		require.Equal(t, got[0], c)
	}
	require.Len(t, l.Values(), 1)
}

func TestGenericName(t *testing.T) {
	n, err := ParseGenericName("EPSG:4326", "")
	require.NoError(t, err)
	require.Equal(t, 2, n.Depth())
	require.Equal(t, "EPSG", n.Head())
	require.Equal(t, "4326", n.Tip())
	require.Equal(t, "EPSG:4326", n.String())
	require.Nil(t, n.Scope())

	_, err = ParseGenericName("EPSG::4326", ":")
	require.Error(t, err)

	local := NewLocalName(n, "Latitude")
	require.Equal(t, 1, local.Depth())
	require.Equal(t, n, local.Scope())
}

func TestPlainString(t *testing.T) {
	s := PlainString("WGS 84")
	require.Equal(t, "WGS 84", s.ToString(language.Chinese))
}
