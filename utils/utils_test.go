package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeCodeName(t *testing.T) {
	for _, s := range []string{"north_east", "North-East", "NORTHEAST", " north east "} {
		require.Equal(t, "NORTHEAST", NormalizeCodeName(s), s)
	}
}

func TestSplitAuthorityCode(t *testing.T) {
	space, local := SplitAuthorityCode("EPSG:4326", ":")
	require.Equal(t, "EPSG", space)
	require.Equal(t, "4326", local)
	space, local = SplitAuthorityCode("urn:ogc:def:crs:EPSG::4326", ":")
	require.Equal(t, "urn:ogc:def:crs:EPSG:", space)
	require.Equal(t, "4326", local)
	space, local = SplitAuthorityCode("4326", ":")
	require.Empty(t, space)
	require.Equal(t, "4326", local)
}

func TestGbkRoundTrip(t *testing.T) {
	gbk, err := Utf8ToGbk([]byte("国家大地坐标系"))
	require.NoError(t, err)
	require.NotEqual(t, "国家大地坐标系", string(gbk))
	d, err := ToUtf8(gbk)
	require.NoError(t, err)
	require.Equal(t, "国家大地坐标系", string(d))
}

func TestReadPrjFile(t *testing.T) {
	dir := t.TempDir()
	shp := filepath.Join(dir, "区县.shp")
	wkt := `GEOGCS["中国2000",DATUM["China_2000",SPHEROID["CGCS2000",6378137,298.257222101]]]`
	gbk, err := Utf8ToGbk([]byte(wkt))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(SiblingFile(shp, FILE_EXT_PRJ), gbk, 0o644))

	got, err := ReadPrjFile(shp)
	require.NoError(t, err)
	require.Equal(t, wkt, got)

	require.NoError(t, os.WriteFile(SiblingFile(shp, FILE_EXT_PRJ), []byte(wkt+"\n"), 0o644))
	require.NoError(t, os.WriteFile(SiblingFile(shp, FILE_EXT_CPG), []byte("utf-8"), 0o644))
	require.Equal(t, UTF_8, GetCpgEncoding(shp))
	got, err = ReadPrjFile(shp)
	require.NoError(t, err)
	require.Equal(t, wkt, got)

	_, err = ReadPrjFile(filepath.Join(dir, "missing.shp"))
	require.Error(t, err)
}

func TestB2S(t *testing.T) {
	require.Equal(t, "abc", B2S(S2B("abc")))
	require.Empty(t, B2S(nil))
	require.Nil(t, S2B(""))
	require.Equal(t, "4326,3857", IntsToStr([]int{4326, 3857}, ','))
}

func TestParseCRSCode(t *testing.T) {
	for _, c := range [][3]string{
		{"EPSG:4326", "EPSG", "4326"},
		{"epsg:3857", "EPSG", "3857"},
		{"4490", "EPSG", "4490"},
		{"urn:ogc:def:crs:EPSG::4326", "EPSG", "4326"},
		{"urn:ogc:def:crs:OGC:1.3:CRS84", "OGC", "CRS84"},
		{"CRS:84", "CRS", "84"},
	} {
		space, local := ParseCRSCode(c[0], "EPSG")
		require.Equal(t, c[1], space, c[0])
		require.Equal(t, c[2], local, c[0])
	}
}
