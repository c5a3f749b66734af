package conformance

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/coverage/grid"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/opengis/referencing/cs"
	"github.com/wgdzlh/geoapi/opengis/referencing/datum"
	"github.com/wgdzlh/geoapi/opengis/temporal"
	"github.com/wgdzlh/geoapi/opengis/util"
	"github.com/wgdzlh/geoapi/simple"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSimpleFactorySuite(t *testing.T) {
	s := &AuthorityFactorySuite{Factory: simple.NewFactory(), Strict: true}
	require.True(t, s.Run(t))
}

func TestSimpleObjects(t *testing.T) {
	require.True(t, ValidateCRS(t, simple.WGS84))
	require.True(t, ValidateCRS(t, simple.CRS84))
	require.True(t, ValidateCRS(t, simple.WebMercator))
	require.True(t, ValidateDatum(t, simple.WGS84Datum))

	g, err := simple.NewGridEnvelope([]int64{0, -5}, []int64{9, 5})
	require.NoError(t, err)
	require.True(t, ValidateGridEnvelope(t, g))

	env, err := simple.NewEnvelope([]float64{170, -10}, []float64{-170, 10}, simple.CRS84)
	require.NoError(t, err)
	require.True(t, ValidateEnvelope(t, env))

	begin := simple.NewInstant(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	end := simple.NewInstant(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	p, err := simple.NewPeriod(begin, end)
	require.NoError(t, err)
	require.True(t, ValidatePeriod(t, p))
	now, err := simple.NewIndeterminateInstant(temporal.Now)
	require.NoError(t, err)
	p, err = simple.NewPeriod(begin, now)
	require.NoError(t, err)
	require.True(t, ValidatePeriod(t, p))
}

func TestCodeLists(t *testing.T) {
	require.True(t, ValidateCodeList(t, cs.AxisDirections))
	require.True(t, ValidateCodeList(t, cs.RangeMeanings))
	require.True(t, ValidateCodeList(t, datum.PixelInCells))
	require.True(t, ValidateCodeList(t, temporal.RelativePositions))

	empty := util.NewCodeList("Empty", func(c *util.Code) cs.AxisDirection { return cs.AxisDirection{Code: c} })
	r := &Result{}
	require.False(t, ValidateCodeList(r, empty))
	require.NotEmpty(t, r.Failures)
}

// 跨度不满足 high - low + 1
type badGridEnvelope struct{ grid.GridEnvelope }

func (b badGridEnvelope) Span(dim int) (int64, error) {
	s, err := b.GridEnvelope.Span(dim)
	return s - 1, err
}

func TestValidatorsDetectViolations(t *testing.T) {
	g, err := simple.NewGridEnvelope([]int64{0}, []int64{9})
	require.NoError(t, err)
	r := &Result{}
	require.False(t, ValidateGridEnvelope(r, badGridEnvelope{g}))
	require.Len(t, r.Failures, 1)
	require.Contains(t, r.Failures[0], "grid span at dimension 0")

	sphere, err := simple.NewEllipsoid(simple.Properties{Name: "sphere"}, 6371000, 6371000, cs.Metre)
	require.NoError(t, err)
	require.True(t, ValidateEllipsoid(t, sphere))

	r = &Result{}
	require.False(t, ValidateIdentifier(r, nil))
}

// 只提供EPSG:4326且轴次序为(经度,纬度)的工厂
type lonFirstFactory struct{ *simple.Factory }

func (f lonFirstFactory) CreateCoordinateReferenceSystem(code string) (crs.CoordinateReferenceSystem, error) {
	switch code {
	case EPSG_4326:
		return simple.CRS84, nil
	case EPSG_3857:
		return nil, geoapi.ErrNoSuchAuthorityCode
	}
	return f.Factory.CreateCoordinateReferenceSystem(code)
}

func TestReport(t *testing.T) {
	s := &AuthorityFactorySuite{Factory: lonFirstFactory{simple.NewFactory()}}
	rep := NewReport("lon-first")
	require.NotEmpty(t, rep.RunID)
	require.False(t, rep.RunAll(s.Cases()))
	require.Equal(t, 3, rep.Passed)
	require.Equal(t, 1, rep.Failed)
	require.Len(t, rep.Results, 4)
	require.Equal(t, EPSG_4326, rep.Results[1].Name)
	require.False(t, rep.Results[1].Passed)
	require.NotEmpty(t, rep.Results[1].Failures)
	require.True(t, rep.Results[2].Passed)

	err := rep.Err()
	require.ErrorIs(t, err, geoapi.ErrNotConformant)
	require.Contains(t, err.Error(), "1 of 4 cases failed (EPSG:4326)")

	s.Strict = true
	res := rep.Run(s.Cases()[2])
	require.False(t, res.Passed)

	var buf bytes.Buffer
	require.NoError(t, rep.Encode(&buf, FORMAT_JSON))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, rep.RunID, decoded["run_id"])
	require.EqualValues(t, 2, decoded["failed"])

	buf.Reset()
	require.NoError(t, rep.Encode(&buf, FORMAT_YAML))
	var back Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, rep.RunID, back.RunID)
	require.Len(t, back.Results, 5)

	err = rep.Encode(&buf, "xml")
	require.True(t, errors.Is(err, geoapi.ErrInvalidArgument))
}

func TestReportPassing(t *testing.T) {
	rep := NewReport("simple")
	f := simple.NewFactory()
	cases := []Case{CRSCase(f, "EPSG:4326"), CRSCase(f, "OGC:CRS84"), {
		Name: "grid",
		Run: func(t assert.TestingT) bool {
			g, err := simple.NewGridEnvelope([]int64{1, 1}, []int64{2, 2})
			return assert.NoError(t, err) && ValidateGridEnvelope(t, g)
		},
	}}
	require.True(t, rep.RunAll(cases))
	require.NoError(t, rep.Err())
	require.Equal(t, 3, rep.Passed)

	res := rep.Run(CRSCase(f, "EPSG:2000"))
	require.False(t, res.Passed)
	require.False(t, rep.OK())
}
