package simple

import (
	"fmt"
	"math"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/coverage/grid"
	"github.com/wgdzlh/geoapi/opengis/geometry"
	"github.com/wgdzlh/geoapi/opengis/referencing/datum"
)

// GridGeometry 格网坐标与坐标系坐标的对应关系，各轴独立缩放，无旋转
// 包络覆盖全部格网单元的外边界
type GridGeometry struct {
	extent     *GridEnvelope
	envelope   *Envelope
	anchor     datum.PixelInCell
	resolution []float64
	flipped    []bool
}

// anchor为零值时取CELL_CENTER
func NewGridGeometry(extent grid.GridEnvelope, envelope *Envelope, anchor datum.PixelInCell) (*GridGeometry, error) {
	ext, err := CopyGridEnvelope(extent)
	if err != nil {
		return nil, err
	}
	if envelope == nil {
		return nil, fmt.Errorf("nil envelope: %w", geoapi.ErrInvalidArgument)
	}
	dim := ext.Dimension()
	if envelope.Dimension() != dim {
		return nil, fmt.Errorf("grid dimension %d differs from envelope dimension %d: %w", dim, envelope.Dimension(), geoapi.ErrInvalidArgument)
	}
	if anchor.Code == nil {
		anchor = datum.CellCenter
	}
	g := &GridGeometry{
		extent:     ext,
		envelope:   envelope,
		anchor:     anchor,
		resolution: make([]float64, dim),
		flipped:    make([]bool, dim),
	}
	for i := 0; i < dim; i++ {
		if envelope.crossesBoundary(i) || !(envelope.upper[i] > envelope.lower[i]) {
			return nil, fmt.Errorf("envelope is empty or crosses boundary at dimension %d: %w", i, geoapi.ErrInvalidArgument)
		}
		span, _ := ext.Span(i)
		g.resolution[i] = (envelope.upper[i] - envelope.lower[i]) / float64(span)
	}
	return g, nil
}

// 格网索引沿dim轴从包络最大值开始递增（如影像行号自北向南）
func (g *GridGeometry) FlipAxis(dim int) (*GridGeometry, error) {
	if err := checkDimension(dim, len(g.flipped)); err != nil {
		return nil, err
	}
	c := *g
	c.flipped = append([]bool(nil), g.flipped...)
	c.flipped[dim] = !c.flipped[dim]
	return &c, nil
}

func (g *GridGeometry) Extent() *GridEnvelope          { return g.extent }
func (g *GridGeometry) Envelope() *Envelope            { return g.envelope }
func (g *GridGeometry) PixelInCell() datum.PixelInCell { return g.anchor }

func (g *GridGeometry) Resolution() []float64 {
	return append([]float64(nil), g.resolution...)
}

// 格网坐标对应的坐标系坐标（像元中心或角点，由PixelInCell决定）
func (g *GridGeometry) GridToWorld(c grid.GridCoordinates) (*DirectPosition, error) {
	dim := g.extent.Dimension()
	if c == nil || c.Dimension() != dim {
		return nil, fmt.Errorf("grid coordinates dimension differs from %d: %w", dim, geoapi.ErrInvalidArgument)
	}
	off := 0.0
	if g.anchor == datum.CellCenter {
		off = 0.5
	}
	coords := c.Coordinates()
	world := make([]float64, dim)
	for i, v := range coords {
		d := (float64(v-g.extent.ordinates[i]) + off) * g.resolution[i]
		if g.flipped[i] {
			world[i] = g.envelope.upper[i] - d
		} else {
			world[i] = g.envelope.lower[i] + d
		}
	}
	return &DirectPosition{coords: world, crs: g.envelope.crs}, nil
}

func (g *GridGeometry) offset(dim int, v float64) float64 {
	if g.flipped[dim] {
		return (g.envelope.upper[dim] - v) / g.resolution[dim]
	}
	return (v - g.envelope.lower[dim]) / g.resolution[dim]
}

// 坐标系坐标所在的格网单元，位于格网范围外时返回ErrIndexOutOfBounds
func (g *GridGeometry) WorldToGrid(coords ...float64) (*GridCoordinates, error) {
	dim := g.extent.Dimension()
	if len(coords) != dim {
		return nil, fmt.Errorf("%d ordinates for %dD grid: %w", len(coords), dim, geoapi.ErrInvalidArgument)
	}
	idx := make([]int64, dim)
	for i, v := range coords {
		low, high := g.extent.ordinates[i], g.extent.ordinates[dim+i]
		f := g.offset(i, v)
		if math.IsNaN(f) || f < 0 || f > float64(high-low+1) {
			return nil, fmt.Errorf("ordinate %v outside grid at dimension %d: %w", v, i, geoapi.ErrIndexOutOfBounds)
		}
		n := low + int64(math.Floor(f))
		if n > high { // 落在外边界上
			n = high
		}
		idx[i] = n
	}
	return &GridCoordinates{coords: idx}, nil
}

// 与env相交部分覆盖的格网范围
// 不相交或相交部分在某一维上不足两个格网单元时返回ErrInvalidArgument
func (g *GridGeometry) Subgrid(env geometry.Envelope) (*GridEnvelope, error) {
	dim := g.extent.Dimension()
	if env == nil || env.Dimension() != dim {
		return nil, fmt.Errorf("envelope dimension differs from %d: %w", dim, geoapi.ErrInvalidArgument)
	}
	if c := env.CRS(); c != nil && g.envelope.crs != nil && !sameCRS(c, g.envelope.crs) {
		return nil, fmt.Errorf("envelope crs %s differs from grid crs: %w", c.Name().Code(), geoapi.ErrInvalidArgument)
	}
	low := make([]int64, dim)
	high := make([]int64, dim)
	for i := 0; i < dim; i++ {
		lo, _ := env.Minimum(i)
		hi, _ := env.Maximum(i)
		lo = math.Max(lo, g.envelope.lower[i])
		hi = math.Min(hi, g.envelope.upper[i])
		if !(lo < hi) {
			return nil, fmt.Errorf("envelope outside grid at dimension %d: %w", i, geoapi.ErrInvalidArgument)
		}
		a, b := g.offset(i, lo), g.offset(i, hi)
		if a > b {
			a, b = b, a
		}
		gl, gh := g.extent.ordinates[i], g.extent.ordinates[dim+i]
		low[i] = gl + int64(math.Floor(a))
		high[i] = gl + int64(math.Ceil(b)) - 1
		if high[i] > gh {
			high[i] = gh
		}
	}
	return NewGridEnvelope(low, high)
}
