// Package simple 为opengis接口的示例实现：不可变的值对象，构造时校验参数。
package simple

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/opengis/coverage/grid"
)

// GridEnvelope 格网范围，低值与高值均含在范围内
// ordinates前半为各维低值，后半为各维高值
type GridEnvelope struct {
	ordinates []int64
}

var _ grid.GridEnvelope = (*GridEnvelope)(nil)

// low与high长度须相同，且各维low[i] < high[i]，跨度须可用int64表示
func NewGridEnvelope(low, high []int64) (*GridEnvelope, error) {
	if len(low) != len(high) {
		return nil, fmt.Errorf("low dimension %d differs from high dimension %d: %w", len(low), len(high), geoapi.ErrInvalidArgument)
	}
	dim := len(low)
	for i := 0; i < dim; i++ {
		if low[i] >= high[i] {
			return nil, fmt.Errorf("low %d is not less than high %d at dimension %d: %w", low[i], high[i], i, geoapi.ErrInvalidArgument)
		}
		// high - low 按无符号计算不会溢出
		if uint64(high[i])-uint64(low[i]) >= math.MaxInt64 {
			return nil, fmt.Errorf("span of [%d, %d] at dimension %d exceeds int64: %w", low[i], high[i], i, geoapi.ErrInvalidArgument)
		}
	}
	ordinates := make([]int64, dim*2)
	copy(ordinates, low)
	copy(ordinates[dim:], high)
	return &GridEnvelope{ordinates: ordinates}, nil
}

// 复制任意实现的格网范围，并重新校验
func CopyGridEnvelope(env grid.GridEnvelope) (*GridEnvelope, error) {
	if env == nil {
		return nil, fmt.Errorf("nil grid envelope: %w", geoapi.ErrInvalidArgument)
	}
	if e, ok := env.(*GridEnvelope); ok {
		return e, nil
	}
	return NewGridEnvelope(env.LowCoordinates().Coordinates(), env.HighCoordinates().Coordinates())
}

func checkDimension(dim, n int) error {
	if dim < 0 || dim >= n {
		return fmt.Errorf("dimension %d out of [0, %d): %w", dim, n, geoapi.ErrIndexOutOfBounds)
	}
	return nil
}

func (e *GridEnvelope) Dimension() int {
	return len(e.ordinates) / 2
}

func (e *GridEnvelope) Low(dim int) (v int64, err error) {
	if err = checkDimension(dim, e.Dimension()); err != nil {
		return
	}
	v = e.ordinates[dim]
	return
}

func (e *GridEnvelope) High(dim int) (v int64, err error) {
	n := e.Dimension()
	if err = checkDimension(dim, n); err != nil {
		return
	}
	v = e.ordinates[n+dim]
	return
}

func (e *GridEnvelope) Span(dim int) (v int64, err error) {
	n := e.Dimension()
	if err = checkDimension(dim, n); err != nil {
		return
	}
	v = e.ordinates[n+dim] - e.ordinates[dim] + 1
	return
}

func (e *GridEnvelope) LowCoordinates() grid.GridCoordinates {
	return NewGridCoordinates(e.ordinates[:e.Dimension()]...)
}

func (e *GridEnvelope) HighCoordinates() grid.GridCoordinates {
	return NewGridCoordinates(e.ordinates[e.Dimension():]...)
}

// 格网单元总数，超出int64时返回-1
func (e *GridEnvelope) Count() (n int64) {
	total := uint64(1)
	for i, dim := 0, e.Dimension(); i < dim; i++ {
		hi, lo := bits.Mul64(total, uint64(e.ordinates[dim+i]-e.ordinates[i]+1))
		if hi != 0 || lo > math.MaxInt64 {
			return -1
		}
		total = lo
	}
	n = int64(total)
	return
}

// 是否包含格网坐标c，维数不同时为false
func (e *GridEnvelope) Contains(c grid.GridCoordinates) bool {
	dim := e.Dimension()
	if c == nil || c.Dimension() != dim {
		return false
	}
	for i, v := range c.Coordinates() {
		if v < e.ordinates[i] || v > e.ordinates[dim+i] {
			return false
		}
	}
	return true
}

// 按全部低值、高值比较，other可为任意实现
func (e *GridEnvelope) Equal(other grid.GridEnvelope) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*GridEnvelope); ok {
		return equalInt64s(e.ordinates, o.ordinates)
	}
	dim := e.Dimension()
	if other.Dimension() != dim {
		return false
	}
	return equalInt64s(e.ordinates[:dim], other.LowCoordinates().Coordinates()) &&
		equalInt64s(e.ordinates[dim:], other.HighCoordinates().Coordinates())
}

// 相等的格网范围哈希值相同
func (e *GridEnvelope) Hash() uint64 {
	return hashInt64s(e.ordinates)
}

func (e *GridEnvelope) String() string {
	var b strings.Builder
	b.WriteString("GridEnvelope[")
	dim := e.Dimension()
	for i := 0; i < dim; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(e.ordinates[i], 10))
		b.WriteString("..")
		b.WriteString(strconv.FormatInt(e.ordinates[dim+i], 10))
	}
	b.WriteByte(']')
	return b.String()
}

func equalInt64s(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hashInt64s(vs []int64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}
