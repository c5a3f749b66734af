package simple

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wgdzlh/geoapi/opengis/coverage/grid"
)

type GridCoordinates struct {
	coords []int64
}

var _ grid.GridCoordinates = (*GridCoordinates)(nil)

func NewGridCoordinates(coords ...int64) *GridCoordinates {
	c := make([]int64, len(coords))
	copy(c, coords)
	return &GridCoordinates{coords: c}
}

func (c *GridCoordinates) Dimension() int {
	return len(c.coords)
}

func (c *GridCoordinates) Coordinate(dim int) (v int64, err error) {
	if err = checkDimension(dim, len(c.coords)); err != nil {
		return
	}
	v = c.coords[dim]
	return
}

func (c *GridCoordinates) Coordinates() []int64 {
	ret := make([]int64, len(c.coords))
	copy(ret, c.coords)
	return ret
}

func (c *GridCoordinates) Equal(other grid.GridCoordinates) bool {
	return other != nil && equalInt64s(c.coords, other.Coordinates())
}

func (c *GridCoordinates) Hash() uint64 {
	return hashInt64s(c.coords)
}

func (c *GridCoordinates) String() string {
	parts := make([]string, len(c.coords))
	for i, v := range c.coords {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return fmt.Sprintf("GridCoordinates[%s]", strings.Join(parts, " "))
}
