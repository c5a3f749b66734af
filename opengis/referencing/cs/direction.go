package cs

import "github.com/wgdzlh/geoapi/opengis/util"

type AxisDirection struct{ *util.Code }

var AxisDirections = util.NewCodeList("AxisDirection", func(c *util.Code) AxisDirection { return AxisDirection{c} })

var (
	Other          = AxisDirections.Add("OTHER", "unspecified")
	North          = AxisDirections.Add("NORTH", "north")
	NorthNorthEast = AxisDirections.Add("NORTH_NORTH_EAST", "northNorthEast")
	NorthEast      = AxisDirections.Add("NORTH_EAST", "northEast")
	EastNorthEast  = AxisDirections.Add("EAST_NORTH_EAST", "eastNorthEast")
	East           = AxisDirections.Add("EAST", "east")
	EastSouthEast  = AxisDirections.Add("EAST_SOUTH_EAST", "eastSouthEast")
	SouthEast      = AxisDirections.Add("SOUTH_EAST", "southEast")
	SouthSouthEast = AxisDirections.Add("SOUTH_SOUTH_EAST", "southSouthEast")
	South          = AxisDirections.Add("SOUTH", "south")
	SouthSouthWest = AxisDirections.Add("SOUTH_SOUTH_WEST", "southSouthWest")
	SouthWest      = AxisDirections.Add("SOUTH_WEST", "southWest")
	WestSouthWest  = AxisDirections.Add("WEST_SOUTH_WEST", "westSouthWest")
	West           = AxisDirections.Add("WEST", "west")
	WestNorthWest  = AxisDirections.Add("WEST_NORTH_WEST", "westNorthWest")
	NorthWest      = AxisDirections.Add("NORTH_WEST", "northWest")
	NorthNorthWest = AxisDirections.Add("NORTH_NORTH_WEST", "northNorthWest")
	Up             = AxisDirections.Add("UP", "up")
	Down           = AxisDirections.Add("DOWN", "down")
	GeocentricX    = AxisDirections.Add("GEOCENTRIC_X", "geocentricX")
	GeocentricY    = AxisDirections.Add("GEOCENTRIC_Y", "geocentricY")
	GeocentricZ    = AxisDirections.Add("GEOCENTRIC_Z", "geocentricZ")
	Future         = AxisDirections.Add("FUTURE", "future")
	Past           = AxisDirections.Add("PAST", "past")
	ColumnPositive = AxisDirections.Add("COLUMN_POSITIVE", "columnPositive")
	ColumnNegative = AxisDirections.Add("COLUMN_NEGATIVE", "columnNegative")
	RowPositive    = AxisDirections.Add("ROW_POSITIVE", "rowPositive")
	RowNegative    = AxisDirections.Add("ROW_NEGATIVE", "rowNegative")
	DisplayRight   = AxisDirections.Add("DISPLAY_RIGHT", "displayRight")
	DisplayLeft    = AxisDirections.Add("DISPLAY_LEFT", "displayLeft")
	DisplayUp      = AxisDirections.Add("DISPLAY_UP", "displayUp")
	DisplayDown    = AxisDirections.Add("DISPLAY_DOWN", "displayDown")
)

var opposites = map[AxisDirection]AxisDirection{}

func init() {
	for _, p := range [][2]AxisDirection{
		{North, South}, {NorthNorthEast, SouthSouthWest}, {NorthEast, SouthWest}, {EastNorthEast, WestSouthWest},
		{East, West}, {EastSouthEast, WestNorthWest}, {SouthEast, NorthWest}, {SouthSouthEast, NorthNorthWest},
		{Up, Down}, {Future, Past}, {ColumnPositive, ColumnNegative}, {RowPositive, RowNegative},
		{DisplayRight, DisplayLeft}, {DisplayUp, DisplayDown},
	} {
		opposites[p[0]] = p[1]
		opposites[p[1]] = p[0]
	}
}

// 相反方向，无相反方向时（如OTHER、GEOCENTRIC_X）ok为false
func (d AxisDirection) Opposite() (o AxisDirection, ok bool) {
	o, ok = opposites[d]
	return
}

// 两方向是否共线（相同或相反）
func (d AxisDirection) IsColinear(o AxisDirection) bool {
	if d == o {
		return true
	}
	op, ok := d.Opposite()
	return ok && op == o
}

// 罗盘方向（NORTH至NORTH_NORTH_WEST）
func (d AxisDirection) IsCompass() bool {
	return d.Ordinal() >= North.Ordinal() && d.Ordinal() <= NorthNorthWest.Ordinal()
}
