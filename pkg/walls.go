package validation

const (
	MAINWALL_WIDTH  = 20
	MAINWALL_HEIGHT = 13
	XWALL_DEPTH     = 4
	XWALL_HEIGHT    = 16
	VETO_DEPTH      = 2
	VETO_WIDTH      = 16

	TRACKER_LAYERS = 9
	TRACKER_ROWS   = 113
)

type WallID int

const (
	UnknownWall WallID = iota
	MainWallItaly
	MainWallFrance
	XWallTunnel
	XWallMountain
	VetoTop
	VetoBottom
	TrackerModule
)

// CaloWalls lists the six calorimeter walls in drawing order.
var CaloWalls = []WallID{
	MainWallItaly,
	MainWallFrance,
	XWallTunnel,
	XWallMountain,
	VetoTop,
	VetoBottom,
}

func (w WallID) String() string {
	switch w {
	case MainWallItaly:
		return "Italy"
	case MainWallFrance:
		return "France"
	case XWallTunnel:
		return "Tunnel"
	case XWallMountain:
		return "Mountain"
	case VetoTop:
		return "Top"
	case VetoBottom:
		return "Bottom"
	case TrackerModule:
		return "Tracker"
	default:
		return "Unknown"
	}
}

// Key is the lower-case name used for output objects.
func (w WallID) Key() string {
	switch w {
	case MainWallItaly:
		return "italy"
	case MainWallFrance:
		return "france"
	case XWallTunnel:
		return "tunnel"
	case XWallMountain:
		return "mountain"
	case VetoTop:
		return "top"
	case VetoBottom:
		return "bottom"
	case TrackerModule:
		return "tracker"
	default:
		return "unknown"
	}
}

// Geometry describes the cell range of a grid: x covers [XMin, XMin+NX)
// and y covers [YMin, YMin+NY), one cell per integer coordinate.
type Geometry struct {
	NX, NY     int
	XMin, YMin int
}

func (g Geometry) XMax() int { return g.XMin + g.NX }
func (g Geometry) YMax() int { return g.YMin + g.NY }

func (g Geometry) Contains(x, y int) bool {
	return x >= g.XMin && x < g.XMax() && y >= g.YMin && y < g.YMax()
}

// WallGeometry returns the grid range of a wall. Italy sits at negative x
// because its columns are mirrored when decoded.
func WallGeometry(w WallID) Geometry {
	switch w {
	case MainWallItaly:
		return Geometry{NX: MAINWALL_WIDTH, NY: MAINWALL_HEIGHT, XMin: -MAINWALL_WIDTH}
	case MainWallFrance:
		return Geometry{NX: MAINWALL_WIDTH, NY: MAINWALL_HEIGHT}
	case XWallTunnel, XWallMountain:
		return Geometry{NX: XWALL_DEPTH, NY: XWALL_HEIGHT, XMin: -XWALL_DEPTH / 2}
	case VetoTop, VetoBottom:
		return Geometry{NX: VETO_WIDTH, NY: VETO_DEPTH}
	case TrackerModule:
		return Geometry{NX: 2 * TRACKER_LAYERS, NY: TRACKER_ROWS, XMin: -TRACKER_LAYERS}
	default:
		return Geometry{}
	}
}
