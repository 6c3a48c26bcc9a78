package validation

import (
	"fmt"
	"strconv"
)

// Rect is a rectangle in canvas (or pad) fractions, origin bottom-left.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Segment is a line in cell coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Label is text placed in pad fractions. Size is a fraction of the pad
// height.
type Label struct {
	Text string
	X, Y float64
	Size float64
}

// Pad is one map drawn on a part of the canvas.
type Pad struct {
	Wall       WallID
	Map        *Map
	Rect       Rect
	XTitle     string
	YTitle     string
	XLabels    []string
	YLabels    []string
	Foil       *Segment
	Labels     []Label
	ColorScale bool
}

// Layout describes a whole picture: where each map goes and the colour
// range they share.
type Layout struct {
	Name          string
	Title         string
	Width, Height int
	Min, Max      float64
	Pads          []Pad
	TitleRect     Rect
}

const defaultLabelSize = 0.05

// ComposeCaloLayout unrolls the six walls onto one canvas: France and
// Italy main walls left and right of the tunnel x-wall, the mountain x-wall
// at the far left and the vetoes above and below France. All walls share
// one colour range.
func ComposeCaloLayout(name string, title string, maps CaloMaps) (*Layout, error) {
	for _, w := range CaloWalls {
		if maps[w] == nil {
			return nil, fmt.Errorf("no map for the %v wall", w)
		}
	}

	xwallFoil := &Segment{X0: 0, Y0: 0, X1: 0, Y1: XWALL_HEIGHT}
	vetoFoil := &Segment{X0: 0, Y0: 1, X1: VETO_WIDTH, Y1: 1}

	layout := &Layout{
		Name:      name,
		Title:     title,
		Width:     2000,
		Height:    1000,
		TitleRect: Rect{0.6, 0.8, 0.95, 1},
		Pads: []Pad{
			{
				Wall:       MainWallItaly,
				Rect:       Rect{0.6, 0.2, 1, 0.8},
				XLabels:    foilDistanceLabels(MAINWALL_WIDTH),
				Labels:     []Label{{Text: "Italy", X: 0.45, Y: 0.95, Size: defaultLabelSize}},
				ColorScale: true,
			},
			{
				Wall:   MainWallFrance,
				Rect:   Rect{0.1, 0.2, 0.5, 0.8},
				Labels: []Label{{Text: "France", X: 0.4, Y: 0.95, Size: defaultLabelSize}},
			},
			{
				Wall:    XWallMountain,
				Rect:    Rect{0.02, 0.2, 0.12, 0.8},
				XLabels: []string{"It.", "", "", "Fr."},
				Foil:    xwallFoil,
				Labels:  []Label{{Text: "Mountain", X: 0.2, Y: 0.95, Size: 0.15}},
			},
			{
				Wall:    XWallTunnel,
				Rect:    Rect{0.5, 0.2, 0.6, 0.8},
				XLabels: []string{"Fr.", "", "", "It."},
				Foil:    xwallFoil,
				Labels:  []Label{{Text: "Tunnel", X: 0.25, Y: 0.95, Size: 0.15}},
			},
			{
				Wall:    VetoTop,
				Rect:    Rect{0.1, 0.8, 0.5, 0.98},
				YLabels: []string{"France", "Italy"},
				Foil:    vetoFoil,
				Labels:  []Label{{Text: "Top", X: 0.42, Y: 0.2, Size: 0.2}},
			},
			{
				Wall:    VetoBottom,
				Rect:    Rect{0.1, 0.02, 0.5, 0.2},
				YLabels: []string{"Italy", "France"},
				Foil:    vetoFoil,
				Labels:  []Label{{Text: "Bottom", X: 0.42, Y: 0.6, Size: 0.2}},
			},
		},
	}
	for i := range layout.Pads {
		layout.Pads[i].Map = maps[layout.Pads[i].Wall]
	}
	layout.Min, layout.Max = sharedRange(maps.Max())
	return layout, nil
}

// ComposeTrackerLayout draws the tracker module with the source foil in
// the middle, Italy on the left and France on the right.
func ComposeTrackerLayout(name string, title string, m *Map) *Layout {
	layout := &Layout{
		Name:   name,
		Title:  title,
		Width:  600,
		Height: 1200,
		Pads: []Pad{{
			Wall:   TrackerModule,
			Map:    m,
			Rect:   Rect{0, 0, 1, 0.95},
			XTitle: "Layer",
			YTitle: "Row",
			Foil:   &Segment{X0: 0, Y0: 0, X1: 0, Y1: TRACKER_ROWS},
			Labels: []Label{
				{Text: "Italy", X: 0.2, Y: 0.5, Size: defaultLabelSize},
				{Text: "France", X: 0.7, Y: 0.5, Size: defaultLabelSize},
				{Text: "Tunnel", X: 0.4, Y: 0.8, Size: defaultLabelSize},
				{Text: "Mountain", X: 0.4, Y: 0.15, Size: defaultLabelSize},
			},
			ColorScale: true,
		}},
		TitleRect: Rect{0, 0.95, 1, 1},
	}
	layout.Min, layout.Max = sharedRange(m.Max())
	return layout
}

// sharedRange is the colour range [0, max]. An empty picture gets [0, 1].
func sharedRange(max float64) (float64, float64) {
	if max <= 0 {
		return 0, 1
	}
	return 0, max
}

// foilDistanceLabels numbers the columns of a mirrored wall back to their
// raw column index, n-1 down to 0.
func foilDistanceLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(n - 1 - i)
	}
	return labels
}

// Pad returns the pad of a wall.
func (l *Layout) Pad(w WallID) (Pad, bool) {
	for _, p := range l.Pads {
		if p.Wall == w {
			return p, true
		}
	}
	return Pad{}, false
}
