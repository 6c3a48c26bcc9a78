package validation

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/mat"
)

type Mode int

const (
	CountMode Mode = iota
	AverageMode
)

func (m Mode) String() string {
	if m == AverageMode {
		return "average"
	}
	return "count"
}

// EmptyCellMean is the value of an average-mode cell that was never hit.
const EmptyCellMean = 0.0

// Grid accumulates hits of one wall. Every fill increments the count of
// the cell; weighted fills also add the weight to the cell sum.
type Grid struct {
	Wall WallID
	Geometry
	counts []int
	sums   []float64
}

func NewGrid(w WallID) *Grid {
	geom := WallGeometry(w)
	return &Grid{
		Wall:     w,
		Geometry: geom,
		counts:   make([]int, geom.NX*geom.NY),
		sums:     make([]float64, geom.NX*geom.NY),
	}
}

func (g *Grid) index(x, y int) (int, error) {
	if !g.Contains(x, y) {
		return 0, &ErrOutOfBounds{Wall: g.Wall, X: x, Y: y}
	}
	return (y-g.YMin)*g.NX + (x - g.XMin), nil
}

func (g *Grid) Fill(x, y int) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.counts[i]++
	return nil
}

func (g *Grid) FillWeighted(x, y int, weight float64) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.counts[i]++
	g.sums[i] += weight
	return nil
}

// Count returns the number of fills of a cell, zero outside the grid.
func (g *Grid) Count(x, y int) int {
	i, err := g.index(x, y)
	if err != nil {
		return 0
	}
	return g.counts[i]
}

// Entries returns the total number of fills.
func (g *Grid) Entries() int {
	n := 0
	for _, c := range g.counts {
		n += c
	}
	return n
}

// Merge adds the counts and sums of other into g.
func (g *Grid) Merge(other *Grid) error {
	if other.Wall != g.Wall || other.Geometry != g.Geometry {
		return fmt.Errorf("cannot merge %v grid into %v grid", other.Wall, g.Wall)
	}
	for i := range g.counts {
		g.counts[i] += other.counts[i]
		g.sums[i] += other.sums[i]
	}
	return nil
}

// Finalize returns the counts, or in average mode the mean weight of
// every cell. Cells without hits get EmptyCellMean.
func (g *Grid) Finalize(mode Mode) *Map {
	values := mat.NewDense(g.NY, g.NX, nil)
	for r := 0; r < g.NY; r++ {
		for c := 0; c < g.NX; c++ {
			i := r*g.NX + c
			switch {
			case mode == CountMode:
				values.Set(r, c, float64(g.counts[i]))
			case g.counts[i] == 0:
				values.Set(r, c, EmptyCellMean)
			default:
				values.Set(r, c, g.sums[i]/float64(g.counts[i]))
			}
		}
	}
	return &Map{Wall: g.Wall, Geometry: g.Geometry, Mode: mode, Values: values}
}

// Map is a finalized grid. Row r holds y = YMin+r and column c holds
// x = XMin+c. It implements plotter.GridXYZ with cell centres.
type Map struct {
	Wall WallID
	Geometry
	Mode   Mode
	Values *mat.Dense
}

// At returns the value of cell (x, y), zero outside the map.
func (m *Map) At(x, y int) float64 {
	if !m.Contains(x, y) {
		return 0
	}
	return m.Values.At(y-m.YMin, x-m.XMin)
}

func (m *Map) Max() float64 {
	return mat.Max(m.Values)
}

func (m *Map) Dims() (c, r int) { return m.NX, m.NY }
func (m *Map) Z(c, r int) float64 { return m.Values.At(r, c) }
func (m *Map) X(c int) float64 { return float64(m.XMin+c) + 0.5 }
func (m *Map) Y(r int) float64 { return float64(m.YMin+r) + 0.5 }

// Rows returns the values row by row, y ascending.
func (m *Map) Rows() []float64 {
	out := make([]float64, 0, m.NX*m.NY)
	for r := 0; r < m.NY; r++ {
		out = append(out, m.Values.RawRowView(r)...)
	}
	return out
}

// H2D converts the map to a histogram with one bin per cell.
func (m *Map) H2D() *hbook.H2D {
	h := hbook.NewH2D(m.NX, float64(m.XMin), float64(m.XMax()), m.NY, float64(m.YMin), float64(m.YMax()))
	for r := 0; r < m.NY; r++ {
		for c := 0; c < m.NX; c++ {
			if v := m.Values.At(r, c); v != 0 {
				h.Fill(m.X(c), m.Y(r), v)
			}
		}
	}
	return h
}
