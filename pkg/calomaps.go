package validation

import "fmt"

// CaloGrids holds one grid per calorimeter wall.
type CaloGrids map[WallID]*Grid

func NewCaloGrids() CaloGrids {
	grids := make(CaloGrids, len(CaloWalls))
	for _, w := range CaloWalls {
		grids[w] = NewGrid(w)
	}
	return grids
}

func (c CaloGrids) grid(w WallID) (*Grid, error) {
	g, ok := c[w]
	if !ok {
		return nil, fmt.Errorf("%w: no grid for %v", ErrUnknownWall, w)
	}
	return g, nil
}

func (c CaloGrids) Fill(pos Position) error {
	g, err := c.grid(pos.Wall)
	if err != nil {
		return err
	}
	return g.Fill(pos.X, pos.Y)
}

func (c CaloGrids) FillWeighted(pos Position, weight float64) error {
	g, err := c.grid(pos.Wall)
	if err != nil {
		return err
	}
	return g.FillWeighted(pos.X, pos.Y, weight)
}

func (c CaloGrids) Merge(other CaloGrids) error {
	for w, g := range other {
		mine, err := c.grid(w)
		if err != nil {
			return err
		}
		if err := mine.Merge(g); err != nil {
			return err
		}
	}
	return nil
}

func (c CaloGrids) Finalize(mode Mode) CaloMaps {
	maps := make(CaloMaps, len(c))
	for w, g := range c {
		maps[w] = g.Finalize(mode)
	}
	return maps
}

// CaloMaps holds the finalized grid of every calorimeter wall.
type CaloMaps map[WallID]*Map

// Max returns the largest cell value over all walls.
func (m CaloMaps) Max() float64 {
	max := 0.0
	first := true
	for _, w := range CaloWalls {
		wm, ok := m[w]
		if !ok {
			continue
		}
		if v := wm.Max(); first || v > max {
			max = v
			first = false
		}
	}
	return max
}
