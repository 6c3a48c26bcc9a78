package validation

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const dpi = 96

var (
	foilColor = color.Gray{Y: 80}
	gridColor = color.Gray{Y: 200}
	histColor = color.RGBA{R: 204, G: 51, B: 102, A: 255}
)

// Renderer writes one PNG per field into Dir.
type Renderer struct {
	Dir       string
	Logger    Logger
	Verbosity int
}

func NewRenderer(dir string, logger Logger, verbosity int) *Renderer {
	return &Renderer{Dir: dir, Logger: logger, Verbosity: verbosity}
}

func (r *Renderer) Plot(res *FieldResult) error {
	name := res.Spec.DisplayName
	switch res.Spec.Kind {
	case CalorimeterMap:
		layout, err := ComposeCaloLayout(name, res.Title, res.Calo())
		if err != nil {
			return err
		}
		return r.DrawLayout(layout)
	case TrackerMap:
		return r.DrawLayout(ComposeTrackerLayout(name, res.Title, res.Tracker()))
	case PlainHistogram:
		return r.DrawHistogram(name, res.Title, res.Histogram)
	default:
		return fmt.Errorf("%w: cannot draw %q", ErrUnknownField, res.Spec.Name)
	}
}

func (r *Renderer) path(name string) string {
	return filepath.Join(r.Dir, name+".png")
}

// DrawHistogram saves a plain histogram.
func (r *Renderer) DrawHistogram(name string, title string, h *hbook.H1D) error {
	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = title
	p.Y.Label.Text = "Events"

	hh := hplot.NewH1D(h)
	hh.FillColor = histColor
	p.Add(hh)

	if err := p.Save(9*vg.Inch, 6*vg.Inch, r.path(name)); err != nil {
		return fmt.Errorf("could not save histogram %s: %w", name, err)
	}
	r.saved(name)
	return nil
}

// DrawLayout draws every pad of a layout with one colour scale and saves
// the picture.
func (r *Renderer) DrawLayout(l *Layout) error {
	width := vg.Length(l.Width) * vg.Inch / dpi
	height := vg.Length(l.Height) * vg.Inch / dpi
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	cmap := moreland.ExtendedBlackBody()
	cmap.SetMax(l.Max)
	cmap.SetMin(l.Min)
	pal := cmap.Palette(255)

	for _, pad := range l.Pads {
		area := subCanvas(dc, pad.Rect)
		if pad.ColorScale {
			bar := subCanvas(area, Rect{0.88, 0, 1, 1})
			area = subCanvas(area, Rect{0, 0, 0.88, 1})
			colorBar(cmap).Draw(bar)
		}
		p, err := padPlot(pad, l, pal, area)
		if err != nil {
			return fmt.Errorf("could not draw %v pad: %w", pad.Wall, err)
		}
		p.Draw(area)
	}

	t := plot.New()
	t.HideAxes()
	t.Title.Text = l.Title
	t.Title.TextStyle.Font.Size = vg.Points(20)
	t.Draw(subCanvas(dc, l.TitleRect))

	f, err := os.Create(r.path(l.Name))
	if err != nil {
		return &ErrOpenFile{Filename: r.path(l.Name), Err: err}
	}
	defer f.Close()
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("could not write %s: %w", r.path(l.Name), err)
	}
	r.saved(l.Name)
	return nil
}

func (r *Renderer) saved(name string) {
	if r.Verbosity > 0 && r.Logger != nil {
		r.Logger.Info(fmt.Sprintf("Saved %s", r.path(name)), "render")
	}
}

func padPlot(pad Pad, l *Layout, pal palette.Palette, area draw.Canvas) (*plot.Plot, error) {
	m := pad.Map
	p := plot.New()
	p.X.Label.Text = pad.XTitle
	p.Y.Label.Text = pad.YTitle

	hm := plotter.NewHeatMap(m, pal)
	hm.Min = l.Min
	hm.Max = l.Max
	colors := pal.Colors()
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]
	p.Add(hm)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	if pad.Foil != nil {
		foil, err := plotter.NewLine(plotter.XYs{
			{X: pad.Foil.X0, Y: pad.Foil.Y0},
			{X: pad.Foil.X1, Y: pad.Foil.Y1},
		})
		if err != nil {
			return nil, err
		}
		foil.Color = foilColor
		foil.Width = vg.Points(4)
		p.Add(foil)
	}

	if len(pad.Labels) > 0 {
		labels, err := padLabels(pad, area)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	p.X.Min, p.X.Max = float64(m.XMin), float64(m.XMax())
	p.Y.Min, p.Y.Max = float64(m.YMin), float64(m.YMax())
	p.X.Tick.Marker = cellTicks(m.XMin, m.NX, pad.XLabels)
	p.Y.Tick.Marker = cellTicks(m.YMin, m.NY, pad.YLabels)
	return p, nil
}

// padLabels places the pad labels, given in pad fractions, in cell
// coordinates.
func padLabels(pad Pad, area draw.Canvas) (*plotter.Labels, error) {
	m := pad.Map
	xys := make(plotter.XYs, len(pad.Labels))
	texts := make([]string, len(pad.Labels))
	for i, lbl := range pad.Labels {
		xys[i] = plotter.XY{
			X: float64(m.XMin) + lbl.X*float64(m.NX),
			Y: float64(m.YMin) + lbl.Y*float64(m.NY),
		}
		texts[i] = lbl.Text
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	height := area.Max.Y - area.Min.Y
	for i, lbl := range pad.Labels {
		size := vg.Length(lbl.Size) * height
		if size > vg.Points(28) {
			size = vg.Points(28)
		}
		labels.TextStyle[i].Font.Size = size
	}
	return labels, nil
}

func colorBar(cmap palette.ColorMap) *plot.Plot {
	p := plot.New()
	p.HideX()
	p.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true, Colors: 255})
	return p
}

// labelTicks puts one tick at the centre of every cell. Cells without a
// label override are numbered; long axes are only numbered every step
// cells.
type labelTicks struct {
	start  int
	labels []string
	step   int
}

func cellTicks(start int, n int, labels []string) labelTicks {
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(start + i)
		}
	}
	step := 1
	if n > 40 {
		step = 10
	}
	return labelTicks{start: start, labels: labels, step: step}
}

func (t labelTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t.labels))
	for i, label := range t.labels {
		tick := plot.Tick{Value: float64(t.start+i) + 0.5}
		if (t.start+i)%t.step == 0 {
			tick.Label = label
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

func subCanvas(dc draw.Canvas, r Rect) draw.Canvas {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: dc.Min.X + vg.Length(r.X0)*w, Y: dc.Min.Y + vg.Length(r.Y0)*h},
			Max: vg.Point{X: dc.Min.X + vg.Length(r.X1)*w, Y: dc.Min.Y + vg.Length(r.Y1)*h},
		},
	}
}
