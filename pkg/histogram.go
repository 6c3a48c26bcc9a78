package validation

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
)

const defaultBins = 100

// Binning of a plain histogram.
type Binning struct {
	NBins     int
	Low, High float64
}

// ChooseBinning applies the display settings of a histogram and guesses
// whatever they leave open from the largest value and its kind: booleans
// get two bins, integers one bin per value up to 100 bins, floats 100 bins
// with 10% headroom.
func ChooseBinning(entry DisplayEntry, max float64, kind ValueKind) Binning {
	b := Binning{NBins: defaultBins, Low: entry.Low, High: entry.High}
	if entry.NBins > 0 {
		b.NBins = entry.NBins
	}
	if !entry.HasHigh {
		b.High = max
		switch kind {
		case BoolValue:
			b.NBins, b.Low, b.High = 2, 0, 2
		case IntValue:
			b.High++
			b.NBins = defaultBins
			if b.High <= defaultBins {
				b.NBins = int(b.High - b.Low)
			}
		default:
			b.High += b.High / 10
			b.NBins = defaultBins
		}
	}
	if b.High <= b.Low {
		b.High = b.Low + 1
	}
	if b.NBins < 1 {
		b.NBins = 1
	}
	return b
}

// FillHistogram builds a histogram of values with the given binning.
func FillHistogram(values []float64, b Binning, title string) *hbook.H1D {
	h := hbook.NewH1D(b.NBins, b.Low, b.High)
	h.Annotation()["title"] = title
	for _, v := range values {
		h.Fill(v, 1)
	}
	return h
}

func (p *Processor) buildHistogram(spec FieldSpec, title string) (*hbook.H1D, error) {
	v, err := p.ctx.Source.NewVar(spec.Name)
	if err != nil {
		return nil, err
	}

	var values []float64
	kind := FloatValue
	err = p.ctx.Source.Scan([]FieldVar{v}, int64(p.ctx.Config.MaxEvents), func(ievt int64) error {
		values, kind, err = AppendFloat64s(values, v.Value)
		if err != nil {
			return fmt.Errorf("field %q: %w", spec.Name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	max := 0.0
	for i, x := range values {
		if i == 0 || x > max {
			max = x
		}
	}
	binning := ChooseBinning(p.ctx.Display[spec.DisplayName], max, kind)
	return FillHistogram(values, binning, title), nil
}
