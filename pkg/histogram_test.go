package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChooseBinning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry DisplayEntry
		max   float64
		kind  ValueKind
		want  Binning
	}{
		{"bool", DisplayEntry{}, 1, BoolValue, Binning{NBins: 2, Low: 0, High: 2}},
		{"small int", DisplayEntry{}, 9, IntValue, Binning{NBins: 10, Low: 0, High: 10}},
		{"large int", DisplayEntry{}, 499, IntValue, Binning{NBins: 100, Low: 0, High: 500}},
		{"float headroom", DisplayEntry{}, 50, FloatValue, Binning{NBins: 100, Low: 0, High: 55}},
		{"configured", DisplayEntry{NBins: 20, Low: -1, High: 1, HasHigh: true}, 50, FloatValue, Binning{NBins: 20, Low: -1, High: 1}},
		{"configured bins only", DisplayEntry{NBins: 20}, 50, FloatValue, Binning{NBins: 100, Low: 0, High: 55}},
		{"empty field", DisplayEntry{}, 0, FloatValue, Binning{NBins: 100, Low: 0, High: 1}},
		{"negative int", DisplayEntry{}, -3, IntValue, Binning{NBins: 1, Low: 0, High: 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ChooseBinning(tt.entry, tt.max, tt.kind))
		})
	}
}

func TestFillHistogram(t *testing.T) {
	t.Parallel()

	h := FillHistogram([]float64{0.5, 1.5, 1.5, 7}, Binning{NBins: 2, Low: 0, High: 2}, "Values")
	assert.Equal(t, "Values", h.Annotation()["title"])
	assert.Equal(t, int64(4), h.Entries())
	assert.Equal(t, 1.0, h.Value(0))
	assert.Equal(t, 2.0, h.Value(1))
}
