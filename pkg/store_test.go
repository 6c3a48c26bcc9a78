package validation

import (
	"path/filepath"
	"testing"

	hdf5 "github.com/jmbenlloch/go-hdf5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
)

func sampleResults(t *testing.T) []*FieldResult {
	t.Helper()

	src, err := NewTableSource(map[string]any{
		"c_calo_hits":           [][]string{{"[1302:0.1.0.5.*]", "[1302:0.0.0.5.*]"}, {"[1302:0.1.0.5.*]"}},
		"cm_energy.c_calo_hits": [][]float64{{1, 2}, {3}},
		"t_tracker_hits":        [][]int{{305}, {-305}},
		"h_n":                   []int{1, 2},
	})
	require.NoError(t, err)
	p := NewProcessor(Context{Config: DefaultConfiguration(), Source: src})

	var results []*FieldResult
	for _, name := range src.Fields() {
		spec, err := ClassifyField(name)
		require.NoError(t, err)
		res, err := p.ProcessField(spec)
		require.NoError(t, err)
		results = append(results, res)
	}
	return results
}

func TestPlotDir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plotsrun_12.root", PlotDir("/data/sn/run_12.root"))
	assert.Equal(t, "plotsrun_12.root", PlotDir("run_12.root"))
}

func TestROOTWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ROOTOutputName)
	w, err := NewROOTWriter(path, nil)
	require.NoError(t, err)
	for _, res := range sampleResults(t) {
		require.NoError(t, w.WriteField(res))
	}
	require.NoError(t, w.Close())

	f, err := groot.Open(path)
	require.NoError(t, err)
	defer f.Close()

	for _, key := range []string{
		"plt_c_calo_hits_france",
		"plt_c_calo_hits_italy",
		"plt_cm_energy_top",
		"ave_cm_energy_france",
		"plt_t_tracker_hits_tracker",
	} {
		obj, err := f.Get(key)
		require.NoError(t, err, key)
		h, ok := obj.(rhist.H2)
		require.True(t, ok, "%s is a %T", key, obj)
		assert.Equal(t, key, h.Name())
	}

	obj, err := f.Get("plt_h_n")
	require.NoError(t, err)
	h, ok := obj.(rhist.H1)
	require.True(t, ok)
	assert.Equal(t, "N", h.Title())

	_, err = f.Get("ave_c_calo_hits_france")
	assert.Error(t, err)
}

func TestHDF5Writer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), HDF5OutputName)
	w, err := NewHDF5Writer(path, 4, nil)
	require.NoError(t, err)
	for _, res := range sampleResults(t) {
		require.NoError(t, w.WriteField(res))
	}
	require.NoError(t, w.Close())

	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	require.NoError(t, err)
	defer f.Close()

	g, err := f.OpenGroup("c_calo_hits")
	require.NoError(t, err)
	defer g.Close()

	dset, err := g.OpenDataset("france_counts")
	require.NoError(t, err)
	defer dset.Close()

	counts := make([]int32, MAINWALL_WIDTH*MAINWALL_HEIGHT)
	require.NoError(t, dset.Read(&counts))
	assert.Equal(t, int32(2), counts[5*MAINWALL_WIDTH+0])

	means, err := f.OpenGroup("cm_energy")
	require.NoError(t, err)
	defer means.Close()

	mset, err := means.OpenDataset("france_mean")
	require.NoError(t, err)
	defer mset.Close()

	values := make([]float64, MAINWALL_WIDTH*MAINWALL_HEIGHT)
	require.NoError(t, mset.Read(&values))
	assert.InDelta(t, 2.0, values[5*MAINWALL_WIDTH+0], 1e-12)

	for _, name := range []string{"t_tracker_hits", "h_n", "Geometry"} {
		grp, err := f.OpenGroup(name)
		require.NoError(t, err, name)
		grp.Close()
	}
}

func TestOpenOutputs(t *testing.T) {
	t.Parallel()

	config := DefaultConfiguration()
	config.FileIn = "run.root"
	config.PlotDir = filepath.Join(t.TempDir(), "plots")
	config.WriteHDF5 = false

	out, err := OpenOutputs(config, &recordingLogger{})
	require.NoError(t, err)
	assert.Equal(t, config.PlotDir, out.Dir)
	require.Len(t, out.Stores, 1)
	assert.NotNil(t, out.Plotter)

	for _, res := range sampleResults(t) {
		for _, s := range out.Stores {
			require.NoError(t, s.WriteField(res))
		}
		require.NoError(t, out.Plotter.Plot(res))
	}
	require.NoError(t, out.Close())

	requireFile(t, filepath.Join(config.PlotDir, ROOTOutputName))
	requireFile(t, filepath.Join(config.PlotDir, "c_calo_hits.png"))
	requireFile(t, filepath.Join(config.PlotDir, "cm_energy.png"))
	requireFile(t, filepath.Join(config.PlotDir, "t_tracker_hits.png"))
	requireFile(t, filepath.Join(config.PlotDir, "h_n.png"))
}
