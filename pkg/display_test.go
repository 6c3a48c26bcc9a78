package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		key  string
		want DisplayEntry
	}{
		{"h_energy, Energy (MeV), 50, 0, 10", "h_energy", DisplayEntry{Title: "Energy (MeV)", NBins: 50, Low: 0, High: 10, HasHigh: true}},
		{"c_calo_hits, Calorimeter hits", "c_calo_hits", DisplayEntry{Title: "Calorimeter hits"}},
		{"h_count,Count,abc", "h_count", DisplayEntry{Title: "Count"}},
		{"h_time , Time , 20 , -5", "h_time", DisplayEntry{Title: "Time", NBins: 20, Low: -5}},
		{"h_alone", "h_alone", DisplayEntry{}},
	}

	for _, tt := range tests {
		key, entry := ParseDisplayLine(tt.line)
		assert.Equal(t, tt.key, key, tt.line)
		assert.Equal(t, tt.want, entry, tt.line)
	}
}

func TestBitBeforeComma(t *testing.T) {
	t.Parallel()

	bit, rest := bitBeforeComma(" a , b,c")
	assert.Equal(t, "a", bit)
	assert.Equal(t, " b,c", rest)

	bit, rest = bitBeforeComma("  alone ")
	assert.Equal(t, "alone", bit)
	assert.Equal(t, "", rest)

	bit, _ = bitBeforeComma(",leading")
	assert.Equal(t, ",leading", bit)
}

func TestLoadDisplayConfig(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"# field, title, nbins, low, high",
		"",
		"h_energy, Energy, 10, 0, 5",
		"c_calo_hits, Calorimeter occupancy",
	}, "\n")

	config, err := LoadDisplayConfig(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, config, 2)
	assert.Equal(t, 10, config["h_energy"].NBins)
	assert.Equal(t, "Calorimeter occupancy", config["c_calo_hits"].Title)
}

func TestLoadDisplayConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "display.cfg")
	require.NoError(t, os.WriteFile(path, []byte("cm_energy, Mean energy\n"), 0o644))

	config, err := LoadDisplayConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Mean energy", config["cm_energy"].Title)

	_, err = LoadDisplayConfigFile(filepath.Join(dir, "missing.cfg"))
	var openErr *ErrOpenFile
	assert.ErrorAs(t, err, &openErr)
}

func TestDisplayTitle(t *testing.T) {
	t.Parallel()

	config := DisplayConfig{"cm_energy": {Title: "Mean energy"}}

	spec, err := ClassifyField("cm_energy.c_calo_hits")
	require.NoError(t, err)
	assert.Equal(t, "Mean energy", config.Title(spec))

	spec, err = ClassifyField("c_calo_hits")
	require.NoError(t, err)
	assert.Equal(t, "Calo hits", config.Title(spec))
}
