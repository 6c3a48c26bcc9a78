package validation

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// DisplayEntry holds the display settings of one field. Maps only use the
// title; histograms also use the binning. NBins == 0 or !HasHigh means the
// binning is guessed from the data.
type DisplayEntry struct {
	Title   string
	NBins   int
	Low     float64
	High    float64
	HasHigh bool
}

// DisplayConfig maps field names to display settings.
type DisplayConfig map[string]DisplayEntry

// LoadDisplayConfig reads lines of the form
//
//	name, title, nbins, low, high
//
// where everything after the name is optional. Lines starting with # are
// ignored.
func LoadDisplayConfig(r io.Reader) (DisplayConfig, error) {
	config := make(DisplayConfig)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, entry := ParseDisplayLine(line)
		if key != "" {
			config[key] = entry
		}
	}
	return config, scanner.Err()
}

func LoadDisplayConfigFile(filename string) (DisplayConfig, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	defer f.Close()
	return LoadDisplayConfig(f)
}

func ParseDisplayLine(line string) (string, DisplayEntry) {
	var entry DisplayEntry
	key, rest := bitBeforeComma(line)
	entry.Title, rest = bitBeforeComma(rest)

	var bit string
	bit, rest = bitBeforeComma(rest)
	if n, err := strconv.Atoi(bit); err == nil && n > 0 {
		entry.NBins = n
	}
	bit, rest = bitBeforeComma(rest)
	if v, err := strconv.ParseFloat(bit, 64); err == nil {
		entry.Low = v
	}
	bit, _ = bitBeforeComma(rest)
	if v, err := strconv.ParseFloat(bit, 64); err == nil {
		entry.High = v
		entry.HasHigh = true
	}
	return key, entry
}

// bitBeforeComma returns the trimmed text before the first comma and the
// text after it. Without a comma the whole trimmed input is returned.
func bitBeforeComma(s string) (string, string) {
	pos := strings.IndexByte(s, ',')
	if pos <= 0 {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(s[:pos]), s[pos+1:]
}

// Title returns the configured title of a field or one derived from its
// name.
func (d DisplayConfig) Title(spec FieldSpec) string {
	if entry, ok := d[spec.DisplayName]; ok && entry.Title != "" {
		return entry.Title
	}
	return EnglishTitle(spec.DisplayName)
}
