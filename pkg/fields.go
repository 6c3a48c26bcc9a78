package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type FieldKind int

const (
	UnknownKind FieldKind = iota
	PlainHistogram
	TrackerMap
	CalorimeterMap
)

func (k FieldKind) String() string {
	switch k {
	case PlainHistogram:
		return "histogram"
	case TrackerMap:
		return "tracker map"
	case CalorimeterMap:
		return "calorimeter map"
	default:
		return "unknown"
	}
}

// FieldSpec says how to plot one field of the event source.
//
// The kind comes from the first letter of the name: h for histograms, t for
// tracker maps and c for calorimeter maps. A map whose second letter is m
// averages a per-hit value and is named "<value>.<hits>", for example
// "cm_energy.c_calo_hits": the full name holds the values and the part
// after the dot holds the hit identifiers.
type FieldSpec struct {
	Name        string
	Kind        FieldKind
	DisplayName string
	HitField    string
	WeightField string
}

func (f FieldSpec) Average() bool {
	return f.WeightField != ""
}

func (f FieldSpec) Mode() Mode {
	if f.Average() {
		return AverageMode
	}
	return CountMode
}

func ClassifyField(name string) (FieldSpec, error) {
	spec := FieldSpec{Name: name, DisplayName: name}
	if name == "" {
		return spec, fmt.Errorf("%w: empty name", ErrUnknownField)
	}

	switch name[0] {
	case 'h':
		spec.Kind = PlainHistogram
		return spec, nil
	case 't':
		spec.Kind = TrackerMap
	case 'c':
		spec.Kind = CalorimeterMap
	default:
		return spec, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	spec.HitField = name
	if len(name) > 1 && name[1] == 'm' {
		pos := strings.Index(name, ".")
		if pos <= 1 || pos == len(name)-1 {
			return spec, fmt.Errorf("%w: %q, name it <value>.<hits>", ErrMissingMapField, name)
		}
		spec.DisplayName = name[:pos]
		spec.HitField = name[pos+1:]
		spec.WeightField = name
	}
	return spec, nil
}

// EnglishTitle builds a title from a field name: the prefix up to the
// first underscore is dropped and the remaining underscores become spaces,
// so "c_calo_hits" gives "Calo hits".
func EnglishTitle(name string) string {
	if _, rest, found := strings.Cut(name, "_"); found {
		name = rest
	}
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
