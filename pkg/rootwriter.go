package validation

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
)

// ROOTWriter stores every field as ROOT histograms: a TH1D named
// plt_<field> for plain histograms, and one TH2D per wall named
// plt_<field>_<wall> for counts and ave_<field>_<wall> for means.
type ROOTWriter struct {
	File     *groot.File
	Filename string
	Logger   Logger
}

func NewROOTWriter(filename string, logger Logger) (*ROOTWriter, error) {
	if logger == nil {
		logger = NopLogger{}
	}
	f, err := groot.Create(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	logger.Info(fmt.Sprintf("Creating file %s", filename), "rootwriter")
	return &ROOTWriter{File: f, Filename: filename, Logger: logger}, nil
}

func (w *ROOTWriter) WriteField(res *FieldResult) error {
	name := res.Spec.DisplayName
	switch res.Spec.Kind {
	case PlainHistogram:
		key := "plt_" + name
		res.Histogram.Annotation()["name"] = key
		if err := w.File.Put(key, rhist.NewH1DFrom(res.Histogram)); err != nil {
			return fmt.Errorf("could not write histogram %s: %w", key, err)
		}
		return nil
	case CalorimeterMap:
		for _, wall := range CaloWalls {
			if err := w.putMap("plt", name, res.Title, res.Counts[wall]); err != nil {
				return err
			}
			if res.Means != nil {
				if err := w.putMap("ave", name, res.Title, res.Means[wall]); err != nil {
					return err
				}
			}
		}
		return nil
	case TrackerMap:
		if err := w.putMap("plt", name, res.Title, res.TrackerCounts); err != nil {
			return err
		}
		if res.TrackerMeans != nil {
			return w.putMap("ave", name, res.Title, res.TrackerMeans)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, res.Spec.Name)
	}
}

func (w *ROOTWriter) putMap(prefix string, field string, title string, m *Map) error {
	key := fmt.Sprintf("%s_%s_%s", prefix, field, m.Wall.Key())
	h := m.H2D()
	h.Annotation()["name"] = key
	h.Annotation()["title"] = fmt.Sprintf("%s (%v)", title, m.Wall)
	if err := w.File.Put(key, rhist.NewH2DFrom(h)); err != nil {
		return fmt.Errorf("could not write map %s: %w", key, err)
	}
	return nil
}

func (w *ROOTWriter) Close() error {
	w.Logger.Info(fmt.Sprintf("Closing file %s", w.Filename), "rootwriter")
	if err := w.File.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	return nil
}
