package validation

import (
	"errors"
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
)

// HDF5Writer stores every field in its own group of one HDF5 file. Map
// fields get <wall>_counts datasets (and <wall>_mean in average mode) plus
// a stats table, histogram fields get a bins table. The walls table at the
// top describes the grid of every map.
type HDF5Writer struct {
	File             *hdf5.File
	Filename         string
	CompressionLevel int
	Logger           Logger
	groups           []*hdf5.Group
}

func NewHDF5Writer(filename string, compressionLevel int, logger Logger) (*HDF5Writer, error) {
	// Set string size for HDF5
	hdf5.SetStringLength(STRLEN)

	if logger == nil {
		logger = NopLogger{}
	}
	file, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	w := &HDF5Writer{
		File:             file,
		Filename:         filename,
		CompressionLevel: compressionLevel,
		Logger:           logger,
	}
	logger.Info(fmt.Sprintf("Creating file %s", filename), "hdf5writer")

	group, err := w.group("Geometry")
	if err != nil {
		file.Close()
		return nil, err
	}
	if err := writeTable(group, "walls", wallGeometryRows(), compressionLevel); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

func (w *HDF5Writer) group(name string) (*hdf5.Group, error) {
	g, err := createGroup(w.File, name)
	if err != nil {
		return nil, err
	}
	w.groups = append(w.groups, g)
	return g, nil
}

func wallGeometryRows() []WallGeometryHDF5 {
	walls := append(append([]WallID(nil), CaloWalls...), TrackerModule)
	rows := make([]WallGeometryHDF5, len(walls))
	for i, wall := range walls {
		g := WallGeometry(wall)
		rows[i] = WallGeometryHDF5{
			name: convertToHdf5String(wall.Key()),
			nx:   int32(g.NX),
			ny:   int32(g.NY),
			xmin: int32(g.XMin),
			ymin: int32(g.YMin),
		}
	}
	return rows
}

func (w *HDF5Writer) WriteField(res *FieldResult) error {
	group, err := w.group(res.Spec.DisplayName)
	if err != nil {
		return err
	}
	level := w.CompressionLevel

	switch res.Spec.Kind {
	case PlainHistogram:
		return writeTable(group, "bins", histogramRows(res), level)
	case CalorimeterMap:
		for _, wall := range CaloWalls {
			if err := writeMap(group, res.Counts[wall], "counts", level); err != nil {
				return err
			}
			if res.Means != nil {
				if err := writeMap(group, res.Means[wall], "mean", level); err != nil {
					return err
				}
			}
		}
	case TrackerMap:
		if err := writeMap(group, res.TrackerCounts, "counts", level); err != nil {
			return err
		}
		if res.TrackerMeans != nil {
			if err := writeMap(group, res.TrackerMeans, "mean", level); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, res.Spec.Name)
	}

	stats := FieldStatsHDF5{
		events:  res.Stats.Events,
		hits:    int64(res.Stats.Hits),
		filled:  int64(res.Stats.Filled),
		skipped: int64(res.Stats.Skipped),
	}
	return writeTable(group, "stats", []FieldStatsHDF5{stats}, level)
}

func histogramRows(res *FieldResult) []HistogramBinHDF5 {
	bins := res.Histogram.Binning.Bins
	rows := make([]HistogramBinHDF5, len(bins))
	for i, bin := range bins {
		rows[i] = HistogramBinHDF5{
			low:     bin.Range.Min,
			high:    bin.Range.Max,
			content: bin.SumW(),
			entries: bin.Entries(),
		}
	}
	return rows
}

func (w *HDF5Writer) Close() error {
	w.Logger.Info(fmt.Sprintf("Closing file %s", w.Filename), "hdf5writer")
	var errs []error
	for _, g := range w.groups {
		if err := g.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing group: %w", err))
		}
	}
	if err := w.File.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing file: %w", err))
	}
	return errors.Join(errs...)
}
