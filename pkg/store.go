package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ROOTOutputName = "ValidationHistograms.root"
	HDF5OutputName = "ValidationMaps.h5"
)

// PlotDir is the output directory of an input file: "plots" followed by
// the file name without its directory.
func PlotDir(fileIn string) string {
	return "plots" + filepath.Base(fileIn)
}

// Outputs bundles the stores and the plotter enabled by a configuration.
type Outputs struct {
	Dir     string
	Stores  []Store
	Plotter Plotter
}

// OpenOutputs creates the output directory and opens every output enabled
// in config. Config.PlotDir overrides the directory derived from the input
// file name.
func OpenOutputs(config Configuration, logger Logger) (*Outputs, error) {
	dir := config.PlotDir
	if dir == "" {
		dir = PlotDir(config.FileIn)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create output directory %s: %w", dir, err)
	}
	logger.Info(fmt.Sprintf("Writing output to %s", dir), "outputs")

	out := &Outputs{Dir: dir}
	if config.WriteROOT {
		w, err := NewROOTWriter(filepath.Join(dir, ROOTOutputName), logger)
		if err != nil {
			return nil, errors.Join(err, out.Close())
		}
		out.Stores = append(out.Stores, w)
	}
	if config.WriteHDF5 {
		w, err := NewHDF5Writer(filepath.Join(dir, HDF5OutputName), config.CompressionLevel, logger)
		if err != nil {
			return nil, errors.Join(err, out.Close())
		}
		out.Stores = append(out.Stores, w)
	}
	if config.WritePlots {
		out.Plotter = NewRenderer(dir, logger, config.Verbosity)
	}
	return out, nil
}

func (o *Outputs) Close() error {
	var errs []error
	for _, s := range o.Stores {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
