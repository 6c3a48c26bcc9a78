package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	validation "github.com/supernemo-dbd/validation_go/pkg"
)

// LoadConfiguration starts from the defaults, applies the JSON file (if
// any) and then the VALIDATION_* environment variables.
func LoadConfiguration(filename string) (validation.Configuration, error) {
	config := validation.DefaultConfiguration()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return config, err
		}
		if err := json.Unmarshal(data, &config); err != nil {
			return config, err
		}
	}
	if err := env.Parse(&config); err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config validation.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("Reference file: %s", config.RefFile), "config")
	logger.Info(fmt.Sprintf("Display config file: %s", config.ConfigFile), "config")
	logger.Info(fmt.Sprintf("Tree name: %s", config.TreeName), "config")
	logger.Info(fmt.Sprintf("Plot dir: %s", config.PlotDir), "config")
	logger.Info(fmt.Sprintf("Max events: %d", config.MaxEvents), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
	logger.Info(fmt.Sprintf("Write ROOT: %t", config.WriteROOT), "config")
	logger.Info(fmt.Sprintf("Write HDF5: %t", config.WriteHDF5), "config")
	logger.Info(fmt.Sprintf("Write plots: %t", config.WritePlots), "config")
	logger.Info(fmt.Sprintf("Compression level: %d", config.CompressionLevel), "config")
	logger.Info(fmt.Sprintf("Display config from DB: %t", config.DisplayFromDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
}
