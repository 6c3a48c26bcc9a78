package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	validation "github.com/supernemo-dbd/validation_go/pkg"
)

var logger Logger

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -i <data ROOT file> -r <reference ROOT file (optional)> -c <config file (optional)>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	fileIn := flag.String("i", "", "Data ROOT file")
	refFile := flag.String("r", "", "Reference ROOT file")
	displayFile := flag.String("c", "", "Display config file")
	flag.Usage = usage
	flag.Parse()

	configuration, err := LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}

	// validation <root file> [display config]
	args := flag.Args()
	if *fileIn == "" && len(args) > 0 {
		*fileIn = args[0]
		if *displayFile == "" && len(args) > 1 {
			*displayFile = args[1]
		}
	}
	if *fileIn != "" {
		configuration.FileIn = *fileIn
	}
	if *refFile != "" {
		configuration.RefFile = *refFile
	}
	if *displayFile != "" {
		configuration.ConfigFile = *displayFile
	}
	if configuration.FileIn == "" {
		flag.Usage()
		os.Exit(1)
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	if err := run(configuration); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(configuration validation.Configuration) error {
	start := time.Now()
	logger.Info(fmt.Sprintf("Processing %s", configuration.FileIn), "main")

	source, err := validation.OpenRootSource(configuration.FileIn, configuration.TreeName)
	if err != nil {
		return err
	}
	defer source.Close()

	if configuration.RefFile != "" {
		logger.Info(fmt.Sprintf("Reference file %s is not used for comparison yet", configuration.RefFile), "main")
	}

	display := loadDisplayConfig(configuration)

	outputs, err := validation.OpenOutputs(configuration, logger)
	if err != nil {
		return err
	}

	processor := validation.NewProcessor(validation.Context{
		Config:  configuration,
		Logger:  logger,
		Display: display,
		Source:  source,
		Stores:  outputs.Stores,
		Plotter: outputs.Plotter,
	})
	summary := processor.Run()

	if err := outputs.Close(); err != nil {
		return fmt.Errorf("error closing outputs: %w", err)
	}

	message := fmt.Sprintf("Fields processed: %d, failed: %d, ignored: %d",
		summary.Processed, summary.Failed, summary.Ignored)
	logger.Info(message, "main")
	logger.Info(fmt.Sprintf("Total time: %d ms", time.Since(start).Milliseconds()), "main")
	return nil
}

// loadDisplayConfig never fails: without a usable display config every
// field is drawn with default settings.
func loadDisplayConfig(configuration validation.Configuration) validation.DisplayConfig {
	if configuration.DisplayFromDB {
		dbConn, err := validation.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
		if err != nil {
			message := fmt.Errorf("Error connection to database: %w", err)
			logger.Error(message.Error())
			return validation.DisplayConfig{}
		}
		defer dbConn.Close()

		display, err := validation.LoadDisplayConfigFromDB(dbConn, logger, configuration.Verbosity)
		if err != nil {
			message := fmt.Errorf("Error reading display config from database: %w", err)
			logger.Error(message.Error())
			return validation.DisplayConfig{}
		}
		return display
	}

	if configuration.ConfigFile == "" {
		logger.Info("No config file provided - using default settings", "main")
		return validation.DisplayConfig{}
	}
	display, err := validation.LoadDisplayConfigFile(configuration.ConfigFile)
	if err != nil {
		message := fmt.Sprintf("Config file %s not usable (%v) - using default settings", configuration.ConfigFile, err)
		logger.Warn(message, "main")
		return validation.DisplayConfig{}
	}
	logger.Info(fmt.Sprintf("Using config file %s", configuration.ConfigFile), "main")
	return display
}
