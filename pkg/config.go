package validation

type Configuration struct {
	FileIn           string `json:"file_in"           env:"VALIDATION_FILE_IN"`
	RefFile          string `json:"ref_file"          env:"VALIDATION_REF_FILE"`
	ConfigFile       string `json:"config_file"       env:"VALIDATION_CONFIG_FILE"`
	TreeName         string `json:"tree_name"         env:"VALIDATION_TREE_NAME"`
	PlotDir          string `json:"plot_dir"          env:"VALIDATION_PLOT_DIR"`
	MaxEvents        int    `json:"max_events"        env:"VALIDATION_MAX_EVENTS"`
	Verbosity        int    `json:"verbosity"         env:"VALIDATION_VERBOSITY"`
	NumWorkers       int    `json:"num_workers"       env:"VALIDATION_NUM_WORKERS"`
	WriteROOT        bool   `json:"write_root"        env:"VALIDATION_WRITE_ROOT"`
	WriteHDF5        bool   `json:"write_hdf5"        env:"VALIDATION_WRITE_HDF5"`
	WritePlots       bool   `json:"write_plots"       env:"VALIDATION_WRITE_PLOTS"`
	CompressionLevel int    `json:"compression_level" env:"VALIDATION_COMPRESSION_LEVEL"`
	DisplayFromDB    bool   `json:"display_from_db"   env:"VALIDATION_DISPLAY_FROM_DB"`
	Host             string `json:"host"              env:"VALIDATION_DB_HOST"`
	User             string `json:"user"              env:"VALIDATION_DB_USER"`
	Passwd           string `json:"pass"              env:"VALIDATION_DB_PASS"`
	DBName           string `json:"dbname"            env:"VALIDATION_DB_NAME"`
}

// DefaultConfiguration returns the settings used when a key is missing
// from the configuration file.
func DefaultConfiguration() Configuration {
	return Configuration{
		TreeName:         "Validation",
		MaxEvents:        1000000000,
		Verbosity:        0,
		NumWorkers:       1,
		WriteROOT:        true,
		WriteHDF5:        true,
		WritePlots:       true,
		CompressionLevel: 4,
		Host:             "localhost",
		User:             "snreader",
		DBName:           "SNValidation",
	}
}
