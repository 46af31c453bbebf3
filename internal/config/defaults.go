package config

// Default configuration values.
const (
	DefaultResultsPattern = "**/test-results/**/*.json"
	DefaultReportOutput   = ".testgate/report.json"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if len(cfg.Results.Paths) == 0 {
		cfg.Results.Paths = []string{DefaultResultsPattern}
	}
	if cfg.Report.Output == "" {
		cfg.Report.Output = DefaultReportOutput
	}
}

// Default returns a configuration with every default applied, used when no
// config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
