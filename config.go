package solarline

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _slconfig{}
)

// _slconfig is a "hidden" struct, just use `slConfig`
type _slconfig struct {
	outputDir     string
	reportName    string
	prettyReport  bool
	includeChecks bool
}

// slConfig returns the solarline configuration, loading it on first use.
// Only the report layer is configurable; physical constants never are.
func slConfig() _slconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("SOLARLINE_CONFIG")
	if confPath == "" {
		panic("environment variable `SOLARLINE_CONFIG` is missing or empty")
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}

	outputDir := viper.GetString("general.output_path")
	if outputDir == "" {
		outputDir = "."
	}
	reportName := viper.GetString("report.name")
	if reportName == "" {
		reportName = "solarline-report"
	}
	prettyReport := viper.GetBool("report.pretty")
	includeChecks := true
	if viper.IsSet("report.include_checks") {
		includeChecks = viper.GetBool("report.include_checks")
	}

	config = _slconfig{outputDir: outputDir, reportName: reportName, prettyReport: prettyReport, includeChecks: includeChecks}
	cfgLoaded = true
	return config
}
