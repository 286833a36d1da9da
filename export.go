package solarline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// SeriesReport is the JSON document consumed by the static site layer.
type SeriesReport struct {
	GeneratedOn string         `json:"generatedOn"`
	JulianDate  float64        `json:"julianDate"`
	Analysis    SeriesAnalysis `json:"analysis"`
}

// NewSeriesReport wraps a series analysis with its generation timestamp.
func NewSeriesReport(analysis SeriesAnalysis) SeriesReport {
	now := time.Now().UTC()
	if !slConfig().includeChecks {
		analysis.Checks = nil
	}
	return SeriesReport{
		GeneratedOn: now.Format(time.RFC3339),
		JulianDate:  julian.TimeToJD(now),
		Analysis:    analysis,
	}
}

// ExportSeriesReport writes the report as JSON into the configured output
// directory and returns the written path.
func ExportSeriesReport(analysis SeriesAnalysis) (string, error) {
	conf := slConfig()
	report := NewSeriesReport(analysis)
	var contents []byte
	var err error
	if conf.prettyReport {
		contents, err = json.MarshalIndent(report, "", "  ")
	} else {
		contents, err = json.Marshal(report)
	}
	if err != nil {
		return "", fmt.Errorf("serializing report: %w", err)
	}
	path := fmt.Sprintf("%s/%s.json", conf.outputDir, conf.reportName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if _, err = f.Write(contents); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
