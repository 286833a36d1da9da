package main

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
	solarline "github.com/sksat/solar-line-sub000"
)

func main() {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "cmd", "solarline")
	analysis, err := solarline.AnalyzeSeries(solarline.Kestrel)
	if err != nil {
		klog.Log("err", err)
		os.Exit(1)
	}
	for _, episode := range analysis.Episodes {
		klog.Log("episode", episode.Episode, "title", episode.Title, "jd", episode.JulianDate,
			"legs", len(episode.Legs), "feasible", episode.Feasible)
	}
	for _, check := range analysis.Checks {
		klog.Log("check", check.Name, "expected", check.Expected, "actual", check.Actual, "ok", check.OK)
	}
	path, err := solarline.ExportSeriesReport(analysis)
	if err != nil {
		klog.Log("err", err)
		os.Exit(1)
	}
	klog.Log("report", path)
}
