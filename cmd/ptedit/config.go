package main

import (
	"github.com/npillmayer/piecetable"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// appTag identifies configuration files of ptedit.
const appTag = "ptedit"

// setupConfig loads the application configuration, applies command line
// overrides and configures tracing from the result.
func setupConfig() (*koanfadapter.KConf, error) {
	conf := koanfadapter.New(nil, appTag, []string{"nt"})
	conf.InitDefaults()
	if !conf.IsSet("tracelevel.root") {
		conf.Set("tracelevel.root", "Error")
	}
	if traceLevel != "" {
		conf.Set("tracelevel.root", traceLevel)
		conf.Set("tracelevel.piecetable", traceLevel)
	}
	if fragSize > 0 {
		conf.Set("textfile.fragsize", fragSize)
	}
	if dictPath != "" {
		conf.Set("editor.dictionary", dictPath)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return nil, err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	piecetable.T().Debugf("configuration for %s loaded", appTag)
	return conf, nil
}
