package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/bptree/btree"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
)

const appTag = "bptree"

// Configuration keys.
const (
	keyOrder      = "bptree.order"
	keyVariant    = "bptree.variant"
	keyTraceLevel = "tracelevel.bptree"
)

// setupConfig creates the application configuration: builtin defaults, then
// an optional NestedText configuration file, then command line flags.
func setupConfig(flags *pflag.FlagSet) *koanfadapter.KConf {
	conf := koanfadapter.New(nil, appTag, []string{"nt"})
	conf.InitDefaults()
	if !conf.IsSet(keyOrder) {
		conf.Set(keyOrder, btree.DefaultOrder)
	}
	if !conf.IsSet(keyVariant) {
		conf.Set(keyVariant, btree.Linked.String())
	}
	if !conf.IsSet(keyTraceLevel) {
		conf.Set(keyTraceLevel, "Error")
	}
	if flags.Changed("order") {
		m, _ := flags.GetInt("order")
		conf.Set(keyOrder, m)
	}
	if flags.Changed("variant") {
		v, _ := flags.GetString("variant")
		conf.Set(keyVariant, v)
	}
	if flags.Changed("trace") {
		l, _ := flags.GetString("trace")
		conf.Set(keyTraceLevel, l)
	}
	return conf
}

// setupTracing installs trace2go as the global trace selector, with Go's log
// package as the tracing backend.
func setupTracing(conf *koanfadapter.KConf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("tracing configured, level for %q is %s", appTag, conf.GetString(keyTraceLevel))
	return nil
}

func tracer() tracing.Trace {
	return tracing.Select("bptree")
}

// options holds the settings for one run.
type options struct {
	order   int
	variant btree.Variant
	numeric bool
	file    string
	deletes []string
	format  string
	check   bool
}

func optionsFromConfig(conf *koanfadapter.KConf, flags *pflag.FlagSet) (options, error) {
	var opts options
	var err error
	opts.order = conf.GetInt(keyOrder)
	if opts.variant, err = btree.ParseVariant(strings.ToLower(conf.GetString(keyVariant))); err != nil {
		return opts, err
	}
	opts.numeric, _ = flags.GetBool("numeric")
	opts.file, _ = flags.GetString("file")
	opts.deletes, _ = flags.GetStringSlice("delete")
	opts.format, _ = flags.GetString("format")
	opts.check, _ = flags.GetBool("check")
	switch opts.format {
	case "text", "dot", "stats", "keys":
	default:
		return opts, fmt.Errorf("unknown output format %q", opts.format)
	}
	return opts, nil
}
