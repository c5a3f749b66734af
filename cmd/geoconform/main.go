// geoconform 对EPSG权威工厂运行固定用例，并逐个校验指定代码的坐标系
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wgdzlh/geoapi/conformance"
	"github.com/wgdzlh/geoapi/internal/config"
	"github.com/wgdzlh/geoapi/log"
	"github.com/wgdzlh/geoapi/opengis/referencing/crs"
	"github.com/wgdzlh/geoapi/proj"
	"github.com/wgdzlh/geoapi/simple"
	"github.com/wgdzlh/geoapi/utils"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type Options struct {
	Config   string   `short:"c" long:"config"    description:"YAML run configuration"`
	Factory  string   `short:"f" long:"factory"   description:"Authority factory under test" choice:"simple" choice:"proj"`
	Codes    []string `short:"C" long:"code"      description:"CRS code to validate, repeatable (default: all codes of the factory)"`
	Format   string   `short:"F" long:"format"    description:"Report format" choice:"json" choice:"yaml"`
	Out      string   `short:"o" long:"out"       description:"Report file, - for stdout (default: geoconform_<time>.<format>)"`
	LogLevel string   `short:"l" long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	Strict   bool     `short:"s" long:"strict"    description:"Require every fixture CRS to be provided"`
}

const logTag = "GeoConform:"

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err = log.Init(cfg.LogLevel, cfg.LogJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init log: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	rep, err := run(cfg)
	if err != nil {
		log.Error(logTag+"run failed", zap.Error(err))
		os.Exit(1)
	}
	if err = rep.Err(); err != nil {
		log.Error(logTag+"factory not conformant", zap.String("run", rep.RunID), zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
	log.Info(logTag+"all cases passed", zap.String("run", rep.RunID), zap.Int("cases", rep.Passed))
}

// 配置文件打底，命令行参数覆盖
func loadConfig(opts Options) (cfg *config.Config, err error) {
	cfg = config.Default()
	if opts.Config != "" {
		if cfg, err = config.Load(opts.Config); err != nil {
			return
		}
	}
	if opts.Factory != "" {
		cfg.Factory = opts.Factory
	}
	if len(opts.Codes) > 0 {
		cfg.Codes = opts.Codes
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Out != "" {
		cfg.Out = opts.Out
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	cfg.Strict = cfg.Strict || opts.Strict
	err = cfg.Validate()
	return
}

func run(cfg *config.Config) (rep *conformance.Report, err error) {
	var factory crs.AuthorityFactory
	switch cfg.Factory {
	case config.FACTORY_PROJ:
		f := proj.NewFactory()
		defer f.Close()
		factory = f
	default:
		factory = simple.NewFactory()
	}

	rep = conformance.NewReport(cfg.Factory)
	suite := &conformance.AuthorityFactorySuite{Factory: factory, Strict: cfg.Strict}
	rep.RunAll(suite.Cases())

	codes := cfg.Codes
	if len(codes) == 0 {
		if codes, err = factory.AuthorityCodes(); err != nil {
			return
		}
	}
	log.Info(logTag+"validating codes", zap.String("factory", cfg.Factory), zap.Strings("codes", codes))
	for _, code := range codes {
		rep.Run(conformance.CRSCase(factory, code))
	}
	err = writeReport(rep, cfg)
	return
}

func writeReport(rep *conformance.Report, cfg *config.Config) (err error) {
	out := cfg.Out
	if out == "" {
		out = "geoconform_" + utils.GetNowTimeTag() + "." + cfg.Format
	}
	var w io.Writer = os.Stdout
	if out != "-" {
		var file *os.File
		if file, err = os.Create(out); err != nil {
			return
		}
		defer func() {
			if e := file.Close(); err == nil {
				err = e
			}
		}()
		w = file
	}
	if err = rep.Encode(w, cfg.Format); err != nil {
		return
	}
	log.Info(logTag+"report written", zap.String("out", out), zap.Int("passed", rep.Passed), zap.Int("failed", rep.Failed))
	return
}
