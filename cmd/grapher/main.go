package main

import (
	"bytes"
	"context"
	"flag"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libplotter/config"
	"github.com/sgostarter/libplotter/console"
	"github.com/sgostarter/libplotter/curve"
	"github.com/sgostarter/libplotter/curve/impls/redisstg"
	"github.com/sgostarter/libplotter/fn"
	"github.com/sgostarter/libplotter/plot"
	"github.com/sgostarter/libplotter/plot/raster"
	"github.com/sgostarter/libplotter/plot/vector"
	"github.com/sgostarter/libplotter/session"
	"golang.org/x/term"
)

func main() {
	configFile := flag.String("config", "grapher.yaml", "config file")
	lang := flag.String("lang", "", "prompt language, ru or en (overrides the config)")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	ctx := context.Background()

	cfg, err := config.Load(*configFile, nil)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("file", *configFile)).Fatal("load config failed")
	}

	if *lang != "" {
		cfg.Lang = *lang
	}

	_ = pathutils.MustDirExists(cfg.DataRoot)

	fileStorage := rawfs.NewFSStorage(cfg.DataRoot)

	collection := curve.NewCollection(*cfg.Domain, newCurveStorage(ctx, cfg, fileStorage, logger), logger)
	sampler := curve.NewCachedSampler(cfg.SampleCacheTTL)
	sess := session.NewStore(cfg.SessionFile, fileStorage, logger)

	restored, err := sess.Restore(collection, sampler, cfg.NumPoints)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("restore session failed")
	}

	if !restored {
		addConfigFunctions(collection, cfg.Functions, sampler, cfg.NumPoints, logger)
	}

	plotter := plot.NewPlotter()

	onChange := func(_ context.Context, c *curve.Collection) error {
		d, e := raster.Render(plotter, c.Curves())
		if e != nil {
			return e
		}

		if e = fileStorage.WriteFile(cfg.PNGFile, d); e != nil {
			return e
		}

		if e = exportVector(cfg, fileStorage, c); e != nil {
			return e
		}

		return sess.Snapshot(c)
	}

	if err = onChange(ctx, collection); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("initial render failed")
	}

	opts := []console.Option{
		console.LanguageOption(console.MatchLanguage(cfg.Lang)),
		console.SamplerOption(sampler),
		console.NumPointsOption(cfg.NumPoints),
		console.DefaultFileOption(cfg.CurveFile),
		console.OnChangeOption(onChange),
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, console.HideMenuOption())
	}

	if err = console.NewUI(os.Stdin, os.Stdout, collection, logger, opts...).Run(ctx); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("read input failed")
	}
}

func newCurveStorage(ctx context.Context, cfg *config.Config, fileStorage stg.FileStorage, logger l.Wrapper) curve.Storage {
	if cfg.Redis.DSN == "" {
		return curve.NewFileStorage(cfg.DataRoot, fileStorage)
	}

	redisOpts, err := redis.ParseURL(cfg.Redis.DSN)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("parse redis dsn failed")
	}

	redisCli := redis.NewClient(redisOpts)

	if err = redisCli.Ping(ctx).Err(); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("ping redis failed")
	}

	return redisstg.NewStorage(cfg.Redis.PreKey, redisCli, logger)
}

func exportVector(cfg *config.Config, fileStorage stg.FileStorage, c *curve.Collection) error {
	if cfg.VectorFile == "" {
		return nil
	}

	format, err := vector.FormatOf(cfg.VectorFile)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	if err = vector.Export(&buf, format, *c.Domain(), c.Curves()); err != nil {
		return err
	}

	return fileStorage.WriteFile(cfg.VectorFile, buf.Bytes())
}

func addConfigFunctions(collection *curve.Collection, specs []fn.Spec, sampler curve.Sampler, numPoints int,
	logger l.Wrapper) {
	for idx, spec := range specs {
		f, err := fn.Build(spec)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.IntField("index", idx)).Error("skip configured function")

			continue
		}

		c := curve.NewCurve(f)
		c.SampleWith(sampler, *collection.Domain(), numPoints)
		collection.AddCurve(c)
	}
}
