// Package config loads the grapher settings from a YAML file. Every field
// left out of the file falls back to its default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libplotter/curve"
	"github.com/sgostarter/libplotter/fn"
	"github.com/sgostarter/libplotter/plot/vector"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLang        = "ru"
	DefaultDataRoot    = "data"
	DefaultCurveFile   = "curves.txt"
	DefaultPNGFile     = "plot.png"
	DefaultSessionFile = "session.json"
	DefaultNumPoints   = 100
	DefaultRedisPreKey = "grapher"
)

type Redis struct {
	DSN    string `yaml:"dsn"`
	PreKey string `yaml:"pre_key"`
}

type Config struct {
	Lang           string        `yaml:"lang"`
	DataRoot       string        `yaml:"data_root"`
	CurveFile      string        `yaml:"curve_file"`
	PNGFile        string        `yaml:"png_file"`
	VectorFile     string        `yaml:"vector_file"`
	SessionFile    string        `yaml:"session_file"`
	NumPoints      int           `yaml:"num_points"`
	Domain         *curve.Domain `yaml:"domain"`
	Functions      []fn.Spec     `yaml:"functions"`
	Redis          Redis         `yaml:"redis"`
	SampleCacheTTL time.Duration `yaml:"sample_cache_ttl"`
}

func DefaultDomain() curve.Domain {
	return curve.NewDomain(-10, 10, -10, 10)
}

func DefaultFunctions() []fn.Spec {
	return []fn.Spec{
		{Kind: fn.KindPolynomial, Coefficients: []float64{1, 0, -1}},
		{Kind: fn.KindTrigonometric, Trig: fn.Sine, Amplitude: 1, Frequency: 1},
	}
}

func Default() *Config {
	cfg := &Config{}
	cfg.fix()

	return cfg
}

// Load reads fileName through storage. A missing file yields the defaults.
func Load(fileName string, storage stg.FileStorage) (cfg *Config, err error) {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	cfg = &Config{}

	d, err := storage.ReadFile(fileName)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("read %s: %w", fileName, err)

			return
		}

		err = nil
	}

	if len(d) > 0 {
		if err = yaml.Unmarshal(d, cfg); err != nil {
			err = fmt.Errorf("parse %s: %w", fileName, err)

			return
		}
	}

	cfg.fix()

	err = cfg.Validate()

	return
}

func (cfg *Config) fix() {
	if cfg.Lang == "" {
		cfg.Lang = DefaultLang
	}

	if cfg.DataRoot == "" {
		cfg.DataRoot = DefaultDataRoot
	}

	if cfg.CurveFile == "" {
		cfg.CurveFile = DefaultCurveFile
	}

	if cfg.PNGFile == "" {
		cfg.PNGFile = DefaultPNGFile
	}

	if cfg.SessionFile == "" {
		cfg.SessionFile = DefaultSessionFile
	}

	if cfg.NumPoints <= 0 {
		cfg.NumPoints = DefaultNumPoints
	}

	if cfg.Domain == nil {
		domain := DefaultDomain()
		cfg.Domain = &domain
	}

	if cfg.Functions == nil {
		cfg.Functions = DefaultFunctions()
	}

	if cfg.Redis.PreKey == "" {
		cfg.Redis.PreKey = DefaultRedisPreKey
	}
}

func (cfg *Config) Validate() error {
	if err := cfg.Domain.Validate(); err != nil {
		return fmt.Errorf("domain: %w", err)
	}

	for idx, spec := range cfg.Functions {
		if _, err := fn.Build(spec); err != nil {
			return fmt.Errorf("functions[%d]: %w", idx, err)
		}
	}

	if cfg.VectorFile != "" {
		if _, err := vector.FormatOf(cfg.VectorFile); err != nil {
			return fmt.Errorf("vector_file: %w", err)
		}
	}

	if cfg.SampleCacheTTL < 0 {
		return fmt.Errorf("sample_cache_ttl: %w", ErrNegativeTTL)
	}

	return nil
}
