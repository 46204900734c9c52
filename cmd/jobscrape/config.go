package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fwojciec/jobscrape"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML config file.
//
//	timeout: 20s
//	concurrency: 8
//	rate: 0.5
//	browser: true
//	extractor: readability
//	userAgent: jobscrape/1.0
//	images: true
//	retryDelays: [500ms, 2s]
//	db: ~/.jobscrape/history.db
type Config struct {
	Timeout     time.Duration   `yaml:"timeout"`
	Concurrency int             `yaml:"concurrency"`
	Rate        float64         `yaml:"rate"`
	Browser     bool            `yaml:"browser"`
	Extractor   string          `yaml:"extractor"`
	UserAgent   string          `yaml:"userAgent"`
	Images      bool            `yaml:"images"`
	RetryDelays []time.Duration `yaml:"retryDelays"`
	DB          string          `yaml:"db"`
}

// LoadConfig reads the config file at path. An empty path returns an
// empty config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "cannot open config: %v", err)
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes a YAML config. Unknown keys are rejected.
func ParseConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "invalid config: %v", err)
	}

	for _, d := range cfg.RetryDelays {
		if d < 0 {
			return nil, jobscrape.Errorf(jobscrape.EINVALID, "invalid config: negative retry delay %s", d)
		}
	}
	if cfg.Rate < 0 {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "invalid config: negative rate")
	}
	return &cfg, nil
}
