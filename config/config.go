// Package config loads textart settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"textart/clip"
	"textart/core"
	"textart/draw"
	"textart/history"
	"textart/storage"
)

// Config holds all textart configuration.
type Config struct {
	Grid         core.GridConfig `yaml:"grid"`
	SaveDir      string          `yaml:"save_dir"`
	StepDelay    time.Duration   `yaml:"step_delay"`
	FrameDelay   time.Duration   `yaml:"frame_delay"`
	HistoryDepth int             `yaml:"history_depth"`
	Animate      bool            `yaml:"animate"`
	Sound        bool            `yaml:"sound"`
	LogFile      string          `yaml:"log_file"`
	LogLevel     string          `yaml:"log_level"`
	DemoScript   string          `yaml:"demo_script"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

func (c *Config) defaults() {
	if c.Grid.Rows <= 0 {
		c.Grid.Rows = core.DefaultRows
	}
	if c.Grid.Cols <= 0 {
		c.Grid.Cols = core.DefaultCols
	}
	if c.SaveDir == "" {
		c.SaveDir = storage.DefaultDir
	}
	if c.StepDelay <= 0 {
		c.StepDelay = draw.DefaultStepDelay
	}
	if c.FrameDelay <= 0 {
		c.FrameDelay = clip.DefaultFrameDelay
	}
	if c.HistoryDepth <= 0 {
		c.HistoryDepth = history.DefaultDepth
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Load reads a YAML config file and fills in defaults for anything it leaves
// out. A missing file is not an error when optional is set.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.defaults()
	return cfg, nil
}
