package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"textart/audio"
	"textart/config"
	"textart/core"
	"textart/demo"
	"textart/editor"
	"textart/storage"
	"textart/terminal"
)

// defaultConfigFile is read when present and no -config flag is given.
const defaultConfigFile = "textart.yaml"

func main() {
	var (
		configPath  = flag.String("config", "", "YAML configuration file (default: "+defaultConfigFile+" if present)")
		rows        = flag.Int("rows", 0, "Canvas rows")
		cols        = flag.Int("cols", 0, "Canvas columns")
		dir         = flag.String("dir", "", "Directory for saved canvases and clips")
		animate     = flag.Bool("animate", false, "Animate drawing tools")
		sound       = flag.Bool("sound", false, "Play a tick per clip frame and a buzz on errors")
		logFile     = flag.String("log", "", "Write logs to this file")
		demoScript  = flag.String("demo", "", "Replay a JSON demo script before handing over to the keyboard")
		demoExample = flag.Bool("demo-example", false, "Print an example demo script and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "An ASCII art editor for the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Start with an 80x22 canvas\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -animate -sound          # Watch shapes being drawn\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -demo-example > d.json   # Write a demo script\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -demo d.json             # Replay it\n", os.Args[0])
	}

	flag.Parse()

	if *demoExample {
		fmt.Println(demo.GenerateExample())
		return
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath, false)
	} else {
		cfg, err = config.Load(defaultConfigFile, true)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Grid.Rows = *rows
		case "cols":
			cfg.Grid.Cols = *cols
		case "dir":
			cfg.SaveDir = *dir
		case "animate":
			cfg.Animate = *animate
		case "sound":
			cfg.Sound = *sound
		case "log":
			cfg.LogFile = *logFile
		case "demo":
			cfg.DemoScript = *demoScript
		}
	})
	if !cfg.Grid.Valid() {
		fmt.Fprintf(os.Stderr, "Error: invalid canvas size %dx%d\n", cfg.Grid.Rows, cfg.Grid.Cols)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes text logs to the configured file. The terminal owns
// stdout and stderr while the editor runs, so without a file logs are
// discarded.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

func run(cfg *config.Config, logger *slog.Logger) error {
	var player audio.Player = audio.Silent{}
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	var script *demo.Script
	if cfg.DemoScript != "" {
		s, err := demo.LoadScript(cfg.DemoScript)
		if err != nil {
			return err
		}
		script = s
	}

	screen, err := terminal.Open(cfg.Grid)
	if err != nil {
		return err
	}
	defer screen.Close()

	var keys core.KeySource = screen
	if script != nil {
		src, err := demo.NewSource(script, screen)
		if err != nil {
			return err
		}
		logger.Info("playing demo", "script", script.Name, "keys", src.Remaining())
		keys = src
	}

	ed, err := editor.New(screen, keys, screen, editor.Options{
		Grid:         cfg.Grid,
		Store:        storage.NewStore(cfg.SaveDir),
		HistoryDepth: cfg.HistoryDepth,
		Animate:      cfg.Animate,
		StepDelay:    cfg.StepDelay,
		FrameDelay:   cfg.FrameDelay,
		Sound:        player,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	return ed.Run()
}
