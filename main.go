package main

import (
	"flag"
	"log/slog"

	"github.com/jangho/subcrop-go/app"
	"github.com/jangho/subcrop-go/config"
)

func main() {
	cfgPath := flag.String("config", "subcrop.json", "path to JSON config file")
	framePath := flag.String("frame", "", "frame image to load (PNG/JPEG)")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if *framePath != "" {
		cfg.FramePath = *framePath
	}
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Error("config load", "error", err, "path", *cfgPath)
	}

	application := app.NewApp("Subtitle Crop", 960, 720, cfg, *cfgPath, logger)
	application.Start()
}
