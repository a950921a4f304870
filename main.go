package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/n1tr0xs/fire-danger-map/app"
	"github.com/n1tr0xs/fire-danger-map/assets"
	"github.com/n1tr0xs/fire-danger-map/config"
	"github.com/n1tr0xs/fire-danger-map/domain/registry"
	"github.com/n1tr0xs/fire-danger-map/observability"
)

const configPath = "config.json"

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
	}
	cfg, cfgErr := config.Load(configPath)
	cfg.ApplyEnv()

	logger := NewLogger(levelFor(cfg.Debug))
	if cfgErr != nil {
		logger.Warn("config unreadable, using defaults", "path", configPath, "error", cfgErr)
	}

	tpl, err := assets.OpenTemplate(cfg.BlankPath, cfg.LogPath, logger)
	if err != nil {
		return 1
	}

	reg, err := registry.Load(cfg.StationRegionsPath)
	if err != nil {
		logger.Warn("station registry unavailable, form will be empty", "path", cfg.StationRegionsPath, "error", err)
	}
	coords, err := registry.LoadCoordinates(cfg.RegionCoordsPath)
	if err != nil {
		logger.Warn("region coordinates unavailable or incomplete", "path", cfg.RegionCoordsPath, "error", err)
	}
	logger.Info("lookup tables loaded", "stations", reg.Len(), "regions", len(reg.Pairs()), "coordinates", coords.Len())

	fonts := assets.NewFontLoader(cfg.FontPath, logger)
	face, err := fonts.Face(cfg.FontSize)
	if err != nil {
		logger.Warn("label font unavailable, using built-in face", "error", err)
	} else {
		logger.Info("label font ready", "path", cfg.FontPath, "size", cfg.FontSize, "fallback", fonts.Fallback())
	}

	c := app.BuildContainer(cfg, logger, observability.NewMetrics(nil), app.Inputs{
		Template:    tpl,
		Registry:    reg,
		Coordinates: coords,
		Face:        face,
	})
	app.NewApp(c).Start()
	logger.Info("window closed", slog.Int("exit_code", 0))
	return 0
}
