package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evacroute/internal/api"
	"evacroute/internal/api/handlers"
	"evacroute/internal/config"
	"evacroute/internal/engine"
	"evacroute/internal/gazetteer"
	"evacroute/internal/geocode"
	"evacroute/internal/hazard"
	"evacroute/internal/incident"
	"evacroute/internal/overpass"
	"evacroute/internal/planner"
	"evacroute/internal/routing"
	"evacroute/internal/transit"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Env == "development" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	gaz := gazetteer.New()
	if cfg.GazetteerPath != "" {
		if err := gaz.Load(cfg.GazetteerPath); err != nil {
			logger.Warn("gazetteer file not loaded", "path", cfg.GazetteerPath, "error", err)
		}
	}

	resolver := geocode.NewResolver(cfg.NominatimBaseURL, cfg.NominatimContact, gaz, cfg.GeocodeTTL)
	defer resolver.Close()

	var provider routing.Provider = routing.NewOSRM(cfg.OSRMBaseURL)
	if cfg.GoogleMapsAPIKey != "" {
		gm, err := routing.NewGoogleMaps(cfg.GoogleMapsAPIKey)
		if err != nil {
			logger.Error("google maps client", "error", err)
			os.Exit(1)
		}
		provider = gm
		logger.Info("routing via google maps")
	}
	router := routing.NewService(provider, cfg.RouteTTL)
	defer router.Close()

	overpassClient := overpass.NewClient(cfg.OverpassEndpoints)
	stopIndex := transit.NewStopIndex(overpassClient, cfg.StopRadiusM, cfg.StopsTTL)
	defer stopIndex.Close()

	aggregator := incident.NewAggregator(logger)
	defer aggregator.Close()
	aggregator.Register(incident.NewNCDOT(cfg.NCDOTBaseURL, cfg.RegionalTTL))
	if cfg.WSDOTAccessKey != "" {
		aggregator.Register(incident.NewWSDOT(cfg.WSDOTBaseURL, cfg.WSDOTAccessKey, cfg.RegionalTTL))
	}
	if cfg.GTFSAlertURL != "" {
		aggregator.Register(incident.NewGTFSRT(cfg.GTFSAlertURL, cfg.GTFSAlertState, cfg.RegionalTTL))
	}
	aggregator.Register(incident.NewUniversal(overpassClient, cfg.OverpassTTL))

	eng := engine.New(resolver, router, stopIndex,
		hazard.NewScanner(cfg.HazardBufferMi), aggregator,
		planner.DefaultParams(), logger)

	h := handlers.New(eng, stopIndex, resolver, cfg.MaxBodyBytes, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(h, logger, cfg.HTTPTimeout),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
