package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"weather-badge/config"
	"weather-badge/internal/clientip"
	v1 "weather-badge/internal/controllers/http/v1"
	"weather-badge/internal/repositories"
	"weather-badge/internal/services/badge"
	"weather-badge/pkg/httpserver"
	"weather-badge/pkg/observe"
)

// @title Weather Badge
// @version 1.0.0
// @description Resolves the caller's approximate location from its network address, fetches current conditions and renders an SVG weather icon.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Badge
// @tag.description Weather badge rendering
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	_ = godotenv.Load()

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	sinks := []io.Writer{os.Stdout}
	if cnf.Sentry.DSN != "" {
		hook, err := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.IsDevelopment())
		if err != nil {
			fmt.Fprintln(os.Stderr, "sentry disabled:", err)
		} else {
			sinks = append(sinks, hook)
		}
	}

	l := observe.NewZapLogger(cnf.App.Name, cnf.Log.Level, sinks...)

	trusted, err := cnf.TrustedPrefixes()
	if err != nil {
		l.Fatal("invalid trusted proxy configuration", map[string]any{"err": err})
	}
	fallback, err := cnf.FallbackAddr()
	if err != nil {
		l.Fatal("invalid fallback address configuration", map[string]any{"err": err})
	}
	resolver := clientip.NewResolver(trusted, fallback)

	geoClient := &http.Client{Timeout: time.Duration(cnf.Geo.Timeout) * time.Second}
	weatherClient := &http.Client{Timeout: time.Duration(cnf.Weather.Timeout) * time.Second}

	geoRepo := repositories.NewGeoIPRepository(cnf.Geo.BaseURL, l, geoClient)

	weatherRepo, err := repositories.NewPirateWeatherRepository(cnf.Weather.BaseURL, cnf.Weather.APIKey, l, weatherClient)
	if err != nil {
		l.Fatal("cannot init weather repository", map[string]any{"err": err})
	}

	service := badge.NewService(resolver, geoRepo, weatherRepo, l)

	app := httpserver.InitFiberServer(cnf.App.Name, time.Duration(cnf.Server.ReadTimeout)*time.Second)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Server.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
