package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fbcal-backend/lib/configutil"
	"fbcal-backend/lib/scrapers/facebook"
	"fbcal-backend/lib/serviceutil"
	"fbcal-backend/lib/telemetry"
	"fbcal-backend/services/birthdays"
)

type Config struct {
	Port      int    `json:"port"`
	StaticDir string `json:"static_dir"`
	// scraping targets, overridable for local fixtures
	BaseUrl       string `json:"base_url"`
	MobileBaseUrl string `json:"mobile_base_url"`
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	telemetry.InitSlog(*verbose)

	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("no config.json5 found, using defaults")
	} else if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.StaticDir == "" {
		config.StaticDir = "static"
	}

	t, err := telemetry.SetupFromEnv(ctx, "fbcal")
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("no telemetry.json5 found, telemetry disabled")
	} else if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	} else {
		defer t.Shutdown(context.Background())
	}

	service := birthdays.NewService(facebook.ClientOptions{
		BaseUrl:       config.BaseUrl,
		MobileBaseUrl: config.MobileBaseUrl,
	})

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	router.Post("/", handleExport(service))
	router.Handle("/*", http.FileServer(http.Dir(config.StaticDir)))

	serviceutil.StartHttpServer(config.Port, router)
}
