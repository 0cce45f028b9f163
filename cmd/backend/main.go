package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"time"

	"loadview/checker"
	"loadview/config"
	"loadview/logger"
	"loadview/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func statusHandler(c *checker.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status, err := c.CheckHost(r.Context())
		if err != nil {
			logger.Error("Failed to get host status: %v", err)
			http.Error(w, "Failed to get host status: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.Warn("Failed to write status response: %v", err)
		}
	}
}

func newHandler(statusAfter time.Duration) *app.Handler {
	return &app.Handler{
		Name:        "Loadview",
		Description: "Loading skeleton demo",
		Version:     "v1",
		RawHeaders: []string{
			`<link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap" rel="stylesheet">`,
			`<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Material+Symbols+Rounded:opsz,wght,FILL,GRAD@24,400,0,0" />`,
		},
		LoadingLabel: "",
		Styles: []string{
			"/web/app.css",
		},
		Env: app.Environment{
			ui.StatusAfterEnv: statusAfter.String(),
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(logger.Config{Level: cfg.LogLevel(), Format: cfg.LogFormat()}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	// Register the component on the server side too for correct routing generation
	app.Route("/", &ui.Home{})

	mux := http.NewServeMux()
	mux.Handle("/", newHandler(cfg.StatusAfter()))
	mux.HandleFunc("/api/status", statusHandler(checker.New()))

	srv := &http.Server{
		Addr:     cfg.Addr(),
		Handler:  mux,
		ErrorLog: slog.NewLogLogger(logger.Logger().Handler(), slog.LevelError),
	}
	logger.Info("Starting Loadview on %s...", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
