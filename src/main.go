package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/alexmcqw/signmap/src/config"
	"github.com/alexmcqw/signmap/src/diag"
	"github.com/alexmcqw/signmap/src/handlers"
	"github.com/alexmcqw/signmap/src/store"
	"github.com/alexmcqw/signmap/src/types"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := diag.New(cfg.Environment)

	catalog, err := store.New(cfg.DataSource, log)
	if err != nil {
		log.LoadFailed(cfg.DataSource, err)
		os.Exit(1)
	}

	tmpl, err := handlers.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		log.Error("template_load_failed", slog.String("path", cfg.TemplatePath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := handleKit(cfg, catalog, tmpl, log)

	log.Info("server_started", slog.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Error("server_stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func handleKit(cfg config.Config, catalog types.Catalog, tmpl *template.Template, log *diag.Logger) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CorsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/venues", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleMapHTML(w, r, catalog, tmpl)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("OK"))
		})
		r.Get("/venues", func(w http.ResponseWriter, r *http.Request) {
			handlers.HandleVenuesAPI(w, r, catalog, log)
		})
		r.Get("/filters", func(w http.ResponseWriter, r *http.Request) {
			handlers.HandleFiltersAPI(w, r, catalog)
		})
		r.Get("/list", func(w http.ResponseWriter, r *http.Request) {
			handlers.HandleListAPI(w, r, catalog)
		})
		r.Get("/recommend", func(w http.ResponseWriter, r *http.Request) {
			handlers.HandleRecommendAPI(w, r, catalog)
		})
	})

	return router
}
