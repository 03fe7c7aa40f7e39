package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/Phoenixs77/CarletonCalendar/data"
)

// Serve runs the paste-and-download front end until the listener fails.
func Serve(port int) error {
	r := chi.NewRouter()
	cors := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300, // Maximum age for preflight requests
	})
	r.Use(cors.Handler)
	r.Use(middleware.Logger)

	dbPool, err := data.NewPool(context.Background())
	if err != nil {
		slog.Error("Fatal cannot connect to main db", "err", err)
		return err
	}

	h := &formHandler{
		store:  data.NewEmailStore(dbPool),
		logger: slog.Default(),
	}

	r.Get("/", h.showForm)
	// The conversion itself is cheap but unmetered pastes are not.
	r.With(rateLimit(rate.Every(time.Second), 5)).Post("/", h.convert)

	slog.Info("Running server on", "port", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), r)
}

// rateLimit rejects requests beyond the shared token bucket with a 429.
func rateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
