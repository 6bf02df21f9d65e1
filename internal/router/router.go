package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/saqib40/kit-and-adapter/internal/shell"
)

func SetupRoutes(r chi.Router, graphql http.Handler, page *shell.Page) chi.Router {
	// ---- Global Middleware ----
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/query", graphql)

	// ---- Front-end ----
	r.Get("/", page.Render)
	r.Route("/actions", func(a chi.Router) {
		a.Post("/connect", page.Connect)
		a.Post("/disconnect", page.Disconnect)
		a.Post("/recipient", page.SetRecipient)
		a.Post("/airdrop", page.Airdrop)
		a.Post("/send", page.Send)
	})

	return r
}

func New(graphql http.Handler, page *shell.Page) http.Handler {
	return SetupRoutes(chi.NewRouter(), graphql, page)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Handled request")
	})
}
