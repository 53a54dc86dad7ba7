package router

import (
	"net/http"

	_ "dog-breeds/docs"
	mem "dog-breeds/internal/adapters/storage/memory"
	"dog-breeds/internal/domain/catalog"
	"dog-breeds/internal/domain/favorites"
	"dog-breeds/internal/domain/health"
	"dog-breeds/internal/middleware"
	"dog-breeds/internal/platform/logger"
	"dog-breeds/internal/platform/metrics"
	"dog-breeds/internal/ports/upstream"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Catálogo externo (The Dog API o un fake en tests). Obligatorio.
	Catalog upstream.Catalog

	// Opcional: si no viene, favoritos en memoria.
	Favorites favorites.Repository

	// Opcional: sin métricas no se expone /metrics.
	Metrics *metrics.Metrics

	// Solo informativo para /health.
	DatabaseConfigured bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Location", middleware.HeaderRequestID},
		MaxAge:         300,
	}))

	health.NewHandler(opts.DatabaseConfigured).RegisterRoutes(r)

	favRepo := opts.Favorites
	if favRepo == nil {
		favRepo = mem.NewFavoritesRepo()
	}

	// Services por módulo
	catalogSvc := catalog.NewService(opts.Catalog)
	favoritesSvc := favorites.NewService(favRepo)

	// /api/* son los paths históricos; se mantienen como alias.
	for _, prefix := range []string{"/catalog", "/api/dogs"} {
		r.Route(prefix, func(cr chi.Router) {
			catalog.RegisterRoutes(cr, catalogSvc)
		})
	}
	for _, prefix := range []string{"/favorites", "/api/favorites"} {
		r.Route(prefix, func(fr chi.Router) {
			favorites.RegisterRoutes(fr, favoritesSvc, opts.Metrics)
		})
	}

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
