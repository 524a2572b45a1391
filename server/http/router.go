package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"sku-mapper/internal/config"
	"sku-mapper/internal/middleware"
	"sku-mapper/internal/order"
	skuHnd "sku-mapper/internal/skumap/handler"
	"sku-mapper/internal/skumap/service"
	"sku-mapper/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, store *service.Store, orders *order.Processor) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> rate -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Route("/resolve", func(r chi.Router) {
		r.Post("/", skuHnd.Resolve(store))
		r.Post("/batch", skuHnd.ResolveBatch(store))
	})

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", skuHnd.Catalog(store))
		r.Post("/reload", skuHnd.Reload(store))
	})

	r.Post("/orders", skuHnd.Order(orders))

	return r
}
