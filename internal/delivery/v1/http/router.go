package http

import (
	_ "github.com/DRSN-tech/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(authUC usecase.AuthUC, catalogUC usecase.CatalogUC,
	cartUC usecase.CartUC, orderUC usecase.OrderUC, authCfg *cfg.AuthCfg) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	authMw := NewAuthMiddleware(authUC, authCfg, r.logger)

	authHandler := NewAuthHandler(authUC, authCfg, r.logger)
	catalogHandler := NewCatalogHandler(catalogUC, r.logger)
	cartHandler := NewCartHandler(cartUC, r.logger)
	orderHandler := NewOrderHandler(orderUC, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerAuthRoutes(v1, authHandler, authMw)
		registerCatalogRoutes(v1, catalogHandler)
		registerCartRoutes(v1, cartHandler, authMw)
		registerOrderRoutes(v1, orderHandler, authMw)
		registerAdminRoutes(v1, authHandler, catalogHandler, orderHandler, authMw)
	})
}

func registerAuthRoutes(router chi.Router, h *AuthHandler, mw *AuthMiddleware) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.register)
		auth.Post("/login", h.login)
		auth.Post("/logout", h.logout)
		auth.With(mw.RequireAuth).Get("/me", h.me)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{productID}", h.getProduct)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler, mw *AuthMiddleware) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Use(mw.RequireAuth)
		cart.Get("/", h.getCart)
		cart.Post("/items", h.addItem)
		cart.Put("/items/{productID}", h.setQuantity)
		cart.Delete("/items/{productID}", h.removeItem)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler, mw *AuthMiddleware) {
	router.Route("/orders", func(orders chi.Router) {
		orders.Use(mw.RequireAuth)
		orders.Post("/", h.checkout)
		orders.Get("/", h.listOrders)
		orders.Get("/{orderID}", h.getOrder)
	})
}

func registerAdminRoutes(router chi.Router, auth *AuthHandler, catalog *CatalogHandler, orders *OrderHandler, mw *AuthMiddleware) {
	router.Route("/admin", func(admin chi.Router) {
		admin.Use(mw.RequireAuth, mw.RequireAdmin)

		admin.Get("/users", auth.listUsers)

		admin.Post("/products", catalog.upsertProduct)
		admin.Get("/products", catalog.listAllProducts)
		admin.Delete("/products/{productID}", catalog.archiveProduct)
		admin.Get("/statistics", catalog.statistics)

		admin.Get("/orders", orders.listAllOrders)
		admin.Patch("/orders/{orderID}/status", orders.updateStatus)
	})
}
