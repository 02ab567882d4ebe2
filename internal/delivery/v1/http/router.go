package http

import (
	"net/http"

	_ "github.com/boutique-bouquet/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/logger"
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

func (r *Router) Init(prUC usecase.ProductUC, orUC usecase.OrderUC, authUC usecase.AuthUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	prHandler := NewProductHandler(prUC, r.logger)
	orHandler := NewOrderHandler(orUC, r.logger)
	authHandler := NewAuthHandler(authUC, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerPublicRoutes(v1, prHandler, orHandler)

		v1.Route("/admin", func(admin chi.Router) {
			admin.Post("/login", authHandler.login)

			admin.Group(func(protected chi.Router) {
				protected.Use(AdminAuth(authUC, r.logger))
				registerAdminRoutes(protected, prHandler, orHandler)
			})
		})
	})
}

func registerPublicRoutes(router chi.Router, prHandler *ProductHandler, orHandler *OrderHandler) {
	router.Get("/health", healthCheck)

	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{id}", prHandler.getProduct)
	})

	router.Post("/orders", orHandler.createOrder)
}

// healthCheck сообщает о готовности сервиса.
func healthCheck(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func registerAdminRoutes(router chi.Router, prHandler *ProductHandler, orHandler *OrderHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listAllProducts)
		pr.Post("/", prHandler.createProduct)
		pr.Put("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
		pr.Post("/{id}/image", prHandler.uploadProductImage)
	})

	router.Route("/orders", func(or chi.Router) {
		or.Get("/", orHandler.listOrders)
		or.Get("/{id}", orHandler.getOrder)
		or.Put("/{id}", orHandler.updateOrderStatus)
		or.Put("/{id}/status", orHandler.updateOrderStatus)
	})
}
