package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openapimw "github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/kaanhvc/catalog-api/internal/domain"
	websocketTransport "github.com/kaanhvc/catalog-api/internal/transport/websocket"
)

// RouterConfig carries the handlers and cross-cutting pieces the router
// wires together.
type RouterConfig struct {
	Categories *CategoryHandler
	Products   *ProductHandler
	WebSocket  *websocketTransport.Handler
	Responder  *Responder
	Logger     hclog.Logger
	// StorePing reports store reachability for the health endpoint; nil
	// means no external store (in-memory mode).
	StorePing func(ctx context.Context) error
	// SwaggerPath is the filesystem location of swagger.yaml; empty
	// disables the docs routes.
	SwaggerPath string
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := mux.NewRouter()

	mw := NewMiddleware(cfg.Logger, cfg.Responder)
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.RecoveryMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	router.HandleFunc("/category", cfg.Categories.CreateCategory).Methods("POST")
	router.HandleFunc("/category", cfg.Categories.ListCategories).Methods("GET")
	router.HandleFunc("/category/{id}", cfg.Categories.GetCategoryByID).Methods("GET")
	router.HandleFunc("/category/{id}", cfg.Categories.UpdateCategory).Methods("PUT")
	router.HandleFunc("/category/{id}", cfg.Categories.DeleteCategory).Methods("DELETE")

	router.HandleFunc("/product", cfg.Products.CreateProduct).Methods("POST")
	router.HandleFunc("/product", cfg.Products.ListProducts).Methods("GET")
	router.HandleFunc("/product/{id}", cfg.Products.GetProductByID).Methods("GET")
	router.HandleFunc("/product/{id}", cfg.Products.UpdateProduct).Methods("PUT")
	router.HandleFunc("/product/{id}", cfg.Products.DeleteProduct).Methods("DELETE")

	router.HandleFunc("/health", healthHandler(cfg)).Methods("GET")

	if cfg.WebSocket != nil {
		router.HandleFunc("/ws", cfg.WebSocket.HandleWebSocket).Methods("GET")
	}

	if cfg.SwaggerPath != "" {
		router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, cfg.SwaggerPath)
		}).Methods("GET")

		swaggerOpts := openapimw.RedocOpts{SpecURL: "/swagger.yaml"}
		router.Handle("/docs", openapimw.Redoc(swaggerOpts, nil)).Methods("GET")
	}

	// unmatched routes share the error envelope, naming the missed path
	router.NotFoundHandler = notFoundHandler(cfg.Responder)
	router.MethodNotAllowedHandler = notFoundHandler(cfg.Responder)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)

	return cors(router)
}

func healthHandler(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := "up"
		if cfg.StorePing != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := cfg.StorePing(ctx); err != nil {
				cfg.Responder.Error(w, r, domain.NewDatabaseError(err))
				return
			}
		} else {
			store = "in-memory"
		}

		cfg.Responder.JSON(w, http.StatusOK, "Service is healthy", map[string]string{
			"status": "up",
			"store":  store,
		})
	}
}

func notFoundHandler(responder *Responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responder.Error(w, r, &domain.Error{
			Kind:    domain.KindNotFound,
			Message: fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path),
		})
	})
}
