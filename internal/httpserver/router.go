package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	api.GET("/museums", h.listMuseums)
	api.GET("/museums/:id", h.getMuseum)
	api.GET("/categories", h.listCategories)
	api.GET("/categories/:key", h.getCategory)
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)

	cart := api.Group("/cart", sessionMiddleware())
	cart.GET("", h.getCart)
	cart.POST("", h.addToCart)
	cart.PUT("/:id", h.updateCartItem)
	cart.DELETE("/:id", h.removeCartItem)
	cart.DELETE("", h.clearCart)

	return router
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
