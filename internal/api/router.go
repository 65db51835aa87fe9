package api

import (
	"delivery_orders/internal/middleware" // Custom middleware
	"delivery_orders/internal/store"      // Persistence gateway
	"delivery_orders/internal/utils"      // Cache helpers
	"net/http"                            // HTTP status codes
	"time"                                // Cache TTL

	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics endpoint
)

// Deps are the collaborators the HTTP layer needs
type Deps struct {
	Store      store.Provider // Opens a store session per request
	Cache      utils.Cache    // Read cache, NoopCache when Redis is off
	CacheTTL   time.Duration  // TTL for cached reads
	TokenBytes int            // Random bytes per issued token
}

// NewRouter wires routes and middleware onto a fresh gin engine
func NewRouter(d Deps) *gin.Engine {
	if d.Cache == nil {
		d.Cache = utils.NoopCache{} // Caching disabled
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	// Operational routes
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Every domain route gets its own store session
	routes := r.Group("", middleware.StoreSession(d.Store))
	routes.POST("/create_user", CreateUserHandler(d.TokenBytes)) // Registration, no token required

	// Routes protected by the API token
	authed := routes.Group("", middleware.APITokenAuth(d.Cache, d.CacheTTL))
	authed.GET("/user/:user_id", GetUserHandler())                       // User with order ids
	authed.GET("/user/:user_id/orders", GetUserOrdersHandler())          // Orders of a user
	authed.POST("/create_order", CreateOrderHandler())                   // Create order
	authed.GET("/order/:order_id", GetOrderHandler(d.Cache, d.CacheTTL)) // Order by public id

	return r
}
