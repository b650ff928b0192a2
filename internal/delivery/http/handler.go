package http

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ordertrack/internal/service"

	_ "ordertrack/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc       service.OrderTracker
	staticDir string
}

func NewHandler(s service.OrderTracker, staticDir string) *Handler {
	if staticDir == "" {
		staticDir = "web"
	}
	return &Handler{svc: s, staticDir: staticDir}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	api := router.Group("/api")
	{
		api.GET("/orders", h.ListOrders)
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/search/:orderNumber", h.SearchOrderByNumber)
		api.GET("/orders/:id", h.GetOrderByID)
		api.PUT("/orders/:id", h.UpdateOrder)
		api.DELETE("/orders/:id", h.DeleteOrder)

		api.GET("/settings", h.GetAllSettings)
		api.GET("/settings/:key", h.GetSetting)
		api.PUT("/settings/:key", h.SetSetting)

		api.GET("/stats", h.GetStats)

		api.POST("/webhooks/order", h.ProcessOrderEmail)

		api.GET("/health", h.Health)
	}

	router.Static("/static", filepath.Join(h.staticDir, "static"))

	// Client-side routing: anything that is not an API call or a bundled
	// asset gets the SPA entry document.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
			return
		}
		c.File(filepath.Join(h.staticDir, "index.html"))
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// Health
// @Summary Health
// @Description Liveness check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
