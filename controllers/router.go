package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pos-service/config"
	"pos-service/middlewares"
)

// NewPOSRouter wires the storefront, checkout, back office and catalog
// admin routes.
func NewPOSRouter(cfg *config.Config, pc *POSController) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.PrometheusMiddleware())
	r.Use(sessions.Sessions("pos_session", cookie.NewStore([]byte(cfg.SessionSecret))))
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", pc.Storefront)
	r.POST("/checkout", pc.Checkout)
	r.GET("/backoffice", pc.BackOffice)

	products := r.Group("/products")
	{
		products.GET("", pc.ProductsPage)
		products.POST("/create", pc.CreateProduct)
		products.POST("/:id/toggle", pc.ToggleProduct)
		products.POST("/:id/update", pc.UpdateProduct)
		products.POST("/:id/delete", pc.DeleteProduct)
	}

	return r
}

// NewSalesRouter wires the one-form sales logger.
func NewSalesRouter(cfg *config.Config, sc *SalesController) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.PrometheusMiddleware())
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", sc.Form)
	r.POST("/", sc.Submit)

	return r
}
