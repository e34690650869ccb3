package controllers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pos-service/middlewares"
	"pos-service/models"
	"pos-service/services"
)

type POSController struct {
	catalog  *services.CatalogService
	checkout *services.CheckoutService
	report   *services.ReportService
}

func NewPOSController(catalog *services.CatalogService, checkout *services.CheckoutService, report *services.ReportService) *POSController {
	return &POSController{catalog: catalog, checkout: checkout, report: report}
}

// Storefront lists active products grouped by category. Every render
// re-fetches the full catalog.
func (pc *POSController) Storefront(c *gin.Context) {
	grouped, categories, err := pc.catalog.ActiveByCategory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
		return
	}
	c.HTML(http.StatusOK, "storefront.html", gin.H{
		"Categories": categories,
		"Products":   grouped,
	})
}

func (pc *POSController) Checkout(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("checkout", status)
	}()

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Basket must contain at least one item"})
		return
	}

	o, err := pc.checkout.Checkout(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("checkout append failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record order"})
		return
	}
	c.JSON(http.StatusOK, models.CheckoutResponse{OK: true, OrderID: o.OrderID, Total: o.Total})
}

// BackOffice shows today's order total. A store failure degrades to zero
// rather than an error page; the failure is only logged.
func (pc *POSController) BackOffice(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	total, err := pc.report.TotalForDate(c.Request.Context(), today)
	if err != nil {
		log.Warn().Err(err).Msg("back-office aggregation failed, reporting zero")
		total = 0
	}
	c.HTML(http.StatusOK, "backoffice.html", gin.H{
		"Date":  today,
		"Total": total,
	})
}

func (pc *POSController) ProductsPage(c *gin.Context) {
	items, err := pc.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
		return
	}
	session := sessions.Default(c)
	flashes := session.Flashes()
	if err := session.Save(); err != nil {
		log.Warn().Err(err).Msg("session save failed")
	}
	c.HTML(http.StatusOK, "products.html", gin.H{
		"Products": items,
		"Flashes":  flashes,
	})
}

func (pc *POSController) CreateProduct(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 400
		middlewares.RecordStoreOperation("product_create", status)
	}()

	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := pc.catalog.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	pc.flashAndRedirect(c, "Created "+p.Name)
}

// ToggleProduct flips the active flag. An unknown id redirects like a
// success; the catalog treats it as a no-op.
func (pc *POSController) ToggleProduct(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 400
		middlewares.RecordStoreOperation("product_toggle", status)
	}()

	if err := pc.catalog.Toggle(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	pc.flashAndRedirect(c, "Updated product")
}

func (pc *POSController) UpdateProduct(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 400
		middlewares.RecordStoreOperation("product_update", status)
	}()

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := pc.catalog.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	pc.flashAndRedirect(c, "Updated product")
}

func (pc *POSController) DeleteProduct(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 400
		middlewares.RecordStoreOperation("product_delete", status)
	}()

	if err := pc.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	pc.flashAndRedirect(c, "Deleted product")
}

func (pc *POSController) flashAndRedirect(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	if err := session.Save(); err != nil {
		log.Warn().Err(err).Msg("session save failed")
	}
	c.Redirect(http.StatusSeeOther, "/products")
}
