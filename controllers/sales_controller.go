package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pos-service/middlewares"
	"pos-service/models"
	"pos-service/services"
)

type SalesController struct {
	recorder *services.SaleRecorder
}

func NewSalesController(recorder *services.SaleRecorder) *SalesController {
	return &SalesController{recorder: recorder}
}

func (sc *SalesController) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "sales_form.html", nil)
}

// Submit appends one sale row and redirects back to the form.
func (sc *SalesController) Submit(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 400
		middlewares.RecordStoreOperation("sale_append", status)
	}()

	var form models.SaleForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sale, err := sc.recorder.Record(form)
	if err != nil {
		log.Error().Err(err).Msg("sale append failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}
	log.Info().Str("item", sale.Item).Float64("total", sale.Total).Msg("sale recorded")
	c.Redirect(http.StatusSeeOther, "/")
}
