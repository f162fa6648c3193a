package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/services"
)

// ProductHandler serves product reference data.
type ProductHandler struct {
	productService services.ProductServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService services.ProductServicer) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts handles listing all products.
// @Summary     List products
// @Description List every investable product
// @Tags        products
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.Product "Products"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store failure"
// @Router      /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
