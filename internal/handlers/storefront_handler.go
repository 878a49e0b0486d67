package handlers

import (
	"net/http"

	"store-service/internal/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	customer, err := h.store.Login(req.FirstName, req.LastName, req.Email)
	if err != nil {
		h.log.Warn("storefront login rejected", zap.String("email", req.Email))
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) Logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *Handler) Catalog(c *gin.Context) {
	entries, err := h.store.Catalog()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) SelectQuantity(c *gin.Context) {
	productID, ok := pathInt(c, "productID")
	if !ok {
		return
	}
	var req dto.SelectQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	effective, err := h.store.SelectQuantity(productID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "quantity": effective})
}

func (h *Handler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	order, err := h.store.Purchase(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
