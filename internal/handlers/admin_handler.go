package handlers

import (
	"net/http"

	"store-service/internal/dto"
	"store-service/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminOrders(c *gin.Context) {
	var statuses []models.OrderStatus
	for _, raw := range c.QueryArray("status") {
		st, err := models.ParseOrderStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		statuses = append(statuses, st)
	}
	c.JSON(http.StatusOK, h.store.OrderEntries(statuses...))
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.store.UpdateOrderStatus(c.Request.Context(), id, status); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": id, "status": status})
}

func (h *Handler) Charts(c *gin.Context) {
	cumulative := c.Query("cumulative") == "true"
	c.JSON(http.StatusOK, h.store.ProfitSeries(cumulative))
}
