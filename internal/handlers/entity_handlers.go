package handlers

import (
	"net/http"

	"store-service/internal/dto"
	"store-service/internal/models"
	"store-service/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCountries(c *gin.Context) {
	if !h.applySort(c, h.store.SortCountries) {
		return
	}
	c.JSON(http.StatusOK, h.store.Countries())
}

func (h *Handler) CreateCountry(c *gin.Context) {
	var in models.Country
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.store.CreateCountry(c.Request.Context(), in); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, in)
}

func (h *Handler) DeleteCountry(c *gin.Context) {
	ok, err := h.store.DeleteCountry(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	deleted(c, ok)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	if !h.applySort(c, h.store.SortCustomers) {
		return
	}
	c.JSON(http.StatusOK, h.store.Customers())
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var in models.Customer
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out, err := h.store.CreateCustomer(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	removed, err := h.store.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	deleted(c, removed)
}

func (h *Handler) ListCategories(c *gin.Context) {
	if !h.applySort(c, h.store.SortCategories) {
		return
	}
	c.JSON(http.StatusOK, h.store.Categories())
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var in models.ProductCategory
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out, err := h.store.CreateCategory(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	removed, err := h.store.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	deleted(c, removed)
}

func (h *Handler) ListProducts(c *gin.Context) {
	if !h.applySort(c, h.store.SortProducts) {
		return
	}
	c.JSON(http.StatusOK, h.store.Products())
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var in models.Product
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out, err := h.store.CreateProduct(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	removed, err := h.store.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	deleted(c, removed)
}

func (h *Handler) ListWarehouses(c *gin.Context) {
	if !h.applySort(c, h.store.SortWarehouses) {
		return
	}
	c.JSON(http.StatusOK, h.store.Warehouses())
}

func (h *Handler) CreateWarehouse(c *gin.Context) {
	var in models.Warehouse
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out, err := h.store.CreateWarehouse(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) DeleteWarehouse(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	removed, err := h.store.DeleteWarehouse(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	deleted(c, removed)
}

func (h *Handler) ListInventories(c *gin.Context) {
	if !h.applySort(c, h.store.SortInventories) {
		return
	}
	c.JSON(http.StatusOK, h.store.Inventories())
}

func (h *Handler) CreateInventory(c *gin.Context) {
	var in models.Inventory
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.store.CreateInventory(c.Request.Context(), in); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, in)
}

func (h *Handler) DeleteInventory(c *gin.Context) {
	productID, ok := pathInt(c, "productID")
	if !ok {
		return
	}
	warehouseID, ok := pathInt(c, "warehouseID")
	if !ok {
		return
	}
	removed, err := h.store.DeleteInventory(c.Request.Context(), service.InventoryKey{
		ProductID:   productID,
		WarehouseID: warehouseID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	deleted(c, removed)
}

func (h *Handler) ListOrders(c *gin.Context) {
	if !h.applySort(c, h.store.SortOrders) {
		return
	}
	c.JSON(http.StatusOK, h.store.Orders())
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var in models.Order
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out, err := h.store.CreateOrder(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	removed, err := h.store.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	deleted(c, removed)
}
