package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"store-service/internal/cache"
	"store-service/internal/dto"
	"store-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	store *service.Store
	log   *zap.Logger
}

func NewHandler(store *service.Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// respondError maps service errors onto HTTP statuses. Database
// failures surface the driver's message and leave the service usable;
// nothing here is fatal.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidLogin), errors.Is(err, service.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		h.log.Error("database operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// applySort handles the optional ?sort=<columnIndex>&dir=<asc|desc>
// pair on list endpoints. Returns false after writing the response if
// the parameters are malformed.
func (h *Handler) applySort(c *gin.Context, sortFn func(int, cache.Direction) error) bool {
	raw := c.Query("sort")
	if raw == "" {
		return true
	}
	col, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "sort must be a column index"})
		return false
	}
	dir := cache.Ascending
	if c.Query("dir") == "desc" {
		dir = cache.Descending
	}
	if err := sortFn(col, dir); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: name + " must be an integer"})
		return 0, false
	}
	return v, true
}

func deleted(c *gin.Context, ok bool) {
	c.JSON(http.StatusOK, gin.H{"deleted": ok})
}
