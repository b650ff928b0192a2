package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ordertrack/internal/models"
	"ordertrack/internal/service"
)

type listOrdersResponse struct {
	Orders []models.Order `json:"orders"`
	Total  int            `json:"total"`
}

// ListOrders
// @Summary ListOrders
// @Description Returns one page of orders (newest first) with their items, filtered by status, vendor and a substring search over order number and customer name.
// @Produce json
// @Param status query string false "exact status filter"
// @Param vendor query string false "exact vendor filter"
// @Param search query string false "substring over order_number or customer_name"
// @Param limit query int false "page size (default 50)"
// @Param offset query int false "page offset"
// @Success 200 {object} listOrdersResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	filter := models.OrderFilter{
		Status: c.Query("status"),
		Vendor: c.Query("vendor"),
		Search: c.Query("search"),
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = v
	}

	orders, total, err := h.svc.ListOrders(filter)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, listOrdersResponse{Orders: orders, Total: total})
}

// GetOrderByID
// @Summary GetOrderByID
// @Description Returns a single order with its items
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 404,500 {object} errorResponse
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrderByID(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Order not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}

// SearchOrderByNumber
// @Summary SearchOrderByNumber
// @Description Exact-match lookup by the vendor-issued order number
// @Produce json
// @Param orderNumber path string true "order number"
// @Success 200 {object} models.Order
// @Failure 404,500 {object} errorResponse
// @Router /api/orders/search/{orderNumber} [get]
func (h *Handler) SearchOrderByNumber(c *gin.Context) {
	order, err := h.svc.FindOrderByNumber(c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Order not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder
// @Summary CreateOrder
// @Description Creates an order with its items; order_number must be unique
// @Accept json
// @Produce json
// @Param order body models.OrderInput true "order"
// @Success 201 {object} models.Order
// @Failure 400,500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var in models.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.svc.CreateOrder(in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			newErrorResponse(c, http.StatusBadRequest, "Order number already exists")
		case errors.Is(err, service.ErrValidation):
			newErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder
// @Summary UpdateOrder
// @Description Partial update; omitted fields keep their values, a supplied items list replaces the item set wholesale
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param order body models.OrderPatch true "fields to change"
// @Success 200 {object} models.Order
// @Failure 400,404,500 {object} errorResponse
// @Router /api/orders/{id} [put]
func (h *Handler) UpdateOrder(c *gin.Context) {
	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.svc.UpdateOrder(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrConflict):
			newErrorResponse(c, http.StatusBadRequest, "Order number already exists")
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder
// @Summary DeleteOrder
// @Description Removes the order and all of its items
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} map[string]string
// @Failure 404,500 {object} errorResponse
// @Router /api/orders/{id} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.svc.DeleteOrder(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Order not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
