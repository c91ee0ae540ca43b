package controllers

import (
	"net/http"

	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type placeOrderPayload struct {
	RoomNumber string               `json:"roomNumber" binding:"required"`
	Items      []services.OrderLine `json:"items" binding:"required"`
}

func (oc *OrderController) Place(c *gin.Context) {
	var payload placeOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	order, err := oc.Orders.PlaceOrder(payload.RoomNumber, payload.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

// List feeds the kitchen display; every order, newest first.
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (oc *OrderController) ListForRoom(c *gin.Context) {
	orders, err := oc.Orders.GetForRoom(c.Param("number"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

type orderStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload orderStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	order, err := oc.Orders.UpdateStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}
