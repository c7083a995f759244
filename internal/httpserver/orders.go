package httpserver

import (
	"net/http"

	"sneakerstore/internal/domain"
	ordersvc "sneakerstore/internal/service/order"

	"github.com/gin-gonic/gin"
)

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func listOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := orders.List(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		if result == nil {
			result = []domain.Order{}
		}
		c.JSON(http.StatusOK, result)
	}
}

func getOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func createOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		o, err := orders.Create(c.Request.Context(), currentUser(c).ID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func updateOrderStatusHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in statusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "status required"})
			return
		}
		o, err := orders.SetStatus(c.Request.Context(), c.Param("id"), in.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "status": o.Status})
	}
}
