package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func getCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Get(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in addItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "productId required"})
			return
		}
		if in.Quantity == 0 {
			in.Quantity = 1
		}
		cart, err := carts.AddItem(c.Request.Context(), currentUser(c).ID, in.ProductID, in.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "totalCents": cart.TotalCents, "cart": cart})
	}
}

func removeCartItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.RemoveItem(c.Request.Context(), currentUser(c).ID, c.Param("productId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "totalCents": cart.TotalCents, "cart": cart})
	}
}

func clearCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := carts.Clear(c.Request.Context(), currentUser(c).ID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
