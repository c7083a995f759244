package httpserver

import (
	"net/http"
	"strconv"

	"sneakerstore/internal/domain"
	productsvc "sneakerstore/internal/service/product"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
		category := c.Query("category")

		result, err := products.List(c.Request.Context(), category, skip, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		if result == nil {
			result = []domain.Product{}
		}
		c.JSON(http.StatusOK, result)
	}
}

func getProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func searchProductsHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := products.Search(c.Request.Context(), c.Param("query"))
		if err != nil {
			respondError(c, err)
			return
		}
		if result == nil {
			result = []domain.Product{}
		}
		c.JSON(http.StatusOK, result)
	}
}

func createProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		p, err := products.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		p, err := products.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
