package httpserver

import (
	"context"
	"errors"
	"log"
	"time"

	"sneakerstore/internal/domain"
	ordersvc "sneakerstore/internal/service/order"
	productsvc "sneakerstore/internal/service/product"
	usersvc "sneakerstore/internal/service/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserService is the authentication surface consumed by the router.
type UserService interface {
	Signup(ctx context.Context, in usersvc.SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	TokenTTLSeconds() int
}

// ProductService exposes catalog reads and mutations.
type ProductService interface {
	List(ctx context.Context, category string, skip, limit int) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CartService exposes per-user cart mutations.
type CartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) (*domain.Cart, error)
}

// OrderService exposes order creation and tracking.
type OrderService interface {
	Create(ctx context.Context, userID string, in ordersvc.CreateInput) (*domain.Order, error)
	Get(ctx context.Context, userID, orderID string) (*domain.Order, error)
	List(ctx context.Context, userID string) ([]domain.Order, error)
	SetStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}

// Deps bundles the services the router depends on.
type Deps struct {
	UserSvc    UserService
	ProductSvc ProductService
	CartSvc    CartService
	OrderSvc   OrderService
}

func (d Deps) validate() error {
	if d.UserSvc == nil || d.ProductSvc == nil || d.CartSvc == nil || d.OrderSvc == nil {
		return errors.New("httpserver: all services must be provided")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestIDMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", rootHandler)
	router.GET("/health", healthHandler)
	router.GET("/readyz", readyHandler(db))

	authRequired := authMiddleware(deps.UserSvc)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", signupHandler(deps.UserSvc))
		authGroup.POST("/login", loginFormHandler(deps.UserSvc))
		authGroup.POST("/login-json", loginJSONHandler(deps.UserSvc))
		authGroup.GET("/me", authRequired, meHandler)
	}

	products := router.Group("/products")
	{
		products.GET("", listProductsHandler(deps.ProductSvc))
		products.GET("/:id", getProductHandler(deps.ProductSvc))
		products.POST("", authRequired, createProductHandler(deps.ProductSvc))
		products.PUT("/:id", authRequired, updateProductHandler(deps.ProductSvc))
		products.DELETE("/:id", authRequired, deleteProductHandler(deps.ProductSvc))
	}
	// Search lives outside /products: gin cannot register a static
	// "search" segment next to the ":id" parameter.
	router.GET("/search/:query", searchProductsHandler(deps.ProductSvc))

	cartGroup := router.Group("/cart", authRequired)
	{
		cartGroup.GET("", getCartHandler(deps.CartSvc))
		cartGroup.POST("/add", addCartItemHandler(deps.CartSvc))
		cartGroup.DELETE("/remove/:productId", removeCartItemHandler(deps.CartSvc))
		cartGroup.DELETE("/clear", clearCartHandler(deps.CartSvc))
	}

	orders := router.Group("/orders", authRequired)
	{
		orders.GET("", listOrdersHandler(deps.OrderSvc))
		orders.GET("/:id", getOrderHandler(deps.OrderSvc))
		orders.POST("", createOrderHandler(deps.OrderSvc))
		orders.PATCH("/:id/status", updateOrderStatusHandler(deps.OrderSvc))
	}

	return router, nil
}

func rootHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Welcome to Sneaker Store API",
		"version": "1.0.0",
	})
}
