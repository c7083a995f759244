package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sneakerstore/internal/auth"
	"sneakerstore/internal/config"
	"sneakerstore/internal/db"
	"sneakerstore/internal/httpserver"
	cartrepo "sneakerstore/internal/repository/cart"
	orderrepo "sneakerstore/internal/repository/order"
	productrepo "sneakerstore/internal/repository/product"
	userrepo "sneakerstore/internal/repository/user"
	cartsvc "sneakerstore/internal/service/cart"
	ordersvc "sneakerstore/internal/service/order"
	productsvc "sneakerstore/internal/service/product"
	usersvc "sneakerstore/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	hasher := auth.NewPasswordHasher(cfg.KDFIterations)
	tokens := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := userrepo.NewPostgres(dbpool, logger)
	userService := usersvc.New(userRepo, hasher, tokens)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)
	cartRepo := cartrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo, cartRepo, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		UserSvc:    userService,
		ProductSvc: productService,
		CartSvc:    cartService,
		OrderSvc:   orderService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
