package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopmate-api/internal/config"
	"shopmate-api/internal/db"
	"shopmate-api/internal/gateway"
	"shopmate-api/internal/httpserver"
	"shopmate-api/internal/mailer"
	attributerepo "shopmate-api/internal/repository/attribute"
	cartrepo "shopmate-api/internal/repository/cart"
	categoryrepo "shopmate-api/internal/repository/category"
	customerrepo "shopmate-api/internal/repository/customer"
	departmentrepo "shopmate-api/internal/repository/department"
	orderrepo "shopmate-api/internal/repository/order"
	productrepo "shopmate-api/internal/repository/product"
	shippingrepo "shopmate-api/internal/repository/shipping"
	taxrepo "shopmate-api/internal/repository/tax"
	attributesvc "shopmate-api/internal/service/attribute"
	cartsvc "shopmate-api/internal/service/cart"
	categorysvc "shopmate-api/internal/service/category"
	customersvc "shopmate-api/internal/service/customer"
	departmentsvc "shopmate-api/internal/service/department"
	ordersvc "shopmate-api/internal/service/order"
	paymentsvc "shopmate-api/internal/service/payment"
	productsvc "shopmate-api/internal/service/product"
	shippingsvc "shopmate-api/internal/service/shipping"
	taxsvc "shopmate-api/internal/service/tax"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DatabaseURL, db.Options{
		MaxConns:     cfg.DB.MaxConns,
		ConnIdleTime: cfg.DB.ConnIdleTime,
		ConnLifetime: cfg.DB.ConnLifetime,
		PingTimeout:  cfg.DB.PingTimeout,
	})
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	departmentRepo := departmentrepo.NewPostgres(dbpool)
	attributeRepo := attributerepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	shippingRepo := shippingrepo.NewPostgres(dbpool)
	taxRepo := taxrepo.NewPostgres(dbpool)

	customerService := customersvc.New(customerRepo, []byte(cfg.JWTKey), cfg.JWTTTL, cfg.BcryptCost)
	productService := productsvc.New(productRepo)
	categoryService := categorysvc.New(categoryRepo)
	departmentService := departmentsvc.New(departmentRepo)
	attributeService := attributesvc.New(attributeRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo, shippingRepo, taxRepo, cartRepo, logger)
	paymentService := paymentsvc.New(orderRepo, customerRepo, gateway.NewBraintree(cfg.Braintree), mailer.NewSendGrid(cfg.Mail), logger)
	shippingService := shippingsvc.New(shippingRepo)
	taxService := taxsvc.New(taxRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Customers:   customerService,
		Products:    productService,
		Categories:  categoryService,
		Departments: departmentService,
		Attributes:  attributeService,
		Carts:       cartService,
		Orders:      orderService,
		Payments:    paymentService,
		Shipping:    shippingService,
		Taxes:       taxService,
	})
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
