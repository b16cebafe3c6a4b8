package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopadmin/internal/config"
	"shopadmin/internal/db"
	"shopadmin/internal/httpserver"
	"shopadmin/internal/receipt"
	customerrepo "shopadmin/internal/repository/customer"
	importsliprepo "shopadmin/internal/repository/importslip"
	orderrepo "shopadmin/internal/repository/order"
	productrepo "shopadmin/internal/repository/product"
	tokenrepo "shopadmin/internal/repository/token"
	userrepo "shopadmin/internal/repository/user"
	authsvc "shopadmin/internal/service/auth"
	catalogsvc "shopadmin/internal/service/catalog"
	customersvc "shopadmin/internal/service/customers"
	inventorysvc "shopadmin/internal/service/inventory"
	ordersvc "shopadmin/internal/service/order"
	possvc "shopadmin/internal/service/pos"
	statssvc "shopadmin/internal/service/stats"
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

	productRepo := productrepo.NewPostgres(dbpool, logger)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	slipRepo := importsliprepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, tokenRepo, logger)
	catalogService := catalogsvc.New(productRepo, logger)
	customerService := customersvc.New(customerRepo, logger)
	posService := possvc.New(productRepo, customerRepo, orderRepo, cfg.TaxRatePercent, logger)
	orderService := ordersvc.New(orderRepo, logger)
	inventoryService := inventorysvc.New(slipRepo, productRepo, logger)
	statsService := statssvc.New(productRepo, orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:      authService,
		CatalogSvc:   catalogService,
		CustomerSvc:  customerService,
		POSSvc:       posService,
		OrderSvc:     orderService,
		InventorySvc: inventoryService,
		StatsSvc:     statsService,
		Seller:       receipt.DefaultInfo,
	}, cfg.CORSOrigin)
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
