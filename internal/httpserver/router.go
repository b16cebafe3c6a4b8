package httpserver

import (
	"context"
	"errors"
	"log"

	"shopadmin/internal/domain"
	"shopadmin/internal/receipt"
	"shopadmin/internal/service/inventory"
	"shopadmin/internal/service/pos"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Service interfaces the router depends on. Concrete services satisfy
// them; handler tests swap in stubs.

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}

type CatalogService interface {
	List(ctx context.Context, search, category string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type CustomerService interface {
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}

type POSService interface {
	CreateSession(ctx context.Context) (*pos.View, error)
	GetView(ctx context.Context, sessionID string) (*pos.View, error)
	CloseSession(ctx context.Context, sessionID string) error
	SelectCustomer(ctx context.Context, sessionID, customerID string) (*pos.View, error)
	AddItem(ctx context.Context, sessionID, productID string) (*pos.View, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*pos.View, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*pos.View, error)
	ClearCart(ctx context.Context, sessionID string) (*pos.View, error)
	StartCheckout(ctx context.Context, sessionID string) (*pos.View, error)
	ChooseCash(ctx context.Context, sessionID string) (*pos.View, error)
	ChooseQR(ctx context.Context, sessionID string) (*pos.View, error)
	Back(ctx context.Context, sessionID string) (*pos.View, error)
	ConfirmQR(ctx context.Context, sessionID string) (*pos.View, error)
	CloseCheckout(ctx context.Context, sessionID string) (*pos.View, error)
}

type OrderService interface {
	List(ctx context.Context, search string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Refund(ctx context.Context, id string) (*domain.Order, error)
}

type InventoryService interface {
	CreateSlip(ctx context.Context, in inventory.SlipInput) (*domain.ImportSlip, error)
	List(ctx context.Context, search string) ([]domain.ImportSlip, error)
	Get(ctx context.Context, id string) (*domain.ImportSlip, error)
	DeleteSlip(ctx context.Context, id string) error
}

type StatsService interface {
	Inventory(ctx context.Context) (*domain.InventorySummary, error)
	Customers(ctx context.Context, search string) ([]domain.CustomerSummary, error)
}

// Deps carries everything the router needs.
type Deps struct {
	AuthSvc      AuthService
	CatalogSvc   CatalogService
	CustomerSvc  CustomerService
	POSSvc       POSService
	OrderSvc     OrderService
	InventorySvc InventoryService
	StatsSvc     StatsService
	Seller       receipt.Info
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigin string) (*gin.Engine, error) {
	if deps.AuthSvc == nil {
		return nil, errors.New("auth service is required")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if corsOrigin != "" {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = []string{corsOrigin}
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.POST("/auth/login", loginHandler(deps.AuthSvc))

	authed := api.Group("", authRequired(deps.AuthSvc))

	authed.GET("/auth/me", meHandler)
	authed.POST("/auth/logout", logoutHandler(deps.AuthSvc))

	authed.GET("/products", listProductsHandler(deps.CatalogSvc))
	authed.POST("/products", createProductHandler(deps.CatalogSvc))
	authed.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	authed.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
	authed.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))
	authed.POST("/products/:id/toggle", toggleProductHandler(deps.CatalogSvc))

	authed.GET("/customers", listCustomersHandler(deps.CustomerSvc))
	authed.POST("/customers", createCustomerHandler(deps.CustomerSvc))

	authed.POST("/pos/sessions", createSessionHandler(deps.POSSvc))
	sessions := authed.Group("/pos/sessions/:sid")
	sessions.GET("", getSessionHandler(deps.POSSvc))
	sessions.DELETE("", closeSessionHandler(deps.POSSvc))
	sessions.PUT("/customer", selectCustomerHandler(deps.POSSvc))
	sessions.POST("/items", addItemHandler(deps.POSSvc))
	sessions.PATCH("/items/:productId", updateQuantityHandler(deps.POSSvc))
	sessions.DELETE("/items/:productId", removeItemHandler(deps.POSSvc))
	sessions.DELETE("/items", clearCartHandler(deps.POSSvc))
	sessions.POST("/checkout", startCheckoutHandler(deps.POSSvc))
	sessions.POST("/checkout/cash", chooseCashHandler(deps.POSSvc))
	sessions.POST("/checkout/qr", chooseQRHandler(deps.POSSvc))
	sessions.POST("/checkout/back", backHandler(deps.POSSvc))
	sessions.POST("/checkout/confirm", confirmQRHandler(deps.POSSvc))
	sessions.DELETE("/checkout", closeCheckoutHandler(deps.POSSvc))

	authed.GET("/orders", listOrdersHandler(deps.OrderSvc))
	authed.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	authed.POST("/orders/:id/refund", refundOrderHandler(deps.OrderSvc))
	authed.GET("/orders/:id/receipt", receiptHandler(deps.OrderSvc, deps.Seller))

	authed.GET("/inventory/imports", listSlipsHandler(deps.InventorySvc))
	authed.POST("/inventory/imports", createSlipHandler(deps.InventorySvc))
	authed.GET("/inventory/imports/:id", getSlipHandler(deps.InventorySvc))
	authed.DELETE("/inventory/imports/:id", deleteSlipHandler(deps.InventorySvc))

	authed.GET("/stats/inventory", inventoryStatsHandler(deps.StatsSvc))
	authed.GET("/stats/customers", customerStatsHandler(deps.StatsSvc))

	return router, nil
}
