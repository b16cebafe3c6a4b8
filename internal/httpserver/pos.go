package httpserver

import (
	"context"
	"net/http"

	"shopadmin/internal/service/pos"

	"github.com/gin-gonic/gin"
)

// viewOrFail is the shared shape of every session operation: run it,
// return the refreshed terminal view or the mapped error.
func viewOrFail(c *gin.Context, op func(ctx context.Context) (*pos.View, error)) {
	v, err := op(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func createSessionHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := svc.CreateSession(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, v)
	}
}

func getSessionHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.GetView(ctx, c.Param("sid"))
		})
	}
}

func closeSessionHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CloseSession(c.Request.Context(), c.Param("sid")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type selectCustomerRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
}

func selectCustomerHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "customerId required")
			return
		}
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.SelectCustomer(ctx, c.Param("sid"), req.CustomerID)
		})
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func addItemHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "productId required")
			return
		}
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.AddItem(ctx, c.Param("sid"), req.ProductID)
		})
	}
}

type quantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func updateQuantityHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "delta required")
			return
		}
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.UpdateQuantity(ctx, c.Param("sid"), c.Param("productId"), req.Delta)
		})
	}
}

func removeItemHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.RemoveItem(ctx, c.Param("sid"), c.Param("productId"))
		})
	}
}

func clearCartHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.ClearCart(ctx, c.Param("sid"))
		})
	}
}

func startCheckoutHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.StartCheckout(ctx, c.Param("sid"))
		})
	}
}

func chooseCashHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.ChooseCash(ctx, c.Param("sid"))
		})
	}
}

func chooseQRHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.ChooseQR(ctx, c.Param("sid"))
		})
	}
}

func backHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.Back(ctx, c.Param("sid"))
		})
	}
}

func confirmQRHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.ConfirmQR(ctx, c.Param("sid"))
		})
	}
}

func closeCheckoutHandler(svc POSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewOrFail(c, func(ctx context.Context) (*pos.View, error) {
			return svc.CloseCheckout(ctx, c.Param("sid"))
		})
	}
}
