package httpserver

import (
	"net/http"

	"shopadmin/internal/domain"

	"github.com/gin-gonic/gin"
)

type productRequest struct {
	Code        string  `json:"code"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image"`
	Description string  `json:"description"`
	PriceVND    int64   `json:"price"`
	CostVND     int64   `json:"importPrice"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

func (r productRequest) toDomain() domain.Product {
	return domain.Product{
		Code:        r.Code,
		SKU:         r.SKU,
		Name:        r.Name,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		PriceVND:    r.PriceVND,
		CostVND:     r.CostVND,
		Stock:       r.Stock,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
	}
}

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), c.Query("search"), c.Query("category"))
		if err != nil {
			fail(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid product payload")
			return
		}
		created, err := svc.Create(c.Request.Context(), req.toDomain())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid product payload")
			return
		}
		p := req.toDomain()
		p.ID = c.Param("id")
		// Active is managed through the toggle endpoint; keep it set so
		// an update does not silently deactivate the product.
		p.Active = true
		updated, err := svc.Update(c.Request.Context(), p)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type toggleRequest struct {
	Active bool `json:"active"`
}

func toggleProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid toggle payload")
			return
		}
		if err := svc.SetActive(c.Request.Context(), c.Param("id"), req.Active); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
