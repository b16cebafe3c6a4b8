package httpserver

import (
	"net/http"

	"shopadmin/internal/domain"

	"github.com/gin-gonic/gin"
)

func inventoryStatsHandler(svc StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Inventory(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		if summary.LowStock == nil {
			summary.LowStock = []domain.Product{}
		}
		c.JSON(http.StatusOK, summary)
	}
}

func customerStatsHandler(svc StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summaries, err := svc.Customers(c.Request.Context(), c.Query("search"))
		if err != nil {
			fail(c, err)
			return
		}
		if summaries == nil {
			summaries = []domain.CustomerSummary{}
		}
		c.JSON(http.StatusOK, summaries)
	}
}
