package httpserver

import (
	"net/http"

	"shopadmin/internal/domain"
	"shopadmin/internal/service/inventory"

	"github.com/gin-gonic/gin"
)

func listSlipsHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slips, err := svc.List(c.Request.Context(), c.Query("search"))
		if err != nil {
			fail(c, err)
			return
		}
		if slips == nil {
			slips = []domain.ImportSlip{}
		}
		c.JSON(http.StatusOK, slips)
	}
}

func getSlipHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func createSlipHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inventory.SlipInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid import slip payload")
			return
		}
		created, err := svc.CreateSlip(c.Request.Context(), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func deleteSlipHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteSlip(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
