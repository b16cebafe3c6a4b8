package httpserver

import (
	"net/http"

	"shopadmin/internal/domain"

	"github.com/gin-gonic/gin"
)

type customerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

func listCustomersHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := svc.List(c.Request.Context(), c.Query("search"))
		if err != nil {
			fail(c, err)
			return
		}
		if customers == nil {
			customers = []domain.Customer{}
		}
		c.JSON(http.StatusOK, customers)
	}
}

func createCustomerHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid customer payload")
			return
		}
		created, err := svc.Create(c.Request.Context(), domain.Customer{
			Name:     req.Name,
			Phone:    req.Phone,
			Email:    req.Email,
			Location: req.Location,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
