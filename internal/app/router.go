// internal/app/router.go
package app

import (
	customerHandler "custman-service/internal/handlers/customer"
	healthHandler "custman-service/internal/handlers/health"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	CustomerHandler *customerHandler.CustomerHandler
	HealthHandler   *healthHandler.HealthHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/health", h.HealthHandler.Check)

	// ==================== Customers ====================
	customers := r.Group("/customer")
	{
		customers.GET("", h.CustomerHandler.ListCustomers)
		customers.POST("", h.CustomerHandler.CreateCustomer)

		// Lookup by email has to come before :id or gin would swallow it.
		customers.GET("/email", h.CustomerHandler.GetCustomerByEmail) // ?email_address=xxx

		customers.GET("/:id", h.CustomerHandler.GetCustomer)
		customers.PUT("/:id", h.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:id", h.CustomerHandler.DeleteCustomer)
	}
}
