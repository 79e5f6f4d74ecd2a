package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rentflow-solutions/property-management-service/internal/ledger"
	"github.com/rentflow-solutions/property-management-service/internal/service"
)

// Handlers bundles the services behind the REST surface.
type Handlers struct {
	Properties  *service.PropertyService
	Tenants     *service.TenantService
	Leases      *service.LeaseService
	Payments    *service.PaymentService
	Maintenance *service.MaintenanceService
	Reconciler  *ledger.Reconciler
}

// NewRouter wires every route under /api along with the shared
// middleware.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(), Metrics())

	api := router.Group("/api")

	properties := api.Group("/properties")
	{
		properties.POST("", h.createProperty)
		properties.GET("", h.listProperties)
		properties.GET("/search", h.searchProperties)
		properties.GET("/:id", h.getProperty)
		properties.PUT("/:id", h.updateProperty)
		properties.DELETE("/:id", h.deleteProperty)
	}

	tenants := api.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listTenants)
		tenants.GET("/search", h.searchTenants)
		tenants.GET("/email/:email", h.getTenantByEmail)
		tenants.GET("/employment/:status", h.listTenantsByEmployment)
		tenants.GET("/:id", h.getTenant)
		tenants.PUT("/:id", h.updateTenant)
		tenants.DELETE("/:id", h.deleteTenant)
	}

	leases := api.Group("/leases")
	{
		leases.POST("", h.createLease)
		leases.GET("", h.listLeases)
		leases.GET("/active", h.listActiveLeases)
		leases.GET("/expiring", h.listLeasesExpiringSoon)
		leases.GET("/expired-active", h.listExpiredActiveLeases)
		leases.GET("/stats", h.leaseStatusCounts)
		leases.GET("/status/:status", h.listLeasesByStatus)
		leases.GET("/property/:id", h.listLeasesByProperty)
		leases.GET("/tenant/:id", h.listLeasesByTenant)
		leases.GET("/:id", h.getLease)
		leases.PUT("/:id", h.updateLease)
		leases.DELETE("/:id", h.deleteLease)
	}

	payments := api.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/overdue", h.listOverduePayments)
		payments.GET("/late", h.listLatePayments)
		payments.GET("/summary", h.paymentSummary)
		payments.GET("/date-range", h.listPaymentsByDateRange)
		payments.GET("/status/:status", h.listPaymentsByStatus)
		payments.GET("/type/:type", h.listPaymentsByType)
		payments.GET("/monthly", h.monthlyRentCollection)
		payments.GET("/lease/:id", h.listPaymentsByLease)
		payments.GET("/lease/:id/total", h.totalPaymentsForLease)
		payments.GET("/lease/:id/balance", h.leaseBalance)
		payments.GET("/tenant/:id", h.listPaymentsByTenant)
		payments.GET("/property/:id", h.listPaymentsByProperty)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}

	maintenance := api.Group("/maintenance")
	{
		maintenance.POST("", h.createMaintenanceRequest)
		maintenance.GET("", h.listMaintenanceRequests)
		maintenance.GET("/status/:status", h.listMaintenanceByStatus)
		maintenance.GET("/priority/:priority", h.listMaintenanceByPriority)
		maintenance.GET("/property/:id", h.listMaintenanceByProperty)
		maintenance.GET("/property/:id/cost", h.maintenanceCostForProperty)
		maintenance.GET("/:id", h.getMaintenanceRequest)
		maintenance.PUT("/:id", h.updateMaintenanceRequest)
		maintenance.DELETE("/:id", h.deleteMaintenanceRequest)
	}

	return router
}
