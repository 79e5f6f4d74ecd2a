package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/monitoring"
)

func (h *Handlers) createPayment(c *gin.Context) {
	var p model.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.Payments.Create(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handlers) getPayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.Payments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handlers) listPayments(c *gin.Context) {
	payments, err := h.Payments.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handlers) listPaymentsByLease(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payments, err := h.Payments.ListByLease(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handlers) listPaymentsByStatus(c *gin.Context) {
	status, err := model.ParsePaymentStatus(c.Param("status"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	payments, err := h.Payments.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handlers) listPaymentsByType(c *gin.Context) {
	paymentType, err := model.ParsePaymentType(c.Param("type"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	payments, err := h.Payments.ListByType(c.Request.Context(), paymentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// monthlyRentCollection reports completed rent received in a calendar
// month (?year and ?month, defaulting to the current one).
func (h *Handlers) monthlyRentCollection(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "invalid year")
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "invalid month")
			return
		}
		month = n
	}

	total, err := h.Payments.MonthlyRentCollection(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "total_collected": total})
}

func (h *Handlers) listPaymentsByDateRange(c *gin.Context) {
	start, err := model.ParseDate(c.Query("start"))
	if err != nil {
		badRequest(c, "invalid start: "+err.Error())
		return
	}
	end, err := model.ParseDate(c.Query("end"))
	if err != nil {
		badRequest(c, "invalid end: "+err.Error())
		return
	}
	payments, err := h.Payments.ListByDateRange(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handlers) listPaymentsByTenant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payments, err := h.Payments.ListByTenant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handlers) listPaymentsByProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payments, err := h.Payments.ListByProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// listOverduePayments returns pending payments past due as of ?asOf
// (default today), oldest first.
func (h *Handlers) listOverduePayments(c *gin.Context) {
	asOf, ok := dateQuery(c, "asOf")
	if !ok {
		return
	}
	start := time.Now()
	overdue, err := h.Reconciler.OverduePayments(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	monitoring.ReconciliationDuration.Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, overdue)
}

func (h *Handlers) listLatePayments(c *gin.Context) {
	payments, err := h.Payments.ListLate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handlers) totalPaymentsForLease(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	total, err := h.Reconciler.TotalPaid(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lease_id": id, "total_paid": total})
}

func (h *Handlers) leaseBalance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	asOf, ok := dateQuery(c, "asOf")
	if !ok {
		return
	}
	balance, err := h.Reconciler.Balance(c.Request.Context(), id, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *Handlers) paymentSummary(c *gin.Context) {
	asOf, ok := dateQuery(c, "asOf")
	if !ok {
		return
	}
	start := time.Now()
	summary, err := h.Reconciler.Summary(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	monitoring.ReconciliationDuration.Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, summary)
}

func (h *Handlers) updatePayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p model.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	p.ID = id
	if err := h.Payments.Update(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handlers) deletePayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Payments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
