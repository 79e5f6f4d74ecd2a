package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/monitoring"
)

func (h *Handlers) createLease(c *gin.Context) {
	var l model.Lease
	if err := c.ShouldBindJSON(&l); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.Leases.Create(c.Request.Context(), &l); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *Handlers) getLease(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	l, err := h.Leases.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handlers) listLeases(c *gin.Context) {
	leases, err := h.Leases.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leases)
}

func (h *Handlers) listActiveLeases(c *gin.Context) {
	leases, err := h.Leases.ActiveLeases(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leases)
}

func (h *Handlers) listLeasesByStatus(c *gin.Context) {
	status, err := model.ParseLeaseStatus(c.Param("status"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	leases, err := h.Leases.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leases)
}

func (h *Handlers) listLeasesByProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	leases, err := h.Leases.ListByProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leases)
}

func (h *Handlers) listLeasesByTenant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	leases, err := h.Leases.ListByTenant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leases)
}

func (h *Handlers) leaseStatusCounts(c *gin.Context) {
	counts, err := h.Leases.StatusCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// listLeasesExpiringSoon returns active leases ending within ?days
// (default 30) of ?from (default today).
func (h *Handlers) listLeasesExpiringSoon(c *gin.Context) {
	days := 30
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "invalid days")
			return
		}
		days = n
	}
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}

	leases, err := h.Reconciler.LeasesExpiringSoon(c.Request.Context(), days, from)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leases)
}

// listExpiredActiveLeases reports leases still ACTIVE past their end
// date. Data-quality diagnostic: rows are reported, never corrected.
func (h *Handlers) listExpiredActiveLeases(c *gin.Context) {
	today, ok := dateQuery(c, "asOf")
	if !ok {
		return
	}
	leases, err := h.Reconciler.ExpiredActiveLeases(c.Request.Context(), today)
	if err != nil {
		respondError(c, err)
		return
	}

	monitoring.ExpiredActiveLeases.Set(float64(len(leases)))
	if len(leases) > 0 {
		monitoring.DataQualityAlert("expired leases still marked active", map[string]string{
			"count": strconv.Itoa(len(leases)),
			"as_of": today.String(),
		})
	}
	c.JSON(http.StatusOK, leases)
}

func (h *Handlers) updateLease(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var l model.Lease
	if err := c.ShouldBindJSON(&l); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	l.ID = id
	if err := h.Leases.Update(c.Request.Context(), &l); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handlers) deleteLease(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Leases.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
