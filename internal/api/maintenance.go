package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

func (h *Handlers) createMaintenanceRequest(c *gin.Context) {
	var m model.MaintenanceRequest
	if err := c.ShouldBindJSON(&m); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.Maintenance.Create(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handlers) getMaintenanceRequest(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	m, err := h.Maintenance.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handlers) listMaintenanceRequests(c *gin.Context) {
	requests, err := h.Maintenance.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handlers) listMaintenanceByProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	requests, err := h.Maintenance.ListByProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handlers) maintenanceCostForProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	total, err := h.Maintenance.TotalCostForProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property_id": id, "total_actual_cost": total})
}

func (h *Handlers) listMaintenanceByStatus(c *gin.Context) {
	status, err := model.ParseMaintenanceStatus(c.Param("status"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	requests, err := h.Maintenance.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handlers) listMaintenanceByPriority(c *gin.Context) {
	priority, err := model.ParseMaintenancePriority(c.Param("priority"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	requests, err := h.Maintenance.ListByPriority(c.Request.Context(), priority)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handlers) updateMaintenanceRequest(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var m model.MaintenanceRequest
	if err := c.ShouldBindJSON(&m); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	m.ID = id
	if err := h.Maintenance.Update(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handlers) deleteMaintenanceRequest(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Maintenance.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
