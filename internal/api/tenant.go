package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

func (h *Handlers) createTenant(c *gin.Context) {
	var t model.Tenant
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.Tenants.Create(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handlers) getTenant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	t, err := h.Tenants.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handlers) getTenantByEmail(c *gin.Context) {
	t, err := h.Tenants.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handlers) listTenants(c *gin.Context) {
	tenants, err := h.Tenants.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

func (h *Handlers) searchTenants(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		badRequest(c, "name query parameter is required")
		return
	}
	tenants, err := h.Tenants.SearchByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

func (h *Handlers) listTenantsByEmployment(c *gin.Context) {
	status, err := model.ParseEmploymentStatus(c.Param("status"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	tenants, err := h.Tenants.ListByEmploymentStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

func (h *Handlers) updateTenant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var t model.Tenant
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	t.ID = id
	if err := h.Tenants.Update(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handlers) deleteTenant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Tenants.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
