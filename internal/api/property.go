package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

func (h *Handlers) createProperty(c *gin.Context) {
	var p model.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.Properties.Create(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handlers) getProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.Properties.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handlers) listProperties(c *gin.Context) {
	properties, err := h.Properties.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handlers) searchProperties(c *gin.Context) {
	filter := store.PropertyFilter{
		City:  c.Query("city"),
		State: c.Query("state"),
	}
	if v := c.Query("type"); v != "" {
		t, err := model.ParsePropertyType(v)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		filter.PropertyType = t
	}
	if v := c.Query("minBedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "invalid minBedrooms")
			return
		}
		filter.MinBedrooms = n
	}
	if v := c.Query("minRent"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			badRequest(c, "invalid minRent")
			return
		}
		filter.MinRent = &d
	}
	if v := c.Query("maxRent"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			badRequest(c, "invalid maxRent")
			return
		}
		filter.MaxRent = &d
	}

	properties, err := h.Properties.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handlers) updateProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p model.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	p.ID = id
	if err := h.Properties.Update(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handlers) deleteProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Properties.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
