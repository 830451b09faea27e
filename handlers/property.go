package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/podlesnov2602-commits/Dars2/models"
	"github.com/podlesnov2602-commits/Dars2/repository"
	"github.com/podlesnov2602-commits/Dars2/utils"
)

// PropertyStore is the persistence surface the property endpoints need.
type PropertyStore interface {
	List(ctx context.Context, f repository.Filter) ([]models.Property, error)
	Get(ctx context.Context, id string) (models.Property, error)
	Create(ctx context.Context, input models.PropertyCreate) (models.Property, error)
	Update(ctx context.Context, id string, partial models.PropertyUpdate) (models.Property, error)
	Delete(ctx context.Context, id string) error
}

const cacheTTL = time.Minute

type PropertyController struct {
	store PropertyStore
	cache *utils.Cache
}

func NewPropertyController(store PropertyStore, cache *utils.Cache) *PropertyController {
	return &PropertyController{store: store, cache: cache}
}

// Root is the liveness endpoint.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Real Estate API"})
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()

	filter := repository.Filter{
		PropertyType: c.QueryParam("property_type"),
		Status:       c.QueryParam("status"),
		Location:     c.QueryParam("location"),
	}
	params := map[string]string{
		"property_type": filter.PropertyType,
		"status":        filter.Status,
		"location":      filter.Location,
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
			params["min_price"] = raw
		}
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
			params["max_price"] = raw
		}
	}

	key := utils.QueryKey("properties", pc.cache.Version(ctx, "properties"), params)
	var cached []models.Property
	if pc.cache.Get(ctx, key, &cached) {
		return c.JSON(http.StatusOK, cached)
	}

	properties, err := pc.store.List(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	pc.cache.Set(ctx, key, properties, cacheTTL)
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	key := "property:" + id
	var cached models.Property
	if pc.cache.Get(ctx, key, &cached) {
		return c.JSON(http.StatusOK, cached)
	}

	property, err := pc.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	pc.cache.Set(ctx, key, property, cacheTTL)
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	ctx := c.Request().Context()

	var input models.PropertyCreate
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := input.Validate(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	property, err := pc.store.Create(ctx, input)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	pc.invalidate(ctx, property.ID)
	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var partial models.PropertyUpdate
	if err := c.Bind(&partial); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	property, err := pc.store.Update(ctx, id, partial)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}

	pc.invalidate(ctx, id)
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := pc.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}

	pc.invalidate(ctx, id)
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

// invalidate drops the single-record entry and bumps the list namespace so
// cached query results are not served after a write.
func (pc *PropertyController) invalidate(ctx context.Context, id string) {
	pc.cache.Delete(ctx, "property:"+id)
	pc.cache.BumpVersion(ctx, "properties")
}
