package product

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aleksiojala-maker/hihoneyapp/service/availability"
	catalogsvc "github.com/aleksiojala-maker/hihoneyapp/service/catalog"
	"github.com/aleksiojala-maker/hihoneyapp/service/pricing"
	"github.com/aleksiojala-maker/hihoneyapp/util/dates"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc   catalogsvc.Service
	Avail availability.Service
	V     *validator.Validate
	Log   *slog.Logger
}

// GET /v1/products
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), c.QueryParam("store_id"))
	if err != nil {
		h.Log.Error("product list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/products/:id
func (h *Controller) Detail(c echo.Context) error {
	row, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		h.Log.Error("product detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// GET /v1/products/:id/booked-ranges
func (h *Controller) BookedRanges(c echo.Context) error {
	ranges, err := h.Avail.BookedRanges(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.Log.Error("booked ranges", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if ranges == nil {
		ranges = []availability.Range{}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": ranges})
}

// GET /v1/products/:id/availability
func (h *Controller) Availability(c echo.Context) error {
	var q AvailabilityQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	if err := h.V.Struct(q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	start, err := dates.Combine(q.StartDate, q.PickupTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start"})
	}
	end, err := dates.Combine(q.EndDate, q.ReturnTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end"})
	}
	if start.After(end) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "start must not be after end"})
	}

	product, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		h.Log.Error("availability product", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	ok, err := h.Avail.Check(c.Request().Context(), product.ID, start, end)
	if err != nil {
		h.Log.Error("availability check", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"available":      ok,
		"total_estimate": pricing.Estimate(product.PricePerDay, q.StartDate, q.EndDate),
	})
}

// POST /v1/admin/products
func (h *Controller) Create(c echo.Context) error {
	var req CreateProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	row, err := h.Svc.Create(c.Request().Context(), req.toModel())
	if err != nil {
		if errors.Is(err, catalogsvc.ErrInvalid) || errors.Is(err, catalogsvc.ErrUnknownStore) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		h.Log.Error("product create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, row)
}

// PATCH /v1/admin/products/:id
func (h *Controller) Update(c echo.Context) error {
	var req UpdateProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	row, err := h.Svc.Update(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, catalogsvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		case errors.Is(err, catalogsvc.ErrInvalid), errors.Is(err, catalogsvc.ErrUnknownStore):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		h.Log.Error("product update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// DELETE /v1/admin/products/:id
func (h *Controller) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		h.Log.Error("product delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
