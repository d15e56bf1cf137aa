package rental

import (
	"log/slog"
	"net/http"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	rs "github.com/aleksiojala-maker/hihoneyapp/service/rental"
	"github.com/aleksiojala-maker/hihoneyapp/util/dates"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/rentals?user_id=...
func (h *Controller) My(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "user_id required"})
	}
	rows, err := h.Svc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/rentals/:id/pay upgrades a pay-at-store rental to paid.
func (h *Controller) Pay(c echo.Context) error {
	var req PayRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	row, err := h.Svc.MarkPaid(c.Request().Context(), c.Param("id"), req.Card.toModel())
	if err != nil {
		h.Log.Error("rental pay", "err", err)
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrPaymentDeclined:
			return c.JSON(http.StatusPaymentRequired, echo.Map{"message": "payment declined"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, row)
}

// GET /v1/admin/rentals
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("admin rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/admin/bookings
func (h *Controller) AdminBook(c echo.Context) error {
	var req AdminBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	start, err := dates.Parse(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start_date"})
	}
	end, err := dates.Parse(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end_date"})
	}

	row, err := h.Svc.AdminBook(c.Request().Context(), rs.AdminBooking{
		ProductID: req.ProductID,
		Customer:  req.CustomerName,
		StartDate: start,
		EndDate:   end,
		Status:    model.RentalStatus(req.Status),
	})
	if err != nil {
		h.Log.Error("admin booking", "err", err)
		switch rs.Code(err) {
		case rs.ErrProductNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		case rs.ErrInvalidRange, rs.ErrInvalidStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, row)
}

// PATCH /v1/admin/rentals/:id
func (h *Controller) Update(c echo.Context) error {
	var req UpdateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	patch := model.RentalPatch{TotalPrice: req.TotalPrice}
	if req.StartDate != nil {
		t, err := dates.Parse(*req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start_date"})
		}
		patch.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := dates.Parse(*req.EndDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end_date"})
		}
		patch.EndDate = &t
	}
	if req.Status != nil {
		st := model.RentalStatus(*req.Status)
		patch.Status = &st
	}
	if req.PaymentStatus != nil {
		ps := model.PaymentStatus(*req.PaymentStatus)
		patch.PaymentStatus = &ps
	}

	row, err := h.Svc.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		h.Log.Error("rental update", "err", err)
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrInvalidStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, row)
}

// DELETE /v1/admin/rentals/:id
func (h *Controller) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		h.Log.Error("rental delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// GET /v1/admin/stats
func (h *Controller) Stats(c echo.Context) error {
	stats, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		h.Log.Error("stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, stats)
}
