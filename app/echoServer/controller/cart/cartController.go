package cart

import (
	"log/slog"
	"net/http"

	cs "github.com/aleksiojala-maker/hihoneyapp/service/checkout"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/carts/:userID
func (h *Controller) Get(c echo.Context) error {
	view, err := h.Svc.ViewCart(c.Request().Context(), c.Param("userID"))
	if err != nil {
		h.Log.Error("cart view", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, view)
}

// POST /v1/carts/:userID/items
func (h *Controller) AddItem(c echo.Context) error {
	var req AddItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	item, err := h.Svc.AddToCart(c.Request().Context(), c.Param("userID"), cs.ItemRequest{
		ProductID:  req.ProductID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		PickupTime: req.PickupTime,
		ReturnTime: req.ReturnTime,
	})
	if err != nil {
		return h.mapErr(c, "cart add", err)
	}
	return c.JSON(http.StatusCreated, item)
}

// DELETE /v1/carts/:userID/items/:itemID
func (h *Controller) RemoveItem(c echo.Context) error {
	if err := h.Svc.RemoveFromCart(c.Request().Context(), c.Param("userID"), c.Param("itemID")); err != nil {
		h.Log.Error("cart remove", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "removed"})
}

// POST /v1/carts/:userID/checkout
func (h *Controller) Checkout(c echo.Context) error {
	var req CheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	created, err := h.Svc.Checkout(c.Request().Context(), c.Param("userID"), cs.Method(req.PaymentMethod), req.Card.toModel())
	if err != nil {
		return h.mapErr(c, "checkout", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"rentals": created})
}

// POST /v1/products/:id/bookings
func (h *Controller) BookNow(c echo.Context) error {
	var req BookNowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	row, err := h.Svc.BookNow(c.Request().Context(), req.UserID, cs.ItemRequest{
		ProductID:  c.Param("id"),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		PickupTime: req.PickupTime,
		ReturnTime: req.ReturnTime,
	}, cs.Method(req.PaymentMethod), req.Card.toModel())
	if err != nil {
		return h.mapErr(c, "book now", err)
	}
	return c.JSON(http.StatusCreated, row)
}

func (h *Controller) mapErr(c echo.Context, op string, err error) error {
	switch cs.Code(err) {
	case cs.ErrProductNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
	case cs.ErrInvalidRange, cs.ErrEmptyCart, cs.ErrCardRequired:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case cs.ErrUnavailable:
		return c.JSON(http.StatusConflict, echo.Map{"message": "selected dates are not available"})
	case cs.ErrPaymentDeclined:
		return c.JSON(http.StatusPaymentRequired, echo.Map{"message": "payment declined"})
	}
	h.Log.Error(op, "err", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}
