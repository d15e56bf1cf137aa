package store

import (
	"log/slog"
	"net/http"

	storerepo "github.com/aleksiojala-maker/hihoneyapp/repository/store"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Stores storerepo.Repo
	Log    *slog.Logger
}

// GET /v1/stores
func (h *Controller) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Stores.List()})
}

// GET /v1/stores/:id
func (h *Controller) Detail(c echo.Context) error {
	s, ok := h.Stores.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "store not found"})
	}
	return c.JSON(http.StatusOK, s)
}
