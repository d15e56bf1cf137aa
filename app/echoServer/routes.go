package echoServer

import (
	"github.com/aleksiojala-maker/hihoneyapp/app/echoServer/controller/cart"
	"github.com/aleksiojala-maker/hihoneyapp/app/echoServer/controller/product"
	"github.com/aleksiojala-maker/hihoneyapp/app/echoServer/controller/rental"
	"github.com/aleksiojala-maker/hihoneyapp/app/echoServer/controller/store"

	"github.com/labstack/echo/v4"
)

type C struct {
	Store   *store.Controller
	Product *product.Controller
	Rental  *rental.Controller
	Cart    *cart.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// Stores
	v1.GET("/stores", c.Store.List)
	v1.GET("/stores/:id", c.Store.Detail)

	// Catalog
	v1.GET("/products", c.Product.List)
	v1.GET("/products/:id", c.Product.Detail)
	v1.GET("/products/:id/booked-ranges", c.Product.BookedRanges)
	v1.GET("/products/:id/availability", c.Product.Availability)
	v1.POST("/products/:id/bookings", c.Cart.BookNow)

	// Cart & checkout
	v1.GET("/carts/:userID", c.Cart.Get)
	v1.POST("/carts/:userID/items", c.Cart.AddItem)
	v1.DELETE("/carts/:userID/items/:itemID", c.Cart.RemoveItem)
	v1.POST("/carts/:userID/checkout", c.Cart.Checkout)

	// Rentals
	v1.GET("/rentals", c.Rental.My)
	v1.POST("/rentals/:id/pay", c.Rental.Pay)

	// Admin surface. No auth layer in front of it; access control is out
	// of scope here and expected from the deployment.
	admin := e.Group("/v1/admin")
	admin.POST("/products", c.Product.Create)
	admin.PATCH("/products/:id", c.Product.Update)
	admin.DELETE("/products/:id", c.Product.Delete)

	admin.POST("/bookings", c.Rental.AdminBook)
	admin.GET("/rentals", c.Rental.List)
	admin.PATCH("/rentals/:id", c.Rental.Update)
	admin.DELETE("/rentals/:id", c.Rental.Delete)
	admin.GET("/stats", c.Rental.Stats)
}
