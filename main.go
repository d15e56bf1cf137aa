// Package main bridal rental API.
//
// @title           Hi Honey Rental API
// @version         1.0
// @description     Bridal rental marketplace (stores, products, availability, cart, checkout, admin).
// @BasePath        /
// @schemes         http
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/app/echoServer"
	cartctrl "github.com/aleksiojala-maker/hihoneyapp/app/echoServer/controller/cart"
	productctrl "github.com/aleksiojala-maker/hihoneyapp/app/echoServer/controller/product"
	rentalctrl "github.com/aleksiojala-maker/hihoneyapp/app/echoServer/controller/rental"
	storectrl "github.com/aleksiojala-maker/hihoneyapp/app/echoServer/controller/store"
	"github.com/aleksiojala-maker/hihoneyapp/app/echoServer/validation"
	"github.com/aleksiojala-maker/hihoneyapp/config"
	"github.com/aleksiojala-maker/hihoneyapp/model"
	cartrepo "github.com/aleksiojala-maker/hihoneyapp/repository/cart"
	paymentrepo "github.com/aleksiojala-maker/hihoneyapp/repository/payment"
	productrepo "github.com/aleksiojala-maker/hihoneyapp/repository/product"
	rentalrepo "github.com/aleksiojala-maker/hihoneyapp/repository/rental"
	storerepo "github.com/aleksiojala-maker/hihoneyapp/repository/store"
	"github.com/aleksiojala-maker/hihoneyapp/service/availability"
	catalogsvc "github.com/aleksiojala-maker/hihoneyapp/service/catalog"
	checkoutsvc "github.com/aleksiojala-maker/hihoneyapp/service/checkout"
	rentalsvc "github.com/aleksiojala-maker/hihoneyapp/service/rental"
	"github.com/aleksiojala-maker/hihoneyapp/util/database"
	"github.com/aleksiojala-maker/hihoneyapp/util/httpx"
	"github.com/aleksiojala-maker/hihoneyapp/util/idgen"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ids := idgen.NewUUID()

	// repos
	stores := storerepo.New(storerepo.DemoStores())

	var (
		products productrepo.Repo
		rentals  rentalrepo.Repo
	)
	if cfg.DatabasePath != "" {
		db, err := database.Open(cfg.DatabasePath)
		if err != nil {
			log.Error("db open failed", "err", err)
			os.Exit(1)
		}
		pr, err := productrepo.NewGorm(db, ids)
		if err != nil {
			log.Error("product migrate failed", "err", err)
			os.Exit(1)
		}
		rr, err := rentalrepo.NewGorm(db, ids)
		if err != nil {
			log.Error("rental migrate failed", "err", err)
			os.Exit(1)
		}
		products, rentals = pr, rr
	} else {
		products = productrepo.NewMemory(ids, productrepo.DemoProducts())
		rentals = rentalrepo.NewMemory(ids, cfg.SimulatedLatency, demoRentals())
	}

	var carts checkoutsvc.Carts = cartrepo.NewMemory()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		carts = cartrepo.NewRedis(rdb)
	}

	var gateway paymentrepo.Gateway
	if cfg.StripeAPIKey != "" {
		gateway = paymentrepo.NewStripe(cfg.StripeAPIKey, httpx.Client())
	} else {
		gateway = paymentrepo.NewSimulator(cfg.PaymentSuccessRate, cfg.SimulatedLatency, log)
	}

	// services
	avail := availability.New(rentals)
	catalogS := catalogsvc.New(products, stores)
	rentalS := rentalsvc.New(rentals, products, gateway, stores)
	checkoutS := checkoutsvc.New(carts, products, rentals, avail, gateway, ids)

	// controllers
	v := validator.New()
	storeC := &storectrl.Controller{Stores: stores, Log: log}
	productC := &productctrl.Controller{Svc: catalogS, Avail: avail, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rentalS, V: v, Log: log}
	cartC := &cartctrl.Controller{Svc: checkoutS, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Store:   storeC,
		Product: productC,
		Rental:  rentalC,
		Cart:    cartC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}

// demoRentals is the launch ledger: one upcoming reservation and one rental
// currently out.
func demoRentals() []model.Rental {
	now := time.Now().UTC()
	return []model.Rental{
		{
			ID:            "r1",
			UserID:        "u2",
			ProductID:     "h001",
			StoreID:       "helsinki-oulunkyla",
			StartDate:     now.AddDate(0, 0, 5),
			EndDate:       now.AddDate(0, 0, 8),
			Status:        model.RentalReserved,
			PaymentStatus: model.PaymentPaid,
			TotalPrice:    120,
		},
		{
			ID:            "r3",
			UserID:        "u3",
			ProductID:     "cs-pearls",
			StoreID:       "espoo-rebridal",
			StartDate:     now,
			EndDate:       now.AddDate(0, 0, 3),
			Status:        model.RentalActive,
			PaymentStatus: model.PaymentPaid,
			TotalPrice:    150,
		},
	}
}
