package main

import (
	"log"
	"os"

	"github.com/Imadeveloperrr/backend-test-v1/external/midtrans"
	"github.com/Imadeveloperrr/backend-test-v1/external/securepay"
	"github.com/Imadeveloperrr/backend-test-v1/internal/cache"
	"github.com/Imadeveloperrr/backend-test-v1/internal/db"
	"github.com/Imadeveloperrr/backend-test-v1/internal/repository"
	"github.com/Imadeveloperrr/backend-test-v1/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "go.uber.org/automaxprocs"
)

func main() {
	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	partnerRepo := repository.NewPartnerRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	var partners services.PartnerStore = partnerRepo
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		partners = cache.NewPartnerCache(cache.NewRedis(addr), partnerRepo)
	}

	// ======================
	// PROCESSORS
	// ======================
	securePay, err := securepay.NewClient()
	if err != nil {
		log.Fatal(err)
	}

	processors := []services.ProcessorClient{securePay}
	if os.Getenv("MIDTRANS_SERVER_KEY") != "" {
		processors = append(processors, midtrans.NewProcessor())
	}

	// ======================
	// SERVICES
	// ======================
	paymentSvc := services.NewPaymentService(partners, paymentRepo, processors...)
	querySvc := services.NewPaymentQueryService(paymentRepo)
	partnerSvc := services.NewPartnerService(partners)

	// ======================
	// HTTP
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api/v1")

	registerPaymentRoutes(api, paymentSvc, querySvc)
	registerPartnerRoutes(api, partnerSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
