package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jonboulle/clockwork"

	"studio_booking/config"
	"studio_booking/database"
	"studio_booking/gateway"
	"studio_booking/handler"
	"studio_booking/helper"
	"studio_booking/router"
)

func main() {
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	rdb := database.ConnectRedis()
	clock := clockwork.NewRealClock()
	snap := gateway.NewSnap()

	cld, err := handler.InitCloudinary()
	if err != nil {
		log.Fatalf("cloudinary init failed: %v", err)
	}

	notifier := helper.NewNotifier(db)
	schedules := helper.NewScheduleStore(db, rdb, clock)
	discounts := helper.NewDiscountEvaluator(db)
	orders := helper.NewOrderEngine(db, schedules, discounts, notifier, clock)
	payments := helper.NewPaymentService(db, snap, notifier, clock)
	sweeper := helper.NewSweeper(db, clock)

	sweeper.Start()
	defer sweeper.Stop()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app, router.Handlers{
		Auth:         handler.NewAuthHandler(db),
		Order:        handler.NewOrderHandler(orders, db),
		Payment:      handler.NewPaymentHandler(payments, snap, db),
		Cronjob:      handler.NewCronjobHandler(sweeper),
		Schedule:     handler.NewScheduleHandler(schedules, db),
		Discount:     handler.NewDiscountHandler(discounts, db),
		Product:      handler.NewProductHandler(db),
		Notification: handler.NewNotificationHandler(db),
		Upload:       handler.NewUploadHandler(cld),
	})

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
