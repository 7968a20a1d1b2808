package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"studio_booking/handler"
	"studio_booking/middleware"
	"studio_booking/validate"
)

// Handlers bundles the wired handler set so main owns all construction.
type Handlers struct {
	Auth         *handler.AuthHandler
	Order        *handler.OrderHandler
	Payment      *handler.PaymentHandler
	Cronjob      *handler.CronjobHandler
	Schedule     *handler.ScheduleHandler
	Discount     *handler.DiscountHandler
	Product      *handler.ProductHandler
	Notification *handler.NotificationHandler
	Upload       *handler.UploadHandler
}

func SetupRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Auth.Login)

	product := v1.Group("/product")
	product.Get("/", h.Product.GetAll)
	product.Get("/:slug", h.Product.GetBySlug)

	order := v1.Group("/order")
	order.Get("/", middleware.Protected(), h.Order.GetAll)
	order.Post("/generate-qr", middleware.Protected(), validate.GenerateQR(), h.Order.GenerateQR)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), h.Order.GetDetail)
	order.Post("/:productId", middleware.Protected(), validate.CreateOrder(), h.Order.Create)
	order.Patch("/:orderId/validate", middleware.Protected(), middleware.AdminOnly(), validate.GetById("orderId"), h.Order.Validate)
	order.Patch("/:orderId/done", middleware.Protected(), middleware.AdminOnly(), validate.GetById("orderId"), h.Order.Done)
	order.Patch("/:orderId/cancel", middleware.Protected(), middleware.AdminOnly(), validate.GetById("orderId"), validate.CancelOrder(), h.Order.Cancel)

	payment := v1.Group("/payment")
	payment.Post("/confirm", h.Payment.Confirm)
	payment.Get("/", middleware.Protected(), middleware.AdminOnly(), h.Payment.Index)
	payment.Get("/:paymentId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("paymentId"), h.Payment.Show)
	payment.Post("/:orderId", middleware.Protected(), validate.GetById("orderId"), validate.CreatePayment(), h.Payment.Create)

	discount := v1.Group("/discount")
	discount.Post("/apply", middleware.Protected(), validate.ApplyDiscount(), h.Discount.Apply)
	discount.Get("/", middleware.Protected(), middleware.AdminOnly(), h.Discount.GetAll)
	discount.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateDiscount(), h.Discount.Create)
	discount.Patch("/:discountId/status", middleware.Protected(), middleware.AdminOnly(), validate.GetById("discountId"), h.Discount.UpdateStatus)

	schedule := v1.Group("/schedule")
	schedule.Get("/", middleware.Protected(), middleware.AdminOnly(), h.Schedule.GetAll)
	schedule.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateSchedule(), h.Schedule.Create)

	notification := v1.Group("/notification")
	notification.Get("/", middleware.Protected(), h.Notification.GetAll)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), h.Notification.MarkRead)

	upload := v1.Group("/upload")
	upload.Post("/signature", middleware.Protected(), middleware.AdminOnly(), h.Upload.GenerateSignature)
	upload.Post("/", middleware.Protected(), middleware.AdminOnly(), h.Upload.Upload)

	v1.Post("/cronjob", h.Cronjob.Run)
	// Some hosted schedulers can only fire GETs; keep the alias.
	v1.Get("/cronjob", h.Cronjob.Run)
}
