package router

import (
	"petcare-service/internal/module/booking/handler"
	"petcare-service/internal/module/booking/models/entity"
	paymenthandler "petcare-service/internal/module/payment/handler"
	wallethandler "petcare-service/internal/module/wallet/handler"
	"petcare-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, handlerPayment *paymenthandler.PaymentHandler, handlerWallet *wallethandler.WalletHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1")

	// bookings
	v1.Post("/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Get("/provider/bookings", m.ValidateToken, m.RequireRole(entity.RoleProvider), handlerBooking.ShowProviderBookings)
	v1.Patch("/bookings/:id/status", m.ValidateToken, handlerBooking.UpdateBookingStatus)

	// payments
	v1.Post("/payment", m.ValidateToken, handlerPayment.CreatePayment)
	v1.Post("/payment/cancel", m.ValidateToken, handlerPayment.PaymentCancel)

	// gateway callbacks, authenticated by signature instead of token
	v1.Get("/payments/return", handlerPayment.PaymentReturn)
	v1.Post("/webhooks/payment", handlerPayment.PaymentWebhook)

	// wallet
	v1.Post("/wallet", m.ValidateToken, m.RequireRole(entity.RoleProvider), handlerWallet.CreateWallet)
	v1.Get("/wallet/balance", m.ValidateToken, m.RequireRole(entity.RoleProvider), handlerWallet.GetBalance)
	v1.Get("/wallet/transactions", m.ValidateToken, m.RequireRole(entity.RoleProvider), handlerWallet.ListTransactions)
	v1.Post("/wallet/withdrawals", m.ValidateToken, m.RequireRole(entity.RoleProvider), handlerWallet.RequestWithdrawal)
	v1.Get("/wallet/withdrawals", m.ValidateToken, m.RequireRole(entity.RoleProvider), handlerWallet.ListWithdrawals)

	// admin
	admin := v1.Group("/admin", m.ValidateToken, m.RequireRole(entity.RoleAdmin))
	admin.Get("/withdrawals", handlerWallet.ListPendingWithdrawals)
	admin.Post("/withdrawals/:id/approve", handlerWallet.ApproveWithdrawal)
	admin.Post("/withdrawals/:id/reject", handlerWallet.RejectWithdrawal)
	admin.Post("/withdrawals/:id/complete", handlerWallet.CompleteWithdrawal)
	admin.Post("/payments/reconcile", handlerPayment.ReconcilePaymentAdmin)

	private := Api.Group("/private")
	private.Get("/payment/pending", handlerPayment.CountPendingPayment)

	return app

}
