package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/media"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/notify"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucInventory "github.com/BruksfildServices01/salon-scheduler/internal/usecase/inventory"
	ucPayment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/payment"
)

// Deps carries the process-wide singletons built in main.
// Storage and Gateway are nil when the feature is not configured.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger

	Locker lock.Locker
	Waker  notification.Waker
	Hub    *notify.Hub

	Storage media.Storage
	Gateway payment.Gateway
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(d.DB)
	paymentRepo := infraRepo.NewPaymentGormRepository(d.DB)
	notificationRepo := infraRepo.NewNotificationGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	appointmentUC := handlers.AppointmentUseCases{
		Create:            ucAppointment.NewCreateAppointment(appointmentRepo, d.Locker, d.Waker),
		Update:            ucAppointment.NewUpdateAppointment(appointmentRepo, d.Locker),
		CheckAvailability: ucAppointment.NewCheckAvailability(appointmentRepo),
		Get:               ucAppointment.NewGetAppointment(appointmentRepo),
		ListByDate:        ucAppointment.NewListAppointmentsByDate(appointmentRepo),
		ListByMonth:       ucAppointment.NewListAppointmentsByMonth(appointmentRepo),

		Confirm:  ucAppointment.NewConfirmAppointment(appointmentRepo),
		CheckIn:  ucAppointment.NewCheckInAppointment(appointmentRepo),
		Start:    ucAppointment.NewStartAppointment(appointmentRepo),
		Complete: ucAppointment.NewCompleteAppointment(appointmentRepo),
		Cancel:   ucAppointment.NewCancelAppointment(appointmentRepo, d.Waker),
		NoShow:   ucAppointment.NewMarkNoShow(appointmentRepo),
	}

	productUC := handlers.ProductUseCases{
		Create:      ucInventory.NewCreateProduct(inventoryRepo),
		Get:         ucInventory.NewGetProduct(inventoryRepo),
		List:        ucInventory.NewListProducts(inventoryRepo),
		LowStock:    ucInventory.NewListLowStock(inventoryRepo),
		Adjust:      ucInventory.NewAdjustStock(inventoryRepo, d.Waker),
		History:     ucInventory.NewProductHistory(inventoryRepo),
		UploadImage: ucInventory.NewUploadProductImage(inventoryRepo, d.Storage),
	}

	registerPaymentUC := ucPayment.NewRegisterPayment(paymentRepo, d.Config.PaymentCurrencies)
	confirmPaymentUC := ucPayment.NewConfirmPayment(paymentRepo, d.Gateway, d.Waker)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC, d.Log)
	productHandler := handlers.NewProductHandler(productUC, d.Log)
	paymentHandler := handlers.NewPaymentHandler(registerPaymentUC, confirmPaymentUC, d.Log)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, d.Hub, d.Log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Config))
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.GET("/me/availability", appointmentHandler.CheckAvailability)

		secured.POST("/me/appointments", appointmentHandler.Create)
		secured.GET("/me/appointments", appointmentHandler.ListByDate)
		secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
		secured.GET("/me/appointments/:id", appointmentHandler.Get)
		secured.PATCH("/me/appointments/:id", appointmentHandler.Update)

		secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
		secured.PATCH("/me/appointments/:id/check-in", appointmentHandler.CheckIn)
		secured.PATCH("/me/appointments/:id/start", appointmentHandler.Start)
		secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
		secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
		secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

		// ------------------------------
		// INVENTORY
		// ------------------------------
		secured.GET("/me/products", productHandler.List)
		secured.POST("/me/products", productHandler.Create)
		secured.GET("/me/products/low-stock", productHandler.LowStock)
		secured.GET("/me/products/:id", productHandler.Get)
		secured.POST("/me/products/:id/stock", productHandler.AdjustStock)
		secured.GET("/me/products/:id/transactions", productHandler.History)
		secured.PUT("/me/products/:id/image", productHandler.UploadImage)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		secured.POST("/me/payments", paymentHandler.Register)
		secured.POST("/me/payments/:id/confirm", paymentHandler.Confirm)

		// ------------------------------
		// NOTIFICATIONS
		// ------------------------------
		secured.GET("/me/notifications", notificationHandler.List)
		secured.GET("/me/notifications/unread-count", notificationHandler.UnreadCount)
		secured.PATCH("/me/notifications/read-all", notificationHandler.MarkAllRead)
		secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)
		secured.GET("/me/notifications/ws", notificationHandler.Stream)
	}
}
