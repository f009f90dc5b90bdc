package router

import (
	"log"
	"time"

	"gramseva/config"
	"gramseva/internal/handler"
	"gramseva/internal/middleware"
	"gramseva/internal/repository"
	"gramseva/internal/service"
	"gramseva/internal/ws"
	"gramseva/pkg/cloudinary"
	"gramseva/pkg/payment"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, gateway payment.Gateway) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	villageRepo := repository.NewVillageRepository(db)
	taxRepo := repository.NewTaxPaymentRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	itemRepo := repository.NewItemRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	infoRepo := repository.NewInfoRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	tickerHub := ws.NewTickerHub()

	// Services
	fcmSvc := service.NewFCMService(cfg.Firebase.ServiceAccountPath)
	if fcmSvc != nil {
		log.Printf("[FCM] Push notifications enabled")
	} else if cfg.Firebase.ServiceAccountPath != "" {
		log.Printf("[FCM] Push notifications disabled: failed to init (check service account file)")
	} else {
		log.Printf("[FCM] Push notifications disabled: set FIREBASE_SERVICE_ACCOUNT_PATH to enable")
	}
	notifSvc := service.NewNotificationService(notificationRepo, userRepo, fcmSvc)
	authSvc := service.NewAuthService(cfg, userRepo, notifSvc)
	taxSvc := service.NewTaxService(&cfg.Cashfree, taxRepo, gateway)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, userRepo, auditRepo)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc, auditRepo)
	villageHandler := handler.NewVillageHandler(villageRepo)
	taxHandler := handler.NewTaxPaymentHandler(taxSvc, taxRepo)
	taxWebhookHandler := handler.NewTaxWebhookHandler(taxSvc, auditRepo, cfg)
	announcementHandler := handler.NewAnnouncementHandler(announcementRepo, tickerHub)
	noticeHandler := handler.NewNoticeHandler(noticeRepo, tickerHub)
	submissionHandler := handler.NewSubmissionHandler(submissionRepo)
	itemHandler := handler.NewItemHandler(itemRepo, cloud, notifSvc)
	serviceHandler := handler.NewServiceHandler(serviceRepo)
	infoHandler := handler.NewInfoHandler(infoRepo, cloud)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	adminHandler := handler.NewAdminHandler(authSvc, userRepo, auditRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)
	optionalAuthMw := middleware.OptionalAuth(&cfg.JWT)
	adminMw := middleware.AdminRequired()
	approvedMw := middleware.ApprovedOnly(userRepo)

	// Public form endpoints get a tighter per-IP budget than general reads.
	formLimiter := middleware.RateLimit(middleware.NewInMemoryRateLimiter(10, 60*time.Second))

	r.GET("/ws/ticker", ws.UpgradeTickerWS(tickerHub))

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", formLimiter, authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
			authGroup.GET("/me", authMw, authHandler.Me)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.PUT("/fcm-token", authMw, authHandler.UpdateFCMToken)
		}

		// Public site content
		api.GET("/village", villageHandler.Get)
		api.GET("/announcements", announcementHandler.List)
		api.GET("/announcements/:id", announcementHandler.Get)
		api.GET("/notices", noticeHandler.List)
		api.GET("/notices/:id", noticeHandler.Get)
		api.GET("/services/categories", serviceHandler.ListCategories)
		api.GET("/services", serviceHandler.ListServices)
		api.GET("/schemes", serviceHandler.ListSchemes)
		api.GET("/development-works", infoHandler.ListDevWorks)
		api.GET("/members", infoHandler.ListMembers)
		api.GET("/emergency-contacts", infoHandler.ListEmergencyContacts)
		api.GET("/gallery", infoHandler.ListGallery)
		api.GET("/market-prices", infoHandler.ListMarketPrices)
		api.GET("/items", itemHandler.List)
		api.GET("/items/:id", itemHandler.Get)

		// Citizen forms (no login needed)
		api.POST("/contact", formLimiter, submissionHandler.CreateContact)
		api.POST("/feedback", formLimiter, submissionHandler.CreateFeedback)
		api.POST("/quick-services", formLimiter, optionalAuthMw, submissionHandler.CreateQuickService)

		// Tax payment. Initiation and verification are public: taxes are
		// often paid on a payer's behalf at the office counter.
		payments := api.Group("/payments")
		{
			payments.POST("/tax", formLimiter, taxHandler.Create)
			payments.POST("/tax/verify", taxHandler.Verify)
		}
		api.POST("/webhooks/tax-payment", taxWebhookHandler.Handle)

		// Logged-in approved citizens
		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/notifications", notificationHandler.List)
			me.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			me.GET("/quick-services", submissionHandler.MyQuickServices)
			me.GET("/items", itemHandler.Mine)
		}
		api.POST("/items", authMw, approvedMw, itemHandler.Create)
		api.DELETE("/items/:id", authMw, itemHandler.Delete)

		// Admin desk
		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PATCH("/users/:id/approval", adminHandler.SetApproval)
			admin.GET("/audit-logs", adminHandler.ListAuditLogs)

			admin.PUT("/village", villageHandler.Update)

			admin.GET("/announcements", announcementHandler.ListAll)
			admin.POST("/announcements", announcementHandler.Create)
			admin.PUT("/announcements/:id", announcementHandler.Update)
			admin.DELETE("/announcements/:id", announcementHandler.Delete)

			admin.GET("/notices", noticeHandler.ListAll)
			admin.POST("/notices", noticeHandler.Create)
			admin.PUT("/notices/:id", noticeHandler.Update)
			admin.DELETE("/notices/:id", noticeHandler.Delete)

			admin.GET("/contacts", submissionHandler.ListContacts)
			admin.PATCH("/contacts/:id/status", submissionHandler.UpdateContactStatus)
			admin.GET("/feedback", submissionHandler.ListFeedback)
			admin.PATCH("/feedback/:id/status", submissionHandler.UpdateFeedbackStatus)
			admin.GET("/quick-services", submissionHandler.ListQuickServices)
			admin.PATCH("/quick-services/:id/status", submissionHandler.UpdateQuickServiceStatus)

			admin.GET("/items", itemHandler.ListForModeration)
			admin.PATCH("/items/:id/moderate", itemHandler.Moderate)
			admin.DELETE("/items/:id", itemHandler.Remove)

			admin.POST("/services/categories", serviceHandler.CreateCategory)
			admin.DELETE("/services/categories/:id", serviceHandler.DeleteCategory)
			admin.POST("/services", serviceHandler.CreateService)
			admin.PUT("/services/:id", serviceHandler.UpdateService)
			admin.DELETE("/services/:id", serviceHandler.DeleteService)
			admin.POST("/schemes", serviceHandler.CreateScheme)
			admin.PUT("/schemes/:id", serviceHandler.UpdateScheme)
			admin.DELETE("/schemes/:id", serviceHandler.DeleteScheme)

			admin.POST("/development-works", infoHandler.CreateDevWork)
			admin.PUT("/development-works/:id", infoHandler.UpdateDevWork)
			admin.DELETE("/development-works/:id", infoHandler.DeleteDevWork)
			admin.POST("/members", infoHandler.CreateMember)
			admin.PUT("/members/:id", infoHandler.UpdateMember)
			admin.DELETE("/members/:id", infoHandler.DeleteMember)
			admin.POST("/emergency-contacts", infoHandler.CreateEmergencyContact)
			admin.DELETE("/emergency-contacts/:id", infoHandler.DeleteEmergencyContact)
			admin.POST("/gallery", infoHandler.UploadGalleryImage)
			admin.DELETE("/gallery/:id", infoHandler.DeleteGalleryImage)
			admin.POST("/market-prices", infoHandler.CreateMarketPrice)
			admin.PUT("/market-prices/:id", infoHandler.UpdateMarketPrice)
			admin.DELETE("/market-prices/:id", infoHandler.DeleteMarketPrice)

			admin.GET("/payments/tax", taxHandler.List)
		}
	}

	return r
}
