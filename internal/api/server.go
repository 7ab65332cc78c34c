package api

import (
	"context"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/danceinaction/booking-api/docs"
	v1 "github.com/danceinaction/booking-api/internal/api/handler/v1"
	"github.com/danceinaction/booking-api/internal/api/middleware"
	"github.com/danceinaction/booking-api/internal/config"
	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/email"
	"github.com/danceinaction/booking-api/internal/repository"
	"github.com/danceinaction/booking-api/internal/repository/dao"
	"github.com/danceinaction/booking-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	seeder *service.SeedService
}

// NewServer wires the full handler stack. The seat layout is generated
// once here; every service shares the same canonical slice.
func NewServer(conf *config.AppConfig, db *gorm.DB, seats []domain.Seat) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))
	couponRepo := repository.NewCouponRepository(dao.NewCouponDAO(db))
	registrationRepo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	contentRepo := repository.NewContentRepository(dao.NewContentDAO(db))

	orderTTL := time.Duration(conf.Booking.OrderTTLHours) * time.Hour
	bookingSvc := service.NewBookingService(bookingRepo, couponRepo, seats, orderTTL)
	couponSvc := service.NewCouponService(couponRepo)
	assignmentSvc := service.NewAssignmentService(bookingRepo, registrationRepo, seats)
	notifier := email.NewClient(conf.Email.ResendAPIKey, conf.Email.From, conf.Email.AdminTo, conf.API.BaseURL)
	registrationSvc := service.NewRegistrationService(registrationRepo, notifier)
	contentSvc := service.NewContentService(contentRepo)
	adminSvc := service.NewAdminService(conf.API.AdminPINHash, conf.API.AdminSigningKey)
	s.seeder = service.NewSeedService(bookingRepo, seats)

	bookingHandler := v1.NewBookingHandler(bookingSvc, couponSvc)
	adminHandler := v1.NewAdminHandler(adminSvc, bookingSvc, s.seeder, couponSvc)
	registrationHandler := v1.NewRegistrationHandler(registrationSvc, assignmentSvc)
	contentHandler := v1.NewContentHandler(contentSvc)
	s.MountHandlers(bookingHandler, adminHandler, registrationHandler, contentHandler)

	return s
}

// VerifySeeded checks at startup that every session/seat pair has its
// ticket row. A failure is reported, not fatal: the seeding endpoint
// needs a running server.
func (s *Server) VerifySeeded(ctx context.Context) error {
	return s.seeder.VerifySeeded(ctx)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(bookingHandler *v1.BookingHandler, adminHandler *v1.AdminHandler, registrationHandler *v1.RegistrationHandler, contentHandler *v1.ContentHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/sessions", bookingHandler.HandleListSessions)
		public.GET("/sessions/:sessionID/seatmap", bookingHandler.HandleSeatMap)
		public.POST("/sessions/:sessionID/purchase", bookingHandler.HandlePurchase)
		public.POST("/coupons/validate", bookingHandler.HandleValidateCoupon)
		public.GET("/judges", contentHandler.HandleListJudges)
		public.GET("/faqs", contentHandler.HandleListFAQs)
		public.GET("/settings", contentHandler.HandleListSettings)
		public.POST("/admin/login", adminHandler.HandleLogin)
	}

	registrations := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		registrations.POST("/registrations", registrationHandler.HandleCreateRegistration)
		registrations.GET("/registrations", registrationHandler.HandleListRegistrations)
		registrations.GET("/registrations/:registrationID", registrationHandler.HandleGetRegistration)
		registrations.PUT("/registrations/:registrationID", registrationHandler.HandleUpdateRegistration)
		registrations.POST("/registrations/:registrationID/submit", registrationHandler.HandleSubmitRegistration)
	}

	admin := s.Router.Group(basePath+"/admin", middleware.NewAuthenticator(s.Config.API.AdminSigningKey).VerifyAdmin())
	{
		admin.POST("/seed", adminHandler.HandleSeed)
		admin.GET("/orders", adminHandler.HandleListOrders)
		admin.GET("/orders/:orderID", adminHandler.HandleGetOrder)
		admin.POST("/orders/:orderID/confirm", adminHandler.HandleConfirmOrder)
		admin.POST("/orders/:orderID/cancel", adminHandler.HandleCancelOrder)
		admin.POST("/orders/cleanup", adminHandler.HandleCleanupOrders)
		admin.GET("/accounting", adminHandler.HandleAccounting)
		admin.POST("/reset", adminHandler.HandleReset)

		admin.POST("/coupons", adminHandler.HandleCreateCoupon)
		admin.GET("/coupons", adminHandler.HandleListCoupons)
		admin.PATCH("/coupons/:couponID", adminHandler.HandleSetCouponActive)
		admin.DELETE("/coupons/:couponID", adminHandler.HandleDeleteCoupon)

		admin.GET("/registrations", registrationHandler.HandleListAllRegistrations)
		admin.DELETE("/registrations/:registrationID", registrationHandler.HandleDeleteRegistration)
		admin.POST("/registrations/:registrationID/assign", registrationHandler.HandleAssignSeats)
		admin.POST("/registrations/:registrationID/unassign", registrationHandler.HandleUnassignSeats)

		admin.POST("/judges", contentHandler.HandleSaveJudge)
		admin.PUT("/judges/:judgeID", contentHandler.HandleSaveJudge)
		admin.DELETE("/judges/:judgeID", contentHandler.HandleDeleteJudge)
		admin.POST("/faqs", contentHandler.HandleSaveFAQ)
		admin.PUT("/faqs/:faqID", contentHandler.HandleSaveFAQ)
		admin.DELETE("/faqs/:faqID", contentHandler.HandleDeleteFAQ)
		admin.PUT("/settings", contentHandler.HandleSaveSetting)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Dance in Action Booking API"
	docs.SwaggerInfo.Description = "Seat booking and registrations for the Dance in Action competition."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
