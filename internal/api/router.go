package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/veranolabs/hotel-admin-backend/internal/activity"
	activityHttp "github.com/veranolabs/hotel-admin-backend/internal/activity/http"
	"github.com/veranolabs/hotel-admin-backend/internal/audit"
	auditHttp "github.com/veranolabs/hotel-admin-backend/internal/audit/http"
	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/guest"
	guestHttp "github.com/veranolabs/hotel-admin-backend/internal/guest/http"
	"github.com/veranolabs/hotel-admin-backend/internal/hotel"
	hotelHttp "github.com/veranolabs/hotel-admin-backend/internal/hotel/http"
	"github.com/veranolabs/hotel-admin-backend/internal/inventory"
	inventoryHttp "github.com/veranolabs/hotel-admin-backend/internal/inventory/http"
	"github.com/veranolabs/hotel-admin-backend/internal/media"
	mediaHttp "github.com/veranolabs/hotel-admin-backend/internal/media/http"
	"github.com/veranolabs/hotel-admin-backend/internal/metrics"
	metricsHttp "github.com/veranolabs/hotel-admin-backend/internal/metrics/http"
	"github.com/veranolabs/hotel-admin-backend/internal/order"
	orderHttp "github.com/veranolabs/hotel-admin-backend/internal/order/http"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/obs"
	"github.com/veranolabs/hotel-admin-backend/internal/pricing"
	pricingHttp "github.com/veranolabs/hotel-admin-backend/internal/pricing/http"
	"github.com/veranolabs/hotel-admin-backend/internal/promo"
	promoHttp "github.com/veranolabs/hotel-admin-backend/internal/promo/http"
	"github.com/veranolabs/hotel-admin-backend/internal/reservation"
	reservationHttp "github.com/veranolabs/hotel-admin-backend/internal/reservation/http"
	"github.com/veranolabs/hotel-admin-backend/internal/stream"
	streamHttp "github.com/veranolabs/hotel-admin-backend/internal/stream/http"
	"github.com/veranolabs/hotel-admin-backend/internal/user"
)

// Config holds the services and settings the router wires together.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	CookieDomain string
	CookieSecure bool

	JWTManager *auth.JWTManager

	UserService        user.Service
	HotelService       hotel.Service
	InventoryService   inventory.Service
	ActivityService    activity.Service
	PricingService     pricing.Service
	PromoService       promo.Service
	GuestService       guest.Service
	ReservationService reservation.Service
	OrderService       order.Service
	MetricsService     metrics.Service
	AuditService       audit.Service
	MediaService       media.Service
	Broker             *stream.Broker
}

// NewRouter initializes the HTTP router engine: global middleware, the auth
// endpoints under /api/auth, and all tenant-scoped routes under /api/v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(RequestID())
	r.Use(obs.Instrument())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // dashboard dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Last-Event-ID", "X-Request-Id"}
	corsConfig.ExposeHeaders = []string{"X-Request-Id"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", obs.Handler())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	perm := func(resource, action string) gin.HandlerFunc {
		return RequirePermission(cfg.UserService, cfg.HotelService, resource, action)
	}

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager, cfg.CookieDomain, cfg.CookieSecure)
	sessionHandler := NewSessionHandler(cfg.UserService, cfg.HotelService)

	authGroup := r.Group("/api/auth")
	{
		loginLimiter := RateLimit(rate.Limit(1), 5)
		authGroup.POST("/sign-up", loginLimiter, authHandler.SignUp)
		authGroup.POST("/sign-in", loginLimiter, authHandler.SignIn)
		authGroup.POST("/sign-out", authHandler.SignOut)
	}

	v1 := r.Group("/api/v1")
	v1.Use(AuditTrail(cfg.AuditService))
	{
		session := v1.Group("/session")
		session.Use(authMiddleware)
		{
			session.GET("", sessionHandler.Get)
			session.POST("/active-hotel", sessionHandler.SetActiveHotel)
		}

		hotelHttp.RegisterRoutes(v1, hotelHttp.NewHandler(cfg.HotelService), authMiddleware, perm)
		inventoryHttp.RegisterRoutes(v1, inventoryHttp.NewHandler(cfg.InventoryService), authMiddleware, perm)
		activityHttp.RegisterRoutes(v1, activityHttp.NewHandler(cfg.ActivityService), authMiddleware, perm)
		pricingHttp.RegisterRoutes(v1, pricingHttp.NewHandler(cfg.PricingService), authMiddleware, perm)
		promoHttp.RegisterRoutes(v1, promoHttp.NewHandler(cfg.PromoService), authMiddleware, perm)
		guestHttp.RegisterRoutes(v1, guestHttp.NewHandler(cfg.GuestService), authMiddleware, perm)
		reservationHttp.RegisterRoutes(v1, reservationHttp.NewHandler(cfg.ReservationService), authMiddleware, perm)
		orderHttp.RegisterRoutes(v1, orderHttp.NewHandler(cfg.OrderService), authMiddleware, perm)
		metricsHttp.RegisterRoutes(v1, metricsHttp.NewHandler(cfg.MetricsService), authMiddleware, perm)
		auditHttp.RegisterRoutes(v1, auditHttp.NewHandler(cfg.AuditService), authMiddleware, perm)
		mediaHttp.RegisterRoutes(v1, mediaHttp.NewHandler(cfg.MediaService, cfg.HotelService, cfg.InventoryService), authMiddleware, perm)
		streamHttp.RegisterRoutes(v1, streamHttp.NewHandler(cfg.Broker), authMiddleware, perm)
	}

	return r
}
