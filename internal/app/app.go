package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veranolabs/hotel-admin-backend/internal/activity"
	"github.com/veranolabs/hotel-admin-backend/internal/api"
	"github.com/veranolabs/hotel-admin-backend/internal/audit"
	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/guest"
	"github.com/veranolabs/hotel-admin-backend/internal/hotel"
	"github.com/veranolabs/hotel-admin-backend/internal/inventory"
	"github.com/veranolabs/hotel-admin-backend/internal/media"
	"github.com/veranolabs/hotel-admin-backend/internal/metrics"
	"github.com/veranolabs/hotel-admin-backend/internal/order"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/obs"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/storage"
	"github.com/veranolabs/hotel-admin-backend/internal/pricing"
	"github.com/veranolabs/hotel-admin-backend/internal/promo"
	"github.com/veranolabs/hotel-admin-backend/internal/reservation"
	"github.com/veranolabs/hotel-admin-backend/internal/stream"
	"github.com/veranolabs/hotel-admin-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	MediaDir     string
	CookieDomain string
	CookieSecure bool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Broker     *stream.Broker
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	obs.Init()

	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	broker := stream.NewBroker()

	store, err := storage.NewLocalStorage(cfg.MediaDir)
	if err != nil {
		return nil, err
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Hotel module
	hotelRepo := hotel.NewPgxRepository(cfg.DBPool)
	hotelService := hotel.NewService(hotelRepo, userService)

	// Inventory module
	invRepo := inventory.NewPgxRepository(cfg.DBPool)
	invService := inventory.NewService(invRepo)

	// Activity module
	actRepo := activity.NewPgxRepository(cfg.DBPool)
	actService := activity.NewService(actRepo)

	// Promo module
	promoRepo := promo.NewPgxRepository(cfg.DBPool)
	promoService := promo.NewService(promoRepo)

	// Pricing module
	pricingRepo := pricing.NewPgxRepository(cfg.DBPool)
	pricingService := pricing.NewService(pricingRepo, invService, promoService)

	// Guest module
	guestRepo := guest.NewPgxRepository(cfg.DBPool)
	guestService := guest.NewService(guestRepo)

	// Reservation module
	resRepo := reservation.NewPgxRepository(cfg.DBPool)
	resService := reservation.NewService(resRepo, invService, guestService, pricingService, broker)

	// Order module
	orderRepo := order.NewPgxRepository(cfg.DBPool)
	orderService := order.NewService(orderRepo, actService, guestService, promoService, broker)

	// Metrics module
	metricsRepo := metrics.NewPgxRepository(cfg.DBPool)
	metricsService := metrics.NewService(metricsRepo)

	// Audit module
	auditRepo := audit.NewPgxRepository(cfg.DBPool)
	auditService := audit.NewService(auditRepo)

	// Media module
	mediaRepo := media.NewPgxRepository(cfg.DBPool)
	mediaService := media.NewService(mediaRepo, store)

	router := api.NewRouter(api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		CookieDomain: cfg.CookieDomain,
		CookieSecure: cfg.CookieSecure,

		JWTManager: jwtManager,

		UserService:        userService,
		HotelService:       hotelService,
		InventoryService:   invService,
		ActivityService:    actService,
		PricingService:     pricingService,
		PromoService:       promoService,
		GuestService:       guestService,
		ReservationService: resService,
		OrderService:       orderService,
		MetricsService:     metricsService,
		AuditService:       auditService,
		MediaService:       mediaService,
		Broker:             broker,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Broker:     broker,
	}, nil
}
