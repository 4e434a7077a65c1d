package server

import (
	"fmt"
	"net/http"
	"time"

	"shopkeeper/internal/config"
	"shopkeeper/internal/database"
	custommiddleware "shopkeeper/internal/middleware"
	"shopkeeper/internal/repository"
	"shopkeeper/internal/service"
	"shopkeeper/internal/storage"
	"shopkeeper/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis keys for per-client request counters are "<prefix>:<client ip>"
const rateLimitKeyPrefix = "shopkeeper_rate_limit"

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     database.Service
	images *storage.ImageStore
	redis  *redis.Client
}

// NewRouter builds the HTTP handler with every route registered.
// A nil redis client disables rate limiting.
func NewRouter(cfg *config.Config, logger *zap.Logger, db database.Service, images *storage.ImageStore, redisClient *redis.Client) http.Handler {
	router := chi.NewRouter()
	useMiddleware(router, cfg, logger, redisClient)

	// Initialize repositories
	sqlDB := db.DB()
	userRepo := repository.NewUserRepository(sqlDB)
	shopRepo := repository.NewShopRepository(sqlDB)
	productRepo := repository.NewProductRepository(sqlDB)
	customerRepo := repository.NewCustomerRepository(sqlDB)
	cartRepo := repository.NewCartRepository(sqlDB)
	saleRepo := repository.NewSaleRepository(sqlDB)
	orderRepo := repository.NewOrderRepository(sqlDB)
	expenseRepo := repository.NewExpenseRepository(sqlDB)

	// Initialize services
	userService := service.NewUserService(userRepo)
	shopService := service.NewShopService(shopRepo, productRepo, saleRepo)
	productService := service.NewProductService(productRepo)
	customerService := service.NewCustomerService(customerRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	saleService := service.NewSaleService(saleRepo, cartRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	expenseService := service.NewExpenseService(expenseRepo)

	// Register routes
	transport.NewHealthHandler(db).RegisterRoutes(router)
	transport.NewUserHandler(userService, shopService, logger).RegisterRoutes(router)
	transport.NewShopHandler(shopService, images, logger).RegisterRoutes(router)
	transport.NewProductHandler(productService, logger).RegisterRoutes(router)
	transport.NewCustomerHandler(customerService, logger).RegisterRoutes(router)
	transport.NewCartHandler(cartService, logger).RegisterRoutes(router)
	transport.NewSaleHandler(saleService, logger).RegisterRoutes(router)
	transport.NewOrderHandler(orderService, logger).RegisterRoutes(router)
	transport.NewExpenseHandler(expenseService, logger).RegisterRoutes(router)
	transport.NewUploadHandler(images, cfg.Upload.PublicPath, logger).RegisterRoutes(router)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithError(w, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}

// useMiddleware installs the shared stack. Panic recovery sits inside the
// request logger so a recovered request is still logged with its 500.
func useMiddleware(router chi.Router, cfg *config.Config, logger *zap.Logger, redisClient *redis.Client) {
	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.IsDevelopment()))

	if redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         rateLimitKeyPrefix,
		}, logger))
	}
}

func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service, images *storage.ImageStore, redisClient *redis.Client) *Server {
	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      NewRouter(cfg, logger, db, images, redisClient),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		images: images,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.images != nil {
		if err := s.images.Close(); err != nil {
			s.logger.Error("Failed to close image store", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
