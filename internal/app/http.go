package app

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/tomdyson/stripe-payments-report/internal/auth/credentials"
	"github.com/tomdyson/stripe-payments-report/internal/auth/handler"
	"github.com/tomdyson/stripe-payments-report/internal/config"
	"github.com/tomdyson/stripe-payments-report/internal/logger"
	"github.com/tomdyson/stripe-payments-report/internal/middleware"
	"github.com/tomdyson/stripe-payments-report/internal/payments"
	"github.com/tomdyson/stripe-payments-report/internal/token"
	"github.com/tomdyson/stripe-payments-report/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func setupHTTP(cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	verifier, err := credentials.NewVerifier(
		cfg.DashboardPassword,
		cfg.DashboardPasswordHash,
	)
	if err != nil {
		return nil, nil, err
	}

	codec := token.NewCodec(signingKey(cfg), token.DefaultTTL)

	authHandler := handler.NewHandler(verifier, codec, cfg.CookieSecure)
	authMiddleware := middleware.NewAuthMiddleware(codec)

	stripeClient := payments.NewStripeClient(cfg.StripeSecretKey)
	paymentsService := payments.NewService(stripeClient, infra.Cache)
	paymentsHandler := payments.NewHandler(paymentsService)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// Any origin is acceptable here: auth rides on an HttpOnly cookie,
	// never on headers a cross-origin script could set.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.Static("/static", filepath.Join(cfg.WebDir, "static"))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	router.GET("/login", func(c *gin.Context) {
		c.File(filepath.Join(cfg.WebDir, "login.html"))
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	paymentsHandler.RegisterRoutes(api)

	// ----------------------------
	// Protected Web Routes
	// ----------------------------

	web := router.Group("/")
	web.Use(middleware.GinRequireAuth(authMiddleware))

	web.GET("/dashboard", func(c *gin.Context) {
		c.File(filepath.Join(cfg.WebDir, "dashboard.html"))
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if infra.Redis != nil {
			return infra.Redis.Close()
		}
		return nil
	}, nil
}

// signingKey returns the configured token signing key, or a random
// per-process key when none is set. The random fallback keeps local
// development working but means every restart logs everyone out, so it is
// called out loudly as a misconfiguration.
func signingKey(cfg config.Config) []byte {
	if cfg.SessionSecret != "" {
		return []byte(cfg.SessionSecret)
	}

	logger.Warn("SESSION_SECRET not set, using a random per-process signing key", map[string]any{
		"consequence": "every restart invalidates all outstanding sessions",
	})

	return []byte(utils.RandomString(32))
}
