package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/auth"
	"github.com/jimmy00415/ChefWeb-sub000/internal/chatbot"
	"github.com/jimmy00415/ChefWeb-sub000/internal/config"
	"github.com/jimmy00415/ChefWeb-sub000/internal/handler"
	"github.com/jimmy00415/ChefWeb-sub000/internal/middleware"
	"github.com/jimmy00415/ChefWeb-sub000/internal/notify"
	"github.com/jimmy00415/ChefWeb-sub000/internal/payment"
	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
	"github.com/jimmy00415/ChefWeb-sub000/internal/service"
	"github.com/jimmy00415/ChefWeb-sub000/internal/utils"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		os.Stderr.WriteString("Failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if Version == "dev" && cfg.Server.Version != "" {
		Version = cfg.Server.Version
	}
	logger.Info("ChefWeb API",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	gin.SetMode(cfg.Server.GinMode)

	repo := newRepository(cfg, logger)
	defer repo.Close()

	background := service.NewBackground(logger)
	router := buildRouter(cfg, repo, background, logger)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	background.Wait()
	logger.Info("Server stopped")
}

// newRepository connects to PostgreSQL, or falls back to the in-memory
// store when it is disabled or unreachable.
func newRepository(cfg *config.Config, logger *zap.Logger) repository.Repository {
	if !cfg.PostgreSQL.Enabled {
		logger.Warn("PostgreSQL disabled, using in-memory storage")
		return repository.NewMemoryRepository()
	}

	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		logger.Warn("PostgreSQL unavailable, using in-memory storage", zap.Error(err))
		return repository.NewMemoryRepository()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Warn("Schema setup failed, using in-memory storage", zap.Error(err))
		repo.Close()
		return repository.NewMemoryRepository()
	}

	logger.Info("Connected to PostgreSQL")
	return repo
}

func newPaymentProvider(cfg *config.Config, logger *zap.Logger) payment.Provider {
	if cfg.Payment.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, using mock payments")
		return payment.NewMockProvider()
	}
	return payment.NewStripeProvider(cfg.Payment.StripeSecretKey)
}

func newNotifier(cfg *config.Config, logger *zap.Logger) notify.Notifier {
	resendNotifier := notify.NewResendNotifier(
		cfg.Email.ResendAPIKey,
		cfg.Email.From,
		cfg.Email.AdminInbox,
		cfg.Email.SiteURL,
		logger,
	)
	if resendNotifier == nil {
		logger.Warn("RESEND_API_KEY not set, emails will only be logged")
		return notify.NewLogNotifier(logger)
	}
	return resendNotifier
}

func newAssistant(cfg *config.Config, addons *pricing.AddonCatalog, logger *zap.Logger) service.Assistant {
	if !cfg.Chat.AIAssist || !cfg.OpenAI.Enabled {
		return nil
	}
	assistant := service.NewLLMAssistant(service.NewOpenAIClient(&cfg.OpenAI), addons, logger)
	if assistant == nil {
		return nil
	}
	logger.Info("Chat AI assist enabled",
		zap.String("api_base", cfg.OpenAI.APIBase),
		zap.String("model", cfg.OpenAI.ChatModel),
	)
	return assistant
}

// buildRouter wires services and handlers onto a gin engine.
func buildRouter(cfg *config.Config, repo repository.Repository, background *service.Background, logger *zap.Logger) *gin.Engine {
	catalog := chatbot.LoadCatalogOrFallback(cfg.Chat.CatalogPath, logger)
	generator := chatbot.NewGenerator(chatbot.NewClassifier(catalog), nil)
	addons := pricing.DefaultAddons()

	notifier := newNotifier(cfg, logger)
	payments := newPaymentProvider(cfg, logger)
	authenticator := auth.NewAuthenticator(cfg.Admin.Email, cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	if !authenticator.Enabled() {
		logger.Warn("Admin login disabled, set ADMIN_EMAIL, ADMIN_PASSWORD_HASH and JWT_SECRET")
	}

	bookingService := service.NewBookingService(repo, addons, payments, notifier, background, logger)
	handlers := handler.Handlers{
		Chat:    handler.NewChatHandler(service.NewChatService(generator, newAssistant(cfg, addons, logger), repo, background, cfg.Chat.LogMessages, logger)),
		Catalog: handler.NewCatalogHandler(addons),
		Booking: handler.NewBookingHandler(bookingService, logger),
		Payment: handler.NewPaymentHandler(service.NewPaymentService(bookingService, payments, cfg.Payment.Currency, logger), logger),
		Contact: handler.NewContactHandler(service.NewContactService(repo, notifier, background, logger), logger),
		Admin:   handler.NewAdminHandler(service.NewAdminService(authenticator, repo, logger), logger),
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitList(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = splitList(cfg.Server.AllowedMethods)
	corsConfig.AllowHeaders = splitList(cfg.Server.AllowedHeaders)
	if len(corsConfig.AllowOrigins) == 0 || (len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*") {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "chefweb-api",
			"version": Version,
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	handler.RegisterRoutes(router, handlers, limiter.Middleware(logger), middleware.AdminAuth(authenticator))

	// Implemented in embed.go (release builds) or static_dev.go
	setupStaticFiles(router, cfg.Server.StaticDir, logger)

	return router
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
