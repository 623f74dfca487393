package service

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/avelinejewellery/aveline/internal/email"
	"github.com/avelinejewellery/aveline/internal/handlers"
	"github.com/avelinejewellery/aveline/internal/jobs"
	"github.com/avelinejewellery/aveline/internal/shipping"
	"github.com/avelinejewellery/aveline/internal/stripe"
	"github.com/avelinejewellery/aveline/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Service struct {
	storage         *storage.Storage
	config          *Config
	emailService    *email.Service
	stripeService   *stripe.Service
	trackerService  *shipping.TrackerService
	cartRecoverer   *jobs.CartRecoverer
	checkoutHandler *handlers.CheckoutHandler
	webhookHandler  *handlers.WebhookHandler
	couponsHandler  *handlers.CouponsHandler
	productsHandler *handlers.ProductsHandler
	captureHandler  *handlers.CaptureHandler
	reviewsHandler  *handlers.ReviewsHandler
	adminHandler    *handlers.AdminHandler
}

func New(store *storage.Storage, config *Config) *Service {
	errs := handlers.NewErrorWriter(config.Environment)

	sender := email.NewSendGridSender(config.Email.APIKey, config.Email.From, config.Email.FromName)
	emailService := email.NewService(sender, config.Email.OrderBcc)

	stripeService := stripe.NewService(config.Stripe.SecretKey)
	trackerService := shipping.NewTrackerService(config.Shipping.EasyPostAPIKey)
	cartRecoverer := jobs.NewCartRecoverer(store, emailService, config.BaseURL)

	return &Service{
		storage:         store,
		config:          config,
		emailService:    emailService,
		stripeService:   stripeService,
		trackerService:  trackerService,
		cartRecoverer:   cartRecoverer,
		checkoutHandler: handlers.NewCheckoutHandler(stripeService, store.Queries, errs, config.BaseURL),
		webhookHandler:  handlers.NewWebhookHandler(store.Queries, emailService, errs, config.Stripe.WebhookSecret),
		couponsHandler:  handlers.NewCouponsHandler(stripeService, errs),
		productsHandler: handlers.NewProductsHandler(store.Queries, errs),
		captureHandler:  handlers.NewCaptureHandler(store.Queries, errs),
		reviewsHandler:  handlers.NewReviewsHandler(store.Queries, errs),
		adminHandler:    handlers.NewAdminHandler(store.Queries, emailService, trackerService, cartRecoverer, errs),
	}
}

// StartJobs launches the background workers. Separate from New so tests can
// build a Service without a ticking recoverer.
func (s *Service) StartJobs(ctx context.Context) {
	s.cartRecoverer.Start(ctx)
}

// StopJobs stops the background workers.
func (s *Service) StopJobs() {
	s.cartRecoverer.Stop()
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Health check - no auth
	e.GET("/health", s.handleHealth)

	api := e.Group("/api")

	// Catalog
	api.GET("/products", s.productsHandler.ListProducts)
	api.GET("/products/:id", s.productsHandler.GetProduct)
	api.GET("/products/:id/reviews", s.reviewsHandler.ListReviews)
	api.POST("/products/:id/reviews", s.reviewsHandler.CreateReview)

	// Checkout
	api.POST("/checkout/session", s.checkoutHandler.CreateSession)
	api.POST("/checkout/capture-email", s.captureHandler.CaptureEmail)
	api.POST("/coupons/validate", s.couponsHandler.ValidateCoupon)

	// Stripe webhook
	api.POST("/webhooks/stripe", s.webhookHandler.HandleWebhook)

	// Marketing capture
	api.POST("/subscribe", s.captureHandler.Subscribe)
	api.POST("/contact", s.captureHandler.Contact)
	api.POST("/search/log", s.captureHandler.LogSearch)

	// Admin dashboard - basic auth
	admin := e.Group("/admin/api", middleware.BasicAuth(s.checkAdminCredentials))
	admin.GET("/dashboard", s.adminHandler.Dashboard)
	admin.GET("/orders", s.adminHandler.ListOrders)
	admin.GET("/orders/:id", s.adminHandler.GetOrder)
	admin.PUT("/orders/:id/fulfillment", s.adminHandler.UpdateFulfillment)
	admin.GET("/orders/:id/packing-slip", s.adminHandler.PackingSlip)
	admin.POST("/abandoned-carts/run", s.adminHandler.RunAbandonedCarts)
	admin.GET("/search-logs", s.adminHandler.ListSearchLogs)
}

func (s *Service) checkAdminCredentials(username, password string, _ echo.Context) (bool, error) {
	if s.config.Admin.Password == "" {
		return false, nil
	}
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.Admin.Username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.config.Admin.Password)) == 1
	return userMatch && passMatch, nil
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
