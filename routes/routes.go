package routes

import (
	"os"

	adminController "vtc-onboarding/controllers/admin"
	authController "vtc-onboarding/controllers/auth"
	partnerController "vtc-onboarding/controllers/partner"
	webhook "vtc-onboarding/httpServices/webhook"
	"vtc-onboarding/logger"
	"vtc-onboarding/middleware"
	partnerService "vtc-onboarding/services/partner"
	"vtc-onboarding/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := partnerService.NewGormStore(db)
	service := partnerService.NewService(store)
	workflowClient := webhook.NewWorkflowClient(os.Getenv("WORKFLOW_WEBHOOK_URL"))
	asyncLogger := logger.NewAsyncLogger(db)

	submission := partnerController.NewSubmissionController(service, workflowClient, asyncLogger)
	admin := adminController.NewAdminController(store, service, asyncLogger)
	auth := authController.NewAuthController(asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	// The submission endpoint is embedded on arbitrary landing pages and
	// sets its own wildcard CORS headers; it must stay outside the
	// credentials-scoped CORS below, which would swallow its preflight.
	api := app.Group("/api")
	api.Post("/submit", submission.Submit)
	api.Options("/submit", submission.Preflight)

	frontendCORS := cors.New(cors.Config{
		AllowOrigins:     utils.GetEnv("FRONTEND_URL", "http://localhost:4321"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})

	authGroup := api.Group("/auth", frontendCORS)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/logout", auth.Logout)

	/*=============================================================================
	| Admin Routes (session cookie required)
	===============================================================================*/
	adminGroup := api.Group("/admin", frontendCORS).Use(middleware.RequireSession())
	adminGroup.Get("/get-partner", admin.GetPartner)
	adminGroup.Get("/list-partners", admin.ListPartners)
	adminGroup.Post("/validate-partner", admin.ValidatePartner)
	adminGroup.Post("/update-company", admin.UpdateCompany)
}
