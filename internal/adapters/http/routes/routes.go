package routes

import (
	"vesselhub/internal/adapters/http/handlers"
	"vesselhub/internal/adapters/http/middleware"
	"vesselhub/internal/adapters/persistence/memory"
	"vesselhub/internal/config"
	"vesselhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *memory.Store, cfg *config.Config) {
	// Initialize repositories
	userRepo := store.Users()
	profileRepo := store.Profiles()
	certRepo := store.Certificates()
	vesselRepo := store.Vessels()
	assignmentRepo := store.Assignments()
	maintenanceRepo := store.Maintenance()
	safetyRepo := store.Safety()
	qhseRepo := store.QHSE()

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	crewService := services.NewCrewService(profileRepo, certRepo)
	vesselService := services.NewVesselService(vesselRepo)
	crewingService := services.NewCrewingService(assignmentRepo, vesselRepo)
	fleetOpsService := services.NewFleetOpsService(maintenanceRepo, safetyRepo, qhseRepo, vesselRepo)
	dashboardService := services.NewDashboardService(vesselRepo, maintenanceRepo, safetyRepo, assignmentRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	crewHandler := handlers.NewCrewHandler(crewService, cfg)
	vesselHandler := handlers.NewVesselHandler(vesselService)
	crewingHandler := handlers.NewCrewingHandler(crewingService)
	fleetOpsHandler := handlers.NewFleetOpsHandler(fleetOpsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check
	app.Get("/healthz", handlers.HealthCheck)

	authRequired := middleware.AuthMiddleware(authService)

	setupAuthRoutes(app, authHandler, authRequired)
	setupCrewRoutes(app, crewHandler, authRequired)
	setupVesselRoutes(app, vesselHandler, authRequired)
	setupCrewingRoutes(app, crewingHandler, authRequired)
	setupFleetOpsRoutes(app, fleetOpsHandler, authRequired)

	app.Get("/dashboard", authRequired, dashboardHandler.Get)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(app *fiber.App, h *handlers.AuthHandler, authRequired fiber.Handler) {
	auth := app.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), h.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), h.Login)
	auth.Get("/me", authRequired, h.Me)
}

// setupCrewRoutes configures crew self-service routes
func setupCrewRoutes(app *fiber.App, h *handlers.CrewHandler, authRequired fiber.Handler) {
	app.Get("/profile", authRequired, h.GetProfile)
	app.Put("/profile", authRequired, h.UpdateProfile)

	app.Get("/next-of-kin", authRequired, h.GetNextOfKin)
	app.Put("/next-of-kin", authRequired, h.UpdateNextOfKin)

	app.Get("/medical-info", authRequired, h.GetMedicalInfo)
	app.Put("/medical-info", authRequired, h.UpdateMedicalInfo)

	app.Get("/electronic-signature", authRequired, h.GetSignature)
	app.Put("/electronic-signature", authRequired, h.UpdateSignature)

	certs := app.Group("/certificates", authRequired)
	certs.Get("/", h.ListCertificates)
	certs.Post("/", h.CreateCertificate)
	certs.Post("/:id/file", h.UploadCertificateFile)
}

// setupVesselRoutes configures vessel registry routes
func setupVesselRoutes(app *fiber.App, h *handlers.VesselHandler, authRequired fiber.Handler) {
	vessels := app.Group("/vessels", authRequired)
	vessels.Get("/", h.List)
	vessels.Get("/:id", h.Get)
	vessels.Post("/", middleware.AdminOnly(), h.Create)
}

// setupCrewingRoutes configures crew assignment routes
func setupCrewingRoutes(app *fiber.App, h *handlers.CrewingHandler, authRequired fiber.Handler) {
	assignments := app.Group("/crew-assignments", authRequired)
	assignments.Get("/", h.List)
	assignments.Post("/", h.Create)

	app.Get("/my-assignment", authRequired, h.MyAssignment)
}

// setupFleetOpsRoutes configures maintenance, safety and QHSE routes
func setupFleetOpsRoutes(app *fiber.App, h *handlers.FleetOpsHandler, authRequired fiber.Handler) {
	maintenance := app.Group("/maintenance", authRequired)
	maintenance.Get("/", h.ListMaintenance)
	maintenance.Post("/", h.CreateMaintenance)
	maintenance.Put("/:id", h.UpdateMaintenance)

	safety := app.Group("/safety", authRequired)
	safety.Get("/", h.ListSafety)
	safety.Post("/", h.CreateSafety)

	qhse := app.Group("/qhse", authRequired)
	qhse.Get("/", h.ListQHSE)
	qhse.Post("/", middleware.AdminOrManager(), h.CreateQHSE)
}
