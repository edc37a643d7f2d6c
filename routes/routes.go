package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	controller "taalimflow/controllers"
	"taalimflow/middleware"
	"taalimflow/storage"
	"taalimflow/utils"
	"taalimflow/worker"
)

func SetupRoutes(app *fiber.App, store storage.Storage, tracker *utils.VisitorTracker, nw *worker.NotifyWorker) {
	live := controller.NewLiveFeed(log.New(os.Stdout, "LIVE: ", log.LstdFlags))
	contactController := controller.NewContactController(store, nw, live, log.New(os.Stdout, "CONTACT: ", log.LstdFlags))
	demoController := controller.NewDemoController(store, nw, live, log.New(os.Stdout, "DEMO: ", log.LstdFlags))
	adminController := controller.NewAdminController(store, tracker, log.New(os.Stdout, "ADMIN: ", log.LstdFlags))
	visitorController := controller.NewVisitorController(tracker, log.New(os.Stdout, "VISITOR: ", log.LstdFlags))

	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Public form endpoints, rate limited per client IP. The limiter is
	// attached per route so the rest of the API is never throttled.
	formLimiter := middleware.FormRateLimiter()
	api.Post("/contact", formLimiter, contactController.CreateContactSubmission)
	api.Post("/demo-request", formLimiter, demoController.CreateDemoRequest)

	api.Post("/visitor", visitorController.RecordVisitor)
	api.Post("/admin/login", adminController.Login)

	// Admin surface
	admin := api.Group("/admin", middleware.AdminProtected())
	admin.Get("/contact-submissions", adminController.GetContactSubmissions)
	admin.Patch("/contact-submissions/:id/read", adminController.MarkContactSubmissionRead)
	admin.Patch("/contact-submissions/:id/status", adminController.UpdateContactSubmissionStatus)
	admin.Delete("/contact-submissions/:id", adminController.DeleteContactSubmission)

	admin.Get("/demo-requests", adminController.GetDemoRequests)
	admin.Patch("/demo-requests/:id/read", adminController.MarkDemoRequestRead)
	admin.Patch("/demo-requests/:id/status", adminController.UpdateDemoRequestStatus)
	admin.Delete("/demo-requests/:id", adminController.DeleteDemoRequest)

	admin.Get("/visitor-stats", adminController.GetVisitorStats)
	admin.Get("/settings", adminController.GetSettings)
	admin.Post("/settings", adminController.UpdateSettings)

	// Live submission feed for the dashboard
	admin.Get("/live", websocket.New(live.Handle))

	// A request reaching these handlers hit a known path with a method it
	// does not serve; unknown paths fall through to the 404 below.
	for _, route := range []struct {
		path  string
		allow string
	}{
		{"/api/health", fiber.MethodGet},
		{"/api/contact", fiber.MethodPost},
		{"/api/demo-request", fiber.MethodPost},
		{"/api/visitor", fiber.MethodPost},
		{"/api/admin/login", fiber.MethodPost},
		{"/api/admin/contact-submissions", fiber.MethodGet},
		{"/api/admin/contact-submissions/:id/read", fiber.MethodPatch},
		{"/api/admin/contact-submissions/:id/status", fiber.MethodPatch},
		{"/api/admin/contact-submissions/:id", fiber.MethodDelete},
		{"/api/admin/demo-requests", fiber.MethodGet},
		{"/api/admin/demo-requests/:id/read", fiber.MethodPatch},
		{"/api/admin/demo-requests/:id/status", fiber.MethodPatch},
		{"/api/admin/demo-requests/:id", fiber.MethodDelete},
		{"/api/admin/visitor-stats", fiber.MethodGet},
		{"/api/admin/settings", "GET, POST"},
		{"/api/admin/live", fiber.MethodGet},
	} {
		app.All(route.path, methodNotAllowed(route.allow))
	}

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "The requested resource was not found",
		})
	})

	log.Println("API routes initialized successfully")
}

func methodNotAllowed(allow string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, allow)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"success": false,
			"message": "Method not allowed",
		})
	}
}
