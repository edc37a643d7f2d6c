package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"taalimflow/models"
	"taalimflow/storage"
	"taalimflow/utils"
	"taalimflow/worker"
)

type DemoController struct {
	Store  storage.Storage
	Worker *worker.NotifyWorker
	Live   *LiveFeed
	Logger *log.Logger
}

func NewDemoController(store storage.Storage, nw *worker.NotifyWorker, live *LiveFeed, logger *log.Logger) *DemoController {
	return &DemoController{
		Store:  store,
		Worker: nw,
		Live:   live,
		Logger: logger,
	}
}

// CreateDemoRequest handles the public demo request form.
func (dc *DemoController) CreateDemoRequest(c *fiber.Ctx) error {
	var input models.InsertDemoRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data", err)
	}

	request, err := dc.Store.CreateDemoRequest(input)
	if err != nil {
		dc.Logger.Printf("Error creating demo request: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", nil)
	}

	dc.Worker.Enqueue(worker.NotifyJob{Demo: request})
	dc.Live.Broadcast(LiveEvent{Type: "demo_request", Payload: request})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Demo request submitted successfully",
		"id":      request.ID,
	})
}
