package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"taalimflow/models"
	"taalimflow/storage"
	"taalimflow/utils"
	"taalimflow/worker"
)

type ContactController struct {
	Store  storage.Storage
	Worker *worker.NotifyWorker
	Live   *LiveFeed
	Logger *log.Logger
}

func NewContactController(store storage.Storage, nw *worker.NotifyWorker, live *LiveFeed, logger *log.Logger) *ContactController {
	return &ContactController{
		Store:  store,
		Worker: nw,
		Live:   live,
		Logger: logger,
	}
}

// CreateContactSubmission handles the public contact form. The response
// is decided by the store write alone; notifications run on the worker
// afterwards.
func (cc *ContactController) CreateContactSubmission(c *fiber.Ctx) error {
	var input models.InsertContactSubmission
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data", err)
	}

	submission, err := cc.Store.CreateContactSubmission(input)
	if err != nil {
		cc.Logger.Printf("Error creating contact submission: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", nil)
	}

	cc.Worker.Enqueue(worker.NotifyJob{Contact: submission})
	cc.Live.Broadcast(LiveEvent{Type: "contact_submission", Payload: submission})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contact form submitted successfully",
		"id":      submission.ID,
	})
}
