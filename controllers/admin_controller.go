package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"taalimflow/config"
	"taalimflow/models"
	"taalimflow/storage"
	"taalimflow/utils"
)

type AdminController struct {
	Store   storage.Storage
	Tracker *utils.VisitorTracker
	Logger  *log.Logger
}

func NewAdminController(store storage.Storage, tracker *utils.VisitorTracker, logger *log.Logger) *AdminController {
	return &AdminController{
		Store:   store,
		Tracker: tracker,
		Logger:  logger,
	}
}

// Login exchanges the admin password for a session token.
func (ac *AdminController) Login(c *fiber.Ctx) error {
	var input struct {
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data", err)
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Admin login is not configured", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		ac.Logger.Printf("Error issuing admin token: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", nil)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

// storeUpdateResponse maps an update outcome to the wire: unknown ids are
// an explicit 404, not a silent success.
func (ac *AdminController) storeUpdateResponse(c *fiber.Ctx, err error, message string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Record not found", nil)
	}
	if err != nil {
		ac.Logger.Printf("Error updating record: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// Contact submissions

func (ac *AdminController) GetContactSubmissions(c *fiber.Ctx) error {
	submissions, err := ac.Store.GetAllContactSubmissions()
	if err != nil {
		ac.Logger.Printf("Error fetching contact submissions: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch contact submissions", nil)
	}
	return c.JSON(submissions)
}

func (ac *AdminController) MarkContactSubmissionRead(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", nil)
	}
	return ac.storeUpdateResponse(c, ac.Store.MarkContactSubmissionAsRead(id), "Marked as read")
}

func (ac *AdminController) UpdateContactSubmissionStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", nil)
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if !models.IsValidStatus(input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status value", nil)
	}

	return ac.storeUpdateResponse(c, ac.Store.UpdateContactSubmissionStatus(id, input.Status), "Status updated")
}

func (ac *AdminController) DeleteContactSubmission(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", nil)
	}
	return ac.storeUpdateResponse(c, ac.Store.DeleteContactSubmission(id), "Record deleted")
}

// Demo requests

func (ac *AdminController) GetDemoRequests(c *fiber.Ctx) error {
	requests, err := ac.Store.GetAllDemoRequests()
	if err != nil {
		ac.Logger.Printf("Error fetching demo requests: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch demo requests", nil)
	}
	return c.JSON(requests)
}

func (ac *AdminController) MarkDemoRequestRead(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", nil)
	}
	return ac.storeUpdateResponse(c, ac.Store.MarkDemoRequestAsRead(id), "Marked as read")
}

func (ac *AdminController) UpdateDemoRequestStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", nil)
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if !models.IsValidStatus(input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status value", nil)
	}

	return ac.storeUpdateResponse(c, ac.Store.UpdateDemoRequestStatus(id, input.Status), "Status updated")
}

func (ac *AdminController) DeleteDemoRequest(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", nil)
	}
	return ac.storeUpdateResponse(c, ac.Store.DeleteDemoRequest(id), "Record deleted")
}

// Visitor stats

func (ac *AdminController) GetVisitorStats(c *fiber.Ctx) error {
	return c.JSON(ac.Tracker.Stats())
}

// Settings

// Site settings shown on the dashboard. Static for now; the landing page
// hard-codes the same values.
var defaultSettings = fiber.Map{
	"contactEmail": "contact@taalimflow.com",
	"contactPhone": "+213 555 123 456",
	"instagram":    "@taalimflow",
	"facebook":     "TaalimFlow",
	"pricing": fiber.Map{
		"basic":      "5000 DA/month",
		"premium":    "10000 DA/month",
		"enterprise": "Contact us",
	},
}

func (ac *AdminController) GetSettings(c *fiber.Ctx) error {
	return c.JSON(defaultSettings)
}

func (ac *AdminController) UpdateSettings(c *fiber.Ctx) error {
	ac.Logger.Printf("Settings update requested: %s", c.Body())
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Settings saved",
	})
}
