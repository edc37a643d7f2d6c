package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"taalimflow/utils"
)

type VisitorController struct {
	Tracker *utils.VisitorTracker
	Logger  *log.Logger
}

func NewVisitorController(tracker *utils.VisitorTracker, logger *log.Logger) *VisitorController {
	return &VisitorController{
		Tracker: tracker,
		Logger:  logger,
	}
}

// RecordVisitor counts a visit reported by the SPA.
func (vc *VisitorController) RecordVisitor(c *fiber.Ctx) error {
	ip := utils.ClientIP(c)
	userAgent := c.Get("User-Agent")

	unique := vc.Tracker.Record(ip, userAgent)
	if unique {
		vc.Logger.Printf("🌐 New visitor from IP: %s", ip)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Visitor recorded",
	})
}
