package middleware

import (
	"errors"
	"log"

	"catalogview/internal/models"
	"catalogview/internal/repositories"
	"catalogview/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ViewLocal is the Fiber locals key holding the resolved *models.View.
const ViewLocal = "view"

// ViewRequired is a Fiber middleware resolving the :id route parameter to a view.
func ViewRequired(viewService *services.ViewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewID := c.Params("id")
		if viewID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "View ID is required",
			})
		}

		view, err := viewService.Get(viewID)
		if err != nil {
			if errors.Is(err, repositories.ErrViewNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "View not found or expired",
					"error":   err.Error(),
				})
			}
			log.Printf("Error resolving view %s: %v", viewID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not resolve view",
				"error":   err.Error(),
			})
		}

		// Store the view in Fiber context for subsequent handlers
		c.Locals(ViewLocal, view)

		return c.Next()
	}
}

// CurrentView returns the view stored by ViewRequired.
func CurrentView(c *fiber.Ctx) (*models.View, bool) {
	view, ok := c.Locals(ViewLocal).(*models.View)
	return view, ok
}
