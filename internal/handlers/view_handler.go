package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"catalogview/internal/middleware"
	"catalogview/internal/models"
	"catalogview/internal/presenter"
	"catalogview/internal/repositories"
	"catalogview/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ViewHandler handles HTTP requests for product list views.
type ViewHandler struct {
	service   *services.ViewService
	presenter *presenter.Presenter
	validate  *validator.Validate
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(service *services.ViewService, p *presenter.Presenter) *ViewHandler {
	return &ViewHandler{
		service:   service,
		presenter: p,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the JSON view routes with the Fiber router.
func (h *ViewHandler) RegisterRoutes(router fiber.Router) {
	viewRoutes := router.Group("/views")
	viewRoutes.Post("/", h.HandleCreateView)
	viewRoutes.Get("/:id", middleware.ViewRequired(h.service), h.HandleGetView)
	viewRoutes.Patch("/:id", middleware.ViewRequired(h.service), h.HandleUpdateView)
	viewRoutes.Delete("/:id", middleware.ViewRequired(h.service), h.HandleDeleteView)
}

// RegisterPages registers the HTML listing pages.
func (h *ViewHandler) RegisterPages(router fiber.Router) {
	router.Get("/", h.HandleNewPage)
	router.Get("/views/:id", middleware.ViewRequired(h.service), h.HandleListPage)
}

// HandleCreateView starts a new view and its catalog fetch.
func (h *ViewHandler) HandleCreateView(c *fiber.Ctx) error {
	view, _, err := h.service.Create()
	if err != nil {
		log.Printf("Error creating view: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create view",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     view.ID,
		"status": view.Status,
	})
}

// HandleGetView returns the derived page of a view.
func (h *ViewHandler) HandleGetView(c *fiber.Ctx) error {
	view, _ := middleware.CurrentView(c)
	page, err := h.service.Page(view.ID)
	if err != nil {
		return h.viewError(c, view.ID, err)
	}
	return c.JSON(page)
}

// HandleUpdateView changes the search text, filter mode or page of a view.
func (h *ViewHandler) HandleUpdateView(c *fiber.Ctx) error {
	view, _ := middleware.CurrentView(c)

	var update models.ViewUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing view update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if errs := h.validationErrors(update); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	page, err := h.service.Update(view.ID, update)
	if err != nil {
		return h.viewError(c, view.ID, err)
	}
	return c.JSON(page)
}

// HandleDeleteView discards a view.
func (h *ViewHandler) HandleDeleteView(c *fiber.Ctx) error {
	view, _ := middleware.CurrentView(c)
	if err := h.service.Delete(view.ID); err != nil {
		return h.viewError(c, view.ID, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("View %s deleted successfully", view.ID),
	})
}

// HandleNewPage activates a new view and redirects to its page.
func (h *ViewHandler) HandleNewPage(c *fiber.Ctx) error {
	view, _, err := h.service.Create()
	if err != nil {
		log.Printf("Error creating view: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString(models.GenericErrorMessage)
	}
	return c.Redirect("/views/"+view.ID, fiber.StatusSeeOther)
}

// HandleListPage applies the q, filter and page query parameters that are present
// and renders the listing.
func (h *ViewHandler) HandleListPage(c *fiber.Ctx) error {
	view, _ := middleware.CurrentView(c)

	update, err := viewUpdateFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}
	if errs := h.validationErrors(update); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	page, err := h.service.Update(view.ID, update)
	if err != nil {
		return h.viewError(c, view.ID, err)
	}
	return c.Render("list", h.presenter.ListView(*page, "/views/"+view.ID))
}

// viewUpdateFromQuery reads only the parameters present in the query string,
// so a page link leaves search and filter alone. Values outlive the request,
// so they are copied out of fasthttp's buffer.
func viewUpdateFromQuery(c *fiber.Ctx) (models.ViewUpdate, error) {
	var update models.ViewUpdate
	queries := c.Queries()

	if search, ok := queries["q"]; ok {
		search = utils.CopyString(search)
		update.Search = &search
	}
	if filter, ok := queries["filter"]; ok {
		mode := models.FilterMode(utils.CopyString(filter))
		update.Filter = &mode
	}
	if raw, ok := queries["page"]; ok {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return update, fmt.Errorf("page must be a number, got %q", raw)
		}
		update.Page = &page
	}
	return update, nil
}

// validationErrors returns the response body for an invalid update, nil otherwise.
func (h *ViewHandler) validationErrors(update models.ViewUpdate) fiber.Map {
	err := h.validate.Struct(update)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		}
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	}
}

func (h *ViewHandler) viewError(c *fiber.Ctx, viewID string, err error) error {
	if errors.Is(err, repositories.ErrViewNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("View %s not found or expired", viewID),
		})
	}
	log.Printf("Error handling view %s: %v", viewID, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not process view",
		"error":   err.Error(),
	})
}
