package controller

import (
	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/pkg/apperror"
	"saas-notes-be/internal/pkg/serverutils"
	"saas-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/note/v1")
	h.Use(jwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	res, err := c.noteService.List(ctx.UserContext(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body", nil)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Your note has been successfully created", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	res, err := c.noteService.Show(ctx.UserContext(), serverutils.SessionID(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body", nil)
	}
	req.Id = ctx.Params("id")

	res, err := c.noteService.Update(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Your note has been successfully updated", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	err := c.noteService.Delete(ctx.UserContext(), serverutils.SessionID(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Your note has been successfully deleted", nil))
}
